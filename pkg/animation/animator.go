// Package animation interpolates named values over time.
//
// An [Animator] holds start, current and end values for one or more named
// dimensions and moves the current values toward the end values each time
// Update is called, following an easing curve from the easing package.
// Hosts call Update once per frame and read CurrentValues to draw.
//
// When a run reaches 100% the animator stops and commits the end values as
// its new start values, so a later Start without new end values does not
// move anything. Retargeting is done by calling SetEndValues (and optionally
// SetStartValues) and then Start again.
//
//	a, err := animation.New(
//	    animation.WithValues(animation.V("x", 0)),
//	    animation.WithEndValues(animation.V("x", 100)),
//	    animation.WithDuration(time.Second),
//	    animation.WithCurve("easeOutBounce"),
//	)
//	a.Start()
//	// every frame:
//	a.Update()
//	x, _ := a.CurrentValues().Get("x")
package animation

import (
	"sync"
	"time"

	"github.com/go-drift/tween/pkg/easing"
	"github.com/go-drift/tween/pkg/errors"
)

// Animator interpolates a set of named values from start to end values.
//
// All methods are safe for concurrent use, so a timer callback running on
// its own goroutine may retarget an animator that the frame loop updates.
type Animator struct {
	mu sync.Mutex

	keys    []string
	start   []float64
	end     []float64
	current []float64

	duration  time.Duration
	curve     easing.Func
	curveName string

	running   bool
	status    Status
	startTime time.Time

	statusListeners map[int]func(Status)
	nextListenerID  int
}

// Start begins a run from the current start values. Calling Start while
// running restarts progress from zero without touching any values.
func (a *Animator) Start() {
	a.mu.Lock()
	a.startTime = Now()
	a.running = true
	notify := a.setStatusLocked(StatusRunning)
	a.mu.Unlock()
	notify()
}

// Stop halts the run. Current values stay where they are.
func (a *Animator) Stop() {
	a.mu.Lock()
	a.running = false
	notify := a.setStatusLocked(StatusIdle)
	a.mu.Unlock()
	notify()
}

// Update advances the current values using the package clock.
func (a *Animator) Update() {
	a.UpdateAt(Now())
}

// UpdateAt advances the current values to their position at now. It does
// nothing unless the animator is running. When the run is complete the
// current values equal the end values, they are committed as the start
// values, and the animator stops.
func (a *Animator) UpdateAt(now time.Time) {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}

	percent := progress(now.Sub(a.startTime), a.duration)
	for i := range a.keys {
		a.current[i] = a.curve(percent, a.start[i], a.end[i]-a.start[i], 1)
	}

	notify := func() {}
	if percent == 1 {
		copy(a.current, a.end)
		copy(a.start, a.current)
		a.running = false
		notify = a.setStatusLocked(StatusCompleted)
	}
	a.mu.Unlock()
	notify()
}

// progress returns elapsed/duration clamped to [0, 1]. A zero duration
// completes as soon as any non-negative time has passed.
func progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		if elapsed >= 0 {
			return 1
		}
		return 0
	}
	p := float64(elapsed) / float64(duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// CurrentValues returns a copy of the current values.
func (a *Animator) CurrentValues() Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return valuesOf(a.keys, a.current)
}

// StartValues returns a copy of the start values.
func (a *Animator) StartValues() Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return valuesOf(a.keys, a.start)
}

// EndValues returns a copy of the end values.
func (a *Animator) EndValues() Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return valuesOf(a.keys, a.end)
}

// Dimension returns the number of animated values.
func (a *Animator) Dimension() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.keys)
}

// SetStartValues replaces the start values and moves the current values to
// them. v must have exactly the animator's dimensions; otherwise a
// DimensionMismatchError is returned and nothing changes.
func (a *Animator) SetStartValues(v Values) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	vals, err := a.checkDimensions("animation.SetStartValues", v)
	if err != nil {
		return err
	}
	a.start = vals
	a.current = append([]float64(nil), vals...)
	return nil
}

// SetEndValues replaces the end values. v must have exactly the animator's
// dimensions; otherwise a DimensionMismatchError is returned and nothing
// changes. A running animation heads for the new values from its next
// Update.
func (a *Animator) SetEndValues(v Values) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	vals, err := a.checkDimensions("animation.SetEndValues", v)
	if err != nil {
		return err
	}
	a.end = vals
	return nil
}

// Retarget sets the start, current and end values and the duration, then
// starts a run, all under one lock. Concurrent callers therefore never
// combine one call's end values with another's duration. Both value sets
// must match the animator's dimensions; otherwise a DimensionMismatchError
// is returned and nothing changes. Negative durations are treated as zero.
func (a *Animator) Retarget(start, end Values, d time.Duration) error {
	a.mu.Lock()
	startVals, err := a.checkDimensions("animation.Retarget", start)
	if err != nil {
		a.mu.Unlock()
		return err
	}
	endVals, err := a.checkDimensions("animation.Retarget", end)
	if err != nil {
		a.mu.Unlock()
		return err
	}
	a.start = startVals
	a.current = append([]float64(nil), startVals...)
	a.end = endVals
	a.duration = max(d, 0)
	a.startTime = Now()
	a.running = true
	notify := a.setStatusLocked(StatusRunning)
	a.mu.Unlock()
	notify()
	return nil
}

func (a *Animator) checkDimensions(op string, v Values) ([]float64, error) {
	if v.Len() != len(a.keys) {
		return nil, &errors.DimensionMismatchError{Op: op, Want: len(a.keys), Got: v.Len()}
	}
	vals, missing, ok := v.project(a.keys)
	if !ok {
		return nil, &errors.DimensionMismatchError{Op: op, Want: len(a.keys), Got: v.Len(), Key: missing}
	}
	return vals, nil
}

// Duration returns the run length.
func (a *Animator) Duration() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.duration
}

// SetDuration changes the run length. The new duration applies from the
// next Update; progress is recomputed against it rather than rescaled.
// Negative durations are treated as zero.
func (a *Animator) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	a.mu.Lock()
	a.duration = d
	a.mu.Unlock()
}

// CurveName returns the name of the curve in use. It is the fallback
// curve's name if the requested one was unknown.
func (a *Animator) CurveName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.curveName
}

// IsRunning reports whether Update will advance the values.
func (a *Animator) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// ForceRunning sets the running flag directly, bypassing Start and Stop.
// The start time is not touched, so forcing an animator that was never
// started makes it complete on the next Update. Prefer Start and Stop.
func (a *Animator) ForceRunning(running bool) {
	a.mu.Lock()
	a.running = running
	status := StatusIdle
	if running {
		status = StatusRunning
	}
	notify := a.setStatusLocked(status)
	a.mu.Unlock()
	notify()
}

// Status returns the lifecycle state.
func (a *Animator) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Elapsed returns the time since Start, or 0 when not running.
func (a *Animator) Elapsed() time.Duration {
	return a.ElapsedAt(Now())
}

// ElapsedAt is Elapsed measured at now.
func (a *Animator) ElapsedAt(now time.Time) time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return 0
	}
	return now.Sub(a.startTime)
}

// Remaining returns the time left in the run, or 0 when not running.
func (a *Animator) Remaining() time.Duration {
	return a.RemainingAt(Now())
}

// RemainingAt is Remaining measured at now.
func (a *Animator) RemainingAt(now time.Time) time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return 0
	}
	return max(0, a.duration-now.Sub(a.startTime))
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Callbacks run after the animator's lock is released, so they may call
// back into the animator. Returns an unsubscribe function.
func (a *Animator) AddStatusListener(fn func(Status)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.statusListeners == nil {
		a.statusListeners = make(map[int]func(Status))
	}
	id := a.nextListenerID
	a.nextListenerID++
	a.statusListeners[id] = fn
	return func() {
		a.mu.Lock()
		delete(a.statusListeners, id)
		a.mu.Unlock()
	}
}

// setStatusLocked records status and returns a function that notifies
// listeners. The caller must invoke it after unlocking.
func (a *Animator) setStatusLocked(status Status) func() {
	if a.status == status {
		return func() {}
	}
	a.status = status
	if len(a.statusListeners) == 0 {
		return func() {}
	}
	listeners := make([]func(Status), 0, len(a.statusListeners))
	for _, l := range a.statusListeners {
		listeners = append(listeners, l)
	}
	return func() {
		for _, l := range listeners {
			l(status)
		}
	}
}
