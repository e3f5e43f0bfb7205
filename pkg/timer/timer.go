// Package timer calls a function repeatedly at a fixed interval.
//
// A [Timer] is independent of any animator. Hosts typically use one to
// retarget animators periodically, for example sending one to a new target
// every two seconds:
//
//	t := timer.New(func() {
//	    a.SetEndValues(animation.V("x", nextX()))
//	    a.Start()
//	}, 2*time.Second)
//	t.Start()
//
// The callback runs on the scheduler's goroutine, not the caller's.
//
// Timers do not compensate for scheduler drift. RemainingTime is computed
// from the phase of the elapsed time since Start, not from the actual fire
// times, so after many slow callbacks the two can disagree.
package timer

import (
	"sync"
	"time"

	"github.com/go-drift/tween/pkg/errors"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// minInterval is the period used when a timer is started with a
// non-positive interval.
const minInterval = time.Millisecond

// Option configures a Timer.
type Option func(*Timer)

// WithScheduler sets the scheduler. Defaults to NewTickerScheduler().
func WithScheduler(s Scheduler) Option {
	return func(t *Timer) { t.scheduler = s }
}

// WithClock sets the clock used for ElapsedTime and RemainingTime.
// Defaults to system time.
func WithClock(c Clock) Option {
	return func(t *Timer) { t.clock = c }
}

// Timer calls a callback every interval while running. The zero value is a
// timer with no callback that uses the ticker scheduler and system time.
type Timer struct {
	mu        sync.Mutex
	callback  func()
	interval  time.Duration
	running   bool
	startTime time.Time
	handle    Handle

	scheduler Scheduler
	clock     Clock
}

// New creates a stopped timer.
func New(callback func(), interval time.Duration, opts ...Option) *Timer {
	t := &Timer{
		callback:  callback,
		interval:  interval,
		scheduler: NewTickerScheduler(),
		clock:     realClock{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start cancels any repetition this timer owns, then schedules the
// callback every interval starting now. The first call happens one
// interval after Start.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.handle != nil {
		t.handle.Cancel()
	}
	interval := t.interval
	if interval <= 0 {
		interval = minInterval
	}
	if t.scheduler == nil {
		t.scheduler = NewTickerScheduler()
	}
	t.startTime = t.now()
	t.handle = t.scheduler.Schedule(t.fire, interval)
	t.running = true
}

// Stop cancels the repetition.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.handle != nil {
		t.handle.Cancel()
		t.handle = nil
	}
	t.running = false
}

func (t *Timer) fire() {
	defer errors.Recover("timer.fire")
	if t.callback != nil {
		t.callback()
	}
}

// now reads the timer's clock. The caller must hold t.mu.
func (t *Timer) now() time.Time {
	if t.clock == nil {
		return time.Now()
	}
	return t.clock.Now()
}

// IsRunning reports whether the timer is scheduled.
func (t *Timer) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Interval returns the period between calls.
func (t *Timer) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// SetInterval changes the period. A running schedule keeps its period until
// the next Start, while RemainingTime uses the new value immediately.
func (t *Timer) SetInterval(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.interval = d
}

// ElapsedTime returns the time since Start, or 0 when stopped.
func (t *Timer) ElapsedTime() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return 0
	}
	return t.now().Sub(t.startTime)
}

// RemainingTime returns the time until the next interval boundary, or 0
// when stopped. While running the result is in [0, interval); exactly on a
// boundary it is 0.
func (t *Timer) RemainingTime() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running || t.interval <= 0 {
		return 0
	}
	elapsed := t.now().Sub(t.startTime)
	phase := elapsed % t.interval
	if phase < 0 {
		phase += t.interval
	}
	remaining := t.interval - phase
	if remaining >= t.interval {
		return 0
	}
	return remaining
}
