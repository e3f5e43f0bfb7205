package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/tween/pkg/animation"
	"github.com/go-drift/tween/pkg/timer"
)

// DefaultFrameInterval is the frame step used by PumpFor and PumpAndSettle,
// roughly 60 frames per second.
const DefaultFrameInterval = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animators did not settle")

// Tester drives animators and timers against a fake clock, the way a host
// render loop would, but without real time passing.
type Tester struct {
	clock     *FakeClock
	prevClock animation.Clock
	scheduler *FakeScheduler
	group     animation.Group
	frame     time.Duration
	frames    int
}

// NewTester creates a tester and installs its fake clock as the animation
// clock. Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	t := &Tester{
		clock:     clk,
		scheduler: NewFakeScheduler(clk),
		frame:     DefaultFrameInterval,
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t testing.TB) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the previous animation clock. Must be called if not
// using NewTesterWithT.
func (t *Tester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Scheduler returns the fake scheduler used by NewTimer.
func (t *Tester) Scheduler() *FakeScheduler {
	return t.scheduler
}

// SetFrameInterval sets the step used by PumpFor and PumpAndSettle.
func (t *Tester) SetFrameInterval(d time.Duration) {
	if d > 0 {
		t.frame = d
	}
}

// Add registers animators to be updated on every Pump.
func (t *Tester) Add(animators ...*animation.Animator) {
	t.group.Add(animators...)
}

// Group returns the animators updated on every Pump.
func (t *Tester) Group() *animation.Group {
	return &t.group
}

// NewTimer returns a timer wired to the tester's clock and scheduler.
func (t *Tester) NewTimer(callback func(), interval time.Duration) *timer.Timer {
	return timer.New(callback, interval, timer.WithScheduler(t.scheduler), timer.WithClock(t.clock))
}

// Frames returns the number of frames pumped so far.
func (t *Tester) Frames() int {
	return t.frames
}

// Pump runs one frame at the current time: due timer callbacks fire first,
// then every animator is updated.
func (t *Tester) Pump() {
	t.scheduler.FireDue()
	t.group.Step()
	t.frames++
}

// PumpFor advances the clock by d in frame steps, pumping after each.
func (t *Tester) PumpFor(d time.Duration) {
	for d > 0 {
		step := min(t.frame, d)
		t.clock.Advance(step)
		t.Pump()
		d -= step
	}
}

// PumpAndSettle pumps frames until no animator is running. Returns
// ErrSettleTimeout if the animators are still running after timeout of
// fake time.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	t.Pump()
	var waited time.Duration
	for t.group.HasRunning() {
		if waited >= timeout {
			return ErrSettleTimeout
		}
		t.clock.Advance(t.frame)
		waited += t.frame
		t.Pump()
	}
	return nil
}
