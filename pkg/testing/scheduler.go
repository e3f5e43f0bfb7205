package testing

import (
	"sync"
	"time"

	"github.com/go-drift/tween/pkg/timer"
)

// FakeScheduler is a timer.Scheduler that only fires when told to.
//
// Schedules created while the scheduler has a clock are due one interval
// after creation; FireDue runs every callback whose boundary has passed.
// Fire runs every active callback once regardless of the clock.
type FakeScheduler struct {
	clock *FakeClock

	mu        sync.Mutex
	schedules []*FakeSchedule
}

// NewFakeScheduler returns a scheduler bound to clk. clk may be nil, in
// which case only Fire is useful.
func NewFakeScheduler(clk *FakeClock) *FakeScheduler {
	return &FakeScheduler{clock: clk}
}

var _ timer.Scheduler = (*FakeScheduler)(nil)

// FakeSchedule is the handle returned by FakeScheduler.Schedule.
type FakeSchedule struct {
	// Interval is the period the schedule was created with.
	Interval time.Duration

	callback  func()
	next      time.Time
	fired     int
	cancelled bool
}

// Cancel stops the schedule.
func (s *FakeSchedule) Cancel() {
	s.cancelled = true
}

// Cancelled reports whether Cancel was called.
func (s *FakeSchedule) Cancelled() bool {
	return s.cancelled
}

// Fired returns how many times the callback ran.
func (s *FakeSchedule) Fired() int {
	return s.fired
}

// Schedule records callback. It never runs on its own.
func (f *FakeScheduler) Schedule(callback func(), interval time.Duration) timer.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &FakeSchedule{Interval: interval, callback: callback}
	if f.clock != nil {
		s.next = f.clock.Now().Add(interval)
	}
	f.schedules = append(f.schedules, s)
	return s
}

// Fire runs every active callback once and returns how many ran.
func (f *FakeScheduler) Fire() int {
	due := f.active()
	for _, s := range due {
		s.fired++
		s.callback()
	}
	return len(due)
}

// FireDue runs each active callback once for every interval boundary that
// has passed on the clock, in time order per schedule. Returns how many
// calls were made.
func (f *FakeScheduler) FireDue() int {
	if f.clock == nil {
		return 0
	}
	now := f.clock.Now()
	calls := 0
	for _, s := range f.active() {
		for !s.cancelled && s.Interval > 0 && !s.next.After(now) {
			s.next = s.next.Add(s.Interval)
			s.fired++
			calls++
			s.callback()
		}
	}
	return calls
}

// Active returns the number of schedules that have not been cancelled.
func (f *FakeScheduler) Active() int {
	return len(f.active())
}

// Last returns the most recently created schedule, or nil.
func (f *FakeScheduler) Last() *FakeSchedule {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.schedules) == 0 {
		return nil
	}
	return f.schedules[len(f.schedules)-1]
}

func (f *FakeScheduler) active() []*FakeSchedule {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*FakeSchedule
	for _, s := range f.schedules {
		if !s.cancelled {
			out = append(out, s)
		}
	}
	return out
}
