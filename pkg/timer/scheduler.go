package timer

import (
	"sync"
	"time"

	"github.com/go-drift/tween/pkg/errors"
)

// Handle identifies one scheduled repetition.
type Handle interface {
	// Cancel stops further calls. A call already in progress is not
	// interrupted. Cancel may be called more than once.
	Cancel()
}

// Scheduler runs a callback repeatedly at a fixed interval until the
// returned handle is cancelled.
type Scheduler interface {
	Schedule(callback func(), interval time.Duration) Handle
}

// NewTickerScheduler returns a Scheduler backed by time.Ticker. Each
// schedule runs its callback on a dedicated goroutine, so callbacks of one
// schedule never overlap. A slow callback delays the following ones; the
// ticker drops ticks rather than queueing them. A panicking callback is
// reported as "timer.tick" and the schedule keeps running.
func NewTickerScheduler() Scheduler {
	return tickerScheduler{}
}

type tickerScheduler struct{}

func (tickerScheduler) Schedule(callback func(), interval time.Duration) Handle {
	h := &tickerHandle{done: make(chan struct{})}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-h.done:
				return
			case <-ticker.C:
				// Cancel may race with a tick that is already ready.
				select {
				case <-h.done:
					return
				default:
				}
				errors.Guard("timer.tick", callback)
			}
		}
	}()
	return h
}

type tickerHandle struct {
	once sync.Once
	done chan struct{}
}

func (h *tickerHandle) Cancel() {
	h.once.Do(func() { close(h.done) })
}
