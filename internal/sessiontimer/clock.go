package sessiontimer

import (
	"context"
	"time"

	clocks "github.com/vimeo/go-clocks"
)

// Clock provides the current time.
// This interface allows tests to drive the timer with a fake clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock, backed by the wall clock.
var SystemClock Clock = clocks.DefaultClock()

// Task is a handle to a repeating job. Cancel stops future runs and is
// safe to call more than once, including from inside the job itself.
type Task interface {
	Cancel()
}

// Scheduler runs fn every interval until the returned Task is cancelled.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// TickerScheduler runs each job on its own goroutine driven by a time.Ticker.
type TickerScheduler struct{}

// Every launches the job goroutine and returns immediately.
func (TickerScheduler) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
	return cancelTask(cancel)
}

type cancelTask context.CancelFunc

func (c cancelTask) Cancel() { c() }
