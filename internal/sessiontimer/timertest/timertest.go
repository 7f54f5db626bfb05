// Package timertest provides a fake clock and a manually fired scheduler
// for driving sessiontimer.Timer deterministically in tests.
package timertest

import (
	"sync"
	"time"

	"github.com/vimeo/go-clocks/fake"

	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
)

// Epoch is the fake clock's starting time.
var Epoch = time.Date(2024, 11, 6, 9, 0, 0, 0, time.UTC)

// Scheduler records repeating tasks and runs them only when Fire is called.
type Scheduler struct {
	mu    sync.Mutex
	tasks []*Task
}

// Task is a recorded job.
type Task struct {
	mu        sync.Mutex
	fn        func()
	cancelled bool
}

func (t *Task) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
}

func (t *Task) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

// Run invokes the job once, cancelled or not.
func (t *Task) Run() { t.fn() }

func (s *Scheduler) Every(_ time.Duration, fn func()) sessiontimer.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := &Task{fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Active returns the tasks that have not been cancelled.
func (s *Scheduler) Active() []*Task {
	s.mu.Lock()
	tasks := make([]*Task, len(s.tasks))
	copy(tasks, s.tasks)
	s.mu.Unlock()

	var out []*Task
	for _, task := range tasks {
		if !task.Cancelled() {
			out = append(out, task)
		}
	}
	return out
}

// Fire runs every active task once.
func (s *Scheduler) Fire() {
	for _, task := range s.Active() {
		task.Run()
	}
}

// Driver pairs a fake clock with a manual scheduler.
type Driver struct {
	Clock     *fake.Clock
	Scheduler *Scheduler
}

func NewDriver() *Driver {
	return &Driver{
		Clock:     fake.NewClock(Epoch),
		Scheduler: &Scheduler{},
	}
}

// Options wires the driver into a timer.
func (d *Driver) Options() []sessiontimer.Option {
	return []sessiontimer.Option{
		sessiontimer.WithClock(d.Clock),
		sessiontimer.WithScheduler(d.Scheduler),
	}
}

// Run advances the clock by dur in tick-sized steps, firing after each step.
func (d *Driver) Run(dur time.Duration) {
	for step := time.Duration(0); step < dur; step += sessiontimer.DefaultTickInterval {
		d.Clock.Advance(sessiontimer.DefaultTickInterval)
		d.Scheduler.Fire()
	}
}

// Wait advances the clock without firing any tick.
func (d *Driver) Wait(dur time.Duration) {
	d.Clock.Advance(dur)
}
