// Package sessiontimer implements the quiz session clock: a countdown or
// stopwatch whose displayed value is recomputed on a fixed tick.
package sessiontimer

import (
	"sync"
	"time"
)

// Mode selects how the timer counts.
type Mode string

const (
	Countdown Mode = "countdown"
	Stopwatch Mode = "stopwatch"
)

// DefaultTickInterval is how often a running timer recomputes its value.
const DefaultTickInterval = 100 * time.Millisecond

// ParseMode maps a user supplied string to a Mode. Anything unrecognised
// is reported as not ok.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case Countdown:
		return Countdown, true
	case Stopwatch:
		return Stopwatch, true
	}
	return "", false
}

// Timer tracks elapsed (stopwatch) or remaining (countdown) time.
//
// All methods are safe for concurrent use. None of them fail: calls that
// make no sense in the current state, such as Pause on a stopped timer,
// are no-ops.
type Timer struct {
	mode     Mode
	initial  time.Duration
	interval time.Duration
	clock    Clock
	sched    Scheduler

	onTick     func(Snapshot)
	onComplete func(Snapshot)

	mu       sync.Mutex
	value    time.Duration
	running  bool
	complete bool
	resume   time.Duration // stopwatch value to continue from
	baseline time.Time
	task     Task
	gen      uint64 // bumped whenever the active task is released
	closed   bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(t *Timer) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithScheduler overrides how the repeating tick is run.
func WithScheduler(s Scheduler) Option {
	return func(t *Timer) {
		if s != nil {
			t.sched = s
		}
	}
}

// WithInterval overrides the tick cadence.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// OnTick registers a callback invoked after every recomputation.
// It runs outside the timer lock, so it may call back into the timer.
func OnTick(fn func(Snapshot)) Option {
	return func(t *Timer) { t.onTick = fn }
}

// OnComplete registers a callback invoked once when a countdown reaches zero.
func OnComplete(fn func(Snapshot)) Option {
	return func(t *Timer) { t.onComplete = fn }
}

// New creates a stopped timer. An unknown mode falls back to Stopwatch and a
// negative initial time is treated as zero.
func New(mode Mode, initial time.Duration, opts ...Option) *Timer {
	if _, ok := ParseMode(string(mode)); !ok {
		mode = Stopwatch
	}
	if initial < 0 {
		initial = 0
	}
	t := &Timer{
		mode:     mode,
		initial:  initial,
		interval: DefaultTickInterval,
		clock:    SystemClock,
		sched:    TickerScheduler{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.value = t.zeroValue()
	return t
}

// Start begins or resumes counting. Calling Start on a running or closed
// timer does nothing.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running || t.closed {
		return
	}
	t.running = true
	t.complete = false

	now := t.clock.Now()
	if t.mode == Countdown {
		t.baseline = now.Add(-(t.initial - t.value))
	} else {
		t.baseline = now.Add(-t.resume)
	}

	gen := t.gen
	t.task = t.sched.Every(t.interval, func() { t.tick(gen) })
}

// Pause halts counting and keeps the displayed value for the next Start.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}
	t.halt()
	t.resume = t.value
}

// Stop halts counting and returns the value to its zero state: 0 for a
// stopwatch, the initial time for a countdown. Completion is preserved.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Reset is Stop followed by clearing completion.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.complete = false
}

// Close releases the tick task for good. Start is a no-op afterwards.
func (t *Timer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.halt()
	t.closed = true
}

func (t *Timer) stopLocked() {
	t.halt()
	t.resume = 0
	t.value = t.zeroValue()
}

// halt cancels the active task. Bumping gen makes any tick already in
// flight discard itself, so no update lands after halt returns.
func (t *Timer) halt() {
	if t.task != nil {
		t.task.Cancel()
		t.task = nil
	}
	t.gen++
	t.running = false
}

func (t *Timer) zeroValue() time.Duration {
	if t.mode == Countdown {
		return t.initial
	}
	return 0
}

func (t *Timer) tick(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || !t.running {
		t.mu.Unlock()
		return
	}

	elapsed := t.clock.Now().Sub(t.baseline)
	if elapsed < 0 {
		elapsed = 0
	}

	finished := false
	if t.mode == Countdown {
		remaining := t.initial - elapsed
		if remaining <= 0 {
			t.halt()
			t.resume = 0
			t.value = 0
			t.complete = true
			finished = true
		} else {
			t.value = remaining
		}
	} else {
		t.value = elapsed
	}

	snap := t.snapshotLocked()
	onTick, onComplete := t.onTick, t.onComplete
	t.mu.Unlock()

	if onTick != nil {
		onTick(snap)
	}
	if finished && onComplete != nil {
		onComplete(snap)
	}
}

// Mode reports the counting mode.
func (t *Timer) Mode() Mode { return t.mode }

// InitialTime reports the configured starting value.
func (t *Timer) InitialTime() time.Duration { return t.initial }

// Time returns the displayed value: elapsed for a stopwatch, remaining for
// a countdown.
func (t *Timer) Time() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

// Elapsed returns how much time has been counted regardless of mode.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mode == Countdown {
		return t.initial - t.value
	}
	return t.value
}

// IsRunning reports whether a tick task is active.
func (t *Timer) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// IsComplete reports whether a countdown has reached zero since the last
// Start or Reset.
func (t *Timer) IsComplete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.complete
}

// FormatDisplay renders the current value as mm:ss.
func (t *Timer) FormatDisplay() string {
	return Format(t.Time())
}

// Snapshot returns a copy of the timer state.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Timer) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:     t.mode,
		Initial:  t.initial,
		Time:     t.value,
		Running:  t.running,
		Complete: t.complete,
	}
}
