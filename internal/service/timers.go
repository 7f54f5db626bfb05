package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
)

var (
	ErrTimerNotFound = errors.New("timer not found")
	ErrUnknownAction = errors.New("unknown timer action")
)

// Action is a timer control verb accepted from clients.
type Action string

const (
	ActionStart Action = "start"
	ActionPause Action = "pause"
	ActionStop  Action = "stop"
	ActionReset Action = "reset"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionStart, ActionPause, ActionStop, ActionReset:
		return a, nil
	}
	return "", ErrUnknownAction
}

// TimerService owns one session timer per practice session. Snapshots are
// written through to storage after every control action so a paused timer
// can be restored after a restart.
type TimerService struct {
	storage sessiontimer.Storage
	logger  *slog.Logger
	opts    []sessiontimer.Option

	mu       sync.Mutex
	timers   map[string]*sessiontimer.Timer // sessionID → timer
	onExpire func(sessionID string)
}

// NewTimerService creates a TimerService. opts are applied to every timer it
// creates or restores.
func NewTimerService(storage sessiontimer.Storage, logger *slog.Logger, opts ...sessiontimer.Option) *TimerService {
	return &TimerService{
		storage: storage,
		logger:  logger,
		opts:    opts,
		timers:  make(map[string]*sessiontimer.Timer),
	}
}

// OnExpire registers fn to run whenever a session's countdown reaches zero.
func (ts *TimerService) OnExpire(fn func(sessionID string)) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.onExpire = fn
}

func (ts *TimerService) options(sessionID string) []sessiontimer.Option {
	opts := make([]sessiontimer.Option, 0, len(ts.opts)+1)
	opts = append(opts, ts.opts...)
	return append(opts, sessiontimer.OnComplete(func(snap sessiontimer.Snapshot) {
		ts.logger.Info("countdown expired", "session_id", sessionID)
		ts.persist(context.Background(), sessionID, snap)

		ts.mu.Lock()
		onExpire := ts.onExpire
		ts.mu.Unlock()
		if onExpire != nil {
			onExpire(sessionID)
		}
	}))
}

// Create registers a fresh stopped timer for the session, replacing (and
// disposing) any previous one.
func (ts *TimerService) Create(ctx context.Context, sessionID string, mode sessiontimer.Mode, initial time.Duration) *sessiontimer.Timer {
	t := sessiontimer.New(mode, initial, ts.options(sessionID)...)

	ts.mu.Lock()
	if old, ok := ts.timers[sessionID]; ok {
		old.Close()
	}
	ts.timers[sessionID] = t
	ts.mu.Unlock()

	ts.persist(ctx, sessionID, t.Snapshot())
	return t
}

// Get returns the live timer for a session, restoring it from storage if it
// is not in memory. Restored timers come back paused.
func (ts *TimerService) Get(ctx context.Context, sessionID string) (*sessiontimer.Timer, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if t, ok := ts.timers[sessionID]; ok {
		return t, nil
	}

	snap, err := ts.storage.Load(ctx, sessionID)
	if errors.Is(err, sessiontimer.ErrNoSnapshot) {
		return nil, ErrTimerNotFound
	}
	if err != nil {
		return nil, err
	}

	t := sessiontimer.Restore(snap, ts.options(sessionID)...)
	ts.timers[sessionID] = t
	ts.logger.Debug("timer restored", "session_id", sessionID, "time", snap.Time)
	return t, nil
}

// Control applies an action and returns the resulting state.
func (ts *TimerService) Control(ctx context.Context, sessionID string, action Action) (sessiontimer.Snapshot, error) {
	t, err := ts.Get(ctx, sessionID)
	if err != nil {
		return sessiontimer.Snapshot{}, err
	}

	switch action {
	case ActionStart:
		t.Start()
	case ActionPause:
		t.Pause()
	case ActionStop:
		t.Stop()
	case ActionReset:
		t.Reset()
	default:
		return sessiontimer.Snapshot{}, ErrUnknownAction
	}

	snap := t.Snapshot()
	ts.persist(ctx, sessionID, snap)
	return snap, nil
}

// Snapshot returns the current state of a session's timer.
func (ts *TimerService) Snapshot(ctx context.Context, sessionID string) (sessiontimer.Snapshot, error) {
	t, err := ts.Get(ctx, sessionID)
	if err != nil {
		return sessiontimer.Snapshot{}, err
	}
	return t.Snapshot(), nil
}

// Release disposes of a session's timer and deletes its snapshot, so the
// timer cannot be restored afterwards.
func (ts *TimerService) Release(ctx context.Context, sessionID string) {
	ts.mu.Lock()
	t, ok := ts.timers[sessionID]
	delete(ts.timers, sessionID)
	ts.mu.Unlock()

	if ok {
		t.Close()
	}
	if err := ts.storage.Delete(ctx, sessionID); err != nil {
		ts.logger.Error("failed to delete timer snapshot",
			"session_id", sessionID,
			"error", err,
		)
	}
}

// Close disposes of every live timer. Snapshots are saved first, so running
// timers resume paused on the next start.
func (ts *TimerService) Close(ctx context.Context) {
	ts.mu.Lock()
	timers := ts.timers
	ts.timers = make(map[string]*sessiontimer.Timer)
	ts.mu.Unlock()

	for sessionID, t := range timers {
		t.Pause()
		ts.persist(ctx, sessionID, t.Snapshot())
		t.Close()
	}
	ts.logger.Info("timers released", "count", len(timers))
}

// Live reports how many timers are held in memory.
func (ts *TimerService) Live() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.timers)
}

func (ts *TimerService) persist(ctx context.Context, sessionID string, snap sessiontimer.Snapshot) {
	if err := ts.storage.Save(ctx, sessionID, snap); err != nil {
		ts.logger.Error("failed to save timer snapshot",
			"session_id", sessionID,
			"error", err,
		)
	}
}
