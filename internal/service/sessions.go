// internal/service/sessions.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/domain/performance"
	practicesession "github.com/ichscheine/goAIME-sub001/internal/domain/practice_session"
	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
	"github.com/ichscheine/goAIME-sub001/internal/store"
)

var (
	ErrEmptyContest    = errors.New("contest has no problems")
	ErrSessionClosed   = errors.New("session already completed")
	ErrTimeExpired     = errors.New("session time has expired")
	ErrAlreadyAnswered = errors.New("problem already answered")
)

// StartRequest contains everything needed to open a practice session.
type StartRequest struct {
	Username  string
	ContestID string
	Config    practicesession.SessionConfig
}

// SessionService runs practice sessions: it persists sessions and answers
// and drives each session's timer through the TimerService.
type SessionService struct {
	store  store.Store
	timers *TimerService
	logger *slog.Logger
	now    func() time.Time
}

// NewSessionService creates a SessionService and registers it for countdown
// expiry on timers.
func NewSessionService(s store.Store, timers *TimerService, logger *slog.Logger) *SessionService {
	ss := &SessionService{
		store:  s,
		timers: timers,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
	timers.OnExpire(ss.markExpired)
	return ss
}

// markExpired records a countdown running out on the session, so later timer
// actions cannot reopen it for answers.
func (ss *SessionService) markExpired(sessionID string) {
	if err := ss.store.MarkSessionExpired(context.Background(), sessionID, ss.now()); err != nil {
		ss.logger.Error("failed to mark session expired",
			"session_id", sessionID,
			"error", err,
		)
	}
}

// TimerMode maps a session mode onto the timer that tracks it.
func TimerMode(m practicesession.Mode) sessiontimer.Mode {
	if m == practicesession.ModeTimed {
		return sessiontimer.Countdown
	}
	return sessiontimer.Stopwatch
}

// Start creates the session, registers its timer and starts the clock.
func (ss *SessionService) Start(ctx context.Context, req StartRequest) (*practicesession.PracticeSession, sessiontimer.Snapshot, error) {
	if _, err := ss.store.GetUserByUsername(ctx, req.Username); err != nil {
		return nil, sessiontimer.Snapshot{}, fmt.Errorf("user %q: %w", req.Username, err)
	}

	c, err := ss.store.GetContest(ctx, req.ContestID)
	if err != nil {
		return nil, sessiontimer.Snapshot{}, fmt.Errorf("contest %q: %w", req.ContestID, err)
	}
	if len(c.Problems) == 0 {
		return nil, sessiontimer.Snapshot{}, ErrEmptyContest
	}

	session := practicesession.NewWithConfig(req.Username, c, req.Config)
	if err := ss.store.SaveSession(ctx, session); err != nil {
		return nil, sessiontimer.Snapshot{}, fmt.Errorf("save session: %w", err)
	}

	timer := ss.timers.Create(ctx, session.ID, TimerMode(session.Mode), session.TimeLimit)
	snap, err := ss.timers.Control(ctx, session.ID, ActionStart)
	if err != nil {
		return nil, sessiontimer.Snapshot{}, err
	}

	ss.logger.Info("session started",
		"session_id", session.ID,
		"username", session.Username,
		"mode", session.Mode,
		"problems", len(session.Problems),
		"timer", timer.Mode(),
	)
	return session, snap, nil
}

// Answer grades a choice. Time spent is the timer's elapsed time since the
// previous answer in the same session.
func (ss *SessionService) Answer(ctx context.Context, sessionID, problemID, choice string) (practicesession.Attempt, error) {
	session, err := ss.store.GetSession(ctx, sessionID)
	if err != nil {
		return practicesession.Attempt{}, err
	}
	if session.IsCompleted() {
		return practicesession.Attempt{}, ErrSessionClosed
	}
	if session.IsExpired() {
		return practicesession.Attempt{}, ErrTimeExpired
	}

	problem, ok := session.Problem(problemID)
	if !ok {
		return practicesession.Attempt{}, practicesession.ErrUnknownProblem
	}

	timer, err := ss.timers.Get(ctx, sessionID)
	if err != nil {
		return practicesession.Attempt{}, err
	}
	if timer.IsComplete() {
		return practicesession.Attempt{}, ErrTimeExpired
	}

	previous, err := ss.store.GetAttempts(ctx, sessionID)
	if err != nil {
		return practicesession.Attempt{}, err
	}
	var accounted time.Duration
	for _, a := range previous {
		accounted += a.TimeSpent
	}

	attempt, err := practicesession.Grade(problem, choice, timer.Elapsed()-accounted)
	if err != nil {
		return practicesession.Attempt{}, err
	}

	if err := ss.store.SaveAttempt(ctx, sessionID, attempt); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return practicesession.Attempt{}, ErrAlreadyAnswered
		}
		return practicesession.Attempt{}, err
	}

	ss.logger.Debug("answer recorded",
		"session_id", sessionID,
		"problem_id", problemID,
		"correct", attempt.Correct,
		"time_spent", attempt.TimeSpent,
	)
	return attempt, nil
}

// ControlTimer applies a timer action on behalf of a session. Completed
// sessions reject every action; once a timed session has expired, start and
// reset are rejected so the countdown cannot be reopened.
func (ss *SessionService) ControlTimer(ctx context.Context, sessionID string, action Action) (sessiontimer.Snapshot, error) {
	session, err := ss.store.GetSession(ctx, sessionID)
	if err != nil {
		return sessiontimer.Snapshot{}, err
	}
	if session.IsCompleted() {
		return sessiontimer.Snapshot{}, ErrSessionClosed
	}

	if action == ActionStart || action == ActionReset {
		expired := session.IsExpired()
		if !expired && session.Mode == practicesession.ModeTimed {
			snap, err := ss.timers.Snapshot(ctx, sessionID)
			if err != nil {
				return sessiontimer.Snapshot{}, err
			}
			expired = snap.Complete
		}
		if expired {
			return sessiontimer.Snapshot{}, ErrTimeExpired
		}
	}

	return ss.timers.Control(ctx, sessionID, action)
}

// Complete stops the clock, summarises the session and stores the result.
func (ss *SessionService) Complete(ctx context.Context, sessionID string) (performance.SessionResult, error) {
	session, err := ss.store.GetSession(ctx, sessionID)
	if err != nil {
		return performance.SessionResult{}, err
	}
	if session.IsCompleted() {
		return performance.SessionResult{}, ErrSessionClosed
	}

	completedAt := ss.now()
	elapsed := completedAt.Sub(session.StartedAt)
	if timer, err := ss.timers.Get(ctx, sessionID); err == nil {
		timer.Pause()
		elapsed = timer.Elapsed()
	} else if !errors.Is(err, ErrTimerNotFound) {
		return performance.SessionResult{}, err
	}

	attempts, err := ss.store.GetAttempts(ctx, sessionID)
	if err != nil {
		return performance.SessionResult{}, err
	}

	c, err := ss.store.GetContest(ctx, session.ContestID)
	if err != nil {
		return performance.SessionResult{}, fmt.Errorf("contest %q: %w", session.ContestID, err)
	}

	result := practicesession.Summarize(session, c.Name, c.Year, attempts, elapsed, completedAt)
	if err := ss.store.SaveResult(ctx, result); err != nil {
		return performance.SessionResult{}, fmt.Errorf("save result: %w", err)
	}
	if err := ss.store.MarkSessionCompleted(ctx, sessionID, completedAt); err != nil {
		return performance.SessionResult{}, fmt.Errorf("mark session completed: %w", err)
	}
	ss.timers.Release(ctx, sessionID)

	ss.logger.Info("session completed",
		"session_id", sessionID,
		"score", result.Score,
		"attempted", result.Attempted,
		"total_time", result.TotalTime,
	)
	return result, nil
}

// Progress aggregates every completed session of a user.
func (ss *SessionService) Progress(ctx context.Context, username string) (performance.Progress, error) {
	results, err := ss.results(ctx, username)
	if err != nil {
		return performance.Progress{}, err
	}
	return performance.Aggregate(results), nil
}

// Stats returns the session count and best score of a user.
func (ss *SessionService) Stats(ctx context.Context, username string) (performance.UserStats, error) {
	results, err := ss.results(ctx, username)
	if err != nil {
		return performance.UserStats{}, err
	}
	return performance.Stats(results), nil
}

func (ss *SessionService) results(ctx context.Context, username string) ([]performance.SessionResult, error) {
	if _, err := ss.store.GetUserByUsername(ctx, username); err != nil {
		return nil, err
	}
	return ss.store.ListResultsByUser(ctx, username)
}
