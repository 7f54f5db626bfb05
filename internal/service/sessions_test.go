package service_test

import (
	"errors"
	"testing"
	"time"

	practicesession "github.com/ichscheine/goAIME-sub001/internal/domain/practice_session"
	"github.com/ichscheine/goAIME-sub001/internal/service"
	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
	"github.com/ichscheine/goAIME-sub001/internal/store"
)

func timedConfig(limit time.Duration) practicesession.SessionConfig {
	return practicesession.SessionConfig{Mode: practicesession.ModeTimed, TimeLimit: &limit}
}

func TestStart_TimedSessionRunsCountdown(t *testing.T) {
	f := newFixture(t)

	session, snap, err := f.sessions.Start(f.ctx, service.StartRequest{
		Username:  "alice",
		ContestID: f.contest.ID,
		Config:    timedConfig(10 * time.Minute),
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if snap.Mode != sessiontimer.Countdown || !snap.Running {
		t.Errorf("expected running countdown, got %+v", snap)
	}
	if snap.Display() != "10:00" {
		t.Errorf("expected 10:00, got %q", snap.Display())
	}
	if len(session.Problems) != 3 {
		t.Errorf("expected 3 problems, got %d", len(session.Problems))
	}
}

func TestStart_PracticeSessionRunsStopwatch(t *testing.T) {
	f := newFixture(t)
	session := f.start(t, practicesession.DefaultConfig())

	snap, err := f.timers.Snapshot(f.ctx, session.ID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Mode != sessiontimer.Stopwatch || !snap.Running {
		t.Errorf("expected running stopwatch, got %+v", snap)
	}
}

func TestStart_Rejects(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.sessions.Start(f.ctx, service.StartRequest{Username: "bob", ContestID: f.contest.ID})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected unknown user to be not found, got %v", err)
	}

	_, _, err = f.sessions.Start(f.ctx, service.StartRequest{Username: "alice", ContestID: "missing"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected unknown contest to be not found, got %v", err)
	}
}

func TestAnswer_RecordsTimeSpentPerProblem(t *testing.T) {
	f := newFixture(t)
	session := f.start(t, practicesession.DefaultConfig())

	f.driver.Run(30 * time.Second)
	first, err := f.sessions.Answer(f.ctx, session.ID, session.Problems[0].ID, "b")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !first.Correct || first.Choice != "B" {
		t.Errorf("unexpected attempt %+v", first)
	}
	if first.TimeSpent != 30*time.Second {
		t.Errorf("expected 30s spent, got %v", first.TimeSpent)
	}

	f.driver.Run(45 * time.Second)
	second, err := f.sessions.Answer(f.ctx, session.ID, session.Problems[1].ID, "A")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if second.Correct {
		t.Error("expected wrong answer")
	}
	if second.TimeSpent != 45*time.Second {
		t.Errorf("expected 45s spent, got %v", second.TimeSpent)
	}
}

func TestAnswer_Rejects(t *testing.T) {
	f := newFixture(t)
	session := f.start(t, practicesession.DefaultConfig())
	problemID := session.Problems[0].ID

	if _, err := f.sessions.Answer(f.ctx, session.ID, "nope", "A"); !errors.Is(err, practicesession.ErrUnknownProblem) {
		t.Errorf("expected ErrUnknownProblem, got %v", err)
	}

	if _, err := f.sessions.Answer(f.ctx, session.ID, problemID, "A"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := f.sessions.Answer(f.ctx, session.ID, problemID, "B"); !errors.Is(err, service.ErrAlreadyAnswered) {
		t.Errorf("expected ErrAlreadyAnswered, got %v", err)
	}
}

func TestAnswer_AfterTimeExpires(t *testing.T) {
	f := newFixture(t)
	session := f.start(t, timedConfig(time.Minute))

	f.driver.Run(61 * time.Second)

	_, err := f.sessions.Answer(f.ctx, session.ID, session.Problems[0].ID, "B")
	if !errors.Is(err, service.ErrTimeExpired) {
		t.Errorf("expected ErrTimeExpired, got %v", err)
	}
}

func TestComplete_SummarisesAndReleasesTimer(t *testing.T) {
	f := newFixture(t)
	session := f.start(t, timedConfig(10*time.Minute))

	f.driver.Run(time.Minute)
	f.sessions.Answer(f.ctx, session.ID, session.Problems[0].ID, "B")
	f.driver.Run(2 * time.Minute)
	f.sessions.Answer(f.ctx, session.ID, session.Problems[2].ID, "A")
	f.driver.Run(time.Minute)

	result, err := f.sessions.Complete(f.ctx, session.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if result.Score != 1 || result.Attempted != 2 || result.TotalProblems != 3 {
		t.Errorf("unexpected result %+v", result)
	}
	if result.TotalTime != 4*time.Minute {
		t.Errorf("expected 4m total, got %v", result.TotalTime)
	}
	if f.timers.Live() != 0 {
		t.Errorf("expected timer released, got %d live", f.timers.Live())
	}

	stored, err := f.db.GetSession(f.ctx, session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !stored.IsCompleted() {
		t.Error("expected session marked completed")
	}

	if _, err := f.sessions.Complete(f.ctx, session.ID); !errors.Is(err, service.ErrSessionClosed) {
		t.Errorf("expected ErrSessionClosed, got %v", err)
	}
	if _, err := f.sessions.Answer(f.ctx, session.ID, session.Problems[1].ID, "D"); !errors.Is(err, service.ErrSessionClosed) {
		t.Errorf("expected ErrSessionClosed on answer, got %v", err)
	}
}

func TestProgressAndStats(t *testing.T) {
	f := newFixture(t)

	for _, choice := range []string{"B", "A"} {
		session := f.start(t, practicesession.DefaultConfig())
		f.driver.Run(10 * time.Second)
		f.sessions.Answer(f.ctx, session.ID, session.Problems[0].ID, choice)
		if _, err := f.sessions.Complete(f.ctx, session.ID); err != nil {
			t.Fatalf("complete: %v", err)
		}
	}

	progress, err := f.sessions.Progress(f.ctx, "alice")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if progress.Overall.TotalSessions != 2 {
		t.Errorf("expected 2 sessions, got %d", progress.Overall.TotalSessions)
	}

	stats, err := f.sessions.Stats(f.ctx, "alice")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.BestScore != 1 {
		t.Errorf("expected best score 1, got %d", stats.BestScore)
	}

	if _, err := f.sessions.Progress(f.ctx, "nobody"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAnswer_ResetAfterExpiryDoesNotReopen(t *testing.T) {
	f := newFixture(t)
	session := f.start(t, timedConfig(time.Second))
	problemID := session.Problems[0].ID

	f.driver.Run(2 * time.Second)

	if _, err := f.sessions.Answer(f.ctx, session.ID, problemID, "B"); !errors.Is(err, service.ErrTimeExpired) {
		t.Fatalf("expected ErrTimeExpired, got %v", err)
	}

	for _, action := range []service.Action{service.ActionReset, service.ActionStart} {
		if _, err := f.sessions.ControlTimer(f.ctx, session.ID, action); !errors.Is(err, service.ErrTimeExpired) {
			t.Errorf("expected %s to be rejected with ErrTimeExpired, got %v", action, err)
		}
	}

	// Even a reset applied straight to the timer leaves the session expired.
	if _, err := f.timers.Control(f.ctx, session.ID, service.ActionReset); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := f.sessions.Answer(f.ctx, session.ID, problemID, "B"); !errors.Is(err, service.ErrTimeExpired) {
		t.Errorf("expected ErrTimeExpired after reset, got %v", err)
	}

	stored, err := f.db.GetSession(f.ctx, session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !stored.IsExpired() {
		t.Error("expected expiry recorded on the session")
	}

	if _, err := f.sessions.Complete(f.ctx, session.ID); err != nil {
		t.Errorf("expected an expired session to still complete, got %v", err)
	}
}

func TestControlTimer_CompletedSessionStaysClosed(t *testing.T) {
	f := newFixture(t)
	session := f.start(t, timedConfig(time.Minute))

	f.driver.Run(5 * time.Second)
	if _, err := f.sessions.Complete(f.ctx, session.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	for _, action := range []service.Action{service.ActionStart, service.ActionReset, service.ActionPause} {
		if _, err := f.sessions.ControlTimer(f.ctx, session.ID, action); !errors.Is(err, service.ErrSessionClosed) {
			t.Errorf("expected %s to be rejected with ErrSessionClosed, got %v", action, err)
		}
	}

	if f.timers.Live() != 0 {
		t.Errorf("expected no live timers, got %d", f.timers.Live())
	}
	if n := len(f.driver.Scheduler.Active()); n != 0 {
		t.Errorf("expected no active tick tasks, got %d", n)
	}
}

func TestControlTimer_OpenSession(t *testing.T) {
	f := newFixture(t)
	session := f.start(t, timedConfig(time.Minute))

	f.driver.Run(10 * time.Second)
	snap, err := f.sessions.ControlTimer(f.ctx, session.ID, service.ActionPause)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if snap.Running || snap.Time != 50*time.Second {
		t.Errorf("unexpected snapshot %+v", snap)
	}

	snap, err = f.sessions.ControlTimer(f.ctx, session.ID, service.ActionStart)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !snap.Running {
		t.Error("expected timer running again")
	}

	if _, err := f.sessions.ControlTimer(f.ctx, "missing", service.ActionStart); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown session, got %v", err)
	}
}
