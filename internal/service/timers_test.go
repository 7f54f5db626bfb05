package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/service"
	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
)

func TestTimerService_ControlPersistsSnapshot(t *testing.T) {
	f := newFixture(t)
	f.timers.Create(f.ctx, "s1", sessiontimer.Countdown, time.Minute)

	if _, err := f.timers.Control(f.ctx, "s1", service.ActionStart); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.driver.Run(10 * time.Second)

	snap, err := f.timers.Control(f.ctx, "s1", service.ActionPause)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if snap.Time != 50*time.Second || snap.Running {
		t.Errorf("unexpected snapshot %+v", snap)
	}

	stored, err := f.timerDB.Load(f.ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored != snap {
		t.Errorf("expected stored %+v, got %+v", snap, stored)
	}
}

func TestTimerService_UnknownSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.timers.Control(f.ctx, "missing", service.ActionStart)
	if !errors.Is(err, service.ErrTimerNotFound) {
		t.Errorf("expected ErrTimerNotFound, got %v", err)
	}
}

func TestTimerService_UnknownAction(t *testing.T) {
	f := newFixture(t)
	f.timers.Create(f.ctx, "s1", sessiontimer.Stopwatch, 0)

	_, err := f.timers.Control(f.ctx, "s1", service.Action("lap"))
	if !errors.Is(err, service.ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestTimerService_CreateReplacesTimer(t *testing.T) {
	f := newFixture(t)
	first := f.timers.Create(f.ctx, "s1", sessiontimer.Stopwatch, 0)
	first.Start()

	f.timers.Create(f.ctx, "s1", sessiontimer.Stopwatch, 0)

	if first.IsRunning() {
		t.Error("expected replaced timer to be disposed")
	}
	if f.timers.Live() != 1 {
		t.Errorf("expected 1 live timer, got %d", f.timers.Live())
	}
}

func TestTimerService_RestoresAfterClose(t *testing.T) {
	f := newFixture(t)
	f.timers.Create(f.ctx, "s1", sessiontimer.Stopwatch, 0)
	f.timers.Control(f.ctx, "s1", service.ActionStart)
	f.driver.Run(3 * time.Second)

	f.timers.Close(f.ctx)
	if f.timers.Live() != 0 {
		t.Fatalf("expected no live timers after close, got %d", f.timers.Live())
	}

	snap, err := f.timers.Snapshot(f.ctx, "s1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Running {
		t.Error("expected restored timer to be paused")
	}
	if snap.Time != 3*time.Second {
		t.Errorf("expected 3s, got %v", snap.Time)
	}
	if f.timers.Live() != 1 {
		t.Errorf("expected restored timer to be live, got %d", f.timers.Live())
	}
}

func TestTimerService_ExpiryIsPersisted(t *testing.T) {
	f := newFixture(t)
	f.timers.Create(f.ctx, "s1", sessiontimer.Countdown, time.Second)
	f.timers.Control(f.ctx, "s1", service.ActionStart)

	f.driver.Run(2 * time.Second)

	stored, err := f.timerDB.Load(f.ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !stored.Complete || stored.Time != 0 {
		t.Errorf("expected completed snapshot, got %+v", stored)
	}
}

func TestTimerService_Release(t *testing.T) {
	f := newFixture(t)
	f.timers.Create(f.ctx, "s1", sessiontimer.Stopwatch, 0)
	f.timers.Control(f.ctx, "s1", service.ActionStart)
	f.driver.Run(time.Second)

	f.timers.Release(f.ctx, "s1")

	if f.timers.Live() != 0 {
		t.Errorf("expected timer released, got %d live", f.timers.Live())
	}
	if n := len(f.driver.Scheduler.Active()); n != 0 {
		t.Errorf("expected tick task cancelled, got %d", n)
	}
	if _, err := f.timerDB.Load(f.ctx, "s1"); !errors.Is(err, sessiontimer.ErrNoSnapshot) {
		t.Errorf("expected snapshot deleted, got %v", err)
	}

	// A released timer cannot be restored and restarted.
	if _, err := f.timers.Control(f.ctx, "s1", service.ActionStart); !errors.Is(err, service.ErrTimerNotFound) {
		t.Errorf("expected ErrTimerNotFound, got %v", err)
	}
	if f.timers.Live() != 0 {
		t.Errorf("expected no live timers, got %d", f.timers.Live())
	}
}

func TestTimerService_OnExpire(t *testing.T) {
	f := newFixture(t)
	var expired []string
	f.timers.OnExpire(func(sessionID string) { expired = append(expired, sessionID) })

	f.timers.Create(f.ctx, "s1", sessiontimer.Countdown, time.Second)
	f.timers.Control(f.ctx, "s1", service.ActionStart)
	f.driver.Run(3 * time.Second)

	if len(expired) != 1 || expired[0] != "s1" {
		t.Errorf("expected one expiry for s1, got %v", expired)
	}
}
