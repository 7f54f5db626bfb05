package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/domain/contest"
	"github.com/ichscheine/goAIME-sub001/internal/domain/performance"
	practicesession "github.com/ichscheine/goAIME-sub001/internal/domain/practice_session"
	"github.com/ichscheine/goAIME-sub001/internal/domain/user"
	"github.com/ichscheine/goAIME-sub001/internal/store"
)

func newSQLite(t *testing.T) *store.SQLiteStore {
	t.Helper()
	db, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedContest(t *testing.T, db *store.SQLiteStore, n int) *contest.Contest {
	t.Helper()
	c, _ := contest.New("AMC 10B", 2023)
	for i := 0; i < n; i++ {
		if _, err := c.AddProblem("Problem", "A", "Algebra", ""); err != nil {
			t.Fatalf("add problem: %v", err)
		}
	}
	if err := db.SaveContest(context.Background(), c); err != nil {
		t.Fatalf("save contest: %v", err)
	}
	return c
}

func TestSQLite_Users(t *testing.T) {
	db := newSQLite(t)
	ctx := context.Background()

	p, _ := user.New("goamy", "amy@example.com", 10)
	if err := db.SaveUser(ctx, p); err != nil {
		t.Fatalf("save user: %v", err)
	}

	dup, _ := user.New("goamy", "other@example.com", 9)
	if err := db.SaveUser(ctx, dup); !errors.Is(err, store.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate username, got %v", err)
	}

	got, err := db.GetUserByUsername(ctx, "goamy")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.ID != p.ID || got.Grade != 10 {
		t.Errorf("unexpected profile %+v", got)
	}

	if _, err := db.GetUserByUsername(ctx, "ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	users, err := db.ListUsers(ctx)
	if err != nil || len(users) != 1 {
		t.Errorf("expected one user, got %d (%v)", len(users), err)
	}
}

func TestSQLite_Contests(t *testing.T) {
	db := newSQLite(t)
	ctx := context.Background()
	c := seedContest(t, db, 3)

	extra, _ := c.AddProblem("Late addition", "E", "Geometry", contest.DifficultyHard)
	if err := db.AddProblem(ctx, c.ID, extra); err != nil {
		t.Fatalf("add problem: %v", err)
	}

	got, err := db.GetContest(ctx, c.ID)
	if err != nil {
		t.Fatalf("get contest: %v", err)
	}
	if len(got.Problems) != 4 {
		t.Fatalf("expected 4 problems, got %d", len(got.Problems))
	}
	if last := got.Problems[3]; last.Number != 4 || last.Difficulty != contest.DifficultyHard || last.Answer != "E" {
		t.Errorf("unexpected last problem %+v", last)
	}

	list, err := db.ListContests(ctx)
	if err != nil || len(list) != 1 {
		t.Errorf("expected one contest, got %d (%v)", len(list), err)
	}

	if _, err := db.GetContest(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLite_SessionsAndAttempts(t *testing.T) {
	db := newSQLite(t)
	ctx := context.Background()
	c := seedContest(t, db, 5)

	maxP := 3
	session := practicesession.NewWithConfig("goamy", c, practicesession.SessionConfig{
		Mode:        practicesession.ModeTimed,
		MaxProblems: &maxP,
	})
	if err := db.SaveSession(ctx, session); err != nil {
		t.Fatalf("save session: %v", err)
	}

	got, err := db.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if len(got.Problems) != 3 || got.Problems[0].ID != session.Problems[0].ID {
		t.Errorf("expected session problems in order, got %+v", got.Problems)
	}
	if got.Mode != practicesession.ModeTimed || got.TimeLimit != practicesession.DefaultTimeLimit {
		t.Errorf("unexpected mode/limit %q %v", got.Mode, got.TimeLimit)
	}
	if got.IsCompleted() {
		t.Error("expected new session to be open")
	}

	a, _ := practicesession.Grade(session.Problems[0], "A", 1500*time.Millisecond)
	if err := db.SaveAttempt(ctx, session.ID, a); err != nil {
		t.Fatalf("save attempt: %v", err)
	}
	if err := db.SaveAttempt(ctx, session.ID, a); !errors.Is(err, store.ErrConflict) {
		t.Errorf("expected ErrConflict for repeated answer, got %v", err)
	}

	attempts, err := db.GetAttempts(ctx, session.ID)
	if err != nil {
		t.Fatalf("get attempts: %v", err)
	}
	if len(attempts) != 1 || !attempts[0].Correct || attempts[0].TimeSpent != 1500*time.Millisecond {
		t.Errorf("unexpected attempts %+v", attempts)
	}

	done := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	if err := db.MarkSessionCompleted(ctx, session.ID, done); err != nil {
		t.Fatalf("mark completed: %v", err)
	}
	got, _ = db.GetSession(ctx, session.ID)
	if !got.IsCompleted() || !got.CompletedAt.Equal(done) {
		t.Errorf("expected completion at %v, got %v", done, got.CompletedAt)
	}

	if err := db.MarkSessionCompleted(ctx, "missing", done); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLite_SessionExpiryKeepsFirstTime(t *testing.T) {
	db := newSQLite(t)
	ctx := context.Background()
	c := seedContest(t, db, 2)

	session := practicesession.New("goamy", c)
	if err := db.SaveSession(ctx, session); err != nil {
		t.Fatalf("save session: %v", err)
	}

	first := time.Date(2024, 6, 1, 9, 15, 0, 0, time.UTC)
	if err := db.MarkSessionExpired(ctx, session.ID, first); err != nil {
		t.Fatalf("mark expired: %v", err)
	}
	if err := db.MarkSessionExpired(ctx, session.ID, first.Add(time.Hour)); err != nil {
		t.Fatalf("mark expired again: %v", err)
	}

	got, err := db.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !got.IsExpired() || !got.ExpiredAt.Equal(first) {
		t.Errorf("expected expiry at %v, got %v", first, got.ExpiredAt)
	}

	if err := db.MarkSessionExpired(ctx, "missing", first); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLite_Results(t *testing.T) {
	db := newSQLite(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	for i, score := range []int{10, 15} {
		r := performance.SessionResult{
			SessionID:     string(rune('a' + i)),
			Username:      "goamy",
			ContestID:     "c1",
			ContestName:   "AMC 10A",
			Year:          2022,
			Mode:          "timed",
			Score:         score,
			Attempted:     20,
			TotalProblems: 25,
			TotalTime:     40 * time.Minute,
			CompletedAt:   base.Add(time.Duration(i) * time.Hour),
			TopicPerformance: map[string]performance.Tally{
				"Algebra": {Attempted: 20, Correct: score},
			},
			DifficultyPerformance: map[string]performance.Tally{},
		}
		if err := db.SaveResult(ctx, r); err != nil {
			t.Fatalf("save result: %v", err)
		}
	}

	results, err := db.ListResultsByUser(ctx, "goamy")
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Score != 15 {
		t.Errorf("expected newest first, got score %d", results[0].Score)
	}
	if results[0].TopicPerformance["Algebra"].Correct != 15 {
		t.Errorf("expected topic performance to round-trip, got %+v", results[0].TopicPerformance)
	}
	if results[1].TotalTime != 40*time.Minute {
		t.Errorf("expected 40m, got %v", results[1].TotalTime)
	}

	other, err := db.ListResultsByUser(ctx, "nobody")
	if err != nil || len(other) != 0 {
		t.Errorf("expected no results, got %d (%v)", len(other), err)
	}
}
