// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ichscheine/goAIME-sub001/internal/domain/contest"
	"github.com/ichscheine/goAIME-sub001/internal/domain/performance"
	practicesession "github.com/ichscheine/goAIME-sub001/internal/domain/practice_session"
	"github.com/ichscheine/goAIME-sub001/internal/domain/user"
)

// Times are stored as unix milliseconds, durations as milliseconds.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL,
    grade INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS contests (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    year INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS problems (
    id TEXT PRIMARY KEY,
    contest_id TEXT NOT NULL,
    number INTEGER NOT NULL,
    topic TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    statement TEXT NOT NULL,
    answer TEXT NOT NULL,
    FOREIGN KEY (contest_id) REFERENCES contests(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    contest_id TEXT NOT NULL,
    mode TEXT NOT NULL,
    time_limit_ms INTEGER NOT NULL DEFAULT 0,
    started_at INTEGER NOT NULL,
    FOREIGN KEY (contest_id) REFERENCES contests(id)
);

CREATE TABLE IF NOT EXISTS session_problems (
    session_id TEXT NOT NULL,
    problem_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (session_id, problem_id),
    FOREIGN KEY (session_id) REFERENCES sessions(id)
);

CREATE TABLE IF NOT EXISTS attempts (
    session_id TEXT NOT NULL,
    problem_id TEXT NOT NULL,
    choice TEXT NOT NULL,
    correct BOOLEAN NOT NULL,
    time_spent_ms INTEGER NOT NULL,
    answered_at INTEGER NOT NULL,
    PRIMARY KEY (session_id, problem_id),
    FOREIGN KEY (session_id) REFERENCES sessions(id)
);

CREATE TABLE IF NOT EXISTS results (
    session_id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    contest_id TEXT NOT NULL,
    contest_name TEXT NOT NULL,
    year INTEGER NOT NULL,
    mode TEXT NOT NULL,
    score INTEGER NOT NULL,
    attempted INTEGER NOT NULL,
    total_problems INTEGER NOT NULL,
    total_time_ms INTEGER NOT NULL,
    completed_at INTEGER NOT NULL,
    topic_performance TEXT NOT NULL,
    difficulty_performance TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_username ON results(username);
`

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens (or creates) the database at dbPath. Use ":memory:" for
// a throwaway database.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers; one connection also keeps ":memory:" shared.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// migrate brings databases created by older builds up to the current schema.
func migrate(db *sql.DB) error {
	if err := addColumnIfNotExists(db, "sessions", "completed_at", "INTEGER"); err != nil {
		return err
	}
	return addColumnIfNotExists(db, "sessions", "expired_at", "INTEGER")
}

func addColumnIfNotExists(db *sql.DB, table, column, definition string) error {
	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	_, err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
	return err
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func toMillis(t time.Time) int64 { return t.UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

// ============================================================================
// Users
// ============================================================================

func (s *SQLiteStore) SaveUser(ctx context.Context, p *user.Profile) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, email, grade, created_at) VALUES (?, ?, ?, ?, ?)",
		p.ID, p.Username, p.Email, p.Grade, toMillis(p.CreatedAt),
	)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*user.Profile, error) {
	var p user.Profile
	var created int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, grade, created_at FROM users WHERE username = ?", username,
	).Scan(&p.ID, &p.Username, &p.Email, &p.Grade, &created)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.CreatedAt = fromMillis(created)
	return &p, nil
}

func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*user.Profile, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, username, email, grade, created_at FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*user.Profile
	for rows.Next() {
		var p user.Profile
		var created int64
		if err := rows.Scan(&p.ID, &p.Username, &p.Email, &p.Grade, &created); err != nil {
			return nil, err
		}
		p.CreatedAt = fromMillis(created)
		users = append(users, &p)
	}
	return users, rows.Err()
}

// ============================================================================
// Contests
// ============================================================================

// SaveContest inserts the contest together with any problems it already has.
func (s *SQLiteStore) SaveContest(ctx context.Context, c *contest.Contest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO contests (id, name, year) VALUES (?, ?, ?)", c.ID, c.Name, c.Year,
	); err != nil {
		return err
	}

	for _, p := range c.Problems {
		if err := insertProblem(ctx, tx, c.ID, p); err != nil {
			return err
		}
	}

	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertProblem(ctx context.Context, ex execer, contestID string, p contest.Problem) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO problems (id, contest_id, number, topic, difficulty, statement, answer) VALUES (?, ?, ?, ?, ?, ?, ?)",
		p.ID, contestID, p.Number, p.Topic, string(p.Difficulty), p.Statement, p.Answer,
	)
	return err
}

func (s *SQLiteStore) GetContest(ctx context.Context, id string) (*contest.Contest, error) {
	var c contest.Contest
	err := s.db.QueryRowContext(ctx, "SELECT id, name, year FROM contests WHERE id = ?", id).Scan(&c.ID, &c.Name, &c.Year)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, number, topic, difficulty, statement, answer FROM problems WHERE contest_id = ? ORDER BY number",
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	c.Problems = []contest.Problem{}
	for rows.Next() {
		var p contest.Problem
		var difficulty string
		if err := rows.Scan(&p.ID, &p.Number, &p.Topic, &difficulty, &p.Statement, &p.Answer); err != nil {
			return nil, err
		}
		p.Difficulty = contest.Difficulty(difficulty)
		c.Problems = append(c.Problems, p)
	}
	return &c, rows.Err()
}

// ListContests returns contests without their problems.
func (s *SQLiteStore) ListContests(ctx context.Context) ([]*contest.Contest, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, year FROM contests ORDER BY year DESC, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contests []*contest.Contest
	for rows.Next() {
		var c contest.Contest
		if err := rows.Scan(&c.ID, &c.Name, &c.Year); err != nil {
			return nil, err
		}
		contests = append(contests, &c)
	}
	return contests, rows.Err()
}

func (s *SQLiteStore) AddProblem(ctx context.Context, contestID string, p contest.Problem) error {
	return insertProblem(ctx, s.db, contestID, p)
}

// ============================================================================
// Sessions
// ============================================================================

func (s *SQLiteStore) SaveSession(ctx context.Context, session *practicesession.PracticeSession) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO sessions (id, username, contest_id, mode, time_limit_ms, started_at) VALUES (?, ?, ?, ?, ?, ?)",
		session.ID, session.Username, session.ContestID, string(session.Mode),
		session.TimeLimit.Milliseconds(), toMillis(session.StartedAt),
	)
	if err != nil {
		return err
	}

	for i, p := range session.Problems {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO session_problems (session_id, problem_id, position) VALUES (?, ?, ?)",
			session.ID, p.ID, i,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*practicesession.PracticeSession, error) {
	var session practicesession.PracticeSession
	var mode string
	var limitMs, started int64
	var completed, expired sql.NullInt64

	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, contest_id, mode, time_limit_ms, started_at, completed_at, expired_at FROM sessions WHERE id = ?", id,
	).Scan(&session.ID, &session.Username, &session.ContestID, &mode, &limitMs, &started, &completed, &expired)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	session.Mode = practicesession.Mode(mode)
	session.TimeLimit = time.Duration(limitMs) * time.Millisecond
	session.StartedAt = fromMillis(started)
	if completed.Valid {
		at := fromMillis(completed.Int64)
		session.CompletedAt = &at
	}
	if expired.Valid {
		at := fromMillis(expired.Int64)
		session.ExpiredAt = &at
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.number, p.topic, p.difficulty, p.statement, p.answer
		FROM session_problems sp
		JOIN problems p ON p.id = sp.problem_id
		WHERE sp.session_id = ?
		ORDER BY sp.position`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p contest.Problem
		var difficulty string
		if err := rows.Scan(&p.ID, &p.Number, &p.Topic, &difficulty, &p.Statement, &p.Answer); err != nil {
			return nil, err
		}
		p.Difficulty = contest.Difficulty(difficulty)
		session.Problems = append(session.Problems, p)
	}

	return &session, rows.Err()
}

func (s *SQLiteStore) MarkSessionCompleted(ctx context.Context, id string, at time.Time) error {
	result, err := s.db.ExecContext(ctx, "UPDATE sessions SET completed_at = ? WHERE id = ?", toMillis(at), id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkSessionExpired records when the session's countdown ran out. The first
// recorded time is kept.
func (s *SQLiteStore) MarkSessionExpired(ctx context.Context, id string, at time.Time) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE sessions SET expired_at = COALESCE(expired_at, ?) WHERE id = ?", toMillis(at), id,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================================
// Attempts
// ============================================================================

// SaveAttempt records an answer. A second answer to the same problem in the
// same session returns ErrConflict.
func (s *SQLiteStore) SaveAttempt(ctx context.Context, sessionID string, a practicesession.Attempt) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO attempts (session_id, problem_id, choice, correct, time_spent_ms, answered_at) VALUES (?, ?, ?, ?, ?, ?)",
		sessionID, a.ProblemID, a.Choice, a.Correct, a.TimeSpent.Milliseconds(), toMillis(a.AnsweredAt),
	)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (s *SQLiteStore) GetAttempts(ctx context.Context, sessionID string) ([]practicesession.Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT problem_id, choice, correct, time_spent_ms, answered_at FROM attempts WHERE session_id = ? ORDER BY answered_at",
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []practicesession.Attempt
	for rows.Next() {
		var a practicesession.Attempt
		var spentMs, answered int64
		if err := rows.Scan(&a.ProblemID, &a.Choice, &a.Correct, &spentMs, &answered); err != nil {
			return nil, err
		}
		a.TimeSpent = time.Duration(spentMs) * time.Millisecond
		a.AnsweredAt = fromMillis(answered)
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// ============================================================================
// Results
// ============================================================================

func (s *SQLiteStore) SaveResult(ctx context.Context, r performance.SessionResult) error {
	topicJSON, err := json.Marshal(r.TopicPerformance)
	if err != nil {
		return fmt.Errorf("encode topic performance: %w", err)
	}
	diffJSON, err := json.Marshal(r.DifficultyPerformance)
	if err != nil {
		return fmt.Errorf("encode difficulty performance: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO results (session_id, username, contest_id, contest_name, year, mode, score, attempted,
		                     total_problems, total_time_ms, completed_at, topic_performance, difficulty_performance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Username, r.ContestID, r.ContestName, r.Year, r.Mode, r.Score, r.Attempted,
		r.TotalProblems, r.TotalTime.Milliseconds(), toMillis(r.CompletedAt), string(topicJSON), string(diffJSON),
	)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

// ListResultsByUser returns a user's results, newest first.
func (s *SQLiteStore) ListResultsByUser(ctx context.Context, username string) ([]performance.SessionResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, username, contest_id, contest_name, year, mode, score, attempted,
		       total_problems, total_time_ms, completed_at, topic_performance, difficulty_performance
		FROM results WHERE username = ? ORDER BY completed_at DESC`,
		username,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []performance.SessionResult
	for rows.Next() {
		var r performance.SessionResult
		var totalMs, completed int64
		var topicJSON, diffJSON string
		if err := rows.Scan(
			&r.SessionID, &r.Username, &r.ContestID, &r.ContestName, &r.Year, &r.Mode, &r.Score, &r.Attempted,
			&r.TotalProblems, &totalMs, &completed, &topicJSON, &diffJSON,
		); err != nil {
			return nil, err
		}
		r.TotalTime = time.Duration(totalMs) * time.Millisecond
		r.CompletedAt = fromMillis(completed)
		if err := json.Unmarshal([]byte(topicJSON), &r.TopicPerformance); err != nil {
			return nil, fmt.Errorf("decode topic performance for %s: %w", r.SessionID, err)
		}
		if err := json.Unmarshal([]byte(diffJSON), &r.DifficultyPerformance); err != nil {
			return nil, fmt.Errorf("decode difficulty performance for %s: %w", r.SessionID, err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
