package store

import (
	"context"
	"errors"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/domain/contest"
	"github.com/ichscheine/goAIME-sub001/internal/domain/performance"
	practicesession "github.com/ichscheine/goAIME-sub001/internal/domain/practice_session"
	"github.com/ichscheine/goAIME-sub001/internal/domain/user"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// Store is the persistence surface the services depend on.
type Store interface {
	SaveUser(ctx context.Context, p *user.Profile) error
	GetUserByUsername(ctx context.Context, username string) (*user.Profile, error)
	ListUsers(ctx context.Context) ([]*user.Profile, error)

	SaveContest(ctx context.Context, c *contest.Contest) error
	GetContest(ctx context.Context, id string) (*contest.Contest, error)
	ListContests(ctx context.Context) ([]*contest.Contest, error)
	AddProblem(ctx context.Context, contestID string, p contest.Problem) error

	SaveSession(ctx context.Context, s *practicesession.PracticeSession) error
	GetSession(ctx context.Context, id string) (*practicesession.PracticeSession, error)
	MarkSessionCompleted(ctx context.Context, id string, at time.Time) error
	MarkSessionExpired(ctx context.Context, id string, at time.Time) error

	SaveAttempt(ctx context.Context, sessionID string, a practicesession.Attempt) error
	GetAttempts(ctx context.Context, sessionID string) ([]practicesession.Attempt, error)

	SaveResult(ctx context.Context, r performance.SessionResult) error
	ListResultsByUser(ctx context.Context, username string) ([]performance.SessionResult, error)
}
