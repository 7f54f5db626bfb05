package practicesession

import (
	"errors"
	"math/rand"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/domain/contest"
	"github.com/ichscheine/goAIME-sub001/internal/id"
)

var ErrUnknownProblem = errors.New("problem is not part of this session")

type Mode string

const (
	ModeTimed    Mode = "timed"    // counts down from the time limit
	ModePractice Mode = "practice" // counts up with no limit
)

// DefaultTimeLimit matches the AMC 10/12 allotment.
const DefaultTimeLimit = 75 * time.Minute

// ParseMode maps request input to a Mode; empty input means practice.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case "", ModePractice:
		return ModePractice, true
	case ModeTimed:
		return ModeTimed, true
	}
	return "", false
}

// PracticeSession is one sitting of a user against a contest.
type PracticeSession struct {
	ID          string
	Username    string
	ContestID   string
	Mode        Mode
	TimeLimit   time.Duration // zero for practice sessions
	Problems    []contest.Problem
	StartedAt   time.Time
	CompletedAt *time.Time
	ExpiredAt   *time.Time // set once when a timed session's countdown runs out
}

// New creates a practice-mode session over every problem in the contest.
func New(username string, c *contest.Contest) *PracticeSession {
	return NewWithConfig(username, c, DefaultConfig())
}

// NewWithConfig creates a session with the given configuration. Problems keep
// contest order unless Shuffle is set. If MaxProblems is set and less than the
// total available, only that many problems are included.
func NewWithConfig(username string, c *contest.Contest, config SessionConfig) *PracticeSession {
	problems := make([]contest.Problem, len(c.Problems))
	copy(problems, c.Problems)

	if config.Shuffle {
		rand.Shuffle(len(problems), func(i, j int) {
			problems[i], problems[j] = problems[j], problems[i]
		})
	}

	if config.MaxProblems != nil && *config.MaxProblems > 0 && *config.MaxProblems < len(problems) {
		problems = problems[:*config.MaxProblems]
	}

	mode, ok := ParseMode(string(config.Mode))
	if !ok {
		mode = ModePractice
	}

	var limit time.Duration
	if mode == ModeTimed {
		limit = DefaultTimeLimit
		if config.TimeLimit != nil && *config.TimeLimit > 0 {
			limit = *config.TimeLimit
		}
	}

	return &PracticeSession{
		ID:        id.GenerateID(),
		Username:  username,
		ContestID: c.ID,
		Mode:      mode,
		TimeLimit: limit,
		Problems:  problems,
		StartedAt: time.Now().UTC(),
	}
}

// Problem looks up a problem included in the session.
func (s *PracticeSession) Problem(problemID string) (contest.Problem, bool) {
	for _, p := range s.Problems {
		if p.ID == problemID {
			return p, true
		}
	}
	return contest.Problem{}, false
}

// IsCompleted reports whether the session has been finalised.
func (s *PracticeSession) IsCompleted() bool {
	return s.CompletedAt != nil
}

// IsExpired reports whether the session's countdown has ever run out.
func (s *PracticeSession) IsExpired() bool {
	return s.ExpiredAt != nil
}
