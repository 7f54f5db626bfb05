package practicesession

import "time"

// SessionConfig holds optional constraints for a practice session.
type SessionConfig struct {
	Mode        Mode           // timed or practice
	MaxProblems *int           // nil = every problem in the contest
	TimeLimit   *time.Duration // nil = DefaultTimeLimit for timed sessions
	Shuffle     bool           // false = keep contest order
}

// DefaultConfig returns an untimed, unshuffled config over the full contest.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		Mode:        ModePractice,
		MaxProblems: nil,
		TimeLimit:   nil,
		Shuffle:     false,
	}
}
