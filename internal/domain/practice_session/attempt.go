package practicesession

import (
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/domain/contest"
	"github.com/ichscheine/goAIME-sub001/internal/domain/performance"
)

// Attempt is a user's answer to one problem.
type Attempt struct {
	ProblemID  string
	Choice     string
	Correct    bool
	TimeSpent  time.Duration
	AnsweredAt time.Time
}

// Grade checks a choice against the problem's answer key.
func Grade(p contest.Problem, choice string, spent time.Duration) (Attempt, error) {
	normalized, ok := contest.NormalizeChoice(choice)
	if !ok {
		return Attempt{}, contest.ErrInvalidChoice
	}
	if spent < 0 {
		spent = 0
	}
	return Attempt{
		ProblemID:  p.ID,
		Choice:     normalized,
		Correct:    normalized == p.Answer,
		TimeSpent:  spent,
		AnsweredAt: time.Now().UTC(),
	}, nil
}

// Summarize builds the result record for a finished session. Attempts for
// problems outside the session are ignored; for repeated attempts the last one
// counts.
func Summarize(s *PracticeSession, contestName string, year int, attempts []Attempt, elapsed time.Duration, completedAt time.Time) performance.SessionResult {
	latest := make(map[string]Attempt, len(attempts))
	for _, a := range attempts {
		latest[a.ProblemID] = a
	}

	result := performance.SessionResult{
		SessionID:             s.ID,
		Username:              s.Username,
		ContestID:             s.ContestID,
		ContestName:           contestName,
		Year:                  year,
		Mode:                  string(s.Mode),
		TotalProblems:         len(s.Problems),
		TotalTime:             elapsed,
		CompletedAt:           completedAt,
		TopicPerformance:      map[string]performance.Tally{},
		DifficultyPerformance: map[string]performance.Tally{},
	}

	for _, p := range s.Problems {
		a, answered := latest[p.ID]
		if !answered {
			continue
		}

		result.Attempted++
		topic := result.TopicPerformance[p.Topic]
		diff := result.DifficultyPerformance[string(p.Difficulty)]
		topic.Attempted++
		diff.Attempted++
		if a.Correct {
			result.Score++
			topic.Correct++
			diff.Correct++
		}
		result.TopicPerformance[p.Topic] = topic
		result.DifficultyPerformance[string(p.Difficulty)] = diff
	}

	return result
}
