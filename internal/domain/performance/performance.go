package performance

import (
	"fmt"
	"sort"
	"time"
)

// RecentSessionLimit caps how many sessions Progress lists.
const RecentSessionLimit = 5

// Tally counts attempts and correct answers for one topic or difficulty.
type Tally struct {
	Attempted int
	Correct   int
}

// Accuracy is the percentage of attempted problems answered correctly.
func (t Tally) Accuracy() float64 {
	if t.Attempted == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Attempted) * 100
}

func (t Tally) add(o Tally) Tally {
	return Tally{Attempted: t.Attempted + o.Attempted, Correct: t.Correct + o.Correct}
}

// SessionResult is the persisted outcome of a completed practice session.
type SessionResult struct {
	SessionID             string
	Username              string
	ContestID             string
	ContestName           string
	Year                  int
	Mode                  string
	Score                 int // correct answers
	Attempted             int
	TotalProblems         int
	TotalTime             time.Duration
	CompletedAt           time.Time
	TopicPerformance      map[string]Tally
	DifficultyPerformance map[string]Tally
}

// Accuracy is score over attempted, as a percentage.
func (r SessionResult) Accuracy() float64 {
	return Tally{Attempted: r.Attempted, Correct: r.Score}.Accuracy()
}

// AverageTimePerProblem spreads the session time over attempted problems.
func (r SessionResult) AverageTimePerProblem() time.Duration {
	if r.Attempted == 0 {
		return 0
	}
	return r.TotalTime / time.Duration(r.Attempted)
}

// Overall aggregates every session of a user.
type Overall struct {
	TotalSessions      int
	TotalProblems      int
	TotalCorrect       int
	AccuracyPercentage float64
	AverageScore       float64
	AverageTime        time.Duration // per attempted problem
}

// Progress is the dashboard view of a user's history.
type Progress struct {
	TopicPerformance      map[string]Tally
	DifficultyPerformance map[string]Tally
	Overall               Overall
	RecentSessions        []SessionResult
}

// Aggregate folds session results into a Progress. Results may be in any
// order; RecentSessions is newest first.
func Aggregate(results []SessionResult) Progress {
	progress := Progress{
		TopicPerformance:      map[string]Tally{},
		DifficultyPerformance: map[string]Tally{},
		RecentSessions:        []SessionResult{},
	}
	if len(results) == 0 {
		return progress
	}

	sorted := make([]SessionResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})

	var totalTime time.Duration
	var totalScore int
	for _, r := range sorted {
		for topic, t := range r.TopicPerformance {
			progress.TopicPerformance[topic] = progress.TopicPerformance[topic].add(t)
		}
		for diff, t := range r.DifficultyPerformance {
			progress.DifficultyPerformance[diff] = progress.DifficultyPerformance[diff].add(t)
		}
		progress.Overall.TotalProblems += r.Attempted
		progress.Overall.TotalCorrect += r.Score
		totalScore += r.Score
		totalTime += r.TotalTime

		if len(progress.RecentSessions) < RecentSessionLimit {
			progress.RecentSessions = append(progress.RecentSessions, r)
		}
	}

	o := &progress.Overall
	o.TotalSessions = len(sorted)
	o.AccuracyPercentage = Tally{Attempted: o.TotalProblems, Correct: o.TotalCorrect}.Accuracy()
	o.AverageScore = float64(totalScore) / float64(len(sorted))
	if o.TotalProblems > 0 {
		o.AverageTime = totalTime / time.Duration(o.TotalProblems)
	}
	return progress
}

// UserStats is the short summary shown on profile cards.
type UserStats struct {
	SessionCount int
	BestScore    int
}

func Stats(results []SessionResult) UserStats {
	stats := UserStats{SessionCount: len(results)}
	for _, r := range results {
		if r.Score > stats.BestScore {
			stats.BestScore = r.Score
		}
	}
	return stats
}

// FormatPercent renders v with one decimal place, e.g. "66.7%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
