package contest

import (
	"errors"
	"strings"

	"github.com/ichscheine/goAIME-sub001/internal/id"
)

var (
	ErrEmptyName      = errors.New("contest name cannot be empty")
	ErrEmptyStatement = errors.New("problem statement cannot be empty")
	ErrInvalidChoice  = errors.New("answer must be one of A, B, C, D, E")
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Contest is a published problem set, e.g. "AMC 10A" 2022.
type Contest struct {
	ID       string
	Name     string
	Year     int
	Problems []Problem
}

// Problem is a single multiple-choice question within a contest.
type Problem struct {
	ID         string
	Number     int
	Topic      string
	Difficulty Difficulty
	Statement  string
	Answer     string // A-E
}

func New(name string, year int) (*Contest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Contest{
		ID:       id.GenerateID(),
		Name:     name,
		Year:     year,
		Problems: []Problem{},
	}, nil
}

// AddProblem appends a problem and numbers it after the existing ones.
// An empty difficulty is derived from the problem number.
func (c *Contest) AddProblem(statement, answer, topic string, difficulty Difficulty) (Problem, error) {
	if strings.TrimSpace(statement) == "" {
		return Problem{}, ErrEmptyStatement
	}
	choice, ok := NormalizeChoice(answer)
	if !ok {
		return Problem{}, ErrInvalidChoice
	}

	number := len(c.Problems) + 1
	if difficulty == "" {
		difficulty = DifficultyForNumber(number)
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = "General"
	}

	p := Problem{
		ID:         id.GenerateID(),
		Number:     number,
		Topic:      topic,
		Difficulty: difficulty,
		Statement:  statement,
		Answer:     choice,
	}
	c.Problems = append(c.Problems, p)
	return p, nil
}

// Problem looks a problem up by ID.
func (c *Contest) Problem(problemID string) (Problem, bool) {
	for _, p := range c.Problems {
		if p.ID == problemID {
			return p, true
		}
	}
	return Problem{}, false
}

// DifficultyForNumber buckets AMC problem positions: 1-10 easy, 11-20
// medium, the rest hard.
func DifficultyForNumber(number int) Difficulty {
	switch {
	case number <= 10:
		return DifficultyEasy
	case number <= 20:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// NormalizeChoice upper-cases and validates a multiple-choice letter.
func NormalizeChoice(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "A", "B", "C", "D", "E":
		return s, true
	}
	return "", false
}
