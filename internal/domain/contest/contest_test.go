package contest_test

import (
	"errors"
	"testing"

	"github.com/ichscheine/goAIME-sub001/internal/domain/contest"
)

func TestNewContest(t *testing.T) {
	c, err := contest.New("AMC 10A", 2022)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Name != "AMC 10A" {
		t.Errorf("expected name %q, got %q", "AMC 10A", c.Name)
	}
	if c.ID == "" {
		t.Error("expected non-empty ID")
	}
	if len(c.Problems) != 0 {
		t.Errorf("expected no problems, got %d", len(c.Problems))
	}
}

func TestNewContest_EmptyName(t *testing.T) {
	if _, err := contest.New("  ", 2022); !errors.Is(err, contest.ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestAddProblem(t *testing.T) {
	c, _ := contest.New("AMC 10A", 2022)

	p, err := c.AddProblem("What is 2+2?", " c ", "Arithmetic", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Number != 1 {
		t.Errorf("expected number 1, got %d", p.Number)
	}
	if p.Answer != "C" {
		t.Errorf("expected normalised answer C, got %q", p.Answer)
	}
	if p.Difficulty != contest.DifficultyEasy {
		t.Errorf("expected easy difficulty, got %q", p.Difficulty)
	}

	found, ok := c.Problem(p.ID)
	if !ok || found.Statement != "What is 2+2?" {
		t.Errorf("expected to find problem by ID, got %+v %v", found, ok)
	}
}

func TestAddProblem_Validation(t *testing.T) {
	c, _ := contest.New("AMC 10A", 2022)

	if _, err := c.AddProblem("", "A", "Algebra", ""); !errors.Is(err, contest.ErrEmptyStatement) {
		t.Errorf("expected ErrEmptyStatement, got %v", err)
	}
	if _, err := c.AddProblem("Solve x", "F", "Algebra", ""); !errors.Is(err, contest.ErrInvalidChoice) {
		t.Errorf("expected ErrInvalidChoice, got %v", err)
	}
	if len(c.Problems) != 0 {
		t.Error("expected no problems after failed adds")
	}
}

func TestAddProblem_DefaultsTopic(t *testing.T) {
	c, _ := contest.New("AMC 10A", 2022)

	p, _ := c.AddProblem("Solve x", "A", "", "")
	if p.Topic != "General" {
		t.Errorf("expected General topic, got %q", p.Topic)
	}
}

func TestDifficultyForNumber(t *testing.T) {
	tests := []struct {
		number int
		want   contest.Difficulty
	}{
		{1, contest.DifficultyEasy},
		{10, contest.DifficultyEasy},
		{11, contest.DifficultyMedium},
		{20, contest.DifficultyMedium},
		{21, contest.DifficultyHard},
		{25, contest.DifficultyHard},
	}

	for _, tt := range tests {
		if got := contest.DifficultyForNumber(tt.number); got != tt.want {
			t.Errorf("DifficultyForNumber(%d) = %q, want %q", tt.number, got, tt.want)
		}
	}
}
