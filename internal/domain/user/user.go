package user

import (
	"errors"
	"strings"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/id"
)

var (
	ErrInvalidUsername = errors.New("username is required")
	ErrInvalidEmail    = errors.New("invalid email format")
)

// Profile is a registered student.
type Profile struct {
	ID        string
	Username  string
	Email     string
	Grade     int // school grade, 0 when unknown
	CreatedAt time.Time
}

func New(username, email string, grade int) (*Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if at := strings.Index(email, "@"); at <= 0 || at == len(email)-1 {
		return nil, ErrInvalidEmail
	}
	if grade < 0 {
		grade = 0
	}
	return &Profile{
		ID:        id.GenerateID(),
		Username:  username,
		Email:     email,
		Grade:     grade,
		CreatedAt: time.Now().UTC(),
	}, nil
}
