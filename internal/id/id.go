package id

import "github.com/google/uuid"

// GenerateID creates a random UUIDv4 string.
func GenerateID() string {
	return uuid.NewString()
}
