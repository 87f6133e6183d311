package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUID for new rows, falling back to a random
// one when the monotonic source is unavailable.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
