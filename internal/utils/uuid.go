package utils

import "github.com/google/uuid"

// NewID generates a new random identifier for a stored entity.
func NewID() string {
	return uuid.NewString()
}
