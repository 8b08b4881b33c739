package util

import (
	"github.com/google/uuid"
)

// GenerateID generates a unique account identifier
func GenerateID() string {
	return uuid.NewString()
}
