package utils

import (
	"github.com/google/uuid"
)

// NewID creates a prefixed unique identifier, e.g. "session-3f1c...".
func NewID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}
