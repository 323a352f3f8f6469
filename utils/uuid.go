package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GeneratePrefixedID returns a new unique identifier with a type prefix,
// e.g. "user-bid-<uuid>" or "watch-<uuid>".
func GeneratePrefixedID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}
