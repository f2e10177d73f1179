package utils

import "github.com/google/uuid"

// GenerateID returns a store-assigned internal identifier for a link. It is
// distinct from the public code so tokens survive a future rename capability.
func GenerateID() string {
	return uuid.New().String()
}
