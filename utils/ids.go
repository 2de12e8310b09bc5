package utils

import "github.com/google/uuid"

// GenerateID returns a new random identifier for users, presets, entries
// and scheduled activities.
func GenerateID() string {
	return uuid.New().String()
}
