package usecase

import (
	"testing"

	"main/model"
)

func TestValidateMoodScales(t *testing.T) {
	tests := []struct {
		name  string
		entry model.JournalEntry
		valid bool
	}{
		{"minimum mood", model.JournalEntry{Mood: 1}, true},
		{"maximum mood", model.JournalEntry{Mood: 5}, true},
		{"mood with energy", model.JournalEntry{Mood: 3, Energy: 4}, true},
		{"energy omitted", model.JournalEntry{Mood: 3}, true},
		{"mood zero", model.JournalEntry{}, false},
		{"mood too high", model.JournalEntry{Mood: 6}, false},
		{"energy too high", model.JournalEntry{Mood: 3, Energy: 6}, false},
		{"energy negative", model.JournalEntry{Mood: 3, Energy: -1}, false},
		{"ten emotions", model.JournalEntry{Mood: 3, Emotions: make([]string, 10)}, true},
		{"eleven emotions", model.JournalEntry{Mood: 3, Emotions: make([]string, 11)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateMoodScales(&tc.entry)
			if tc.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
