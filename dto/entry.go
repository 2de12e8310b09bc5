package dto

import (
	"time"

	"main/model"
)

type EntryResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Mood      int       `json:"mood"`
	Energy    int       `json:"energy,omitempty"`
	Emotions  []string  `json:"emotions,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Convert model.JournalEntry to EntryResponse
func ToEntryResponse(entry *model.JournalEntry) EntryResponse {
	return EntryResponse{
		ID:        entry.EntryID,
		Date:      entry.Date,
		Mood:      entry.Mood,
		Energy:    entry.Energy,
		Emotions:  entry.Emotions,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

func ToEntryResponses(entries []*model.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToEntryResponse(entry)
	}
	return responses
}

// MoodPoint is one sample on the dashboard mood chart
type MoodPoint struct {
	Date   string `json:"date"`
	Mood   int    `json:"mood"`
	Energy int    `json:"energy,omitempty"`
}

// ToMoodSeries projects a date-ordered entry range onto chart points
func ToMoodSeries(entries []*model.JournalEntry) []MoodPoint {
	points := make([]MoodPoint, len(entries))
	for i, entry := range entries {
		points[i] = MoodPoint{
			Date:   entry.Date,
			Mood:   entry.Mood,
			Energy: entry.Energy,
		}
	}
	return points
}
