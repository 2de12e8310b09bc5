package dto

import (
	"time"

	"main/model"
)

type ActivityResponse struct {
	ID          string     `json:"id"`
	PresetID    string     `json:"preset_id"`
	TemplateID  string     `json:"template_id"`
	Category    string     `json:"category,omitempty"`
	Date        string     `json:"date"`
	DaySlot     string     `json:"day_slot"`
	StartTime   string     `json:"start_time,omitempty"`
	Duration    int        `json:"duration,omitempty"`
	Repetitions int        `json:"repetitions,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Convert model.ScheduledActivity to ActivityResponse
func ToActivityResponse(activity *model.ScheduledActivity) ActivityResponse {
	response := ActivityResponse{
		ID:          activity.ActivityID,
		PresetID:    activity.PresetID,
		TemplateID:  activity.TemplateID,
		Category:    activity.Category,
		Date:        activity.Date,
		DaySlot:     activity.DaySlot,
		StartTime:   activity.StartTime,
		Duration:    activity.Duration,
		Repetitions: activity.Repetitions,
		Completed:   activity.Completed,
	}

	if !activity.CompletedAt.IsZero() {
		t := activity.CompletedAt
		response.CompletedAt = &t
	}

	return response
}

func ToActivityResponses(activities []*model.ScheduledActivity) []ActivityResponse {
	responses := make([]ActivityResponse, len(activities))
	for i, activity := range activities {
		responses[i] = ToActivityResponse(activity)
	}
	return responses
}
