package dto

import (
	"time"

	"main/model"
	"main/schedule"
)

type PresetResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Emoji           string                 `json:"emoji,omitempty"`
	Activities      []model.PresetActivity `json:"activities"`
	IsActive        bool                   `json:"is_active"`
	IsArchived      bool                   `json:"is_archived"`
	LastActivatedAt *time.Time             `json:"last_activated_at,omitempty"`
	ActivationStart *string                `json:"activation_start,omitempty"`
	ActivationEnd   *string                `json:"activation_end,omitempty"`
	ActiveUntil     string                 `json:"active_until,omitempty"` // Computed display field
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// Convert model.Preset to PresetResponse
func ToPresetResponse(preset *model.Preset) PresetResponse {
	response := PresetResponse{
		ID:         preset.PresetID,
		Name:       preset.Name,
		Emoji:      preset.Emoji,
		Activities: preset.Activities,
		IsActive:   preset.IsActive,
		IsArchived: preset.IsArchived,
		CreatedAt:  preset.CreatedAt,
		UpdatedAt:  preset.UpdatedAt,
	}

	// Handle nullable time fields
	if !preset.LastActivatedAt.IsZero() {
		t := preset.LastActivatedAt
		response.LastActivatedAt = &t
	}

	if !preset.ActivationStart.IsZero() {
		start := schedule.FormatDate(preset.ActivationStart)
		response.ActivationStart = &start
	}

	if !preset.ActivationEnd.IsZero() {
		end := schedule.FormatDate(preset.ActivationEnd)
		response.ActivationEnd = &end
		if preset.IsActive {
			if time.Now().After(preset.ActivationEnd.AddDate(0, 0, 1)) {
				response.ActiveUntil = "Expired"
			} else {
				response.ActiveUntil = *response.ActivationEnd
			}
		}
	}

	return response
}

// Convert slice of model.Preset to slice of PresetResponse
func ToPresetResponses(presets []*model.Preset) []PresetResponse {
	responses := make([]PresetResponse, len(presets))
	for i, preset := range presets {
		responses[i] = ToPresetResponse(preset)
	}
	return responses
}
