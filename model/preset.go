package model

import "time"

// PresetActivity is a reference to an activity template plus the day-part
// it is scheduled for. Owned by the preset that contains it; copied on
// edit, never shared between presets.
type PresetActivity struct {
	TemplateID  string `bson:"template_id" json:"template_id"`
	Category    string `bson:"category" json:"category"`
	DaySlot     string `bson:"day_slot" json:"day_slot"`
	StartTime   string `bson:"start_time,omitempty" json:"start_time,omitempty"` // "HH:MM", empty means anytime
	Duration    int    `bson:"duration,omitempty" json:"duration,omitempty"`     // minutes
	Repetitions int    `bson:"repetitions,omitempty" json:"repetitions,omitempty"`
}

// Preset is a user-defined bundle of activity templates that can be
// activated to materialize a recurring schedule.
type Preset struct {
	PresetID        string           `bson:"_id,omitempty" json:"id"`
	UserID          string           `bson:"user_id" json:"user_id"`
	Name            string           `bson:"name" json:"name" binding:"required"`
	Emoji           string           `bson:"emoji,omitempty" json:"emoji,omitempty"`
	Activities      []PresetActivity `bson:"activities" json:"activities"`
	IsActive        bool             `bson:"is_active" json:"is_active"`
	IsArchived      bool             `bson:"is_archived" json:"is_archived"`
	LastActivatedAt time.Time        `bson:"last_activated_at,omitempty" json:"last_activated_at,omitempty"`
	ActivationStart time.Time        `bson:"activation_start,omitempty" json:"activation_start,omitempty"`
	ActivationEnd   time.Time        `bson:"activation_end,omitempty" json:"activation_end,omitempty"`
	CreatedAt       time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time        `bson:"updated_at" json:"updated_at"`
}
