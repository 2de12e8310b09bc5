package model

import "time"

// ScheduledActivity is one materialized occurrence of a preset activity:
// created for every (occurrence date, activity) pair when a preset is
// activated.
type ScheduledActivity struct {
	ActivityID  string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	PresetID    string    `bson:"preset_id" json:"preset_id"`
	TemplateID  string    `bson:"template_id" json:"template_id"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	Date        string    `bson:"date" json:"date"` // "yyyy-MM-dd"
	DaySlot     string    `bson:"day_slot" json:"day_slot"`
	StartTime   string    `bson:"start_time,omitempty" json:"start_time,omitempty"`
	Duration    int       `bson:"duration,omitempty" json:"duration,omitempty"`
	Repetitions int       `bson:"repetitions,omitempty" json:"repetitions,omitempty"`
	Completed   bool      `bson:"completed" json:"completed"`
	CompletedAt time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
