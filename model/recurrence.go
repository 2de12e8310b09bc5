package model

import "time"

type RecurrenceType string
type RecurrenceUnit string
type RecurrenceEndType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceCustom  RecurrenceType = "custom"

	UnitDay   RecurrenceUnit = "day"
	UnitWeek  RecurrenceUnit = "week"
	UnitMonth RecurrenceUnit = "month"
	UnitYear  RecurrenceUnit = "year"

	EndNever RecurrenceEndType = "never"
	EndDate  RecurrenceEndType = "date"
	EndCount RecurrenceEndType = "count"
)

// RecurrenceRule describes how an anchor date expands into a date sequence.
// Optional fields are pointers so an absent field (default applies) is
// distinguishable from an explicit zero. Rules are transient input data:
// only the resulting activation window is persisted on the preset.
type RecurrenceRule struct {
	Type           RecurrenceType    `json:"type"`
	Count          *int              `json:"count,omitempty"`
	CustomInterval *int              `json:"custom_interval,omitempty"`
	CustomUnit     RecurrenceUnit    `json:"custom_unit,omitempty"`
	CustomEndType  RecurrenceEndType `json:"custom_end_type,omitempty"`
	CustomEndDate  *time.Time        `json:"custom_end_date,omitempty"`
	CustomEndCount *int              `json:"custom_end_count,omitempty"`
}
