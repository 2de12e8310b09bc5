package model

import "time"

type UserStats struct {
	JournalStats struct {
		Total         int            `json:"total"`
		AverageMood   float64        `json:"average_mood"`
		AverageEnergy float64        `json:"average_energy"`
		EmotionCounts map[string]int `json:"emotion_counts"`
	} `json:"journal_stats"`
	PresetStats struct {
		Total    int `json:"total"`
		Active   int `json:"active"`
		Archived int `json:"archived"`
	} `json:"preset_stats"`
	ActivityStats struct {
		Scheduled         int            `json:"scheduled"`
		Completed         int            `json:"completed"`
		Pending           int            `json:"pending"`
		SlotDistribution  map[string]int `json:"slot_distribution"`
		CompletionPercent float64        `json:"completion_percent"`
	} `json:"activity_stats"`
	AccountStats struct {
		LastActive     time.Time `json:"last_active"`
		AccountCreated time.Time `json:"account_created"`
		TotalSessions  int       `json:"total_sessions"`
	} `json:"account_stats"`
}
