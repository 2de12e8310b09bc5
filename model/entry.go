package model

import "time"

// JournalEntry is one day's wellness journal record (mood, energy, emotions).
type JournalEntry struct {
	EntryID   string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Date      string    `bson:"date" json:"date" binding:"required"` // "yyyy-MM-dd"
	Mood      int       `bson:"mood" json:"mood"`                    // 1..5
	Energy    int       `bson:"energy,omitempty" json:"energy,omitempty"`
	Emotions  []string  `bson:"emotions,omitempty" json:"emotions,omitempty"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
