package dto

import (
	"errors"
	"time"

	"main/model"
)

// ActivationRequest is the payload for activating a preset. The rule is
// constructed per call and never stored; only the resulting window is.
type ActivationRequest struct {
	AnchorDate string               `json:"anchor_date" binding:"required"` // "yyyy-MM-dd"
	Rule       model.RecurrenceRule `json:"rule"`
}

// ParseAnchor converts the wire date into a calendar day. The zero rule
// (absent on the wire) expands as type none, matching the fail-soft
// engine contract.
func (r *ActivationRequest) ParseAnchor() (time.Time, error) {
	anchor, err := time.Parse("2006-01-02", r.AnchorDate)
	if err != nil {
		return time.Time{}, errors.New("anchor_date must be yyyy-MM-dd")
	}
	return anchor, nil
}
