package schedule

import (
	"time"

	"main/model"
)

// ActivationWindow is the date range over which a preset's recurrence
// is in effect.
type ActivationWindow struct {
	Start time.Time
	End   time.Time
}

// PlanActivation computes a preset's activation window from a recurrence
// rule: the window runs from the anchor to the last occurrence. Pure
// computation; persisting the window on the preset is the caller's job,
// which keeps the date math independently testable.
func PlanActivation(anchor time.Time, rule model.RecurrenceRule) ActivationWindow {
	occurrences := Expand(anchor, rule)
	return windowFromOccurrences(anchor, occurrences)
}

// PlanOccurrences returns the activation window together with the full
// occurrence list, for callers that also materialize per-day activity
// instances.
func PlanOccurrences(anchor time.Time, rule model.RecurrenceRule) (ActivationWindow, []time.Time) {
	occurrences := Expand(anchor, rule)
	return windowFromOccurrences(anchor, occurrences), occurrences
}

func windowFromOccurrences(anchor time.Time, occurrences []time.Time) ActivationWindow {
	day := truncateToDay(anchor)
	window := ActivationWindow{Start: day, End: day}
	if len(occurrences) > 0 {
		// The expansion starts at the anchor, so the window spans
		// first to last occurrence. The anchor fallback above only
		// matters for degenerate rules that expand to nothing.
		window.Start = occurrences[0]
		window.End = occurrences[len(occurrences)-1]
	}
	return window
}
