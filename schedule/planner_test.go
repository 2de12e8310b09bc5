package schedule

import (
	"testing"
	"time"

	"main/model"
)

func TestPlanActivationDaily(t *testing.T) {
	anchor := date(2024, time.April, 1)

	window := PlanActivation(anchor, model.RecurrenceRule{Type: model.RecurrenceDaily, Count: intPtr(10)})
	if !window.Start.Equal(anchor) {
		t.Errorf("expected start %v, got %v", anchor, window.Start)
	}
	if want := anchor.AddDate(0, 0, 9); !window.End.Equal(want) {
		t.Errorf("expected end %v, got %v", want, window.End)
	}
}

func TestPlanActivationNone(t *testing.T) {
	anchor := date(2024, time.April, 1)

	window := PlanActivation(anchor, model.RecurrenceRule{Type: model.RecurrenceNone})
	if !window.Start.Equal(anchor) || !window.End.Equal(anchor) {
		t.Errorf("expected single-day window at %v, got %+v", anchor, window)
	}
}

// Empty expansions (count 0) must not crash; the window collapses to the
// anchor day.
func TestPlanActivationEmptyExpansionFallsBackToAnchor(t *testing.T) {
	anchor := time.Date(2024, time.April, 1, 15, 30, 0, 0, time.UTC)

	window := PlanActivation(anchor, model.RecurrenceRule{Type: model.RecurrenceDaily, Count: intPtr(0)})
	day := date(2024, time.April, 1)
	if !window.Start.Equal(day) || !window.End.Equal(day) {
		t.Errorf("expected anchor-day window, got %+v", window)
	}
}

func TestPlanOccurrences(t *testing.T) {
	anchor := date(2024, time.April, 1)

	window, occurrences := PlanOccurrences(anchor, model.RecurrenceRule{Type: model.RecurrenceWeekly, Count: intPtr(3)})
	if len(occurrences) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(occurrences))
	}
	if !window.Start.Equal(occurrences[0]) || !window.End.Equal(occurrences[2]) {
		t.Errorf("window %+v does not span occurrences %v", window, occurrences)
	}
}
