package schedule

import (
	"fmt"
	"testing"

	"main/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		time string
		want DaySlot
	}{
		{"", SlotAnytime},
		{"05:00", SlotEarlyMorning},
		{"08:59", SlotEarlyMorning},
		{"09:00", SlotLateMorning},
		{"11:59", SlotLateMorning},
		{"12:00", SlotMidday},
		{"13:30", SlotMidday},
		{"14:00", SlotAfternoon},
		{"17:45", SlotAfternoon},
		{"18:00", SlotEvening},
		{"21:59", SlotEvening},
		{"22:00", SlotNight},
		{"23:30", SlotNight},
		{"00:00", SlotNight},
		{"04:59", SlotNight},
		{"not-a-time", SlotAnytime},
		{"25:00", SlotAnytime},
		{"-1:00", SlotAnytime},
	}

	for _, tc := range tests {
		if got := Classify(tc.time); got != tc.want {
			t.Errorf("Classify(%q): expected %s, got %s", tc.time, tc.want, got)
		}
	}
}

// Every hour of the day must land in exactly one timed slot.
func TestClassifyExhaustive(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		got := Classify(fmt.Sprintf("%02d:00", hour))
		if got == SlotAnytime {
			t.Errorf("hour %d classified as anytime", hour)
		}
	}
}

func TestSlotDefaultTime(t *testing.T) {
	tests := []struct {
		slot DaySlot
		want string
	}{
		{SlotEarlyMorning, "05:00"},
		{SlotLateMorning, "09:00"},
		{SlotMidday, "12:00"},
		{SlotAfternoon, "14:00"},
		{SlotEvening, "18:00"},
		{SlotNight, "22:00"},
		{SlotAnytime, ""},
	}

	for _, tc := range tests {
		if got := SlotDefaultTime(tc.slot); got != tc.want {
			t.Errorf("SlotDefaultTime(%s): expected %q, got %q", tc.slot, tc.want, got)
		}
	}
}

// Slot default times must round-trip back to their own slot.
func TestSlotDefaultTimeRoundTrip(t *testing.T) {
	for _, r := range slotRanges {
		if got := Classify(SlotDefaultTime(r.Slot)); got != r.Slot {
			t.Errorf("Classify(SlotDefaultTime(%s)) = %s", r.Slot, got)
		}
	}
}

func TestFilterBySlot(t *testing.T) {
	activities := []model.PresetActivity{
		{TemplateID: "stretch"},
		{TemplateID: "run", StartTime: "08:00"},
		{TemplateID: "meditate", StartTime: "08:30"},
		{TemplateID: "journal", StartTime: "22:15"},
	}

	anytime := FilterBySlot(activities, SlotAnytime)
	if len(anytime) != 1 || anytime[0].TemplateID != "stretch" {
		t.Errorf("anytime filter: expected only stretch, got %v", anytime)
	}

	morning := FilterBySlot(activities, SlotEarlyMorning)
	if len(morning) != 2 {
		t.Fatalf("early_morning filter: expected 2 activities, got %d", len(morning))
	}
	// Stable filter: relative order preserved
	if morning[0].TemplateID != "run" || morning[1].TemplateID != "meditate" {
		t.Errorf("early_morning filter out of order: %v", morning)
	}

	night := FilterBySlot(activities, SlotNight)
	if len(night) != 1 || night[0].TemplateID != "journal" {
		t.Errorf("night filter: expected only journal, got %v", night)
	}

	if got := FilterBySlot(activities, SlotMidday); len(got) != 0 {
		t.Errorf("midday filter: expected empty, got %v", got)
	}
}

func TestFilterBySlotDoesNotAliasInput(t *testing.T) {
	activities := []model.PresetActivity{
		{TemplateID: "run", StartTime: "08:00"},
		{TemplateID: "walk", StartTime: "08:30"},
	}

	filtered := FilterBySlot(activities, SlotEarlyMorning)
	filtered[0].TemplateID = "changed"
	if activities[0].TemplateID != "run" {
		t.Error("filter result aliases the input slice")
	}
}

func TestValidSlot(t *testing.T) {
	for _, slot := range []DaySlot{
		SlotEarlyMorning, SlotLateMorning, SlotMidday,
		SlotAfternoon, SlotEvening, SlotNight, SlotAnytime,
	} {
		if !ValidSlot(slot) {
			t.Errorf("ValidSlot(%s) = false", slot)
		}
	}

	for _, slot := range []DaySlot{"", "morning", "noon", "EARLY_MORNING"} {
		if ValidSlot(slot) {
			t.Errorf("ValidSlot(%q) = true", slot)
		}
	}
}
