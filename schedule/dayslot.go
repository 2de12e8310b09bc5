package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"main/model"
)

type DaySlot string

const (
	SlotEarlyMorning DaySlot = "early_morning"
	SlotLateMorning  DaySlot = "late_morning"
	SlotMidday       DaySlot = "midday"
	SlotAfternoon    DaySlot = "afternoon"
	SlotEvening      DaySlot = "evening"
	SlotNight        DaySlot = "night"
	SlotAnytime      DaySlot = "anytime"
)

// slotRange is a half-open hour interval [Start, End) on the 24-hour clock.
// Night wraps across midnight (End < Start).
type slotRange struct {
	Slot  DaySlot
	Start int
	End   int
}

// The six timed slots are contiguous and cover [0,24), so exactly one
// matches any valid hour.
var slotRanges = []slotRange{
	{SlotEarlyMorning, 5, 9},
	{SlotLateMorning, 9, 12},
	{SlotMidday, 12, 14},
	{SlotAfternoon, 14, 18},
	{SlotEvening, 18, 22},
	{SlotNight, 22, 5},
}

// Classify maps an "HH:MM" clock time to its day-part slot. An empty or
// unparseable time classifies as anytime rather than failing.
func Classify(startTime string) DaySlot {
	if startTime == "" {
		return SlotAnytime
	}

	hourPart, _, _ := strings.Cut(startTime, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil || hour < 0 || hour > 23 {
		return SlotAnytime
	}

	for _, r := range slotRanges {
		if r.End < r.Start {
			// Wrapping interval: [Start,24) or [0,End)
			if hour >= r.Start || hour < r.End {
				return r.Slot
			}
			continue
		}
		if hour >= r.Start && hour < r.End {
			return r.Slot
		}
	}

	// Unreachable for valid hours; the ranges are exhaustive.
	return SlotAnytime
}

// ValidSlot reports whether the name is one of the seven day slots.
func ValidSlot(slot DaySlot) bool {
	if slot == SlotAnytime {
		return true
	}
	for _, r := range slotRanges {
		if r.Slot == slot {
			return true
		}
	}
	return false
}

// SlotDefaultTime returns the start of a slot's interval as an "HH:MM"
// string, or empty for anytime.
func SlotDefaultTime(slot DaySlot) string {
	for _, r := range slotRanges {
		if r.Slot == slot {
			return fmt.Sprintf("%02d:00", r.Start)
		}
	}
	return ""
}

// FilterBySlot keeps the activities whose start time falls in the given
// slot, preserving input order. For anytime, only activities without a
// start time are kept. The result is a fresh slice.
func FilterBySlot(activities []model.PresetActivity, slot DaySlot) []model.PresetActivity {
	filtered := make([]model.PresetActivity, 0, len(activities))
	for _, a := range activities {
		if slot == SlotAnytime {
			if a.StartTime == "" {
				filtered = append(filtered, a)
			}
			continue
		}
		if a.StartTime != "" && Classify(a.StartTime) == slot {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
