package usecase

import (
	"testing"

	"main/model"
	"main/schedule"
)

func TestFilterScheduledBySlot(t *testing.T) {
	activities := []*model.ScheduledActivity{
		{ActivityID: "a", StartTime: "07:00"},
		{ActivityID: "b", StartTime: "19:30"},
		{ActivityID: "c", StartTime: ""},
		{ActivityID: "d", StartTime: "23:45"},
	}

	tests := []struct {
		slot schedule.DaySlot
		want []string
	}{
		{schedule.SlotEarlyMorning, []string{"a"}},
		{schedule.SlotEvening, []string{"b"}},
		{schedule.SlotAnytime, []string{"c"}},
		{schedule.SlotNight, []string{"d"}},
		{schedule.SlotMidday, nil},
	}

	for _, tc := range tests {
		got := filterScheduledBySlot(activities, tc.slot)
		if len(got) != len(tc.want) {
			t.Errorf("slot %s: got %d activities, want %d", tc.slot, len(got), len(tc.want))
			continue
		}
		for i, a := range got {
			if a.ActivityID != tc.want[i] {
				t.Errorf("slot %s: activity[%d] = %s, want %s", tc.slot, i, a.ActivityID, tc.want[i])
			}
		}
	}
}
