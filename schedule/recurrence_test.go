package schedule

import (
	"testing"
	"time"

	"main/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

func TestExpandNone(t *testing.T) {
	anchor := time.Date(2024, time.March, 15, 18, 42, 7, 0, time.UTC)

	got := Expand(anchor, model.RecurrenceRule{Type: model.RecurrenceNone})
	if len(got) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(got))
	}
	if !got[0].Equal(date(2024, time.March, 15)) {
		t.Errorf("expected time-of-day stripped, got %v", got[0])
	}
}

func TestExpandUnknownTypeBehavesAsNone(t *testing.T) {
	got := Expand(date(2024, time.March, 15), model.RecurrenceRule{Type: "fortnightly"})
	if len(got) != 1 || !got[0].Equal(date(2024, time.March, 15)) {
		t.Errorf("unknown type should yield the anchor only, got %v", got)
	}
}

func TestExpandDaily(t *testing.T) {
	anchor := date(2024, time.January, 1)

	got := Expand(anchor, model.RecurrenceRule{Type: model.RecurrenceDaily, Count: intPtr(5)})
	if len(got) != 5 {
		t.Fatalf("expected 5 occurrences, got %d", len(got))
	}
	for i, d := range got {
		want := anchor.AddDate(0, 0, i)
		if !d.Equal(want) {
			t.Errorf("occurrence %d: expected %v, got %v", i, want, d)
		}
	}
}

func TestExpandDailyDefaultCount(t *testing.T) {
	got := Expand(date(2024, time.January, 1), model.RecurrenceRule{Type: model.RecurrenceDaily})
	if len(got) != 7 {
		t.Errorf("expected default count 7, got %d", len(got))
	}
}

func TestExpandNonPositiveCount(t *testing.T) {
	for _, typ := range []model.RecurrenceType{model.RecurrenceDaily, model.RecurrenceWeekly, model.RecurrenceMonthly} {
		got := Expand(date(2024, time.January, 1), model.RecurrenceRule{Type: typ, Count: intPtr(0)})
		if len(got) != 0 {
			t.Errorf("%s with count 0: expected empty, got %d entries", typ, len(got))
		}
		got = Expand(date(2024, time.January, 1), model.RecurrenceRule{Type: typ, Count: intPtr(-3)})
		if len(got) != 0 {
			t.Errorf("%s with negative count: expected empty, got %d entries", typ, len(got))
		}
	}
}

func TestExpandWeeklySpacing(t *testing.T) {
	got := Expand(date(2024, time.February, 5), model.RecurrenceRule{Type: model.RecurrenceWeekly, Count: intPtr(4)})
	if len(got) != 4 {
		t.Fatalf("expected 4 occurrences, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Sub(got[i-1]) != 7*24*time.Hour {
			t.Errorf("occurrences %d and %d not 7 days apart: %v, %v", i-1, i, got[i-1], got[i])
		}
	}
}

// Month-end behavior is pinned to Go's AddDate convention: an overflowing
// day-of-month rolls into the next month, so 2024-01-31 plus one month is
// 2024-03-02 (February 2024 has 29 days) while plus two months is
// 2024-03-31 again.
func TestExpandMonthlyEndOfMonth(t *testing.T) {
	got := Expand(date(2024, time.January, 31), model.RecurrenceRule{Type: model.RecurrenceMonthly, Count: intPtr(3)})

	want := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.March, 2),
		date(2024, time.March, 31),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d occurrences, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestExpandCustomCountBound(t *testing.T) {
	rule := model.RecurrenceRule{
		Type:           model.RecurrenceCustom,
		CustomInterval: intPtr(2),
		CustomUnit:     model.UnitDay,
		CustomEndType:  model.EndCount,
		CustomEndCount: intPtr(5),
	}

	got := Expand(date(2024, time.June, 1), rule)
	if len(got) != 5 {
		t.Fatalf("expected exactly 5 occurrences, got %d", len(got))
	}
	for i, d := range got {
		want := date(2024, time.June, 1+2*i)
		if !d.Equal(want) {
			t.Errorf("occurrence %d: expected %v, got %v", i, want, d)
		}
	}
}

func TestExpandCustomDateBoundInclusive(t *testing.T) {
	anchor := date(2024, time.June, 1)
	rule := model.RecurrenceRule{
		Type:          model.RecurrenceCustom,
		CustomEndType: model.EndDate,
		CustomEndDate: &anchor,
	}

	got := Expand(anchor, rule)
	if len(got) != 1 || !got[0].Equal(anchor) {
		t.Errorf("end date equal to anchor should yield [anchor], got %v", got)
	}
}

func TestExpandCustomDateBound(t *testing.T) {
	end := date(2024, time.June, 10)
	rule := model.RecurrenceRule{
		Type:           model.RecurrenceCustom,
		CustomInterval: intPtr(3),
		CustomUnit:     model.UnitDay,
		CustomEndType:  model.EndDate,
		CustomEndDate:  &end,
	}

	got := Expand(date(2024, time.June, 1), rule)
	want := []time.Time{
		date(2024, time.June, 1),
		date(2024, time.June, 4),
		date(2024, time.June, 7),
		date(2024, time.June, 10),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d occurrences, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestExpandCustomNeverCapped(t *testing.T) {
	rule := model.RecurrenceRule{
		Type:          model.RecurrenceCustom,
		CustomUnit:    model.UnitDay,
		CustomEndType: model.EndNever,
	}

	got := Expand(date(2024, time.January, 1), rule)
	if len(got) != MaxOccurrences {
		t.Errorf("never-ending rule should cap at %d occurrences, got %d", MaxOccurrences, len(got))
	}
}

func TestExpandCustomZeroIntervalTerminates(t *testing.T) {
	rule := model.RecurrenceRule{
		Type:           model.RecurrenceCustom,
		CustomInterval: intPtr(0),
		CustomUnit:     model.UnitDay,
		CustomEndType:  model.EndNever,
	}

	done := make(chan []time.Time, 1)
	go func() {
		done <- Expand(date(2024, time.January, 1), rule)
	}()

	select {
	case got := <-done:
		if len(got) > MaxOccurrences {
			t.Errorf("expected at most %d occurrences, got %d", MaxOccurrences, len(got))
		}
		for i := 1; i < len(got); i++ {
			if !got[i].After(got[i-1]) {
				t.Errorf("output not strictly increasing at %d: %v, %v", i, got[i-1], got[i])
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("expansion with zero interval did not terminate")
	}
}

func TestExpandCustomUnits(t *testing.T) {
	anchor := date(2024, time.January, 15)

	tests := []struct {
		name string
		unit model.RecurrenceUnit
		want time.Time // second occurrence
	}{
		{"day", model.UnitDay, date(2024, time.January, 16)},
		{"week", model.UnitWeek, date(2024, time.January, 22)},
		{"month", model.UnitMonth, date(2024, time.February, 15)},
		{"year", model.UnitYear, date(2025, time.January, 15)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rule := model.RecurrenceRule{
				Type:           model.RecurrenceCustom,
				CustomUnit:     tc.unit,
				CustomEndType:  model.EndCount,
				CustomEndCount: intPtr(2),
			}
			got := Expand(anchor, rule)
			if len(got) != 2 {
				t.Fatalf("expected 2 occurrences, got %d", len(got))
			}
			if !got[1].Equal(tc.want) {
				t.Errorf("second occurrence: expected %v, got %v", tc.want, got[1])
			}
		})
	}
}

func TestExpandStrictlyIncreasing(t *testing.T) {
	end := date(2025, time.December, 31)
	rules := []model.RecurrenceRule{
		{Type: model.RecurrenceDaily, Count: intPtr(30)},
		{Type: model.RecurrenceWeekly, Count: intPtr(30)},
		{Type: model.RecurrenceMonthly, Count: intPtr(24)},
		{Type: model.RecurrenceCustom, CustomInterval: intPtr(11), CustomUnit: model.UnitDay, CustomEndType: model.EndDate, CustomEndDate: &end},
	}

	for _, rule := range rules {
		got := Expand(date(2024, time.January, 31), rule)
		for i := 1; i < len(got); i++ {
			if !got[i].After(got[i-1]) {
				t.Errorf("rule %s: output not strictly increasing at %d: %v, %v", rule.Type, i, got[i-1], got[i])
			}
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(date(2024, time.March, 5)); got != "2024-03-05" {
		t.Errorf("expected 2024-03-05, got %s", got)
	}
}
