package schedule

import (
	"time"

	"main/model"
)

// Safety ceilings for custom expansion. Heuristic guards against rules
// with no natural termination or intervals that stall progress.
const (
	MaxOccurrences = 365
	MaxIterations  = 365
)

const (
	defaultCount    = 7
	defaultInterval = 1
	defaultEndCount = 30
)

// Expand computes the ordered occurrence dates for a recurrence rule
// anchored at the given date. Time-of-day on the anchor is discarded;
// every returned date is midnight in the anchor's location.
//
// Expand never fails: missing or malformed rule fields fall back to their
// defaults, and an unrecognized type behaves as "none". The result is
// strictly increasing with no duplicates.
func Expand(anchor time.Time, rule model.RecurrenceRule) []time.Time {
	day := truncateToDay(anchor)

	switch rule.Type {
	case model.RecurrenceDaily:
		return expandFixed(day, rule.Count, 0, 0, 1)
	case model.RecurrenceWeekly:
		return expandFixed(day, rule.Count, 0, 0, 7)
	case model.RecurrenceMonthly:
		return expandFixed(day, rule.Count, 0, 1, 0)
	case model.RecurrenceCustom:
		return expandCustom(day, rule)
	default:
		// none, or anything unrecognized
		return []time.Time{day}
	}
}

// expandFixed handles daily/weekly/monthly: count occurrences, each the
// i-th year/month/day increment of the anchor. Computing from the anchor
// rather than cumulatively keeps the monthly branch pinned to the
// anchor's day-of-month (Go's AddDate rolls an overflowing day into the
// next month, so 2024-01-31 plus two months is still 2024-03-31).
func expandFixed(anchor time.Time, count *int, years, months, days int) []time.Time {
	n := defaultCount
	if count != nil {
		n = *count
	}
	if n <= 0 {
		return []time.Time{}
	}

	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, anchor.AddDate(years*i, months*i, days*i))
	}
	return dates
}

func expandCustom(anchor time.Time, rule model.RecurrenceRule) []time.Time {
	interval := defaultInterval
	if rule.CustomInterval != nil {
		interval = *rule.CustomInterval
	}

	endType := rule.CustomEndType
	switch endType {
	case model.EndDate:
		if rule.CustomEndDate == nil {
			endType = model.EndNever
		}
	case model.EndCount:
	default:
		endType = model.EndNever
	}

	endCount := defaultEndCount
	if rule.CustomEndCount != nil {
		endCount = *rule.CustomEndCount
	}

	var endDate time.Time
	if rule.CustomEndDate != nil {
		endDate = truncateToDay(*rule.CustomEndDate)
	}

	dates := make([]time.Time, 0)
	current := anchor
	for i := 0; i < MaxIterations; i++ {
		// Stop conditions are checked before appending.
		if endType == model.EndDate && current.After(endDate) {
			break
		}
		if endType == model.EndCount && len(dates) >= endCount {
			break
		}
		if len(dates) >= MaxOccurrences {
			break
		}

		// A non-positive interval never advances the date; appending
		// only strictly later dates keeps the output duplicate-free
		// while the iteration cap bounds the loop.
		if len(dates) == 0 || current.After(dates[len(dates)-1]) {
			dates = append(dates, current)
		}

		current = step(current, rule.CustomUnit, interval)
	}
	return dates
}

func step(date time.Time, unit model.RecurrenceUnit, interval int) time.Time {
	switch unit {
	case model.UnitWeek:
		return date.AddDate(0, 0, 7*interval)
	case model.UnitMonth:
		return date.AddDate(0, interval, 0)
	case model.UnitYear:
		return date.AddDate(interval, 0, 0)
	default:
		return date.AddDate(0, 0, interval)
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDate renders a date the way the API stores calendar days.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
