// Package engine implements the work-pattern analytics engine: window
// aggregations, hour-bucket projection, streak and circadian analysis, the
// composite risk score, cohort comparison, and benchmark diffing. Every
// function is a pure function of its inputs; the reference date ("today") is
// always passed in explicitly so results are deterministic and testable.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/workpulse/backend/internal/models"
)

const minutesPerDay = 24 * 60

// NormalizedInterval is a complete work interval resolved to a
// minutes-since-midnight range. EndMinutes may exceed 1440 when the shift
// crosses midnight. DailyHours carries the stored computed total for the day;
// the normalizer never re-derives it from the times.
type NormalizedInterval struct {
	Date         models.CivilDate
	StartMinutes int
	EndMinutes   int
	DailyHours   float64
}

// parseClock parses an "HH:MM" wall-clock string into minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hour*60 + minute, nil
}

// Normalize resolves a raw interval into its wraparound-adjusted minute
// range. The second return value is false for incomplete intervals (either
// time missing) and for malformed times; such intervals are excluded from
// bucket, circadian, and streak analysis without failing the batch.
func Normalize(iv models.WorkInterval) (NormalizedInterval, bool) {
	if !iv.HasTimes() {
		return NormalizedInterval{}, false
	}

	start, err := parseClock(*iv.StartTime)
	if err != nil {
		return NormalizedInterval{}, false
	}
	end, err := parseClock(*iv.EndTime)
	if err != nil {
		return NormalizedInterval{}, false
	}

	// end <= start means the shift ran past midnight
	if end <= start {
		end += minutesPerDay
	}

	return NormalizedInterval{
		Date:         iv.Date,
		StartMinutes: start,
		EndMinutes:   end,
		DailyHours:   iv.ComputedHours,
	}, true
}

// NormalizeAll filters a raw interval list down to its complete, well-formed
// members. Order follows the input; malformed entries are dropped silently.
func NormalizeAll(intervals []models.WorkInterval) []NormalizedInterval {
	normalized := make([]NormalizedInterval, 0, len(intervals))
	for _, iv := range intervals {
		n, ok := Normalize(iv)
		if !ok {
			continue
		}
		normalized = append(normalized, n)
	}
	return normalized
}

// hoursByDay indexes total daily hours by calendar-day key. Multiple
// intervals on the same date sum, though one per day is the expected shape.
func hoursByDay(intervals []NormalizedInterval) map[string]float64 {
	byDay := make(map[string]float64, len(intervals))
	for _, iv := range intervals {
		byDay[iv.Date.Key()] += iv.DailyHours
	}
	return byDay
}

// weekdayIndex maps a calendar date to the 0=Monday..6=Sunday row used by
// the hour-bucket grid.
func weekdayIndex(d models.CivilDate) int {
	return (int(d.Weekday()) + 6) % 7
}

// overlapMinutes returns the length of the intersection of [aStart, aEnd)
// and [bStart, bEnd).
func overlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end <= start {
		return 0
	}
	return end - start
}

// withinTrailing reports whether date falls inside the trailing window of
// `days` calendar days ending at (and including) today.
func withinTrailing(date, today models.CivilDate, days int) bool {
	earliest := today.AddDays(-(days - 1))
	return !date.Before(earliest.Time) && !date.After(today.Time)
}
