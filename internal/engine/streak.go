package engine

import (
	"github.com/workpulse/backend/internal/models"
)

// maxStreakLookback bounds the backward walk so an unbroken multi-year log
// still terminates; two years of weekdays is far past any plausible streak.
const maxStreakLookback = 730

// TrackStreak counts the current run of consecutive weekdays, ending at the
// reference date, that each have a complete interval logged. Saturdays and
// Sundays are skipped outright: they neither extend nor break the run. The
// walk stops at the first weekday with nothing logged.
func TrackStreak(intervals []NormalizedInterval, today models.CivilDate) models.StreakResult {
	logged := make(map[string]struct{}, len(intervals))
	for _, iv := range intervals {
		logged[iv.Date.Key()] = struct{}{}
	}

	streak := 0
	day := today
	for i := 0; i < maxStreakLookback; i++ {
		if day.IsWeekend() {
			day = day.AddDays(-1)
			continue
		}
		if _, ok := logged[day.Key()]; !ok {
			break
		}
		streak++
		day = day.AddDays(-1)
	}

	return models.StreakResult{Days: streak}
}
