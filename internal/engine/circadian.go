package engine

import (
	"github.com/workpulse/backend/internal/models"
)

const (
	// CircadianWindowDays is the trailing window the red-eye ratio covers.
	CircadianWindowDays = 30

	// The late-night band runs 22:00-06:00. In minute space that's
	// [1320, 1800) across midnight plus [0, 360) for shifts that start in
	// the early morning.
	lateNightStart  = 22 * 60
	lateNightEnd    = 30 * 60
	earlyMorningEnd = 6 * 60

	// Red-eye ratio band thresholds, in percent.
	circadianModerateMin = 10.0
	circadianHighMin     = 15.0
	circadianCriticalMin = 20.0
)

// AnalyzeCircadian computes the red-eye ratio: the share of work time inside
// the late-night band over the trailing 30 days of complete intervals. With
// no hours in the window the result is flagged unmeasurable rather than
// reported as a true zero.
func AnalyzeCircadian(intervals []NormalizedInterval, today models.CivilDate) models.CircadianResult {
	var lateMinutes int
	var totalHours float64

	for _, iv := range intervals {
		if !withinTrailing(iv.Date, today, CircadianWindowDays) {
			continue
		}
		lateMinutes += lateNightOverlap(iv.StartMinutes, iv.EndMinutes)
		totalHours += iv.DailyHours
	}

	if totalHours == 0 {
		return models.CircadianResult{Measurable: false, Band: models.CircadianHealthy}
	}

	lateHours := float64(lateMinutes) / 60
	ratio := lateHours / totalHours * 100

	return models.CircadianResult{
		Measurable:     true,
		LateNightHours: lateHours,
		TotalHours:     totalHours,
		RatioPercent:   ratio,
		Band:           circadianBandFor(ratio),
	}
}

// lateNightOverlap measures how many minutes of [start, end) fall inside the
// 22:00-06:00 band. The [1320, 1800) segment covers the evening side and the
// post-midnight stretch of overnight shifts; the [0, 360) segment covers
// shifts that start before 06:00.
func lateNightOverlap(start, end int) int {
	return overlapMinutes(start, end, lateNightStart, lateNightEnd) +
		overlapMinutes(start, end, 0, earlyMorningEnd)
}

func circadianBandFor(ratioPercent float64) models.CircadianBand {
	switch {
	case ratioPercent < circadianModerateMin:
		return models.CircadianHealthy
	case ratioPercent < circadianHighMin:
		return models.CircadianModerate
	case ratioPercent < circadianCriticalMin:
		return models.CircadianHigh
	default:
		return models.CircadianCritical
	}
}
