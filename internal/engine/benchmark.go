package engine

import (
	"math"
	"sort"

	"github.com/workpulse/backend/internal/models"
)

const (
	// Per-bucket severity thresholds, in hours of deviation.
	diffStrongHours   = 3.0
	diffModerateHours = 1.0

	// Weekend overage: positive diffs on Saturday/Sunday buckets where the
	// user averages over 4h count toward the aggregate; past 4h total the
	// alert fires.
	weekendUserHoursMin   = 4.0
	weekendAlertThreshold = 4.0

	// Late-night overage: positive diffs over 2h in any 22:00-05:00 bucket
	// count; past 2h total the alert fires.
	lateNightDiffMin        = 2.0
	lateNightAlertThreshold = 2.0

	worstDeviationCount = 5
)

// DiffBenchmark subtracts a static reference grid from the user's hour-bucket
// grid, classifies every cell into a severity band, and derives the weekend
// and late-night aggregate alerts.
func DiffBenchmark(heatmap *models.Heatmap, grid *models.BenchmarkGrid) *models.BenchmarkReport {
	report := &models.BenchmarkReport{}

	for row := 0; row < 7; row++ {
		for hour := 0; hour < 24; hour++ {
			user := heatmap.Buckets[row][hour].AvgHours
			ref := grid[row][hour]
			diff := user - ref

			report.Diffs[row][hour] = models.BucketDiff{
				Weekday:      row,
				Hour:         hour,
				UserAvg:      user,
				BenchmarkAvg: ref,
				Diff:         diff,
				Severity:     severityFor(diff),
			}

			if isWeekendRow(row) && diff > 0 && user > weekendUserHoursMin {
				report.WeekendOverage += diff
			}
			if isLateNightHour(hour) && diff > lateNightDiffMin {
				report.LateNightOverage += diff
			}
		}
	}

	report.WeekendAlert = report.WeekendOverage > weekendAlertThreshold
	report.LateNightAlert = report.LateNightOverage > lateNightAlertThreshold
	report.WorstDeviations = worstDeviations(report)

	return report
}

// severityFor maps a deviation to its band. Zero falls in slightly-over, the
// 0..1 band.
func severityFor(diff float64) models.DiffSeverity {
	switch {
	case diff < -diffStrongHours:
		return models.SeverityStronglyUnder
	case diff < -diffModerateHours:
		return models.SeverityModeratelyUnder
	case diff < 0:
		return models.SeveritySlightlyUnder
	case diff <= diffModerateHours:
		return models.SeveritySlightlyOver
	case diff <= diffStrongHours:
		return models.SeverityModeratelyOver
	default:
		return models.SeverityStronglyOver
	}
}

// isWeekendRow reports whether a grid row is Saturday or Sunday (rows are
// Monday-first).
func isWeekendRow(row int) bool {
	return row == 5 || row == 6
}

// isLateNightHour covers the 22:00-05:00 alert band.
func isLateNightHour(hour int) bool {
	return hour >= 22 || hour < 5
}

// worstDeviations ranks all buckets by absolute deviation, descending, with
// the same weekday-then-hour tie-break the heatmap uses.
func worstDeviations(report *models.BenchmarkReport) []models.BucketDiff {
	flat := make([]models.BucketDiff, 0, 7*24)
	for row := 0; row < 7; row++ {
		for hour := 0; hour < 24; hour++ {
			flat = append(flat, report.Diffs[row][hour])
		}
	}

	sort.Slice(flat, func(i, j int) bool {
		a, b := flat[i], flat[j]
		absA, absB := math.Abs(a.Diff), math.Abs(b.Diff)
		if absA != absB {
			return absA > absB
		}
		if a.Weekday != b.Weekday {
			return a.Weekday < b.Weekday
		}
		return a.Hour < b.Hour
	})

	if len(flat) > worstDeviationCount {
		flat = flat[:worstDeviationCount]
	}
	return flat
}
