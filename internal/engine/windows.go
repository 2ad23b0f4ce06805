package engine

import (
	"github.com/workpulse/backend/internal/models"
)

// Rolling 4-week weekly-average status thresholds, in hours per week.
const (
	loadSustainableMax = 60.0
	loadActiveMax      = 75.0
	loadCautionMax     = 80.0
)

// AggregateWindows computes the zero-filled trailing-window sums and the
// derived load ratios. Calendar days inside a window that have no complete
// interval contribute exactly 0 hours, and every average divides by the
// window length, so sparse logging pulls averages down instead of being
// ignored.
func AggregateWindows(intervals []NormalizedInterval, today models.CivilDate) models.WindowReport {
	byDay := hoursByDay(intervals)

	report := models.WindowReport{
		HasData:    len(intervals) > 0,
		Last7Days:  summarizeWindow(byDay, today, 7),
		Last28Days: summarizeWindow(byDay, today, 28),
		Last30Days: summarizeWindow(byDay, today, 30),
		Last90Days: summarizeWindow(byDay, today, 90),
	}

	report.LoadIntensity = loadIntensity(report.Last7Days, report.Last90Days)
	report.RollingFourWeek = rollingFourWeek(report.Last28Days, report.HasData)
	report.WorstWeek = worstWeek(intervals)

	return report
}

// summarizeWindow walks the explicit list of the last n calendar dates,
// today inclusive, looking up hours for each.
func summarizeWindow(byDay map[string]float64, today models.CivilDate, n int) models.WindowSummary {
	var total float64
	logged := 0

	for i := 0; i < n; i++ {
		day := today.AddDays(-i)
		if hours, ok := byDay[day.Key()]; ok {
			total += hours
			logged++
		}
	}

	dailyAvg := total / float64(n)
	return models.WindowSummary{
		Days:          n,
		TotalHours:    total,
		DailyAverage:  dailyAvg,
		WeeklyAverage: dailyAvg * 7,
		LoggedDays:    logged,
	}
}

// loadIntensity is the short-term vs long-term daily average, as a percent.
// A zero 90-day average makes the ratio meaningless, not infinite.
func loadIntensity(last7, last90 models.WindowSummary) models.LoadIntensity {
	if last90.DailyAverage == 0 {
		return models.LoadIntensity{Measurable: false}
	}
	return models.LoadIntensity{
		Measurable: true,
		Index:      last7.DailyAverage / last90.DailyAverage * 100,
	}
}

func rollingFourWeek(last28 models.WindowSummary, hasData bool) models.RollingFourWeek {
	if !hasData {
		return models.RollingFourWeek{Measurable: false}
	}
	weekly := last28.WeeklyAverage
	return models.RollingFourWeek{
		Measurable:    true,
		WeeklyAverage: weekly,
		Status:        loadStatusFor(weekly),
	}
}

func loadStatusFor(weeklyHours float64) models.LoadStatus {
	switch {
	case weeklyHours < loadSustainableMax:
		return models.LoadStatusSustainable
	case weeklyHours <= loadActiveMax:
		return models.LoadStatusActive
	case weeklyHours <= loadCautionMax:
		return models.LoadStatusCaution
	default:
		return models.LoadStatusCritical
	}
}

// worstWeek finds the heaviest week across the user's entire history, with
// weeks anchored to end on Sunday. Ties keep the earliest week.
func worstWeek(intervals []NormalizedInterval) models.WorstWeek {
	if len(intervals) == 0 {
		return models.WorstWeek{Found: false}
	}

	totals := make(map[string]float64)
	endings := make(map[string]models.CivilDate)
	for _, iv := range intervals {
		end := weekEndingSunday(iv.Date)
		totals[end.Key()] += iv.DailyHours
		endings[end.Key()] = end
	}

	var worst models.WorstWeek
	for key, total := range totals {
		end := endings[key]
		if !worst.Found ||
			total > worst.TotalHours ||
			(total == worst.TotalHours && end.Before(worst.WeekEnding.Time)) {
			worst = models.WorstWeek{Found: true, WeekEnding: end, TotalHours: total}
		}
	}
	return worst
}

// weekEndingSunday returns the Sunday on or after the given date.
// time.Weekday numbers Sunday as 0, so the modulo lands on it directly.
func weekEndingSunday(d models.CivilDate) models.CivilDate {
	daysUntil := (7 - int(d.Weekday())) % 7
	return d.AddDays(daysUntil)
}
