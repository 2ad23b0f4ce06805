package engine

import (
	"sort"

	"github.com/workpulse/backend/internal/models"
)

const (
	// HeatmapWindowDays is the trailing window the bucket grid is built from.
	HeatmapWindowDays = 180

	// worstBucketCount is how many top buckets get flagged for highlighting.
	worstBucketCount = 5
)

// ProjectHourBuckets builds the 7x24 day-of-week x hour-of-day grid from the
// trailing 180 days of complete intervals. An interval contributes its full
// DailyHours to every hour bucket it touches (including hours reached through
// the midnight wrap), modelling "intensity of a day during which this hour
// was worked" rather than minutes inside the hour. Overnight hours stay on
// the starting date's weekday row.
func ProjectHourBuckets(intervals []NormalizedInterval, today models.CivilDate) *models.Heatmap {
	type bucketAccum struct {
		total       float64
		occurrences int
		worst       float64
		dates       map[string]struct{}
	}

	var grid [7][24]bucketAccum
	sampleDates := make(map[string]struct{})

	for _, iv := range intervals {
		if !withinTrailing(iv.Date, today, HeatmapWindowDays) {
			continue
		}
		sampleDates[iv.Date.Key()] = struct{}{}
		row := weekdayIndex(iv.Date)

		for hour := 0; hour < 24; hour++ {
			hourStart := hour * 60
			hourEnd := hourStart + 60

			touched := overlapMinutes(iv.StartMinutes, iv.EndMinutes, hourStart, hourEnd) > 0
			if !touched && iv.EndMinutes > minutesPerDay {
				// Wrapped equivalent: the portion past midnight maps back
				// onto the 0..1440 clock.
				touched = overlapMinutes(iv.StartMinutes-minutesPerDay, iv.EndMinutes-minutesPerDay, hourStart, hourEnd) > 0
			}
			if !touched {
				continue
			}

			b := &grid[row][hour]
			b.total += iv.DailyHours
			b.occurrences++
			if iv.DailyHours > b.worst {
				b.worst = iv.DailyHours
			}
			if b.dates == nil {
				b.dates = make(map[string]struct{})
			}
			b.dates[iv.Date.Key()] = struct{}{}
		}
	}

	heatmap := &models.Heatmap{
		WindowDays: HeatmapWindowDays,
		SampleDays: len(sampleDates),
	}
	for row := 0; row < 7; row++ {
		for hour := 0; hour < 24; hour++ {
			b := grid[row][hour]
			out := models.HourBucket{
				Weekday:      row,
				Hour:         hour,
				TotalHours:   b.total,
				Occurrences:  b.occurrences,
				WorstHours:   b.worst,
				DistinctDays: len(b.dates),
			}
			if out.DistinctDays > 0 {
				out.AvgHours = out.TotalHours / float64(out.DistinctDays)
			}
			heatmap.Buckets[row][hour] = out
		}
	}

	heatmap.WorstBuckets = worstBuckets(heatmap)
	return heatmap
}

// worstBuckets ranks touched buckets by average hours, descending. Equal
// averages break toward the earlier weekday (Monday first), then the earlier
// hour, so the flagged set never depends on iteration order.
func worstBuckets(heatmap *models.Heatmap) []models.HourBucket {
	candidates := make([]models.HourBucket, 0, 7*24)
	for row := 0; row < 7; row++ {
		for hour := 0; hour < 24; hour++ {
			if b := heatmap.Buckets[row][hour]; b.DistinctDays > 0 {
				candidates = append(candidates, b)
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.AvgHours != b.AvgHours {
			return a.AvgHours > b.AvgHours
		}
		if a.Weekday != b.Weekday {
			return a.Weekday < b.Weekday
		}
		return a.Hour < b.Hour
	})

	if len(candidates) > worstBucketCount {
		candidates = candidates[:worstBucketCount]
	}
	return candidates
}
