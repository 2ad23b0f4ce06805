package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/backend/internal/models"
)

func TestProjectHourBuckets_OvernightWraparound(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	// Monday 23:00-02:00: must touch hours 23, 0, and 1, all on the Monday
	// row, each carrying the full daily hours.
	intervals := NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-09", "23:00", "02:00", 3.0),
	})

	heatmap := ProjectHourBuckets(intervals, today)

	monday := 0
	touched := 0
	for hour := 0; hour < 24; hour++ {
		b := heatmap.Buckets[monday][hour]
		if b.Occurrences == 0 {
			continue
		}
		touched++
		assert.Contains(t, []int{23, 0, 1}, hour)
		assert.Equal(t, 3.0, b.TotalHours)
		assert.Equal(t, 3.0, b.WorstHours)
		assert.Equal(t, 1, b.DistinctDays)
		assert.Equal(t, 3.0, b.AvgHours)
	}
	assert.Equal(t, 3, touched)

	// Nothing bleeds onto the Tuesday row.
	for hour := 0; hour < 24; hour++ {
		assert.Zero(t, heatmap.Buckets[1][hour].Occurrences)
	}
}

func TestProjectHourBuckets_FullDayAttribution(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	// A 10h Tuesday: every touched bucket carries the full 10h, not the
	// one-hour slice.
	intervals := NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-10", "09:00", "19:00", 10.0),
	})

	heatmap := ProjectHourBuckets(intervals, today)
	tuesday := 1
	for hour := 9; hour < 19; hour++ {
		b := heatmap.Buckets[tuesday][hour]
		assert.Equal(t, 10.0, b.TotalHours, "hour %d", hour)
		assert.Equal(t, 10.0, b.AvgHours, "hour %d", hour)
	}
	assert.Zero(t, heatmap.Buckets[tuesday][8].Occurrences)
	assert.Zero(t, heatmap.Buckets[tuesday][19].Occurrences)
}

func TestProjectHourBuckets_DistinctDatesNotDoubleCounted(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	// Two intervals on the same date overlapping the same hour: occurrence
	// count goes to 2 but the date set stays at 1.
	intervals := NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-10", "09:00", "12:00", 3.0),
		completeInterval(t, "2025-06-10", "11:00", "14:00", 3.0),
	})

	heatmap := ProjectHourBuckets(intervals, today)
	b := heatmap.Buckets[1][11]
	assert.Equal(t, 2, b.Occurrences)
	assert.Equal(t, 1, b.DistinctDays)
	assert.Equal(t, 6.0, b.TotalHours)
	assert.Equal(t, 6.0, b.AvgHours, "avg divides by distinct dates, not occurrences")
}

func TestProjectHourBuckets_AveragesAcrossDays(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	// Two Mondays a week apart hitting hour 9: 8h and 12h days.
	intervals := NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-02", "09:00", "17:00", 8.0),
		completeInterval(t, "2025-06-09", "09:00", "21:00", 12.0),
	})

	heatmap := ProjectHourBuckets(intervals, today)
	b := heatmap.Buckets[0][9]
	assert.Equal(t, 20.0, b.TotalHours)
	assert.Equal(t, 2, b.DistinctDays)
	assert.Equal(t, 10.0, b.AvgHours)
	assert.Equal(t, 12.0, b.WorstHours)
}

func TestProjectHourBuckets_TrailingWindow(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	intervals := NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-10", "09:00", "10:00", 1.0),
		// Just under a year old: outside the 180-day window.
		completeInterval(t, "2024-07-01", "09:00", "10:00", 9.0),
	})

	heatmap := ProjectHourBuckets(intervals, today)
	assert.Equal(t, 1, heatmap.SampleDays)
	var total float64
	for row := 0; row < 7; row++ {
		for hour := 0; hour < 24; hour++ {
			total += heatmap.Buckets[row][hour].TotalHours
		}
	}
	assert.Equal(t, 1.0, total)
}

func TestWorstBuckets_DeterministicTieBreak(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	// Two identical 8h days on different weekdays produce equal averages in
	// every touched bucket; ranking must still be stable: Monday rows come
	// before Tuesday, earlier hours first.
	intervals := NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-09", "09:00", "11:00", 8.0),
		completeInterval(t, "2025-06-10", "09:00", "11:00", 8.0),
	})

	heatmap := ProjectHourBuckets(intervals, today)
	require.Len(t, heatmap.WorstBuckets, 4)

	got := make([][2]int, 0, 4)
	for _, b := range heatmap.WorstBuckets {
		got = append(got, [2]int{b.Weekday, b.Hour})
	}
	assert.Equal(t, [][2]int{{0, 9}, {0, 10}, {1, 9}, {1, 10}}, got)
}

func TestWorstBuckets_TopFiveByAverage(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	intervals := NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-02", "08:00", "20:00", 12.0),
		completeInterval(t, "2025-06-10", "09:00", "10:00", 2.0),
	})

	heatmap := ProjectHourBuckets(intervals, today)
	require.Len(t, heatmap.WorstBuckets, 5)
	for _, b := range heatmap.WorstBuckets {
		assert.Equal(t, 12.0, b.AvgHours, "the heavy Monday dominates the top five")
		assert.Equal(t, 0, b.Weekday)
	}
	assert.Equal(t, 8, heatmap.WorstBuckets[0].Hour)
	assert.Equal(t, 12, heatmap.WorstBuckets[4].Hour)
}
