package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/backend/internal/models"
)

func TestSeverityBands(t *testing.T) {
	tests := []struct {
		diff float64
		want models.DiffSeverity
	}{
		{diff: -5, want: models.SeverityStronglyUnder},
		{diff: -3, want: models.SeverityModeratelyUnder},
		{diff: -1.5, want: models.SeverityModeratelyUnder},
		{diff: -1, want: models.SeveritySlightlyUnder},
		{diff: -0.2, want: models.SeveritySlightlyUnder},
		{diff: 0, want: models.SeveritySlightlyOver},
		{diff: 1, want: models.SeveritySlightlyOver},
		{diff: 2.5, want: models.SeverityModeratelyOver},
		{diff: 3, want: models.SeverityModeratelyOver},
		{diff: 3.1, want: models.SeverityStronglyOver},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, severityFor(tt.diff), "diff=%v", tt.diff)
	}
}

func TestDiffBenchmark_PerBucket(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	heatmap := ProjectHourBuckets(NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-09", "09:00", "19:00", 10.0), // Monday
	}), today)

	var grid models.BenchmarkGrid
	grid[0][9] = 8.0 // Monday 09:00 reference
	grid[0][12] = 12.0

	report := DiffBenchmark(heatmap, &grid)

	d := report.Diffs[0][9]
	assert.Equal(t, 10.0, d.UserAvg)
	assert.Equal(t, 8.0, d.BenchmarkAvg)
	assert.Equal(t, 2.0, d.Diff)
	assert.Equal(t, models.SeverityModeratelyOver, d.Severity)

	under := report.Diffs[0][12]
	assert.Equal(t, -2.0, under.Diff)
	assert.Equal(t, models.SeverityModeratelyUnder, under.Severity)
}

func TestDiffBenchmark_WeekendAlert(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	// Heavy Saturdays against a zero weekend benchmark: each touched bucket
	// averages 6h (>4h user minimum), and the positive diffs accumulate far
	// past the 4h alert threshold.
	heatmap := ProjectHourBuckets(NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-07", "10:00", "16:00", 6.0),
	}), today)

	var grid models.BenchmarkGrid
	report := DiffBenchmark(heatmap, &grid)

	assert.Equal(t, 36.0, report.WeekendOverage, "six 6h buckets of pure overage")
	assert.True(t, report.WeekendAlert)
	assert.False(t, report.LateNightAlert)
}

func TestDiffBenchmark_LateNightAlert(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	// A 23:00-01:00 Monday shift with 5h daily total: buckets 23, 0 carry a
	// 5h positive diff each, both above the 2h per-bucket minimum.
	heatmap := ProjectHourBuckets(NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-09", "23:00", "01:00", 5.0),
	}), today)

	var grid models.BenchmarkGrid
	report := DiffBenchmark(heatmap, &grid)

	assert.Equal(t, 10.0, report.LateNightOverage)
	assert.True(t, report.LateNightAlert)
	assert.False(t, report.WeekendAlert, "weekday late work does not trip the weekend alert")
}

func TestDiffBenchmark_WorstDeviations(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	heatmap := ProjectHourBuckets(NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-09", "09:00", "11:00", 9.0),
	}), today)

	var grid models.BenchmarkGrid
	grid[2][14] = 6.0 // Wednesday reference hour the user never works

	report := DiffBenchmark(heatmap, &grid)
	require.Len(t, report.WorstDeviations, 5)

	// Two +9 buckets rank first (Monday 9 and 10), then the -6 Wednesday.
	assert.Equal(t, 9.0, report.WorstDeviations[0].Diff)
	assert.Equal(t, 0, report.WorstDeviations[0].Weekday)
	assert.Equal(t, 9, report.WorstDeviations[0].Hour)
	assert.Equal(t, 9.0, report.WorstDeviations[1].Diff)
	assert.Equal(t, 10, report.WorstDeviations[1].Hour)
	assert.Equal(t, -6.0, report.WorstDeviations[2].Diff)
	assert.Equal(t, 2, report.WorstDeviations[2].Weekday)

	// The remaining slots are zero-diff buckets in deterministic order.
	assert.Equal(t, 0.0, report.WorstDeviations[3].Diff)
	assert.Equal(t, [2]int{0, 0}, [2]int{report.WorstDeviations[3].Weekday, report.WorstDeviations[3].Hour})
	assert.Equal(t, [2]int{0, 1}, [2]int{report.WorstDeviations[4].Weekday, report.WorstDeviations[4].Hour})
}
