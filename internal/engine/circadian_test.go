package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/backend/internal/models"
)

func TestLateNightOverlap(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "entirely daytime", start: "09:00", end: "17:00", want: 0},
		{name: "evening into band", start: "20:00", end: "23:30", want: 90},
		{name: "overnight inside band", start: "23:00", end: "02:00", want: 180},
		{name: "overnight past band end", start: "23:00", end: "08:00", want: 420},
		{name: "early morning start", start: "04:00", end: "12:00", want: 120},
		{name: "ends at band start", start: "18:00", end: "22:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, ok := Normalize(completeInterval(t, "2025-06-02", tt.start, tt.end, 1.0))
			require.True(t, ok)
			assert.Equal(t, tt.want, lateNightOverlap(iv.StartMinutes, iv.EndMinutes))
		})
	}
}

func TestAnalyzeCircadian_RatioAndBand(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	// 3.5h ending at 23:30 (1.5h inside the band) plus 3.5h of daytime work:
	// 1.5 / 7 = 21.4%, critical.
	intervals := NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-09", "20:00", "23:30", 3.5),
		completeInterval(t, "2025-06-10", "09:00", "12:30", 3.5),
	})

	result := AnalyzeCircadian(intervals, today)
	require.True(t, result.Measurable)
	assert.InDelta(t, 1.5, result.LateNightHours, 1e-9)
	assert.InDelta(t, 7.0, result.TotalHours, 1e-9)
	assert.InDelta(t, 21.428571, result.RatioPercent, 1e-4)
	assert.Equal(t, models.CircadianCritical, result.Band)
}

func TestAnalyzeCircadian_WindowRestriction(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	intervals := NormalizeAll([]models.WorkInterval{
		completeInterval(t, "2025-06-10", "09:00", "17:00", 8.0),
		// 40 days back: excluded from the 30-day window.
		completeInterval(t, "2025-05-02", "22:00", "23:00", 1.0),
	})

	result := AnalyzeCircadian(intervals, today)
	require.True(t, result.Measurable)
	assert.Zero(t, result.LateNightHours)
	assert.Equal(t, 8.0, result.TotalHours)
	assert.Equal(t, models.CircadianHealthy, result.Band)
}

func TestAnalyzeCircadian_Unmeasurable(t *testing.T) {
	today := mustDate(t, "2025-06-11")
	result := AnalyzeCircadian(nil, today)
	assert.False(t, result.Measurable, "zero window hours must not read as a measured 0% ratio")
	assert.Zero(t, result.RatioPercent)
}

func TestCircadianBands(t *testing.T) {
	tests := []struct {
		ratio float64
		want  models.CircadianBand
	}{
		{ratio: 0, want: models.CircadianHealthy},
		{ratio: 9.9, want: models.CircadianHealthy},
		{ratio: 10, want: models.CircadianModerate},
		{ratio: 14.9, want: models.CircadianModerate},
		{ratio: 15, want: models.CircadianHigh},
		{ratio: 19.9, want: models.CircadianHigh},
		{ratio: 20, want: models.CircadianCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, circadianBandFor(tt.ratio), "ratio=%v", tt.ratio)
	}
}
