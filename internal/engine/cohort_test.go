package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/backend/internal/models"
)

func testSummary(userCount int) *models.CohortSummary {
	return &models.CohortSummary{
		CohortKey:         "associate|emea",
		UserCount:         userCount,
		P25WeeklyHours:    42,
		MedianWeeklyHours: 50,
		P75WeeklyHours:    61,
	}
}

func TestCompareCohort_AnonymityFloor(t *testing.T) {
	// Four users is below the floor: no percentile detail may leak, no
	// matter how extreme the user's own metric is.
	result := CompareCohort(120, testSummary(4))

	assert.False(t, result.Available)
	assert.Equal(t, ReasonInsufficientCohort, result.Reason)
	assert.Empty(t, result.Standing)
	assert.Zero(t, result.P25WeeklyHours)
	assert.Zero(t, result.MedianWeeklyHours)
	assert.Zero(t, result.P75WeeklyHours)
	assert.Zero(t, result.UserCount)
}

func TestCompareCohort_NilSummary(t *testing.T) {
	result := CompareCohort(50, nil)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonInsufficientCohort, result.Reason)
}

func TestCompareCohort_Standings(t *testing.T) {
	tests := []struct {
		name   string
		weekly float64
		want   models.CohortStanding
	}{
		{name: "above p75", weekly: 70, want: models.StandingAboveP75},
		{name: "above median", weekly: 55, want: models.StandingAboveMedian},
		{name: "below p25", weekly: 30, want: models.StandingBelowP25},
		{name: "below median", weekly: 45, want: models.StandingBelowMedian},
		{name: "on par", weekly: 50, want: models.StandingOnPar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompareCohort(tt.weekly, testSummary(12))
			require.True(t, result.Available)
			assert.Equal(t, tt.want, result.Standing)
			assert.Equal(t, 12, result.UserCount)
			assert.Equal(t, 50.0, result.MedianWeeklyHours)
		})
	}
}

func TestCompareToMean(t *testing.T) {
	tests := []struct {
		name   string
		user   float64
		mean   float64
		want   models.CohortStanding
		wantOK bool
	}{
		{name: "on par within band", user: 52, mean: 50, want: models.StandingOnPar, wantOK: true},
		{name: "exactly at band edge", user: 55, mean: 50, want: models.StandingOnPar, wantOK: true},
		{name: "above", user: 60, mean: 50, want: models.StandingAboveMedian, wantOK: true},
		{name: "below", user: 40, mean: 50, want: models.StandingBelowMedian, wantOK: true},
		{name: "zero mean unmeasurable", user: 40, mean: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CompareToMean(tt.user, tt.mean)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
