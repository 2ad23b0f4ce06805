package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/backend/internal/models"
)

// mockCohortRepository is an in-memory CohortRepository for testing
type mockCohortRepository struct {
	summaries    map[string]*models.CohortSummary
	weeklyTotals map[string][]float64
}

func newMockCohortRepository() *mockCohortRepository {
	return &mockCohortRepository{
		summaries:    make(map[string]*models.CohortSummary),
		weeklyTotals: make(map[string][]float64),
	}
}

func (m *mockCohortRepository) GetSummary(ctx context.Context, cohortKey string) (*models.CohortSummary, error) {
	return m.summaries[cohortKey], nil
}

func (m *mockCohortRepository) GetWeeklyTotals(ctx context.Context, cohortKey string) ([]float64, error) {
	return m.weeklyTotals[cohortKey], nil
}

func TestGetSummary_PrecomputedWins(t *testing.T) {
	ctx := context.Background()
	repo := newMockCohortRepository()
	repo.summaries["eng"] = &models.CohortSummary{
		CohortKey:         "eng",
		UserCount:         12,
		MedianWeeklyHours: 41,
	}
	repo.weeklyTotals["eng"] = []float64{10, 20, 30}

	svc := NewCohortService(repo)
	summary, err := svc.GetSummary(ctx, "eng")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 12, summary.UserCount)
	assert.Equal(t, 41.0, summary.MedianWeeklyHours)
}

func TestGetSummary_BuiltFromWeeklyTotals(t *testing.T) {
	ctx := context.Background()
	repo := newMockCohortRepository()
	repo.weeklyTotals["eng"] = []float64{50, 30, 40, 35, 45, 38, 42, 36}

	svc := NewCohortService(repo)
	summary, err := svc.GetSummary(ctx, "eng")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "eng", summary.CohortKey)
	assert.Equal(t, 8, summary.UserCount)
	assert.Greater(t, summary.MedianWeeklyHours, summary.P25WeeklyHours)
	assert.Greater(t, summary.P75WeeklyHours, summary.MedianWeeklyHours)
}

func TestGetSummary_UnknownCohort(t *testing.T) {
	ctx := context.Background()
	svc := NewCohortService(newMockCohortRepository())

	summary, err := svc.GetSummary(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestBuildCohortSummary_Percentiles(t *testing.T) {
	totals := []float64{30, 35, 40, 45, 50}

	summary := BuildCohortSummary("eng", totals)
	assert.Equal(t, 5, summary.UserCount)
	assert.Equal(t, 35.0, summary.P25WeeklyHours)
	assert.Equal(t, 40.0, summary.MedianWeeklyHours)
	assert.Equal(t, 45.0, summary.P75WeeklyHours)

	// Input order must not matter.
	shuffled := []float64{50, 30, 45, 35, 40}
	again := BuildCohortSummary("eng", shuffled)
	assert.Equal(t, summary, again)
}
