package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workpulse/backend/internal/models"
	"github.com/workpulse/backend/pkg/supabase"
)

type cohortRepository struct {
	client *supabase.Client
}

// NewCohortRepository creates a new cohort statistics repository
func NewCohortRepository(client *supabase.Client) CohortRepository {
	return &cohortRepository{client: client}
}

// GetSummary fetches the precomputed percentile summary for a cohort.
// Returns nil (no error) when the cohort has no summary row; the comparator
// treats that the same as an undersized cohort.
func (r *cohortRepository) GetSummary(ctx context.Context, cohortKey string) (*models.CohortSummary, error) {
	query := map[string]interface{}{
		"cohort_key": fmt.Sprintf("eq.%s", cohortKey),
		"select":     "*",
	}

	body, err := r.client.Query(ctx, "cohort_stats", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get cohort summary: %w", err)
	}

	var summaries []models.CohortSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(summaries) == 0 {
		return nil, nil
	}
	return &summaries[0], nil
}

// GetWeeklyTotals fetches the raw peer weekly-hour totals for a cohort, one
// row per member, from the aggregation view.
func (r *cohortRepository) GetWeeklyTotals(ctx context.Context, cohortKey string) ([]float64, error) {
	query := map[string]interface{}{
		"cohort_key": fmt.Sprintf("eq.%s", cohortKey),
		"select":     "weekly_hours",
	}

	body, err := r.client.Query(ctx, "cohort_weekly_totals", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get cohort weekly totals: %w", err)
	}

	var rows []struct {
		WeeklyHours float64 `json:"weekly_hours"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	totals := make([]float64, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, row.WeeklyHours)
	}
	return totals, nil
}
