package service

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/workpulse/backend/internal/models"
	"github.com/workpulse/backend/internal/repository"
)

type cohortService struct {
	cohortRepo repository.CohortRepository
}

// NewCohortService creates a new cohort service
func NewCohortService(cohortRepo repository.CohortRepository) CohortService {
	return &cohortService{
		cohortRepo: cohortRepo,
	}
}

// GetSummary returns the percentile summary for a cohort. A precomputed row
// wins; otherwise the summary is built from the raw peer weekly totals. A
// nil summary with nil error means the cohort is unknown.
func (s *cohortService) GetSummary(ctx context.Context, cohortKey string) (*models.CohortSummary, error) {
	summary, err := s.cohortRepo.GetSummary(ctx, cohortKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get cohort summary: %w", err)
	}
	if summary != nil {
		return summary, nil
	}

	totals, err := s.cohortRepo.GetWeeklyTotals(ctx, cohortKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get cohort weekly totals: %w", err)
	}
	if len(totals) == 0 {
		return nil, nil
	}

	return BuildCohortSummary(cohortKey, totals), nil
}

// BuildCohortSummary computes p25/median/p75 over one weekly total per peer.
// The user count is the number of peers, which is what the anonymity floor
// checks against.
func BuildCohortSummary(cohortKey string, weeklyTotals []float64) *models.CohortSummary {
	sorted := make([]float64, len(weeklyTotals))
	copy(sorted, weeklyTotals)
	sort.Float64s(sorted)

	return &models.CohortSummary{
		CohortKey:         cohortKey,
		UserCount:         len(sorted),
		P25WeeklyHours:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
		MedianWeeklyHours: stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P75WeeklyHours:    stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
}
