package service

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse/backend/internal/engine"
	"github.com/workpulse/backend/internal/models"
	"github.com/workpulse/backend/internal/repository"
)

type metricsService struct {
	intervalRepo repository.IntervalRepository
	cohortSvc    CohortService
	benchmark    *models.BenchmarkGrid
	now          func() time.Time
}

// NewMetricsService creates a new metrics service. The benchmark grid may be
// nil, in which case reports omit the benchmark section.
func NewMetricsService(intervalRepo repository.IntervalRepository, cohortSvc CohortService, benchmark *models.BenchmarkGrid) MetricsService {
	return &metricsService{
		intervalRepo: intervalRepo,
		cohortSvc:    cohortSvc,
		benchmark:    benchmark,
		now:          time.Now,
	}
}

func (s *metricsService) GetReport(ctx context.Context, userID, cohortKey string) (*models.Report, error) {
	return s.GetReportAt(ctx, userID, cohortKey, models.CivilDateOf(s.now().UTC()))
}

func (s *metricsService) GetReportAt(ctx context.Context, userID, cohortKey string, today models.CivilDate) (*models.Report, error) {
	intervals, err := s.intervalRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get intervals: %w", err)
	}

	input := engine.Input{
		Intervals: intervals,
		Today:     today,
		Benchmark: s.benchmark,
	}

	if days, known := engine.DaysSinceRest(intervals, today); known {
		input.DaysSinceRest = &days
	}

	if cohortKey != "" && s.cohortSvc != nil {
		summary, err := s.cohortSvc.GetSummary(ctx, cohortKey)
		if err != nil {
			return nil, fmt.Errorf("failed to get cohort summary: %w", err)
		}
		input.Cohort = summary
	}

	return engine.ComputeReport(input), nil
}
