package service

import (
	"context"

	"github.com/workpulse/backend/internal/models"
)

// IntervalService defines the interface for work interval business logic
type IntervalService interface {
	CreateInterval(ctx context.Context, userID string, req *models.CreateIntervalRequest) (*models.WorkInterval, error)
	GetInterval(ctx context.Context, userID, intervalID string) (*models.WorkInterval, error)
	GetUserIntervals(ctx context.Context, userID string, limit, offset int) ([]models.WorkInterval, error)
	UpdateInterval(ctx context.Context, userID, intervalID string, req *models.UpdateIntervalRequest) (*models.WorkInterval, error)
	DeleteInterval(ctx context.Context, userID, intervalID string) error
}

// MetricsService defines the interface for the analytics read side. Reports
// are recomputed from the full interval history on every call; nothing is
// cached or mutated.
type MetricsService interface {
	GetReport(ctx context.Context, userID, cohortKey string) (*models.Report, error)
	GetReportAt(ctx context.Context, userID, cohortKey string, today models.CivilDate) (*models.Report, error)
}

// CohortService resolves percentile summaries for peer groups, building
// them from raw weekly totals when no precomputed row exists.
type CohortService interface {
	GetSummary(ctx context.Context, cohortKey string) (*models.CohortSummary, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}
