package repository

import (
	"context"

	"github.com/workpulse/backend/internal/models"
)

// IntervalRepository defines the interface for work interval data access
type IntervalRepository interface {
	Create(ctx context.Context, interval *models.WorkInterval) (*models.WorkInterval, error)
	GetByID(ctx context.Context, id string) (*models.WorkInterval, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.WorkInterval, error)
	GetByUserIDAndDateRange(ctx context.Context, userID string, start, end models.CivilDate) ([]models.WorkInterval, error)
	GetAllByUserID(ctx context.Context, userID string) ([]models.WorkInterval, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.WorkInterval, error)
	Delete(ctx context.Context, id string) error
}

// CohortRepository defines the interface for cohort statistics access.
// GetSummary returns a precomputed percentile summary when one exists;
// GetWeeklyTotals returns the raw peer weekly totals used to build one.
type CohortRepository interface {
	GetSummary(ctx context.Context, cohortKey string) (*models.CohortSummary, error)
	GetWeeklyTotals(ctx context.Context, cohortKey string) ([]float64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
