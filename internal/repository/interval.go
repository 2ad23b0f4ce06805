package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workpulse/backend/internal/models"
	"github.com/workpulse/backend/pkg/supabase"
)

type intervalRepository struct {
	client *supabase.Client
}

// NewIntervalRepository creates a new work interval repository
func NewIntervalRepository(client *supabase.Client) IntervalRepository {
	return &intervalRepository{client: client}
}

func (r *intervalRepository) Create(ctx context.Context, interval *models.WorkInterval) (*models.WorkInterval, error) {
	data := map[string]interface{}{
		"user_id":          interval.UserID,
		"date":             interval.Date.Key(),
		"adjustment_hours": interval.AdjustmentHours,
		"computed_hours":   interval.ComputedHours,
	}

	// Client-provided IDs support offline-first logging.
	if interval.ID != "" {
		data["id"] = interval.ID
	}
	if interval.StartTime != nil {
		data["start_time"] = *interval.StartTime
	}
	if interval.EndTime != nil {
		data["end_time"] = *interval.EndTime
	}
	if interval.Notes != nil {
		data["notes"] = *interval.Notes
	}

	body, err := r.client.Insert(ctx, "work_intervals", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create interval: %w", err)
	}

	var intervals []models.WorkInterval
	if err := json.Unmarshal(body, &intervals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(intervals) == 0 {
		return nil, fmt.Errorf("no interval returned")
	}
	return &intervals[0], nil
}

func (r *intervalRepository) GetByID(ctx context.Context, id string) (*models.WorkInterval, error) {
	query := map[string]interface{}{
		"id":     fmt.Sprintf("eq.%s", id),
		"select": "*",
	}

	body, err := r.client.Query(ctx, "work_intervals", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get interval: %w", err)
	}

	var intervals []models.WorkInterval
	if err := json.Unmarshal(body, &intervals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(intervals) == 0 {
		return nil, fmt.Errorf("interval not found")
	}
	return &intervals[0], nil
}

func (r *intervalRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.WorkInterval, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "date.desc",
		"limit":   limit,
		"offset":  offset,
	}

	body, err := r.client.Query(ctx, "work_intervals", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get intervals: %w", err)
	}

	var intervals []models.WorkInterval
	if err := json.Unmarshal(body, &intervals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return intervals, nil
}

func (r *intervalRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end models.CivilDate) ([]models.WorkInterval, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"and":     fmt.Sprintf("(date.gte.%s,date.lte.%s)", start.Key(), end.Key()),
		"select":  "*",
		"order":   "date.desc",
	}

	body, err := r.client.Query(ctx, "work_intervals", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get intervals: %w", err)
	}

	var intervals []models.WorkInterval
	if err := json.Unmarshal(body, &intervals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return intervals, nil
}

// GetAllByUserID fetches the complete history. The worst-week metric spans
// all of it, so the metrics service cannot cap the range.
func (r *intervalRepository) GetAllByUserID(ctx context.Context, userID string) ([]models.WorkInterval, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "date.asc",
	}

	body, err := r.client.Query(ctx, "work_intervals", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get interval history: %w", err)
	}

	var intervals []models.WorkInterval
	if err := json.Unmarshal(body, &intervals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return intervals, nil
}

func (r *intervalRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.WorkInterval, error) {
	body, err := r.client.Update(ctx, "work_intervals", id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update interval: %w", err)
	}

	var intervals []models.WorkInterval
	if err := json.Unmarshal(body, &intervals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(intervals) == 0 {
		return nil, fmt.Errorf("interval not found")
	}
	return &intervals[0], nil
}

func (r *intervalRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "work_intervals", id); err != nil {
		return fmt.Errorf("failed to delete interval: %w", err)
	}
	return nil
}
