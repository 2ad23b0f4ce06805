package service

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse/backend/internal/models"
	"github.com/workpulse/backend/internal/repository"
)

const minutesPerDay = 24 * 60

type intervalService struct {
	intervalRepo repository.IntervalRepository
}

// NewIntervalService creates a new interval service
func NewIntervalService(intervalRepo repository.IntervalRepository) IntervalService {
	return &intervalService{
		intervalRepo: intervalRepo,
	}
}

func (s *intervalService) CreateInterval(ctx context.Context, userID string, req *models.CreateIntervalRequest) (*models.WorkInterval, error) {
	if req.ID != "" {
		if err := ValidateUUIDv7(req.ID); err != nil {
			return nil, fmt.Errorf("invalid interval id: %w", err)
		}
	}

	if err := validateTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	interval := &models.WorkInterval{
		ID:              req.ID,
		UserID:          userID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		AdjustmentHours: req.AdjustmentHours,
		Notes:           req.Notes,
	}

	computed, err := resolveComputedHours(req.StartTime, req.EndTime, req.AdjustmentHours, req.ComputedHours)
	if err != nil {
		return nil, err
	}
	interval.ComputedHours = computed

	return s.intervalRepo.Create(ctx, interval)
}

func (s *intervalService) GetInterval(ctx context.Context, userID, intervalID string) (*models.WorkInterval, error) {
	interval, err := s.intervalRepo.GetByID(ctx, intervalID)
	if err != nil {
		return nil, err
	}

	// Verify the interval belongs to the user
	if interval.UserID != userID {
		return nil, fmt.Errorf("interval not found")
	}

	return interval, nil
}

func (s *intervalService) GetUserIntervals(ctx context.Context, userID string, limit, offset int) ([]models.WorkInterval, error) {
	// Set default pagination limits
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return s.intervalRepo.GetByUserID(ctx, userID, limit, offset)
}

func (s *intervalService) UpdateInterval(ctx context.Context, userID, intervalID string, req *models.UpdateIntervalRequest) (*models.WorkInterval, error) {
	// Get existing interval to verify ownership
	existing, err := s.intervalRepo.GetByID(ctx, intervalID)
	if err != nil {
		return nil, err
	}

	if existing.UserID != userID {
		return nil, fmt.Errorf("interval not found")
	}

	fields := make(map[string]interface{})

	if req.Date != nil {
		fields["date"] = req.Date.Key()
	}

	// Resolve the effective times after the patch so the stored duration
	// stays consistent with them.
	start := existing.StartTime
	end := existing.EndTime
	if req.StartTime.Set {
		start = req.StartTime.ToPtr()
		fields["start_time"] = start
	}
	if req.EndTime.Set {
		end = req.EndTime.ToPtr()
		fields["end_time"] = end
	}
	if err := validateTimes(start, end); err != nil {
		return nil, err
	}

	adjustment := existing.AdjustmentHours
	if req.AdjustmentHours != nil {
		adjustment = *req.AdjustmentHours
		fields["adjustment_hours"] = adjustment
	}

	timesChanged := req.StartTime.Set || req.EndTime.Set || req.AdjustmentHours != nil
	if start != nil && end != nil {
		if timesChanged {
			computed, err := resolveComputedHours(start, end, adjustment, nil)
			if err != nil {
				return nil, err
			}
			fields["computed_hours"] = computed
		}
	} else if req.ComputedHours != nil {
		if *req.ComputedHours < 0 {
			return nil, fmt.Errorf("computed hours cannot be negative")
		}
		fields["computed_hours"] = *req.ComputedHours
	} else if timesChanged {
		return nil, fmt.Errorf("computed_hours is required when times are cleared")
	}

	if req.Notes.Set {
		fields["notes"] = req.Notes.ToPtr()
	}

	if len(fields) == 0 {
		return existing, nil
	}

	return s.intervalRepo.Update(ctx, intervalID, fields)
}

func (s *intervalService) DeleteInterval(ctx context.Context, userID, intervalID string) error {
	// Verify interval exists and belongs to user
	interval, err := s.intervalRepo.GetByID(ctx, intervalID)
	if err != nil {
		return err
	}

	if interval.UserID != userID {
		return fmt.Errorf("interval not found")
	}

	return s.intervalRepo.Delete(ctx, intervalID)
}

// validateTimes checks clock format and rejects a lone start or end.
func validateTimes(start, end *string) error {
	if start != nil {
		if _, err := clockMinutes(*start); err != nil {
			return fmt.Errorf("invalid start_time: %w", err)
		}
	}
	if end != nil {
		if _, err := clockMinutes(*end); err != nil {
			return fmt.Errorf("invalid end_time: %w", err)
		}
	}
	if (start == nil) != (end == nil) {
		return fmt.Errorf("start_time and end_time must be provided together")
	}
	return nil
}

// resolveComputedHours derives the authoritative daily total. With both
// times present the duration is server-derived (overnight shifts wrap past
// midnight) and any client-supplied total is ignored; without times the
// client must supply one.
func resolveComputedHours(start, end *string, adjustment float64, supplied *float64) (float64, error) {
	if start != nil && end != nil {
		startMin, err := clockMinutes(*start)
		if err != nil {
			return 0, fmt.Errorf("invalid start_time: %w", err)
		}
		endMin, err := clockMinutes(*end)
		if err != nil {
			return 0, fmt.Errorf("invalid end_time: %w", err)
		}
		if endMin <= startMin {
			endMin += minutesPerDay
		}
		computed := float64(endMin-startMin)/60.0 + adjustment
		if computed < 0 {
			return 0, fmt.Errorf("computed hours cannot be negative")
		}
		return computed, nil
	}

	if supplied == nil {
		return 0, fmt.Errorf("computed_hours is required when times are absent")
	}
	if *supplied < 0 {
		return 0, fmt.Errorf("computed hours cannot be negative")
	}
	return *supplied, nil
}

// clockMinutes parses an "HH:MM" wall-clock string to minutes past midnight.
func clockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
