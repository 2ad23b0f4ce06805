package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/backend/internal/models"
)

// mockIntervalRepository is an in-memory IntervalRepository for testing
type mockIntervalRepository struct {
	intervals   map[string]*models.WorkInterval
	createCalls int
	nextID      int
}

func newMockIntervalRepository() *mockIntervalRepository {
	return &mockIntervalRepository{
		intervals: make(map[string]*models.WorkInterval),
	}
}

func (m *mockIntervalRepository) Create(ctx context.Context, interval *models.WorkInterval) (*models.WorkInterval, error) {
	m.createCalls++
	if interval.ID == "" {
		m.nextID++
		interval.ID = fmt.Sprintf("mock-id-%d", m.nextID)
	}
	interval.CreatedAt = time.Now()
	interval.UpdatedAt = time.Now()
	m.intervals[interval.ID] = interval
	return interval, nil
}

func (m *mockIntervalRepository) GetByID(ctx context.Context, id string) (*models.WorkInterval, error) {
	if interval, ok := m.intervals[id]; ok {
		return interval, nil
	}
	return nil, fmt.Errorf("interval not found")
}

func (m *mockIntervalRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.WorkInterval, error) {
	var result []models.WorkInterval
	for _, interval := range m.intervals {
		if interval.UserID == userID {
			result = append(result, *interval)
		}
	}
	return result, nil
}

func (m *mockIntervalRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end models.CivilDate) ([]models.WorkInterval, error) {
	var result []models.WorkInterval
	for _, interval := range m.intervals {
		if interval.UserID == userID && !interval.Date.Before(start.Time) && !interval.Date.After(end.Time) {
			result = append(result, *interval)
		}
	}
	return result, nil
}

func (m *mockIntervalRepository) GetAllByUserID(ctx context.Context, userID string) ([]models.WorkInterval, error) {
	return m.GetByUserID(ctx, userID, 0, 0)
}

func (m *mockIntervalRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.WorkInterval, error) {
	existing, ok := m.intervals[id]
	if !ok {
		return nil, fmt.Errorf("interval not found")
	}
	for key, value := range fields {
		switch key {
		case "date":
			d, err := models.ParseCivilDate(value.(string))
			if err != nil {
				return nil, err
			}
			existing.Date = d
		case "start_time":
			existing.StartTime = value.(*string)
		case "end_time":
			existing.EndTime = value.(*string)
		case "adjustment_hours":
			existing.AdjustmentHours = value.(float64)
		case "computed_hours":
			existing.ComputedHours = value.(float64)
		case "notes":
			existing.Notes = value.(*string)
		}
	}
	existing.UpdatedAt = time.Now()
	return existing, nil
}

func (m *mockIntervalRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.intervals[id]; !ok {
		return fmt.Errorf("interval not found")
	}
	delete(m.intervals, id)
	return nil
}

func ptr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func testDate(t *testing.T, s string) models.CivilDate {
	t.Helper()
	d, err := models.ParseCivilDate(s)
	require.NoError(t, err)
	return d
}

func TestCreateInterval_DerivesHoursFromTimes(t *testing.T) {
	ctx := context.Background()
	repo := newMockIntervalRepository()
	svc := NewIntervalService(repo)

	created, err := svc.CreateInterval(ctx, "user-123", &models.CreateIntervalRequest{
		Date:            testDate(t, "2025-06-02"),
		StartTime:       ptr("09:00"),
		EndTime:         ptr("17:30"),
		AdjustmentHours: -0.5,
		// A client-supplied total is ignored when times are present.
		ComputedHours: floatPtr(99),
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, created.ComputedHours)
}

func TestCreateInterval_OvernightShift(t *testing.T) {
	ctx := context.Background()
	repo := newMockIntervalRepository()
	svc := NewIntervalService(repo)

	created, err := svc.CreateInterval(ctx, "user-123", &models.CreateIntervalRequest{
		Date:      testDate(t, "2025-06-02"),
		StartTime: ptr("22:00"),
		EndTime:   ptr("02:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, created.ComputedHours)
}

func TestCreateInterval_DurationOnly(t *testing.T) {
	ctx := context.Background()
	repo := newMockIntervalRepository()
	svc := NewIntervalService(repo)

	created, err := svc.CreateInterval(ctx, "user-123", &models.CreateIntervalRequest{
		Date:          testDate(t, "2025-06-02"),
		ComputedHours: floatPtr(6.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 6.5, created.ComputedHours)
	assert.Nil(t, created.StartTime)
}

func TestCreateInterval_Rejections(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateIntervalRequest
	}{
		{
			name: "lone start time",
			req: &models.CreateIntervalRequest{
				Date:          testDate(t, "2025-06-02"),
				StartTime:     ptr("09:00"),
				ComputedHours: floatPtr(8),
			},
		},
		{
			name: "malformed clock",
			req: &models.CreateIntervalRequest{
				Date:      testDate(t, "2025-06-02"),
				StartTime: ptr("9am"),
				EndTime:   ptr("17:00"),
			},
		},
		{
			name: "no times and no total",
			req: &models.CreateIntervalRequest{
				Date: testDate(t, "2025-06-02"),
			},
		},
		{
			name: "negative total",
			req: &models.CreateIntervalRequest{
				Date:          testDate(t, "2025-06-02"),
				ComputedHours: floatPtr(-1),
			},
		},
		{
			name: "adjustment below zero",
			req: &models.CreateIntervalRequest{
				Date:            testDate(t, "2025-06-02"),
				StartTime:       ptr("09:00"),
				EndTime:         ptr("10:00"),
				AdjustmentHours: -2,
			},
		},
		{
			name: "invalid client id",
			req: &models.CreateIntervalRequest{
				ID:            "not-a-uuid",
				Date:          testDate(t, "2025-06-02"),
				ComputedHours: floatPtr(8),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newMockIntervalRepository()
			svc := NewIntervalService(repo)

			_, err := svc.CreateInterval(ctx, "user-123", tt.req)
			assert.Error(t, err)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestGetInterval_OwnershipHiddenAsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newMockIntervalRepository()
	svc := NewIntervalService(repo)

	created, err := svc.CreateInterval(ctx, "user-123", &models.CreateIntervalRequest{
		Date:          testDate(t, "2025-06-02"),
		ComputedHours: floatPtr(8),
	})
	require.NoError(t, err)

	_, err = svc.GetInterval(ctx, "user-456", created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateInterval_RecomputesOnTimeChange(t *testing.T) {
	ctx := context.Background()
	repo := newMockIntervalRepository()
	svc := NewIntervalService(repo)

	created, err := svc.CreateInterval(ctx, "user-123", &models.CreateIntervalRequest{
		Date:      testDate(t, "2025-06-02"),
		StartTime: ptr("09:00"),
		EndTime:   ptr("17:00"),
	})
	require.NoError(t, err)
	require.Equal(t, 8.0, created.ComputedHours)

	updated, err := svc.UpdateInterval(ctx, "user-123", created.ID, &models.UpdateIntervalRequest{
		EndTime: models.NullableString{Value: "19:00", Valid: true, Set: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, updated.ComputedHours)
}

func TestUpdateInterval_ClearingTimesNeedsTotal(t *testing.T) {
	ctx := context.Background()
	repo := newMockIntervalRepository()
	svc := NewIntervalService(repo)

	created, err := svc.CreateInterval(ctx, "user-123", &models.CreateIntervalRequest{
		Date:      testDate(t, "2025-06-02"),
		StartTime: ptr("09:00"),
		EndTime:   ptr("17:00"),
	})
	require.NoError(t, err)

	clear := models.NullableString{Set: true}
	_, err = svc.UpdateInterval(ctx, "user-123", created.ID, &models.UpdateIntervalRequest{
		StartTime: clear,
		EndTime:   clear,
	})
	assert.Error(t, err)

	updated, err := svc.UpdateInterval(ctx, "user-123", created.ID, &models.UpdateIntervalRequest{
		StartTime:     clear,
		EndTime:       clear,
		ComputedHours: floatPtr(7.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 7.5, updated.ComputedHours)
	assert.Nil(t, updated.StartTime)
	assert.Nil(t, updated.EndTime)
}

func TestUpdateInterval_NotesOnlyLeavesHoursAlone(t *testing.T) {
	ctx := context.Background()
	repo := newMockIntervalRepository()
	svc := NewIntervalService(repo)

	created, err := svc.CreateInterval(ctx, "user-123", &models.CreateIntervalRequest{
		Date:          testDate(t, "2025-06-02"),
		ComputedHours: floatPtr(6),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateInterval(ctx, "user-123", created.ID, &models.UpdateIntervalRequest{
		Notes: models.NullableString{Value: "on call", Valid: true, Set: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 6.0, updated.ComputedHours)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "on call", *updated.Notes)
}

func TestDeleteInterval_WrongUser(t *testing.T) {
	ctx := context.Background()
	repo := newMockIntervalRepository()
	svc := NewIntervalService(repo)

	created, err := svc.CreateInterval(ctx, "user-123", &models.CreateIntervalRequest{
		Date:          testDate(t, "2025-06-02"),
		ComputedHours: floatPtr(8),
	})
	require.NoError(t, err)

	err = svc.DeleteInterval(ctx, "user-456", created.ID)
	assert.Error(t, err)

	_, err = svc.GetInterval(ctx, "user-123", created.ID)
	assert.NoError(t, err, "interval should survive a denied delete")
}
