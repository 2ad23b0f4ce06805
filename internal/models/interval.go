package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// CivilDate is a calendar day with no time-of-day or zone component.
// It marshals as "YYYY-MM-DD", matching the `date` column type in Postgres.
type CivilDate struct {
	time.Time
}

const civilDateLayout = "2006-01-02"

// NewCivilDate builds a CivilDate from year/month/day.
func NewCivilDate(year int, month time.Month, day int) CivilDate {
	return CivilDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// CivilDateOf truncates a time.Time to its calendar day.
func CivilDateOf(t time.Time) CivilDate {
	return NewCivilDate(t.Year(), t.Month(), t.Day())
}

// ParseCivilDate parses a "YYYY-MM-DD" string.
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return CivilDate{t}, nil
}

// Key returns the canonical "YYYY-MM-DD" form, used as a map key for
// per-day lookups.
func (d CivilDate) Key() string {
	return d.Format(civilDateLayout)
}

// AddDays returns the date shifted by n calendar days.
func (d CivilDate) AddDays(n int) CivilDate {
	return CivilDate{d.AddDate(0, 0, n)}
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func (d CivilDate) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// UnmarshalJSON implements custom JSON unmarshaling for CivilDate.
func (d *CivilDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCivilDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements custom JSON marshaling for CivilDate.
func (d CivilDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Key())
}

// WorkInterval represents one logged work day for a user. StartTime and
// EndTime are optional wall-clock times in "HH:MM" form; a day may be logged
// with only a duration. ComputedHours is the authoritative daily total
// (start/end-derived duration plus AdjustmentHours) and is what every
// window and bucket calculation consumes.
type WorkInterval struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Date            CivilDate `json:"date"`
	StartTime       *string   `json:"start_time,omitempty"`
	EndTime         *string   `json:"end_time,omitempty"`
	AdjustmentHours float64   `json:"adjustment_hours"`
	ComputedHours   float64   `json:"computed_hours"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HasTimes reports whether both wall-clock times are present. Only such
// intervals are eligible for hour-bucket, circadian, and streak analysis.
func (w WorkInterval) HasTimes() bool {
	return w.StartTime != nil && w.EndTime != nil
}

// CreateIntervalRequest represents the request to log a work interval.
type CreateIntervalRequest struct {
	ID              string    `json:"id"`
	Date            CivilDate `json:"date" binding:"required"`
	StartTime       *string   `json:"start_time"`
	EndTime         *string   `json:"end_time"`
	AdjustmentHours float64   `json:"adjustment_hours"`
	ComputedHours   *float64  `json:"computed_hours"`
	Notes           *string   `json:"notes"`
}

// UpdateIntervalRequest represents a partial update to a work interval.
// Nullable fields distinguish "clear this time" from "leave it alone".
type UpdateIntervalRequest struct {
	Date            *CivilDate     `json:"date"`
	StartTime       NullableString `json:"start_time"`
	EndTime         NullableString `json:"end_time"`
	AdjustmentHours *float64       `json:"adjustment_hours"`
	ComputedHours   *float64       `json:"computed_hours"`
	Notes           NullableString `json:"notes"`
}
