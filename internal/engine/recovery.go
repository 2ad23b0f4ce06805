package engine

import (
	"github.com/workpulse/backend/internal/models"
)

const (
	// RecoveryWindowDays is the trailing window for weekend protection.
	RecoveryWindowDays = 30

	// restThresholdHours is the most a day can carry and still count as rest.
	restThresholdHours = 0.5

	// Protection-rate band thresholds, in percent.
	recoveryProtectedMin = 75.0
	recoveryCautionMin   = 50.0
)

// AnalyzeRecovery measures how many weekend calendar days in the trailing 30
// days were protected: either nothing logged, or under the rest threshold.
func AnalyzeRecovery(intervals []NormalizedInterval, today models.CivilDate) models.RecoveryResult {
	byDay := hoursByDay(intervals)

	weekendDays := 0
	protectedDays := 0
	for i := 0; i < RecoveryWindowDays; i++ {
		day := today.AddDays(-i)
		if !day.IsWeekend() {
			continue
		}
		weekendDays++
		if byDay[day.Key()] < restThresholdHours {
			protectedDays++
		}
	}

	result := models.RecoveryResult{
		WeekendDays:   weekendDays,
		ProtectedDays: protectedDays,
	}
	if weekendDays == 0 {
		result.Band = models.RecoveryAtRisk
		return result
	}

	result.ProtectionRate = float64(protectedDays) / float64(weekendDays) * 100
	switch {
	case result.ProtectionRate >= recoveryProtectedMin:
		result.Band = models.RecoveryProtected
	case result.ProtectionRate >= recoveryCautionMin:
		result.Band = models.RecoveryCaution
	default:
		result.Band = models.RecoveryAtRisk
	}
	return result
}
