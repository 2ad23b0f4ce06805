package engine

import (
	"math"

	"github.com/workpulse/backend/internal/models"
)

const (
	// CohortAnonymityFloor is the minimum cohort size below which no
	// percentile detail may leave the comparator.
	CohortAnonymityFloor = 5

	// meanParityBandPercent is the +/- band around the cohort mean that
	// still counts as "on par" in simplified mode.
	meanParityBandPercent = 10.0

	// ReasonInsufficientCohort explains a blocked comparison.
	ReasonInsufficientCohort = "insufficient cohort data"

	// ReasonNoUserBaseline blocks a comparison when the user's own
	// rolling 4-week average is unmeasurable.
	ReasonNoUserBaseline = "no measurable user workload"
)

// CompareCohort classifies the user's weekly-equivalent hours against a
// cohort percentile summary. The anonymity floor is enforced here, not
// assumed of the supplier: below the floor the comparison is hard-blocked
// and no percentile values are echoed back.
func CompareCohort(userWeeklyHours float64, summary *models.CohortSummary) *models.CohortComparison {
	if summary == nil || summary.UserCount < CohortAnonymityFloor {
		return &models.CohortComparison{
			Available: false,
			Reason:    ReasonInsufficientCohort,
		}
	}

	return &models.CohortComparison{
		Available:         true,
		CohortKey:         summary.CohortKey,
		UserCount:         summary.UserCount,
		UserWeeklyHours:   userWeeklyHours,
		Standing:          cohortStanding(userWeeklyHours, summary),
		P25WeeklyHours:    summary.P25WeeklyHours,
		MedianWeeklyHours: summary.MedianWeeklyHours,
		P75WeeklyHours:    summary.P75WeeklyHours,
	}
}

func cohortStanding(user float64, s *models.CohortSummary) models.CohortStanding {
	switch {
	case user > s.P75WeeklyHours:
		return models.StandingAboveP75
	case user > s.MedianWeeklyHours:
		return models.StandingAboveMedian
	case user < s.P25WeeklyHours:
		return models.StandingBelowP25
	case user < s.MedianWeeklyHours:
		return models.StandingBelowMedian
	default:
		return models.StandingOnPar
	}
}

// CompareToMean is the simplified mode used when only a cohort mean is
// known: classification against the mean with a +/-10% parity band.
func CompareToMean(userWeeklyHours, meanWeeklyHours float64) (models.CohortStanding, bool) {
	if meanWeeklyHours == 0 {
		return "", false
	}
	deviation := (userWeeklyHours - meanWeeklyHours) / meanWeeklyHours * 100
	switch {
	case math.Abs(deviation) <= meanParityBandPercent:
		return models.StandingOnPar, true
	case deviation > 0:
		return models.StandingAboveMedian, true
	default:
		return models.StandingBelowMedian, true
	}
}
