package engine

import (
	"github.com/workpulse/backend/internal/models"
)

// Point tables for the three weighted sub-scores.
const (
	loadPointsCritical = 40
	loadPointsCaution  = 30
	loadPointsActive   = 15
	loadPointsBase     = 5

	circadianPointsCritical = 35
	circadianPointsHigh     = 25
	circadianPointsModerate = 15
	circadianPointsBase     = 5

	restPointsCritical = 25
	restPointsHigh     = 20
	restPointsModerate = 10
	restPointsBase     = 3
)

// Risk label thresholds on the composite score.
const (
	riskCriticalMin = 85
	riskHighMin     = 60
	riskElevatedMin = 40
)

// ScoreRisk combines the rolling 4-week load, the red-eye ratio, and days
// since a full rest break into the weighted 0-100 composite. The score fails
// closed: if any sub-metric is unmeasurable the composite is reported
// unavailable instead of partially computed.
func ScoreRisk(load models.RollingFourWeek, circadian models.CircadianResult, daysSinceRest int, restKnown bool) models.RiskScore {
	if !load.Measurable || !circadian.Measurable || !restKnown {
		return models.RiskScore{Available: false}
	}

	loadPts := loadPoints(load.WeeklyAverage)
	circPts := circadianPoints(circadian.RatioPercent)
	restPts := restPoints(daysSinceRest)

	score := loadPts + circPts + restPts
	return models.RiskScore{
		Available:       true,
		Score:           score,
		Label:           riskLabelFor(score),
		LoadPoints:      loadPts,
		CircadianPoints: circPts,
		RestPoints:      restPts,
		DaysSinceRest:   daysSinceRest,
	}
}

func loadPoints(weeklyAverage float64) int {
	switch {
	case weeklyAverage > 80:
		return loadPointsCritical
	case weeklyAverage > 75:
		return loadPointsCaution
	case weeklyAverage > 60:
		return loadPointsActive
	default:
		return loadPointsBase
	}
}

func circadianPoints(ratioPercent float64) int {
	switch {
	case ratioPercent > 20:
		return circadianPointsCritical
	case ratioPercent > 15:
		return circadianPointsHigh
	case ratioPercent > 10:
		return circadianPointsModerate
	default:
		return circadianPointsBase
	}
}

func restPoints(daysSinceRest int) int {
	switch {
	case daysSinceRest > 14:
		return restPointsCritical
	case daysSinceRest > 10:
		return restPointsHigh
	case daysSinceRest > 7:
		return restPointsModerate
	default:
		return restPointsBase
	}
}

func riskLabelFor(score int) models.RiskLabel {
	switch {
	case score >= riskCriticalMin:
		return models.RiskCritical
	case score >= riskHighMin:
		return models.RiskHighRisk
	case score >= riskElevatedMin:
		return models.RiskElevated
	default:
		return models.RiskSustainable
	}
}
