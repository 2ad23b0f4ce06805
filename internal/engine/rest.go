package engine

import (
	"github.com/workpulse/backend/internal/models"
)

// maxRestLookback bounds the backward walk for the last rest day.
const maxRestLookback = 365

// DaysSinceRest walks back from the reference date to the most recent day
// carrying less than the rest threshold and reports how many days ago it
// was. Incomplete intervals count here: any logged hours deny rest, whether
// or not start and end times were recorded. The second return is false when
// the history is empty or no rest day exists inside the lookback, in which
// case the count is meaningless.
func DaysSinceRest(intervals []models.WorkInterval, today models.CivilDate) (int, bool) {
	if len(intervals) == 0 {
		return 0, false
	}

	byDay := make(map[string]float64, len(intervals))
	for _, iv := range intervals {
		byDay[iv.Date.Key()] += iv.ComputedHours
	}

	for i := 0; i < maxRestLookback; i++ {
		day := today.AddDays(-i)
		if byDay[day.Key()] < restThresholdHours {
			return i, true
		}
	}
	return 0, false
}
