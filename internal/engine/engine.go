package engine

import (
	"github.com/workpulse/backend/internal/models"
	"golang.org/x/sync/errgroup"
)

// Input carries everything one report computation needs. Today is the
// explicit reference date; the engine never reads a system clock.
// DaysSinceRest, Cohort, and Benchmark come from external collaborators and
// are optional.
type Input struct {
	Intervals     []models.WorkInterval
	Today         models.CivilDate
	DaysSinceRest *int
	Cohort        *models.CohortSummary
	Benchmark     *models.BenchmarkGrid
}

// ComputeReport runs the full analytics pipeline over one user's interval
// history. The five independent analyzers are pure functions over the
// normalized list, so they run concurrently; the risk scorer and the two
// comparators join on their outputs afterwards.
func ComputeReport(in Input) *models.Report {
	normalized := NormalizeAll(in.Intervals)

	report := &models.Report{ReferenceDate: in.Today}

	var g errgroup.Group
	g.Go(func() error {
		report.Windows = AggregateWindows(normalized, in.Today)
		return nil
	})
	g.Go(func() error {
		report.Heatmap = ProjectHourBuckets(normalized, in.Today)
		return nil
	})
	g.Go(func() error {
		report.Streak = TrackStreak(normalized, in.Today)
		return nil
	})
	g.Go(func() error {
		report.Circadian = AnalyzeCircadian(normalized, in.Today)
		return nil
	})
	g.Go(func() error {
		report.Recovery = AnalyzeRecovery(normalized, in.Today)
		return nil
	})
	// The analyzers never fail; the group is only a join point.
	_ = g.Wait()

	daysSinceRest := 0
	restKnown := in.DaysSinceRest != nil
	if restKnown {
		daysSinceRest = *in.DaysSinceRest
	}
	report.Risk = ScoreRisk(report.Windows.RollingFourWeek, report.Circadian, daysSinceRest, restKnown)

	if in.Cohort != nil {
		// An unmeasurable rolling average would compare as a literal
		// zero, so the comparison is blocked instead.
		if report.Windows.RollingFourWeek.Measurable {
			report.Cohort = CompareCohort(report.Windows.RollingFourWeek.WeeklyAverage, in.Cohort)
		} else {
			report.Cohort = &models.CohortComparison{
				Available: false,
				Reason:    ReasonNoUserBaseline,
			}
		}
	}
	if in.Benchmark != nil {
		report.Benchmark = DiffBenchmark(report.Heatmap, in.Benchmark)
	}

	return report
}
