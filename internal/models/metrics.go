package models

// LoadStatus represents the rolling 4-week average status band
type LoadStatus string

const (
	LoadStatusSustainable LoadStatus = "sustainable"
	LoadStatusActive      LoadStatus = "active"
	LoadStatusCaution     LoadStatus = "caution"
	LoadStatusCritical    LoadStatus = "critical"
)

// CircadianBand represents the red-eye ratio band
type CircadianBand string

const (
	CircadianHealthy  CircadianBand = "healthy"
	CircadianModerate CircadianBand = "moderate"
	CircadianHigh     CircadianBand = "high"
	CircadianCritical CircadianBand = "critical"
)

// RecoveryBand represents the protected-weekend band
type RecoveryBand string

const (
	RecoveryProtected RecoveryBand = "protected"
	RecoveryCaution   RecoveryBand = "caution"
	RecoveryAtRisk    RecoveryBand = "at_risk"
)

// RiskLabel represents the categorical label for a composite risk score
type RiskLabel string

const (
	RiskSustainable RiskLabel = "sustainable"
	RiskElevated    RiskLabel = "elevated"
	RiskHighRisk    RiskLabel = "high_risk"
	RiskCritical    RiskLabel = "critical"
)

// CohortStanding represents the user's position relative to cohort percentiles
type CohortStanding string

const (
	StandingAboveP75    CohortStanding = "above_p75"
	StandingAboveMedian CohortStanding = "above_median"
	StandingBelowP25    CohortStanding = "below_p25"
	StandingBelowMedian CohortStanding = "below_median"
	StandingOnPar       CohortStanding = "on_par"
)

// DiffSeverity represents the severity band of a per-bucket benchmark deviation
type DiffSeverity string

const (
	SeverityStronglyUnder   DiffSeverity = "strongly_under"
	SeverityModeratelyUnder DiffSeverity = "moderately_under"
	SeveritySlightlyUnder   DiffSeverity = "slightly_under"
	SeveritySlightlyOver    DiffSeverity = "slightly_over"
	SeverityModeratelyOver  DiffSeverity = "moderately_over"
	SeverityStronglyOver    DiffSeverity = "strongly_over"
)

// WindowSummary holds zero-filled aggregates over a fixed trailing window of
// calendar days. Days with no complete interval contribute exactly 0 and the
// average denominator is always Days, never the count of logged days.
type WindowSummary struct {
	Days          int     `json:"days"`
	TotalHours    float64 `json:"total_hours"`
	DailyAverage  float64 `json:"daily_average"`
	WeeklyAverage float64 `json:"weekly_average"`
	LoggedDays    int     `json:"logged_days"`
}

// LoadIntensity is the ratio of the 7-day to 90-day daily average, as a
// percentage. Not measurable when the 90-day average is zero.
type LoadIntensity struct {
	Measurable bool    `json:"measurable"`
	Index      float64 `json:"index"`
}

// RollingFourWeek is the 28-day zero-filled weekly-equivalent average with
// its status band.
type RollingFourWeek struct {
	Measurable    bool       `json:"measurable"`
	WeeklyAverage float64    `json:"weekly_average"`
	Status        LoadStatus `json:"status"`
}

// WorstWeek is the heaviest Sunday-anchored week across the full history.
type WorstWeek struct {
	Found      bool      `json:"found"`
	WeekEnding CivilDate `json:"week_ending"`
	TotalHours float64   `json:"total_hours"`
}

// WindowReport bundles all trailing-window aggregations.
type WindowReport struct {
	HasData         bool            `json:"has_data"`
	Last7Days       WindowSummary   `json:"last_7_days"`
	Last28Days      WindowSummary   `json:"last_28_days"`
	Last30Days      WindowSummary   `json:"last_30_days"`
	Last90Days      WindowSummary   `json:"last_90_days"`
	LoadIntensity   LoadIntensity   `json:"load_intensity"`
	RollingFourWeek RollingFourWeek `json:"rolling_four_week"`
	WorstWeek       WorstWeek       `json:"worst_week"`
}

// HourBucket is one cell of the 7x24 day-of-week x hour-of-day grid.
// Weekday is 0=Monday..6=Sunday. TotalHours sums the full dailyHours of every
// interval touching the bucket, so AvgHours reads as "how heavy is a day that
// touches this hour", not "minutes worked in this hour".
type HourBucket struct {
	Weekday      int     `json:"weekday"`
	Hour         int     `json:"hour"`
	TotalHours   float64 `json:"total_hours"`
	Occurrences  int     `json:"occurrences"`
	WorstHours   float64 `json:"worst_hours"`
	DistinctDays int     `json:"distinct_days"`
	AvgHours     float64 `json:"avg_hours"`
}

// Heatmap is the full hour-bucket grid plus the flagged worst buckets.
type Heatmap struct {
	Buckets      [7][24]HourBucket `json:"buckets"`
	WorstBuckets []HourBucket      `json:"worst_buckets"`
	WindowDays   int               `json:"window_days"`
	SampleDays   int               `json:"sample_days"`
}

// StreakResult is the current consecutive-workday logging streak. Weekend
// days neither extend nor break the streak.
type StreakResult struct {
	Days int `json:"days"`
}

// CircadianResult is the fraction of recent work time falling in the
// late-night band.
type CircadianResult struct {
	Measurable     bool          `json:"measurable"`
	LateNightHours float64       `json:"late_night_hours"`
	TotalHours     float64       `json:"total_hours"`
	RatioPercent   float64       `json:"ratio_percent"`
	Band           CircadianBand `json:"band"`
}

// RecoveryResult is the protected-weekend rate over the trailing window.
type RecoveryResult struct {
	WeekendDays    int          `json:"weekend_days"`
	ProtectedDays  int          `json:"protected_days"`
	ProtectionRate float64      `json:"protection_rate"`
	Band           RecoveryBand `json:"band"`
}

// RiskScore is the weighted 0-100 composite. Available is false when any
// sub-metric could not be computed; the score then carries no meaning.
type RiskScore struct {
	Available       bool      `json:"available"`
	Score           int       `json:"score"`
	Label           RiskLabel `json:"label"`
	LoadPoints      int       `json:"load_points"`
	CircadianPoints int       `json:"circadian_points"`
	RestPoints      int       `json:"rest_points"`
	DaysSinceRest   int       `json:"days_since_rest"`
}

// CohortSummary is a precomputed percentile summary for a peer group,
// supplied externally. The anonymity floor on UserCount is enforced by the
// comparator, never assumed pre-enforced here.
type CohortSummary struct {
	CohortKey         string  `json:"cohort_key"`
	UserCount         int     `json:"user_count"`
	P25WeeklyHours    float64 `json:"p25_weekly_hours"`
	MedianWeeklyHours float64 `json:"median_weekly_hours"`
	P75WeeklyHours    float64 `json:"p75_weekly_hours"`
}

// CohortComparison classifies the user's weekly metric against a cohort.
// When Available is false no percentile detail is exposed.
type CohortComparison struct {
	Available         bool           `json:"available"`
	Reason            string         `json:"reason,omitempty"`
	CohortKey         string         `json:"cohort_key,omitempty"`
	UserCount         int            `json:"user_count,omitempty"`
	UserWeeklyHours   float64        `json:"user_weekly_hours,omitempty"`
	Standing          CohortStanding `json:"standing,omitempty"`
	P25WeeklyHours    float64        `json:"p25_weekly_hours,omitempty"`
	MedianWeeklyHours float64        `json:"median_weekly_hours,omitempty"`
	P75WeeklyHours    float64        `json:"p75_weekly_hours,omitempty"`
}

// BenchmarkGrid is a static 7x24 reference table of average hours, indexed
// [weekday][hour] with weekday 0=Monday. It is a fixed domain constant, not
// computed from any user's data.
type BenchmarkGrid [7][24]float64

// BucketDiff is the per-bucket deviation of the user's heatmap from the
// static benchmark grid.
type BucketDiff struct {
	Weekday      int          `json:"weekday"`
	Hour         int          `json:"hour"`
	UserAvg      float64      `json:"user_avg"`
	BenchmarkAvg float64      `json:"benchmark_avg"`
	Diff         float64      `json:"diff"`
	Severity     DiffSeverity `json:"severity"`
}

// BenchmarkReport holds the full diff grid, aggregate overage alerts, and
// the worst deviations ranked by absolute diff.
type BenchmarkReport struct {
	Diffs            [7][24]BucketDiff `json:"diffs"`
	WeekendOverage   float64           `json:"weekend_overage"`
	WeekendAlert     bool              `json:"weekend_alert"`
	LateNightOverage float64           `json:"late_night_overage"`
	LateNightAlert   bool              `json:"late_night_alert"`
	WorstDeviations  []BucketDiff      `json:"worst_deviations"`
}

// Report is the full metrics object returned by the analytics engine. All
// numeric outputs are deterministic given identical inputs and reference
// date, so the whole struct is suitable for snapshot testing.
type Report struct {
	ReferenceDate CivilDate         `json:"reference_date"`
	Windows       WindowReport      `json:"windows"`
	Heatmap       *Heatmap          `json:"heatmap"`
	Streak        StreakResult      `json:"streak"`
	Circadian     CircadianResult   `json:"circadian"`
	Recovery      RecoveryResult    `json:"recovery"`
	Risk          RiskScore         `json:"risk"`
	Cohort        *CohortComparison `json:"cohort,omitempty"`
	Benchmark     *BenchmarkReport  `json:"benchmark,omitempty"`
}
