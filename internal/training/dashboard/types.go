package dashboard

import (
	"time"
)

// WeekPoint is one gap-filled point of the weekly volume trend.
type WeekPoint struct {
	WeekStart    time.Time `json:"weekStart"`
	TotalVolume  float64   `json:"totalVolume"`
	AvgSetVolume float64   `json:"avgSetVolume"`
	E1RMAvg      *float64  `json:"e1rmAvg"`
}

// MuscleGroupPoint is one gap-filled point of a muscle group series.
type MuscleGroupPoint struct {
	WeekStart   time.Time `json:"weekStart"`
	TotalVolume float64   `json:"totalVolume"`
	SetCount    int       `json:"setCount"`
	AvgE1RM     *float64  `json:"avgE1rm"`
}

type MuscleGroupSeries struct {
	MuscleID string             `json:"muscleId"`
	Name     string             `json:"name"`
	Points   []MuscleGroupPoint `json:"points"`
}

// Metric is a headline number comparing this week against last week.
// ChangePct is nil when last week has no value to compare against.
type Metric struct {
	ID        string   `json:"id"`
	Value     *float64 `json:"value"`
	PrevValue *float64 `json:"prevValue"`
	ChangePct *float64 `json:"changePct"`
}

// Data is the dashboard view model. ThisWeek and LastWeek are always
// present, zero-valued when no rollup row exists for them. Trend and each
// muscle group series hold exactly spanWeeks contiguous points.
type Data struct {
	ThisWeek     WeekPoint           `json:"thisWeek"`
	LastWeek     WeekPoint           `json:"lastWeek"`
	Trend        []WeekPoint         `json:"trend"`
	MuscleGroups []MuscleGroupSeries `json:"muscleGroups"`
	Metrics      []Metric            `json:"metrics"`
}
