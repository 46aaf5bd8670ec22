package aggregation

import (
	"time"
)

// Rollup rows are derived, recomputable summaries - pure functions of the
// raw workout sets in their scope plus the muscle reference data. They are
// rebuilt from scratch on every recomputation, never patched incrementally.

// DailyWorkoutSummary is keyed by (user, date).
type DailyWorkoutSummary struct {
	UserID        string    `json:"userId"`
	Date          time.Time `json:"date"`
	TotalVolume   float64   `json:"totalVolume"`
	SetCount      int       `json:"setCount"`
	ExerciseCount int       `json:"exerciseCount"`
	AvgRM         *float64  `json:"avgRm"`
}

// DailyExerciseSummary is keyed by (user, date, exercise).
type DailyExerciseSummary struct {
	UserID      string    `json:"userId"`
	Date        time.Time `json:"date"`
	ExerciseID  string    `json:"exerciseId"`
	TotalVolume float64   `json:"totalVolume"`
	AvgRM       *float64  `json:"avgRm"`
	SetCount    int       `json:"setCount"`
	SetIDs      []int64   `json:"setIds"`
}

// DailyExerciseMuscleVolume is keyed by (user, date, exercise, muscle).
type DailyExerciseMuscleVolume struct {
	UserID          string    `json:"userId"`
	Date            time.Time `json:"date"`
	ExerciseID      string    `json:"exerciseId"`
	MuscleID        string    `json:"muscleId"`
	EffectiveVolume float64   `json:"effectiveVolume"`
}

// WeeklyUserVolume is keyed by (user, weekStart), weekStart always a Monday.
type WeeklyUserVolume struct {
	UserID       string    `json:"userId"`
	WeekStart    time.Time `json:"weekStart"`
	TotalVolume  float64   `json:"totalVolume"`
	AvgSetVolume float64   `json:"avgSetVolume"`
	E1RMAvg      *float64  `json:"e1rmAvg"`
}

// WeeklyUserMuscleVolume is keyed by (user, weekStart, muscle).
// E1RMSum and E1RMCount are accumulators, not a precomputed average, so
// consumers can merge series with a correctly weighted mean later.
type WeeklyUserMuscleVolume struct {
	UserID    string    `json:"userId"`
	WeekStart time.Time `json:"weekStart"`
	MuscleID  string    `json:"muscleId"`
	Volume    float64   `json:"volume"`
	SetCount  int       `json:"setCount"`
	E1RMSum   float64   `json:"e1rmSum"`
	E1RMCount int       `json:"e1rmCount"`
}

// AvgE1RM resolves the accumulators into an average, nil when no set of
// the week had both weight and reps.
func (w WeeklyUserMuscleVolume) AvgE1RM() *float64 {
	if w.E1RMCount == 0 {
		return nil
	}
	avg := w.E1RMSum / float64(w.E1RMCount)
	return &avg
}
