package aggregation

import (
	"time"
)

// EstimateOneRepMax estimates the one-repetition maximum for a weight/reps
// pair via the Epley formula: weight * (1 + reps/30).
// Returns nil when weight or reps is not positive - there is no meaningful
// estimate for an empty or bodyweight-only entry.
func EstimateOneRepMax(weight float64, reps float64) *float64 {
	if weight <= 0 || reps <= 0 {
		return nil
	}
	e1rm := weight * (1 + reps/30)
	return &e1rm
}

// EffectiveVolume weights raw volume by a muscle's relative share and
// tension factor. The share is an integer in thousandths [0, 1000] and is
// divided only here, at the final multiplication, so repeated aggregation
// never compounds rounding error.
func EffectiveVolume(totalVolume float64, relativeShare int, tensionFactor float64) float64 {
	return totalVolume * (float64(relativeShare) / 1000) * tensionFactor
}

// Day truncates a time to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday (midnight UTC) of the ISO week containing t.
// Sunday belongs to the week started six days earlier.
func WeekStart(t time.Time) time.Time {
	day := Day(t)
	offset := int(time.Monday - day.Weekday())
	if day.Weekday() == time.Sunday {
		offset = -6
	}
	return day.AddDate(0, 0, offset)
}
