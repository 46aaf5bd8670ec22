package sets

import (
	"time"
)

// Set is a single logged workout set, the atomic unit of the training log.
// Volume is always weight * reps, computed at insert time.
type Set struct {
	ID          int64             `json:"id"`
	UserID      string            `json:"userId"`
	ExerciseID  string            `json:"exerciseId"`
	Weight      float64           `json:"weight"`
	Reps        int               `json:"reps"`
	Volume      float64           `json:"volume"`
	PerformedAt time.Time         `json:"performedAt"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

func (s *Set) CalcVolume() float64 {
	if s.Weight <= 0 || s.Reps <= 0 {
		return 0
	}
	return s.Weight * float64(s.Reps)
}
