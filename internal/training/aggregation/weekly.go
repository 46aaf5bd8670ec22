package aggregation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// Weekly rebuilds the weekly rollups of one (user, weekStart) scope, with
// the same full-replace semantics as the daily aggregator. Muscle rows keep
// e1rm sum and count instead of an average so downstream consolidation can
// weight merged series correctly.
type Weekly struct {
	sets      setsReader
	reference referenceReader
	store     rollupStore
	locker    *ScopeLocker
}

func NewWeekly(
	setsReader setsReader,
	referenceReader referenceReader,
	store rollupStore,
	locker *ScopeLocker,
) *Weekly {
	return &Weekly{
		sets:      setsReader,
		reference: referenceReader,
		store:     store,
		locker:    locker,
	}
}

func (w *Weekly) Update(ctx context.Context, userID string, weekStart time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregation.weekly.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	weekStart = WeekStart(weekStart)
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("week_start", weekStart.Format(time.DateOnly)),
	)

	unlock := w.locker.Lock("weekly:" + userID + ":" + weekStart.Format(time.DateOnly))
	defer unlock()

	weekSets, err := w.sets.ListForRange(ctx, userID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return fmt.Errorf("list sets: %w", err)
	}
	span.SetAttributes(attribute.Int("sets", len(weekSets)))

	if len(weekSets) == 0 {
		if err := w.store.DeleteWeeklyUserVolume(ctx, userID, weekStart); err != nil {
			return fmt.Errorf("delete weekly volume: %w", err)
		}
		if err := w.store.ReplaceWeeklyUserMuscleVolumes(ctx, userID, weekStart, nil); err != nil {
			return fmt.Errorf("clear weekly muscle volumes: %w", err)
		}
		return nil
	}

	var totalVolume, weightSum float64
	var repsSum int
	for _, s := range weekSets {
		totalVolume += s.Volume
		weightSum += s.Weight
		repsSum += s.Reps
	}

	// The user-level e1rm is the estimate of the week's averaged weight and
	// reps, same as the daily summary. Per-set accumulation is reserved for
	// the muscle rows below.
	setCount := len(weekSets)
	avgWeight := weightSum / float64(setCount)
	avgReps := float64(repsSum) / float64(setCount)

	volume := WeeklyUserVolume{
		UserID:       userID,
		WeekStart:    weekStart,
		TotalVolume:  totalVolume,
		AvgSetVolume: totalVolume / float64(setCount),
		E1RMAvg:      EstimateOneRepMax(avgWeight, avgReps),
	}

	exerciseIDsSeen := make(map[string]struct{})
	var exerciseIDs []string
	for _, s := range weekSets {
		if _, ok := exerciseIDsSeen[s.ExerciseID]; !ok {
			exerciseIDsSeen[s.ExerciseID] = struct{}{}
			exerciseIDs = append(exerciseIDs, s.ExerciseID)
		}
	}

	index, err := loadMuscleIndex(ctx, w.reference, exerciseIDs)
	if err != nil {
		return fmt.Errorf("load muscle index: %w", err)
	}

	// Each set contributes to every muscle its exercise trains: effective
	// volume scaled by the mapping, plus the set's e1rm estimate if any.
	byMuscle := make(map[string]*WeeklyUserMuscleVolume)
	for _, s := range weekSets {
		est := EstimateOneRepMax(s.Weight, float64(s.Reps))
		for _, em := range index.byExercise[s.ExerciseID] {
			muscle, err := index.muscle(em.MuscleID)
			if err != nil {
				return err
			}

			row, ok := byMuscle[em.MuscleID]
			if !ok {
				row = &WeeklyUserMuscleVolume{
					UserID:    userID,
					WeekStart: weekStart,
					MuscleID:  em.MuscleID,
				}
				byMuscle[em.MuscleID] = row
			}

			row.Volume += EffectiveVolume(s.Volume, em.RelativeShare, muscle.TensionFactor)
			row.SetCount++
			if est != nil {
				row.E1RMSum += *est
				row.E1RMCount++
			}
		}
	}

	muscleVolumes := make([]WeeklyUserMuscleVolume, 0, len(byMuscle))
	for _, row := range byMuscle {
		if row.Volume == 0 {
			continue
		}
		muscleVolumes = append(muscleVolumes, *row)
	}
	sort.Slice(muscleVolumes, func(i, j int) bool {
		return muscleVolumes[i].MuscleID < muscleVolumes[j].MuscleID
	})

	if err := w.store.UpsertWeeklyUserVolume(ctx, volume); err != nil {
		return fmt.Errorf("upsert weekly volume: %w", err)
	}
	if err := w.store.ReplaceWeeklyUserMuscleVolumes(ctx, userID, weekStart, muscleVolumes); err != nil {
		return fmt.Errorf("replace weekly muscle volumes: %w", err)
	}

	return nil
}
