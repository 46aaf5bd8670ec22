package aggregation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/training/catalog"
	"github.com/2beens/liftstats/internal/training/sets"

	"go.opentelemetry.io/otel/attribute"
)

// Daily rebuilds all daily rollups of one (user, date) scope from the raw
// sets of that day. The rebuild is full replace: whatever the tables held
// for the scope before is discarded, and an empty day clears the scope.
type Daily struct {
	sets      setsReader
	reference referenceReader
	store     rollupStore
	locker    *ScopeLocker
}

func NewDaily(
	setsReader setsReader,
	referenceReader referenceReader,
	store rollupStore,
	locker *ScopeLocker,
) *Daily {
	return &Daily{
		sets:      setsReader,
		reference: referenceReader,
		store:     store,
		locker:    locker,
	}
}

func (d *Daily) Update(ctx context.Context, userID string, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregation.daily.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	date = Day(date)
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("date", date.Format(time.DateOnly)),
	)

	unlock := d.locker.Lock("daily:" + userID + ":" + date.Format(time.DateOnly))
	defer unlock()

	daySets, err := d.sets.ListForRange(ctx, userID, date, date.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("list sets: %w", err)
	}
	span.SetAttributes(attribute.Int("sets", len(daySets)))

	if len(daySets) == 0 {
		return d.clear(ctx, userID, date)
	}

	exerciseSummaries := summarizeExercises(userID, date, daySets)

	exerciseIDs := make([]string, 0, len(exerciseSummaries))
	for _, es := range exerciseSummaries {
		exerciseIDs = append(exerciseIDs, es.ExerciseID)
	}

	index, err := loadMuscleIndex(ctx, d.reference, exerciseIDs)
	if err != nil {
		return fmt.Errorf("load muscle index: %w", err)
	}

	var muscleVolumes []DailyExerciseMuscleVolume
	for _, es := range exerciseSummaries {
		for _, em := range index.byExercise[es.ExerciseID] {
			muscle, err := index.muscle(em.MuscleID)
			if err != nil {
				return err
			}
			effective := EffectiveVolume(es.TotalVolume, em.RelativeShare, muscle.TensionFactor)
			if effective == 0 {
				continue
			}
			muscleVolumes = append(muscleVolumes, DailyExerciseMuscleVolume{
				UserID:          userID,
				Date:            date,
				ExerciseID:      es.ExerciseID,
				MuscleID:        em.MuscleID,
				EffectiveVolume: effective,
			})
		}
	}

	summary := summarizeDay(userID, date, daySets, len(exerciseSummaries))

	if err := d.store.UpsertDailyWorkoutSummary(ctx, summary); err != nil {
		return fmt.Errorf("upsert daily summary: %w", err)
	}
	if err := d.store.ReplaceDailyExerciseSummaries(ctx, userID, date, exerciseSummaries); err != nil {
		return fmt.Errorf("replace exercise summaries: %w", err)
	}
	if err := d.store.ReplaceDailyExerciseMuscleVolumes(ctx, userID, date, muscleVolumes); err != nil {
		return fmt.Errorf("replace muscle volumes: %w", err)
	}

	return nil
}

func (d *Daily) clear(ctx context.Context, userID string, date time.Time) error {
	if err := d.store.DeleteDailyWorkoutSummary(ctx, userID, date); err != nil {
		return fmt.Errorf("delete daily summary: %w", err)
	}
	if err := d.store.ReplaceDailyExerciseSummaries(ctx, userID, date, nil); err != nil {
		return fmt.Errorf("clear exercise summaries: %w", err)
	}
	if err := d.store.ReplaceDailyExerciseMuscleVolumes(ctx, userID, date, nil); err != nil {
		return fmt.Errorf("clear muscle volumes: %w", err)
	}
	return nil
}

func summarizeDay(userID string, date time.Time, daySets []sets.Set, exerciseCount int) DailyWorkoutSummary {
	var totalVolume, weightSum float64
	var repsSum int
	for _, s := range daySets {
		totalVolume += s.Volume
		weightSum += s.Weight
		repsSum += s.Reps
	}

	setCount := len(daySets)
	avgWeight := weightSum / float64(setCount)
	avgReps := float64(repsSum) / float64(setCount)

	return DailyWorkoutSummary{
		UserID:        userID,
		Date:          date,
		TotalVolume:   totalVolume,
		SetCount:      setCount,
		ExerciseCount: exerciseCount,
		AvgRM:         EstimateOneRepMax(avgWeight, avgReps),
	}
}

// summarizeExercises groups the day's sets per exercise, ordered by
// exercise id so repeated rebuilds of the same inputs write identical rows.
func summarizeExercises(userID string, date time.Time, daySets []sets.Set) []DailyExerciseSummary {
	type group struct {
		totalVolume float64
		weightSum   float64
		repsSum     int
		setIDs      []int64
	}
	groups := make(map[string]*group)
	for _, s := range daySets {
		g, ok := groups[s.ExerciseID]
		if !ok {
			g = &group{}
			groups[s.ExerciseID] = g
		}
		g.totalVolume += s.Volume
		g.weightSum += s.Weight
		g.repsSum += s.Reps
		g.setIDs = append(g.setIDs, s.ID)
	}

	exerciseIDs := make([]string, 0, len(groups))
	for exerciseID := range groups {
		exerciseIDs = append(exerciseIDs, exerciseID)
	}
	sort.Strings(exerciseIDs)

	summaries := make([]DailyExerciseSummary, 0, len(groups))
	for _, exerciseID := range exerciseIDs {
		g := groups[exerciseID]
		setCount := len(g.setIDs)
		avgWeight := g.weightSum / float64(setCount)
		avgReps := float64(g.repsSum) / float64(setCount)
		summaries = append(summaries, DailyExerciseSummary{
			UserID:      userID,
			Date:        date,
			ExerciseID:  exerciseID,
			TotalVolume: g.totalVolume,
			AvgRM:       EstimateOneRepMax(avgWeight, avgReps),
			SetCount:    setCount,
			SetIDs:      g.setIDs,
		})
	}
	return summaries
}

// muscleIndex joins the exercise-muscle mapping with the muscle reference
// rows, loaded once per rebuild.
type muscleIndex struct {
	byExercise map[string][]catalog.ExerciseMuscle
	muscles    map[string]catalog.Muscle
}

func loadMuscleIndex(ctx context.Context, reference referenceReader, exerciseIDs []string) (*muscleIndex, error) {
	exerciseMuscles, err := reference.ListExerciseMuscles(ctx, exerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("list exercise muscles: %w", err)
	}

	byExercise := make(map[string][]catalog.ExerciseMuscle)
	muscleIDsSeen := make(map[string]struct{})
	var muscleIDs []string
	for _, em := range exerciseMuscles {
		byExercise[em.ExerciseID] = append(byExercise[em.ExerciseID], em)
		if _, ok := muscleIDsSeen[em.MuscleID]; !ok {
			muscleIDsSeen[em.MuscleID] = struct{}{}
			muscleIDs = append(muscleIDs, em.MuscleID)
		}
	}
	for _, ems := range byExercise {
		sort.Slice(ems, func(i, j int) bool {
			return ems[i].MuscleID < ems[j].MuscleID
		})
	}

	muscles := make(map[string]catalog.Muscle)
	if len(muscleIDs) > 0 {
		muscleRows, err := reference.ListMuscles(ctx, muscleIDs)
		if err != nil {
			return nil, fmt.Errorf("list muscles: %w", err)
		}
		for _, m := range muscleRows {
			muscles[m.ID] = m
		}
	}

	return &muscleIndex{
		byExercise: byExercise,
		muscles:    muscles,
	}, nil
}

func (mi *muscleIndex) muscle(id string) (catalog.Muscle, error) {
	m, ok := mi.muscles[id]
	if !ok {
		return catalog.Muscle{}, fmt.Errorf("muscle %s referenced by exercise mapping: %w", id, catalog.ErrMuscleNotFound)
	}
	return m, nil
}
