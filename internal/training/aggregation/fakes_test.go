package aggregation_test

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/liftstats/internal/training/aggregation"
	"github.com/2beens/liftstats/internal/training/catalog"
	"github.com/2beens/liftstats/internal/training/sets"
)

// setsReaderFake serves raw sets from memory, filtered like the real repo:
// user match plus performedAt within [from, to).
type setsReaderFake struct {
	mu   sync.Mutex
	sets []sets.Set
}

func (f *setsReaderFake) ListForRange(_ context.Context, userID string, from, to time.Time) ([]sets.Set, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	found := make([]sets.Set, 0)
	for _, s := range f.sets {
		if s.UserID != userID {
			continue
		}
		if s.PerformedAt.Before(from) || !s.PerformedAt.Before(to) {
			continue
		}
		found = append(found, s)
	}
	return found, nil
}

type referenceFake struct {
	exerciseMuscles []catalog.ExerciseMuscle
	muscles         map[string]catalog.Muscle
}

func (f *referenceFake) ListExerciseMuscles(_ context.Context, exerciseIDs []string) ([]catalog.ExerciseMuscle, error) {
	wanted := make(map[string]struct{}, len(exerciseIDs))
	for _, id := range exerciseIDs {
		wanted[id] = struct{}{}
	}

	found := make([]catalog.ExerciseMuscle, 0)
	for _, em := range f.exerciseMuscles {
		if _, ok := wanted[em.ExerciseID]; ok {
			found = append(found, em)
		}
	}
	return found, nil
}

func (f *referenceFake) ListMuscles(_ context.Context, ids []string) ([]catalog.Muscle, error) {
	found := make([]catalog.Muscle, 0)
	for _, id := range ids {
		if m, ok := f.muscles[id]; ok {
			found = append(found, m)
		}
	}
	return found, nil
}

// rollupStoreFake keeps rollup rows in maps keyed by scope, mimicking the
// keyed upsert/replace semantics of the real store.
type rollupStoreFake struct {
	mu              sync.Mutex
	dailySummaries  map[string]aggregation.DailyWorkoutSummary
	dailyExercises  map[string][]aggregation.DailyExerciseSummary
	dailyMuscles    map[string][]aggregation.DailyExerciseMuscleVolume
	weeklySummaries map[string]aggregation.WeeklyUserVolume
	weeklyMuscles   map[string][]aggregation.WeeklyUserMuscleVolume
}

func newRollupStoreFake() *rollupStoreFake {
	return &rollupStoreFake{
		dailySummaries:  make(map[string]aggregation.DailyWorkoutSummary),
		dailyExercises:  make(map[string][]aggregation.DailyExerciseSummary),
		dailyMuscles:    make(map[string][]aggregation.DailyExerciseMuscleVolume),
		weeklySummaries: make(map[string]aggregation.WeeklyUserVolume),
		weeklyMuscles:   make(map[string][]aggregation.WeeklyUserMuscleVolume),
	}
}

func scopeKey(userID string, date time.Time) string {
	return userID + "|" + date.Format(time.DateOnly)
}

func (f *rollupStoreFake) UpsertDailyWorkoutSummary(_ context.Context, s aggregation.DailyWorkoutSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dailySummaries[scopeKey(s.UserID, s.Date)] = s
	return nil
}

func (f *rollupStoreFake) DeleteDailyWorkoutSummary(_ context.Context, userID string, date time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.dailySummaries, scopeKey(userID, date))
	return nil
}

func (f *rollupStoreFake) ReplaceDailyExerciseSummaries(
	_ context.Context, userID string, date time.Time, rows []aggregation.DailyExerciseSummary,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(rows) == 0 {
		delete(f.dailyExercises, scopeKey(userID, date))
		return nil
	}
	f.dailyExercises[scopeKey(userID, date)] = rows
	return nil
}

func (f *rollupStoreFake) ReplaceDailyExerciseMuscleVolumes(
	_ context.Context, userID string, date time.Time, rows []aggregation.DailyExerciseMuscleVolume,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(rows) == 0 {
		delete(f.dailyMuscles, scopeKey(userID, date))
		return nil
	}
	f.dailyMuscles[scopeKey(userID, date)] = rows
	return nil
}

func (f *rollupStoreFake) UpsertWeeklyUserVolume(_ context.Context, w aggregation.WeeklyUserVolume) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weeklySummaries[scopeKey(w.UserID, w.WeekStart)] = w
	return nil
}

func (f *rollupStoreFake) DeleteWeeklyUserVolume(_ context.Context, userID string, weekStart time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.weeklySummaries, scopeKey(userID, weekStart))
	return nil
}

func (f *rollupStoreFake) ReplaceWeeklyUserMuscleVolumes(
	_ context.Context, userID string, weekStart time.Time, rows []aggregation.WeeklyUserMuscleVolume,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(rows) == 0 {
		delete(f.weeklyMuscles, scopeKey(userID, weekStart))
		return nil
	}
	f.weeklyMuscles[scopeKey(userID, weekStart)] = rows
	return nil
}
