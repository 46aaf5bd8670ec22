package aggregation

import (
	"context"
	"time"

	"github.com/2beens/liftstats/internal/training/catalog"
	"github.com/2beens/liftstats/internal/training/sets"
)

//go:generate mockgen -source=$GOFILE -destination=deps_mocks_test.go -package=aggregation_test

type setsReader interface {
	ListForRange(ctx context.Context, userID string, from, to time.Time) ([]sets.Set, error)
}

type referenceReader interface {
	ListExerciseMuscles(ctx context.Context, exerciseIDs []string) ([]catalog.ExerciseMuscle, error)
	ListMuscles(ctx context.Context, ids []string) ([]catalog.Muscle, error)
}

type rollupStore interface {
	UpsertDailyWorkoutSummary(ctx context.Context, s DailyWorkoutSummary) error
	DeleteDailyWorkoutSummary(ctx context.Context, userID string, date time.Time) error
	ReplaceDailyExerciseSummaries(ctx context.Context, userID string, date time.Time, rows []DailyExerciseSummary) error
	ReplaceDailyExerciseMuscleVolumes(ctx context.Context, userID string, date time.Time, rows []DailyExerciseMuscleVolume) error
	UpsertWeeklyUserVolume(ctx context.Context, w WeeklyUserVolume) error
	DeleteWeeklyUserVolume(ctx context.Context, userID string, weekStart time.Time) error
	ReplaceWeeklyUserMuscleVolumes(ctx context.Context, userID string, weekStart time.Time, rows []WeeklyUserMuscleVolume) error
}
