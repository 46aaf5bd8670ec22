package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/training/aggregation"
	"github.com/2beens/liftstats/internal/training/sets"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=training_test

type setsRepo interface {
	Add(ctx context.Context, set sets.Set) (*sets.Set, error)
	Update(ctx context.Context, set *sets.Set) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*sets.Set, error)
	ListForRange(ctx context.Context, userID string, from, to time.Time) ([]sets.Set, error)
}

type dailyAggregator interface {
	Update(ctx context.Context, userID string, date time.Time) error
}

type weeklyAggregator interface {
	Update(ctx context.Context, userID string, weekStart time.Time) error
}

type dayReader interface {
	GetDailyWorkoutSummary(ctx context.Context, userID string, date time.Time) (*aggregation.DailyWorkoutSummary, error)
	ListDailyExerciseSummaries(ctx context.Context, userID string, date time.Time) ([]aggregation.DailyExerciseSummary, error)
	ListDailyExerciseMuscleVolumes(ctx context.Context, userID string, date time.Time) ([]aggregation.DailyExerciseMuscleVolume, error)
}

// DayDetail is the daily rollup view of one training day. Summary is nil
// for a day with no logged sets.
type DayDetail struct {
	Date          time.Time                               `json:"date"`
	Summary       *aggregation.DailyWorkoutSummary        `json:"summary"`
	Exercises     []aggregation.DailyExerciseSummary      `json:"exercises"`
	MuscleVolumes []aggregation.DailyExerciseMuscleVolume `json:"muscleVolumes"`
}

// Service is the use-case layer around workout sets: every mutation is
// followed by a daily then weekly rebuild of the affected scopes, so the
// rollup tables never lag the raw data for longer than the mutation call.
type Service struct {
	sets    setsRepo
	daily   dailyAggregator
	weekly  weeklyAggregator
	days    dayReader
	metrics *metrics.Manager
}

func NewService(
	setsRepo setsRepo,
	daily dailyAggregator,
	weekly weeklyAggregator,
	days dayReader,
	metrics *metrics.Manager,
) *Service {
	return &Service{
		sets:    setsRepo,
		daily:   daily,
		weekly:  weekly,
		days:    days,
		metrics: metrics,
	}
}

func (s *Service) AddSet(ctx context.Context, set sets.Set) (_ *sets.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.addSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", set.UserID))

	added, err := s.sets.Add(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("add set: %w", err)
	}

	s.metrics.CounterSetsLogged.Inc()

	if err := s.reaggregate(ctx, added.UserID, added.PerformedAt); err != nil {
		return nil, err
	}
	return added, nil
}

func (s *Service) UpdateSet(ctx context.Context, set *sets.Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.updateSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("set.id", set.ID))

	existing, err := s.sets.Get(ctx, set.ID)
	if err != nil {
		return fmt.Errorf("get set: %w", err)
	}
	if existing.UserID != set.UserID {
		return sets.ErrSetNotFound
	}

	if err := s.sets.Update(ctx, set); err != nil {
		return fmt.Errorf("update set: %w", err)
	}

	if err := s.reaggregate(ctx, set.UserID, set.PerformedAt); err != nil {
		return err
	}

	// A set moved to another day leaves its old scope stale too.
	if !aggregation.Day(existing.PerformedAt).Equal(aggregation.Day(set.PerformedAt)) {
		if err := s.reaggregate(ctx, set.UserID, existing.PerformedAt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) DeleteSet(ctx context.Context, userID string, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.deleteSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("set.id", id))

	existing, err := s.sets.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get set: %w", err)
	}
	if existing.UserID != userID {
		return sets.ErrSetNotFound
	}

	if err := s.sets.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete set: %w", err)
	}

	return s.reaggregate(ctx, userID, existing.PerformedAt)
}

func (s *Service) GetSet(ctx context.Context, userID string, id int64) (_ *sets.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.getSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("set.id", id))

	set, err := s.sets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if set.UserID != userID {
		return nil, sets.ErrSetNotFound
	}
	return set, nil
}

func (s *Service) ListSets(ctx context.Context, userID string, from, to time.Time) (_ []sets.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.listSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	return s.sets.ListForRange(ctx, userID, from, to)
}

// DayDetail reads the daily rollups of one day straight from the rollup
// tables, without touching the raw sets.
func (s *Service) DayDetail(ctx context.Context, userID string, date time.Time) (_ *DayDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.dayDetail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	day := aggregation.Day(date)

	summary, err := s.days.GetDailyWorkoutSummary(ctx, userID, day)
	if err != nil && !errors.Is(err, aggregation.ErrRollupNotFound) {
		return nil, fmt.Errorf("get daily summary: %w", err)
	}

	exercises, err := s.days.ListDailyExerciseSummaries(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("list exercise summaries: %w", err)
	}

	muscleVolumes, err := s.days.ListDailyExerciseMuscleVolumes(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("list muscle volumes: %w", err)
	}

	return &DayDetail{
		Date:          day,
		Summary:       summary,
		Exercises:     exercises,
		MuscleVolumes: muscleVolumes,
	}, nil
}

// reaggregate rebuilds the daily then the weekly rollups covering the
// given timestamp. Both rebuilds are attempted even if the first fails, as
// each is independently idempotent and safe to retry.
func (s *Service) reaggregate(ctx context.Context, userID string, performedAt time.Time) error {
	var errs error

	start := time.Now()
	if err := s.daily.Update(ctx, userID, performedAt); err != nil {
		s.metrics.CounterAggregationErrors.WithLabelValues("daily").Inc()
		errs = multierr.Append(errs, fmt.Errorf("daily aggregation: %w", err))
	} else {
		s.metrics.CounterAggregationRuns.WithLabelValues("daily").Inc()
		s.metrics.HistAggregationDuration.WithLabelValues("daily").Observe(time.Since(start).Seconds())
	}

	start = time.Now()
	if err := s.weekly.Update(ctx, userID, performedAt); err != nil {
		s.metrics.CounterAggregationErrors.WithLabelValues("weekly").Inc()
		errs = multierr.Append(errs, fmt.Errorf("weekly aggregation: %w", err))
	} else {
		s.metrics.CounterAggregationRuns.WithLabelValues("weekly").Inc()
		s.metrics.HistAggregationDuration.WithLabelValues("weekly").Observe(time.Since(start).Seconds())
	}

	return errs
}
