package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/training/aggregation"
	"github.com/2beens/liftstats/internal/training/catalog"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=assembler_mocks_test.go -package=dashboard_test

var ErrInvalidSpan = errors.New("invalid span")

var spanWeeks = map[string]int{
	"1w":  1,
	"4w":  4,
	"8w":  8,
	"12w": 12,
	"24w": 24,
}

type rollupReader interface {
	GetWeeklyUserVolume(ctx context.Context, userID string, weekStart time.Time) (*aggregation.WeeklyUserVolume, error)
	ListWeeklyUserVolumes(ctx context.Context, userID string, from, to time.Time) ([]aggregation.WeeklyUserVolume, error)
	ListWeeklyUserMuscleVolumes(ctx context.Context, userID string, from, to time.Time) ([]aggregation.WeeklyUserMuscleVolume, error)
}

type muscleCatalog interface {
	ListMuscles(ctx context.Context, ids []string) ([]catalog.Muscle, error)
}

// Assembler stitches weekly rollups into the dashboard view model. It reads
// rollups only, never raw sets, and treats missing rows as zero-value weeks.
type Assembler struct {
	rollups rollupReader
	muscles muscleCatalog
	now     func() time.Time
}

func NewAssembler(rollups rollupReader, muscles muscleCatalog) *Assembler {
	return &Assembler{
		rollups: rollups,
		muscles: muscles,
		now:     time.Now,
	}
}

// ParseSpan resolves a span token of the form <N>w into its week count.
func ParseSpan(span string) (int, error) {
	weeks, ok := spanWeeks[span]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSpan, span)
	}
	return weeks, nil
}

func (a *Assembler) Get(ctx context.Context, userID, span, language string) (_ *Data, err error) {
	ctx, tracingSpan := tracing.GlobalTracer.Start(ctx, "dashboard.assembler.get")
	defer func() {
		tracing.EndSpanWithErrCheck(tracingSpan, err)
	}()
	tracingSpan.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("span", span),
	)

	weeks, err := ParseSpan(span)
	if err != nil {
		return nil, err
	}

	currentWeekStart := aggregation.WeekStart(a.now())
	lastWeekStart := currentWeekStart.AddDate(0, 0, -7)
	spanStart := currentWeekStart.AddDate(0, 0, -7*(weeks-1))

	thisWeek, err := a.weekPoint(ctx, userID, currentWeekStart)
	if err != nil {
		return nil, fmt.Errorf("this week: %w", err)
	}
	lastWeek, err := a.weekPoint(ctx, userID, lastWeekStart)
	if err != nil {
		return nil, fmt.Errorf("last week: %w", err)
	}

	trend, err := a.trend(ctx, userID, spanStart, currentWeekStart, weeks)
	if err != nil {
		return nil, fmt.Errorf("trend: %w", err)
	}

	muscleGroups, err := a.muscleGroups(ctx, userID, spanStart, currentWeekStart, weeks, language)
	if err != nil {
		return nil, fmt.Errorf("muscle groups: %w", err)
	}
	muscleGroups = ConsolidateLegs(muscleGroups, language)

	return &Data{
		ThisWeek:     thisWeek,
		LastWeek:     lastWeek,
		Trend:        trend,
		MuscleGroups: muscleGroups,
		Metrics:      headlineMetrics(thisWeek, lastWeek),
	}, nil
}

// weekPoint reads one weekly rollup, substituting a zero point when the
// week has no row. ThisWeek and LastWeek are always present in the output.
func (a *Assembler) weekPoint(ctx context.Context, userID string, weekStart time.Time) (WeekPoint, error) {
	volume, err := a.rollups.GetWeeklyUserVolume(ctx, userID, weekStart)
	if errors.Is(err, aggregation.ErrRollupNotFound) {
		return zeroWeekPoint(weekStart), nil
	}
	if err != nil {
		return WeekPoint{}, err
	}
	return weekPointOf(*volume), nil
}

func (a *Assembler) trend(ctx context.Context, userID string, spanStart, currentWeekStart time.Time, weeks int) ([]WeekPoint, error) {
	sparse, err := a.rollups.ListWeeklyUserVolumes(ctx, userID, spanStart, currentWeekStart)
	if err != nil {
		return nil, err
	}

	byWeek := make(map[string]aggregation.WeeklyUserVolume, len(sparse))
	for _, v := range sparse {
		byWeek[v.WeekStart.Format(time.DateOnly)] = v
	}

	trend := make([]WeekPoint, 0, weeks)
	for weekStart := spanStart; !weekStart.After(currentWeekStart); weekStart = weekStart.AddDate(0, 0, 7) {
		if v, ok := byWeek[weekStart.Format(time.DateOnly)]; ok {
			trend = append(trend, weekPointOf(v))
		} else {
			trend = append(trend, zeroWeekPoint(weekStart))
		}
	}
	return trend, nil
}

func (a *Assembler) muscleGroups(
	ctx context.Context,
	userID string,
	spanStart, currentWeekStart time.Time,
	weeks int,
	language string,
) ([]MuscleGroupSeries, error) {
	rows, err := a.rollups.ListWeeklyUserMuscleVolumes(ctx, userID, spanStart, currentWeekStart)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []MuscleGroupSeries{}, nil
	}

	byMuscle := make(map[string]map[string]aggregation.WeeklyUserMuscleVolume)
	var muscleIDs []string
	for _, row := range rows {
		weeksOfMuscle, ok := byMuscle[row.MuscleID]
		if !ok {
			weeksOfMuscle = make(map[string]aggregation.WeeklyUserMuscleVolume)
			byMuscle[row.MuscleID] = weeksOfMuscle
			muscleIDs = append(muscleIDs, row.MuscleID)
		}
		weeksOfMuscle[row.WeekStart.Format(time.DateOnly)] = row
	}
	sort.Strings(muscleIDs)

	names, err := a.muscleNames(ctx, muscleIDs, language)
	if err != nil {
		return nil, err
	}

	groups := make([]MuscleGroupSeries, 0, len(muscleIDs))
	for _, muscleID := range muscleIDs {
		weeksOfMuscle := byMuscle[muscleID]
		points := make([]MuscleGroupPoint, 0, weeks)
		for weekStart := spanStart; !weekStart.After(currentWeekStart); weekStart = weekStart.AddDate(0, 0, 7) {
			if row, ok := weeksOfMuscle[weekStart.Format(time.DateOnly)]; ok {
				points = append(points, MuscleGroupPoint{
					WeekStart:   row.WeekStart,
					TotalVolume: row.Volume,
					SetCount:    row.SetCount,
					AvgE1RM:     row.AvgE1RM(),
				})
			} else {
				points = append(points, MuscleGroupPoint{WeekStart: weekStart})
			}
		}
		groups = append(groups, MuscleGroupSeries{
			MuscleID: muscleID,
			Name:     names[muscleID],
			Points:   points,
		})
	}
	return groups, nil
}

func (a *Assembler) muscleNames(ctx context.Context, muscleIDs []string, language string) (map[string]string, error) {
	muscles, err := a.muscles.ListMuscles(ctx, muscleIDs)
	if err != nil {
		return nil, fmt.Errorf("list muscles: %w", err)
	}

	names := make(map[string]string, len(muscleIDs))
	for _, m := range muscles {
		names[m.ID] = m.Name(LanguagePrefix(language))
	}
	// Catalog gaps degrade to the raw id instead of failing the read path.
	for _, id := range muscleIDs {
		if names[id] == "" {
			names[id] = id
		}
	}
	return names, nil
}

// LanguagePrefix normalizes a locale tag like "en-US" to its language part.
func LanguagePrefix(language string) string {
	if prefix, _, found := strings.Cut(language, "-"); found {
		return prefix
	}
	return language
}

func weekPointOf(v aggregation.WeeklyUserVolume) WeekPoint {
	return WeekPoint{
		WeekStart:    v.WeekStart,
		TotalVolume:  v.TotalVolume,
		AvgSetVolume: v.AvgSetVolume,
		E1RMAvg:      v.E1RMAvg,
	}
}

func zeroWeekPoint(weekStart time.Time) WeekPoint {
	return WeekPoint{WeekStart: weekStart}
}

func headlineMetrics(thisWeek, lastWeek WeekPoint) []Metric {
	return []Metric{
		metricOf("weeklyVolume", &thisWeek.TotalVolume, &lastWeek.TotalVolume),
		metricOf("avgSetVolume", &thisWeek.AvgSetVolume, &lastWeek.AvgSetVolume),
		metricOf("e1rmAvg", thisWeek.E1RMAvg, lastWeek.E1RMAvg),
	}
}

func metricOf(id string, value, prevValue *float64) Metric {
	m := Metric{ID: id}
	if value != nil {
		v := *value
		m.Value = &v
	}
	if prevValue != nil {
		p := *prevValue
		m.PrevValue = &p
	}
	if m.Value != nil && m.PrevValue != nil && *m.PrevValue != 0 {
		change := (*m.Value - *m.PrevValue) / *m.PrevValue * 100
		m.ChangePct = &change
	}
	return m
}
