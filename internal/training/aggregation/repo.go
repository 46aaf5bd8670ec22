package aggregation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRollupNotFound = errors.New("rollup row not found")

// Repo is the rollup store: upsert-by-key writes, scope-wide replaces and
// reads for the five derived tables. Replaces run in one transaction so no
// stale rows from a previous rebuild survive a recomputation.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UpsertDailyWorkoutSummary(ctx context.Context, s DailyWorkoutSummary) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.upsertDailySummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", s.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO daily_workout_summary
				(user_id, date, total_volume, set_count, exercise_count, avg_rm)
				VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id, date) DO UPDATE SET
				total_volume = EXCLUDED.total_volume,
				set_count = EXCLUDED.set_count,
				exercise_count = EXCLUDED.exercise_count,
				avg_rm = EXCLUDED.avg_rm;`,
		s.UserID, s.Date, s.TotalVolume, s.SetCount, s.ExerciseCount, s.AvgRM,
	)
	return err
}

func (r *Repo) DeleteDailyWorkoutSummary(ctx context.Context, userID string, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.deleteDailySummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`DELETE FROM daily_workout_summary WHERE user_id = $1 AND date = $2;`,
		userID, date,
	)
	return err
}

func (r *Repo) GetDailyWorkoutSummary(ctx context.Context, userID string, date time.Time) (_ *DailyWorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.getDailySummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var s DailyWorkoutSummary
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, date, total_volume, set_count, exercise_count, avg_rm
			FROM daily_workout_summary
			WHERE user_id = $1 AND date = $2;`,
		userID, date,
	).Scan(&s.UserID, &s.Date, &s.TotalVolume, &s.SetCount, &s.ExerciseCount, &s.AvgRM)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRollupNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ReplaceDailyExerciseSummaries deletes all per-exercise rows of the scope
// and inserts the given ones, atomically. An empty slice just clears the scope.
func (r *Repo) ReplaceDailyExerciseSummaries(
	ctx context.Context,
	userID string,
	date time.Time,
	rows []DailyExerciseSummary,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.replaceDailyExerciseSummaries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("rows", len(rows)))

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`DELETE FROM daily_exercise_summary WHERE user_id = $1 AND date = $2;`,
			userID, date,
		); err != nil {
			return fmt.Errorf("delete: %w", err)
		}

		batch := &pgx.Batch{}
		for _, row := range rows {
			batch.Queue(
				`INSERT INTO daily_exercise_summary
					(user_id, date, exercise_id, total_volume, avg_rm, set_count, set_ids)
					VALUES ($1, $2, $3, $4, $5, $6, $7);`,
				row.UserID, row.Date, row.ExerciseID, row.TotalVolume, row.AvgRM, row.SetCount, row.SetIDs,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		return nil
	})
}

func (r *Repo) ListDailyExerciseSummaries(ctx context.Context, userID string, date time.Time) (_ []DailyExerciseSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.listDailyExerciseSummaries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, date, exercise_id, total_volume, avg_rm, set_count, set_ids
			FROM daily_exercise_summary
			WHERE user_id = $1 AND date = $2
			ORDER BY exercise_id;`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var summaries []DailyExerciseSummary
	for rows.Next() {
		var s DailyExerciseSummary
		if err := rows.Scan(
			&s.UserID, &s.Date, &s.ExerciseID, &s.TotalVolume, &s.AvgRM, &s.SetCount, &s.SetIDs,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if summaries == nil {
		summaries = make([]DailyExerciseSummary, 0)
	}
	return summaries, nil
}

func (r *Repo) ReplaceDailyExerciseMuscleVolumes(
	ctx context.Context,
	userID string,
	date time.Time,
	rows []DailyExerciseMuscleVolume,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.replaceDailyExerciseMuscleVolumes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("rows", len(rows)))

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`DELETE FROM daily_exercise_muscle_volume WHERE user_id = $1 AND date = $2;`,
			userID, date,
		); err != nil {
			return fmt.Errorf("delete: %w", err)
		}

		batch := &pgx.Batch{}
		for _, row := range rows {
			batch.Queue(
				`INSERT INTO daily_exercise_muscle_volume
					(user_id, date, exercise_id, muscle_id, effective_volume)
					VALUES ($1, $2, $3, $4, $5);`,
				row.UserID, row.Date, row.ExerciseID, row.MuscleID, row.EffectiveVolume,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		return nil
	})
}

func (r *Repo) ListDailyExerciseMuscleVolumes(ctx context.Context, userID string, date time.Time) (_ []DailyExerciseMuscleVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.listDailyExerciseMuscleVolumes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, date, exercise_id, muscle_id, effective_volume
			FROM daily_exercise_muscle_volume
			WHERE user_id = $1 AND date = $2
			ORDER BY exercise_id, muscle_id;`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var volumes []DailyExerciseMuscleVolume
	for rows.Next() {
		var v DailyExerciseMuscleVolume
		if err := rows.Scan(&v.UserID, &v.Date, &v.ExerciseID, &v.MuscleID, &v.EffectiveVolume); err != nil {
			return nil, err
		}
		volumes = append(volumes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if volumes == nil {
		volumes = make([]DailyExerciseMuscleVolume, 0)
	}
	return volumes, nil
}

func (r *Repo) UpsertWeeklyUserVolume(ctx context.Context, w WeeklyUserVolume) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.upsertWeeklyVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", w.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO weekly_user_volume
				(user_id, week_start, total_volume, avg_set_volume, e1rm_avg)
				VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, week_start) DO UPDATE SET
				total_volume = EXCLUDED.total_volume,
				avg_set_volume = EXCLUDED.avg_set_volume,
				e1rm_avg = EXCLUDED.e1rm_avg;`,
		w.UserID, w.WeekStart, w.TotalVolume, w.AvgSetVolume, w.E1RMAvg,
	)
	return err
}

func (r *Repo) DeleteWeeklyUserVolume(ctx context.Context, userID string, weekStart time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.deleteWeeklyVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`DELETE FROM weekly_user_volume WHERE user_id = $1 AND week_start = $2;`,
		userID, weekStart,
	)
	return err
}

func (r *Repo) GetWeeklyUserVolume(ctx context.Context, userID string, weekStart time.Time) (_ *WeeklyUserVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.getWeeklyVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var w WeeklyUserVolume
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, week_start, total_volume, avg_set_volume, e1rm_avg
			FROM weekly_user_volume
			WHERE user_id = $1 AND week_start = $2;`,
		userID, weekStart,
	).Scan(&w.UserID, &w.WeekStart, &w.TotalVolume, &w.AvgSetVolume, &w.E1RMAvg)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRollupNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListWeeklyUserVolumes returns the (sparse) weekly rows with week_start
// within [from, to], ordered by week_start.
func (r *Repo) ListWeeklyUserVolumes(ctx context.Context, userID string, from, to time.Time) (_ []WeeklyUserVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.listWeeklyVolumes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, week_start, total_volume, avg_set_volume, e1rm_avg
			FROM weekly_user_volume
			WHERE user_id = $1 AND week_start >= $2 AND week_start <= $3
			ORDER BY week_start;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var volumes []WeeklyUserVolume
	for rows.Next() {
		var w WeeklyUserVolume
		if err := rows.Scan(&w.UserID, &w.WeekStart, &w.TotalVolume, &w.AvgSetVolume, &w.E1RMAvg); err != nil {
			return nil, err
		}
		volumes = append(volumes, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if volumes == nil {
		volumes = make([]WeeklyUserVolume, 0)
	}
	return volumes, nil
}

func (r *Repo) ReplaceWeeklyUserMuscleVolumes(
	ctx context.Context,
	userID string,
	weekStart time.Time,
	rows []WeeklyUserMuscleVolume,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.replaceWeeklyMuscleVolumes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("rows", len(rows)))

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`DELETE FROM weekly_user_muscle_volume WHERE user_id = $1 AND week_start = $2;`,
			userID, weekStart,
		); err != nil {
			return fmt.Errorf("delete: %w", err)
		}

		batch := &pgx.Batch{}
		for _, row := range rows {
			batch.Queue(
				`INSERT INTO weekly_user_muscle_volume
					(user_id, week_start, muscle_id, volume, set_count, e1rm_sum, e1rm_count)
					VALUES ($1, $2, $3, $4, $5, $6, $7);`,
				row.UserID, row.WeekStart, row.MuscleID, row.Volume, row.SetCount, row.E1RMSum, row.E1RMCount,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		return nil
	})
}

func (r *Repo) ListWeeklyUserMuscleVolumes(ctx context.Context, userID string, from, to time.Time) (_ []WeeklyUserMuscleVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregation.listWeeklyMuscleVolumes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, week_start, muscle_id, volume, set_count, e1rm_sum, e1rm_count
			FROM weekly_user_muscle_volume
			WHERE user_id = $1 AND week_start >= $2 AND week_start <= $3
			ORDER BY week_start, muscle_id;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var volumes []WeeklyUserMuscleVolume
	for rows.Next() {
		var w WeeklyUserMuscleVolume
		if err := rows.Scan(
			&w.UserID, &w.WeekStart, &w.MuscleID, &w.Volume, &w.SetCount, &w.E1RMSum, &w.E1RMCount,
		); err != nil {
			return nil, err
		}
		volumes = append(volumes, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if volumes == nil {
		volumes = make([]WeeklyUserMuscleVolume, 0)
	}
	return volumes, nil
}

func (r *Repo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}
