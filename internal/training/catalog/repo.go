package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrMuscleNotFound   = errors.New("muscle not found")
	ErrDuplicateMapping = errors.New("duplicate exercise muscle mapping")
	ErrShareOutOfRange  = errors.New("relative share out of range")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UpsertMuscle(ctx context.Context, m Muscle) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.upsertMuscle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle_id", m.ID))

	namesJson, err := json.Marshal(m.Names)
	if err != nil {
		return fmt.Errorf("marshal names: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO muscle (id, names, tension_factor)
				VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET
				names = EXCLUDED.names,
				tension_factor = EXCLUDED.tension_factor;`,
		m.ID, namesJson, m.TensionFactor,
	)
	return err
}

// ReplaceExerciseMuscles swaps the whole muscle mapping of one exercise.
func (r *Repo) ReplaceExerciseMuscles(ctx context.Context, exerciseID string, mappings []ExerciseMuscle) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.replaceExerciseMuscles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

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

	if _, err = tx.Exec(
		ctx,
		`DELETE FROM exercise_muscle WHERE exercise_id = $1;`,
		exerciseID,
	); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	for _, em := range mappings {
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO exercise_muscle (exercise_id, muscle_id, relative_share)
				VALUES ($1, $2, $3);`,
			exerciseID, em.MuscleID, em.RelativeShare,
		); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				err = fmt.Errorf("muscle %s: %w", em.MuscleID, ErrMuscleNotFound)
				return err
			}
			if pkg.IsUniqueViolationError(err) {
				err = fmt.Errorf("muscle %s: %w", em.MuscleID, ErrDuplicateMapping)
				return err
			}
			if pkg.IsCheckViolationError(err) {
				err = fmt.Errorf("muscle %s: %w", em.MuscleID, ErrShareOutOfRange)
				return err
			}
			return fmt.Errorf("insert: %w", err)
		}
	}

	return nil
}

func (r *Repo) GetMuscle(ctx context.Context, id string) (_ *Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.getMuscle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle_id", id))

	var m Muscle
	var namesBytes []byte
	err = r.db.QueryRow(
		ctx,
		`SELECT id, names, tension_factor FROM muscle WHERE id = $1;`,
		id,
	).Scan(&m.ID, &namesBytes, &m.TensionFactor)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMuscleNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(namesBytes) > 0 {
		if err := json.Unmarshal(namesBytes, &m.Names); err != nil {
			return nil, fmt.Errorf("unmarshal names for muscle %s: %w", id, err)
		}
	}

	return &m, nil
}

func (r *Repo) ListMuscles(ctx context.Context, ids []string) (_ []Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listMuscles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("muscle_ids", len(ids)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, names, tension_factor FROM muscle WHERE id = ANY($1);`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var muscles []Muscle
	for rows.Next() {
		var m Muscle
		var namesBytes []byte
		if err := rows.Scan(&m.ID, &namesBytes, &m.TensionFactor); err != nil {
			return nil, err
		}
		if len(namesBytes) > 0 {
			if err := json.Unmarshal(namesBytes, &m.Names); err != nil {
				return nil, fmt.Errorf("unmarshal names for muscle %s: %w", m.ID, err)
			}
		}
		muscles = append(muscles, m)
	}

	if muscles == nil {
		muscles = make([]Muscle, 0)
	}

	return muscles, nil
}

func (r *Repo) ListExerciseMuscles(ctx context.Context, exerciseIDs []string) (_ []ExerciseMuscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listExerciseMuscles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise_ids", len(exerciseIDs)))

	rows, err := r.db.Query(
		ctx,
		`SELECT exercise_id, muscle_id, relative_share
			FROM exercise_muscle
			WHERE exercise_id = ANY($1)
			ORDER BY exercise_id, muscle_id;`,
		exerciseIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var exerciseMuscles []ExerciseMuscle
	for rows.Next() {
		var em ExerciseMuscle
		if err := rows.Scan(&em.ExerciseID, &em.MuscleID, &em.RelativeShare); err != nil {
			return nil, err
		}
		exerciseMuscles = append(exerciseMuscles, em)
	}

	if exerciseMuscles == nil {
		exerciseMuscles = make([]ExerciseMuscle, 0)
	}

	return exerciseMuscles, nil
}
