package sets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSetNotFound = errors.New("workout set not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	metadataJson, err := json.Marshal(set.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	set.Volume = set.CalcVolume()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_set
				(user_id, exercise_id, weight, reps, volume, performed_at, metadata)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		set.UserID, set.ExerciseID, set.Weight, set.Reps, set.Volume, set.PerformedAt, metadataJson,
	).Scan(&set.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout set: %w", err)
	}

	span.SetAttributes(attribute.Int64("set.id", set.ID))

	return &set, nil
}

func (r *Repo) Update(ctx context.Context, set *Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("set.id", set.ID))

	metadataJson, err := json.Marshal(set.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	set.Volume = set.CalcVolume()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_set
			SET exercise_id = $1, weight = $2, reps = $3, volume = $4, performed_at = $5, metadata = $6
			WHERE id = $7 AND user_id = $8;`,
		set.ExerciseID, set.Weight, set.Reps, set.Volume, set.PerformedAt, metadataJson,
		set.ID, set.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("set.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_set WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("set.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise_id, weight, reps, volume, performed_at, metadata
			FROM workout_set
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	allSets, err := r.rows2sets(rows)
	if err != nil {
		return nil, err
	}

	if len(allSets) != 1 {
		return nil, ErrSetNotFound
	}

	return &allSets[0], nil
}

// ListForRange returns all sets of a user performed within [from, to),
// ordered by performed_at (then id, for sets logged at the same instant).
func (r *Repo) ListForRange(ctx context.Context, userID string, from, to time.Time) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.listForRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise_id, weight, reps, volume, performed_at, metadata
			FROM workout_set
			WHERE user_id = $1
				AND performed_at >= $2
				AND performed_at < $3
			ORDER BY performed_at, id;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	allSets, err := r.rows2sets(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sets: %w", err)
	}
	return allSets, nil
}

func (r *Repo) rows2sets(rows pgx.Rows) ([]Set, error) {
	var allSets []Set
	for rows.Next() {
		var s Set
		var metadataBytes []byte
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.ExerciseID, &s.Weight, &s.Reps, &s.Volume, &s.PerformedAt, &metadataBytes,
		); err != nil {
			return nil, err
		}

		if len(metadataBytes) > 0 {
			if err := json.Unmarshal(metadataBytes, &s.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata for set %d: %w", s.ID, err)
			}
		}

		allSets = append(allSets, s)
	}

	if allSets == nil {
		allSets = make([]Set, 0)
	}

	return allSets, nil
}
