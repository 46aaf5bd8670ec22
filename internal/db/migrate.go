package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS workout_set (
	id           BIGSERIAL PRIMARY KEY,
	user_id      TEXT NOT NULL,
	exercise_id  TEXT NOT NULL,
	weight       DOUBLE PRECISION NOT NULL,
	reps         INT NOT NULL,
	volume       DOUBLE PRECISION NOT NULL,
	performed_at TIMESTAMPTZ NOT NULL,
	metadata     JSONB
);

CREATE INDEX IF NOT EXISTS idx_workout_set_user_performed_at
	ON workout_set(user_id, performed_at);

CREATE TABLE IF NOT EXISTS muscle (
	id             TEXT PRIMARY KEY,
	names          JSONB NOT NULL DEFAULT '{}'::jsonb,
	tension_factor DOUBLE PRECISION NOT NULL DEFAULT 1 CHECK (tension_factor >= 0)
);

CREATE TABLE IF NOT EXISTS exercise_muscle (
	exercise_id    TEXT NOT NULL,
	muscle_id      TEXT NOT NULL REFERENCES muscle(id),
	relative_share INT NOT NULL CHECK (relative_share BETWEEN 0 AND 1000),
	PRIMARY KEY (exercise_id, muscle_id)
);

CREATE TABLE IF NOT EXISTS daily_workout_summary (
	user_id        TEXT NOT NULL,
	date           DATE NOT NULL,
	total_volume   DOUBLE PRECISION NOT NULL,
	set_count      INT NOT NULL,
	exercise_count INT NOT NULL,
	avg_rm         DOUBLE PRECISION,
	PRIMARY KEY (user_id, date)
);

CREATE TABLE IF NOT EXISTS daily_exercise_summary (
	user_id      TEXT NOT NULL,
	date         DATE NOT NULL,
	exercise_id  TEXT NOT NULL,
	total_volume DOUBLE PRECISION NOT NULL,
	avg_rm       DOUBLE PRECISION,
	set_count    INT NOT NULL,
	set_ids      BIGINT[] NOT NULL,
	PRIMARY KEY (user_id, date, exercise_id)
);

CREATE TABLE IF NOT EXISTS daily_exercise_muscle_volume (
	user_id          TEXT NOT NULL,
	date             DATE NOT NULL,
	exercise_id      TEXT NOT NULL,
	muscle_id        TEXT NOT NULL,
	effective_volume DOUBLE PRECISION NOT NULL CHECK (effective_volume >= 0),
	PRIMARY KEY (user_id, date, exercise_id, muscle_id)
);

CREATE TABLE IF NOT EXISTS weekly_user_volume (
	user_id        TEXT NOT NULL,
	week_start     DATE NOT NULL,
	total_volume   DOUBLE PRECISION NOT NULL,
	avg_set_volume DOUBLE PRECISION NOT NULL,
	e1rm_avg       DOUBLE PRECISION,
	PRIMARY KEY (user_id, week_start)
);

CREATE TABLE IF NOT EXISTS weekly_user_muscle_volume (
	user_id    TEXT NOT NULL,
	week_start DATE NOT NULL,
	muscle_id  TEXT NOT NULL,
	volume     DOUBLE PRECISION NOT NULL CHECK (volume >= 0),
	set_count  INT NOT NULL,
	e1rm_sum   DOUBLE PRECISION NOT NULL,
	e1rm_count INT NOT NULL,
	PRIMARY KEY (user_id, week_start, muscle_id)
);
`

// Migrate ensures all tables exist. Call once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
