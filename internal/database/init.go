package database

import (
	"context"
	"fmt"

	"github.com/yourusername/ff-toolbox/internal/config"
)

// schema holds the tables the toolbox needs. Plain Postgres, no extensions.
const schema = `
CREATE TABLE IF NOT EXISTS points_tables (
	id          UUID PRIMARY KEY,
	source      TEXT NOT NULL,
	season      INTEGER NOT NULL,
	position    TEXT NOT NULL,
	points      DOUBLE PRECISION[] NOT NULL,
	fetched_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (source, season, position)
);

CREATE TABLE IF NOT EXISTS draft_picks (
	id           UUID PRIMARY KEY,
	draft_id     UUID NOT NULL,
	pick_number  INTEGER NOT NULL,
	team_name    TEXT NOT NULL,
	player_name  TEXT NOT NULL,
	nfl_team     TEXT,
	position     TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (draft_id, pick_number)
);

CREATE INDEX IF NOT EXISTS idx_draft_picks_draft ON draft_picks (draft_id, pick_number);
`

// Initialize creates a database connection pool and ensures the schema exists
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if _, err := db.pool.Exec(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	return db, nil
}
