package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/ff-toolbox/internal/database"
	"github.com/yourusername/ff-toolbox/internal/models"
)

// PostgresRankingRepository implements RankingRepository for PostgreSQL
type PostgresRankingRepository struct {
	db *database.DB
}

// NewPostgresRankingRepository creates a new ranking repository
func NewPostgresRankingRepository(db *database.DB) RankingRepository {
	return &PostgresRankingRepository{db: db}
}

// SavePointsTable upserts a table keyed by source, season and position
func (r *PostgresRankingRepository) SavePointsTable(ctx context.Context, table *StoredPointsTable) error {
	if table.ID == uuid.Nil {
		table.ID = uuid.New()
	}

	query := `
		INSERT INTO points_tables (id, source, season, position, points)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (source, season, position)
		DO UPDATE SET points = EXCLUDED.points, fetched_at = NOW()
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		table.ID, table.Source, table.Season, string(table.Position), table.Points,
	)
	if err != nil {
		return fmt.Errorf("failed to save points table: %w", err)
	}

	return nil
}

// GetPointsTable retrieves the latest table for a source, season and position
func (r *PostgresRankingRepository) GetPointsTable(ctx context.Context, source string, season int, position models.Position) (*StoredPointsTable, error) {
	query := `
		SELECT id, source, season, position, points, fetched_at
		FROM points_tables
		WHERE source = $1 AND season = $2 AND position = $3
	`

	table := &StoredPointsTable{}
	var pos string
	err := r.db.GetPool().QueryRow(ctx, query, source, season, string(position)).Scan(
		&table.ID, &table.Source, &table.Season, &pos, &table.Points, &table.FetchedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get points table: %w", err)
	}
	table.Position = models.Position(pos)

	return table, nil
}

// ListSources returns the source names with stored tables for a season
func (r *PostgresRankingRepository) ListSources(ctx context.Context, season int) ([]string, error) {
	query := `SELECT DISTINCT source FROM points_tables WHERE season = $1 ORDER BY source`

	rows, err := r.db.GetPool().Query(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var source string
		if err := rows.Scan(&source); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		sources = append(sources, source)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sources: %w", err)
	}

	return sources, nil
}
