package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/ff-toolbox/internal/database"
	"github.com/yourusername/ff-toolbox/internal/models"
)

const errScanPick = "failed to scan draft pick: %w"

const upsertPickQuery = `
	INSERT INTO draft_picks (id, draft_id, pick_number, team_name, player_name, nfl_team, position)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (draft_id, pick_number)
	DO UPDATE SET team_name = EXCLUDED.team_name,
	              player_name = EXCLUDED.player_name,
	              nfl_team = EXCLUDED.nfl_team,
	              position = EXCLUDED.position
`

// PostgresDraftRepository implements DraftRepository for PostgreSQL
type PostgresDraftRepository struct {
	db *database.DB
}

// NewPostgresDraftRepository creates a new draft repository
func NewPostgresDraftRepository(db *database.DB) DraftRepository {
	return &PostgresDraftRepository{db: db}
}

// RecordPick upserts a pick keyed by draft and pick number
func (r *PostgresDraftRepository) RecordPick(ctx context.Context, pick *StoredPick) error {
	if pick.ID == uuid.Nil {
		pick.ID = uuid.New()
	}

	_, err := r.db.GetPool().Exec(ctx, upsertPickQuery,
		pick.ID, pick.DraftID, pick.PickNumber, pick.TeamName,
		pick.PlayerName, pick.NFLTeam, string(pick.Position),
	)
	if err != nil {
		return fmt.Errorf("failed to record draft pick: %w", err)
	}

	return nil
}

// RecordPicks upserts a batch of picks in one transaction, so a partially
// written draft snapshot never becomes visible.
func (r *PostgresDraftRepository) RecordPicks(ctx context.Context, picks []*StoredPick) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, pick := range picks {
			if pick.ID == uuid.Nil {
				pick.ID = uuid.New()
			}
			_, err := tx.Exec(ctx, upsertPickQuery,
				pick.ID, pick.DraftID, pick.PickNumber, pick.TeamName,
				pick.PlayerName, pick.NFLTeam, string(pick.Position),
			)
			if err != nil {
				return fmt.Errorf("failed to record draft pick %d: %w", pick.PickNumber, err)
			}
		}
		return nil
	})
}

// GetPicks retrieves all picks for a draft ordered by pick number
func (r *PostgresDraftRepository) GetPicks(ctx context.Context, draftID uuid.UUID) ([]*StoredPick, error) {
	query := `
		SELECT id, draft_id, pick_number, team_name, player_name, nfl_team, position, created_at
		FROM draft_picks
		WHERE draft_id = $1
		ORDER BY pick_number ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query draft picks: %w", err)
	}
	defer rows.Close()

	var picks []*StoredPick
	for rows.Next() {
		pick := &StoredPick{}
		var pos string
		err := rows.Scan(
			&pick.ID, &pick.DraftID, &pick.PickNumber, &pick.TeamName,
			&pick.PlayerName, &pick.NFLTeam, &pos, &pick.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanPick, err)
		}
		pick.Position = models.Position(pos)
		picks = append(picks, pick)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draft picks: %w", err)
	}

	return picks, nil
}

// DeletePicksFrom removes all picks at or after the given pick number
func (r *PostgresDraftRepository) DeletePicksFrom(ctx context.Context, draftID uuid.UUID, fromPick int) error {
	query := `DELETE FROM draft_picks WHERE draft_id = $1 AND pick_number >= $2`

	_, err := r.db.GetPool().Exec(ctx, query, draftID, fromPick)
	if err != nil {
		return fmt.Errorf("failed to delete draft picks: %w", err)
	}

	return nil
}
