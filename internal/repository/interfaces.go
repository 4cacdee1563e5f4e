package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/ff-toolbox/internal/models"
)

// StoredPointsTable is a persisted projection table for one source, season
// and position
type StoredPointsTable struct {
	ID        uuid.UUID
	Source    string
	Season    int
	Position  models.Position
	Points    []float64
	FetchedAt time.Time
}

// StoredPick is a persisted draft pick
type StoredPick struct {
	ID         uuid.UUID
	DraftID    uuid.UUID
	PickNumber int
	TeamName   string
	PlayerName string
	NFLTeam    string
	Position   models.Position
	CreatedAt  time.Time
}

// RankingRepository persists projection point tables
type RankingRepository interface {
	// SavePointsTable upserts a table keyed by source, season and position
	SavePointsTable(ctx context.Context, table *StoredPointsTable) error

	// GetPointsTable retrieves the latest table for a source, season and position
	GetPointsTable(ctx context.Context, source string, season int, position models.Position) (*StoredPointsTable, error)

	// ListSources returns the source names with stored tables for a season
	ListSources(ctx context.Context, season int) ([]string, error)
}

// DraftRepository persists draft picks so an in-progress draft survives restarts
type DraftRepository interface {
	// RecordPick upserts a pick keyed by draft and pick number
	RecordPick(ctx context.Context, pick *StoredPick) error

	// RecordPicks upserts a batch of picks atomically
	RecordPicks(ctx context.Context, picks []*StoredPick) error

	// GetPicks retrieves all picks for a draft ordered by pick number
	GetPicks(ctx context.Context, draftID uuid.UUID) ([]*StoredPick, error)

	// DeletePicksFrom removes all picks at or after the given pick number
	DeletePicksFrom(ctx context.Context, draftID uuid.UUID, fromPick int) error
}
