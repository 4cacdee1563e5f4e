package repository

import (
	"fmt"

	"github.com/yourusername/ff-toolbox/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Rankings RankingRepository
	Drafts   DraftRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Rankings: NewPostgresRankingRepository(db),
		Drafts:   NewPostgresDraftRepository(db),
	}, nil
}
