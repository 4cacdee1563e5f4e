// Package rankings generates player rankings for opponents and keeps
// projection points tables fresh from the configured sources.
package rankings

import "github.com/yourusername/ff-toolbox/internal/models"

// Generator produces a player ranking
type Generator interface {
	GenerateRankings() *models.PlayerRanking
}

// DefaultGenerator echoes the consensus rankings unchanged. Useful for
// simulating auto-picking opponents.
type DefaultGenerator struct {
	consensus *models.PlayerRanking
}

// NewDefaultGenerator creates a generator around consensus rankings
func NewDefaultGenerator(consensus *models.PlayerRanking) *DefaultGenerator {
	return &DefaultGenerator{consensus: consensus}
}

// GenerateRankings returns the consensus rankings as-is
func (g *DefaultGenerator) GenerateRankings() *models.PlayerRanking {
	return g.consensus
}
