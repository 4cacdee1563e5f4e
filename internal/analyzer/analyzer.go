// Package analyzer evaluates available players and assigns them relative
// values, given a personal ranking and the current roster context.
package analyzer

import "github.com/yourusername/ff-toolbox/internal/models"

// PickAnalyzer assigns a relative value to each available player
type PickAnalyzer interface {
	EvalPlayers(available []*models.Player, ranking *models.PlayerRanking, roster *models.Roster, settings models.LeagueSettings) map[*models.Player]float64
}
