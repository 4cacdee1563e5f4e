package analyzer

import "github.com/yourusername/ff-toolbox/internal/models"

// SimplePickAnalyzer values players by their distance from the bottom of the
// overall ranking; unranked players are worth zero. Roster context and league
// settings are accepted for interface compatibility but unused.
type SimplePickAnalyzer struct{}

// NewSimplePickAnalyzer creates a simple ranking-distance analyzer
func NewSimplePickAnalyzer() *SimplePickAnalyzer {
	return &SimplePickAnalyzer{}
}

// EvalPlayers assigns each available player a value over replacement based on
// their overall rank.
func (a *SimplePickAnalyzer) EvalPlayers(available []*models.Player, ranking *models.PlayerRanking, roster *models.Roster, settings models.LeagueSettings) map[*models.Player]float64 {
	_ = roster
	_ = settings
	values := make(map[*models.Player]float64, len(available))
	for _, player := range available {
		rank := ranking.RankOf(player)
		if rank == 0 {
			values[player] = 0
			continue
		}
		values[player] = float64(ranking.Len() - rank + 1)
	}
	return values
}
