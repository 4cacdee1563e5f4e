// Package suggestor ranks the available players a team should consider with
// its next pick, combining a pick analyzer with a pick predictor.
package suggestor

import (
	"sort"

	"github.com/yourusername/ff-toolbox/internal/analyzer"
	"github.com/yourusername/ff-toolbox/internal/draft"
	"github.com/yourusername/ff-toolbox/internal/models"
	"github.com/yourusername/ff-toolbox/internal/predictor"
)

// Suggestion pairs a player with their relative suggestion strength
type Suggestion struct {
	Player *models.Player
	Score  float64
}

// PickSuggestor produces pick suggestions for the team on the clock
type PickSuggestor interface {
	Suggestions(d *draft.Draft) ([]Suggestion, error)
}

// SimplePickSuggestor suggests the highest-value available player regardless of
// draft context.
type SimplePickSuggestor struct {
	myAnalyzer analyzer.PickAnalyzer
	predictor  predictor.PickPredictor
}

// NewSimplePickSuggestor creates a suggestor from an analyzer and a predictor
func NewSimplePickSuggestor(myAnalyzer analyzer.PickAnalyzer, p predictor.PickPredictor) *SimplePickSuggestor {
	return &SimplePickSuggestor{myAnalyzer: myAnalyzer, predictor: p}
}

// Suggestions evaluates every undrafted player for the team currently on the
// clock and returns them sorted by suggestion strength, strongest first.
func (s *SimplePickSuggestor) Suggestions(d *draft.Draft) ([]Suggestion, error) {
	team, err := d.PickNumToTeam(len(d.Drafted()) + 1)
	if err != nil {
		return nil, err
	}
	values := s.myAnalyzer.EvalPlayers(d.Undrafted(), s.predictor.MyRankings(), team.Roster, d.Settings())

	suggestions := make([]Suggestion, 0, len(values))
	for player, score := range values {
		suggestions = append(suggestions, Suggestion{Player: player, Score: score})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Player.Name < suggestions[j].Player.Name
	})
	return suggestions, nil
}
