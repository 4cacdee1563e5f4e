package predictor

import (
	"github.com/yourusername/ff-toolbox/internal/analyzer"
	"github.com/yourusername/ff-toolbox/internal/draft"
	"github.com/yourusername/ff-toolbox/internal/models"
	"github.com/yourusername/ff-toolbox/internal/rankings"
)

// NullPickPredictor assumes every player stays available at every future pick.
// Useful for disabling pick prediction without changing code that depends on
// having a predictor.
type NullPickPredictor struct {
	myAnalyzer   analyzer.PickAnalyzer
	oppAnalyzer  analyzer.PickAnalyzer
	myRankings   *models.PlayerRanking
	oppGenerator rankings.Generator
}

// NewNullPickPredictor creates a predictor that never expects players to be taken
func NewNullPickPredictor(myAnalyzer, oppAnalyzer analyzer.PickAnalyzer, myRankings *models.PlayerRanking, oppGenerator rankings.Generator) *NullPickPredictor {
	return &NullPickPredictor{
		myAnalyzer:   myAnalyzer,
		oppAnalyzer:  oppAnalyzer,
		myRankings:   myRankings,
		oppGenerator: oppGenerator,
	}
}

// PredictPicks assigns probability 1 at every horizon for every undrafted player
func (p *NullPickPredictor) PredictPicks(d *draft.Draft, picksAhead []int) map[*models.Player][]float64 {
	predictions := make(map[*models.Player][]float64, len(d.Undrafted()))
	for _, player := range d.Undrafted() {
		probs := make([]float64, len(picksAhead))
		for i := range probs {
			probs[i] = 1
		}
		predictions[player] = probs
	}
	return predictions
}

// MyRankings returns the personal rankings the predictor was built with
func (p *NullPickPredictor) MyRankings() *models.PlayerRanking {
	return p.myRankings
}
