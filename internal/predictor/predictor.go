// Package predictor estimates the probability that each undrafted player is
// still available a number of picks into the future.
package predictor

import (
	"github.com/yourusername/ff-toolbox/internal/draft"
	"github.com/yourusername/ff-toolbox/internal/models"
)

// PickPredictor predicts player availability at future picks. The returned
// probabilities parallel picksAhead for each player.
type PickPredictor interface {
	PredictPicks(d *draft.Draft, picksAhead []int) map[*models.Player][]float64
	MyRankings() *models.PlayerRanking
}
