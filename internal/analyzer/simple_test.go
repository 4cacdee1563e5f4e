package analyzer

import (
	"testing"

	"github.com/yourusername/ff-toolbox/internal/models"
)

func TestSimplePickAnalyzerValuesFollowRanking(t *testing.T) {
	first := models.NewPlayer("RB One", "SF", models.PositionRB, false)
	second := models.NewPlayer("WR One", "MIA", models.PositionWR, false)
	unranked := models.NewPlayer("TE One", "BAL", models.PositionTE, false)
	ranking := models.NewPlayerRanking([]*models.Player{first, second})

	a := NewSimplePickAnalyzer()
	values := a.EvalPlayers([]*models.Player{first, second, unranked}, ranking, nil, models.LeagueSettings{})

	if values[first] <= values[second] {
		t.Errorf("expected higher value for better-ranked player: %v vs %v", values[first], values[second])
	}
	if values[unranked] != 0 {
		t.Errorf("expected unranked player value 0, got %v", values[unranked])
	}
}
