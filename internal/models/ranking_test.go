package models

import "testing"

func TestPlayerRankingByPosition(t *testing.T) {
	qb := NewPlayer("QB One", "KC", PositionQB, false)
	rb1 := NewPlayer("RB One", "SF", PositionRB, false)
	rb2 := NewPlayer("RB Two", "DAL", PositionRB, false)
	ranking := NewPlayerRanking([]*Player{rb1, qb, rb2})

	rbs := ranking.ByPosition(PositionRB)
	if len(rbs) != 2 {
		t.Fatalf("expected 2 RBs, got %d", len(rbs))
	}
	if rbs[0] != rb1 || rbs[1] != rb2 {
		t.Errorf("expected positional order to follow overall order")
	}
}

func TestPlayerRankingRankOf(t *testing.T) {
	qb := NewPlayer("QB One", "KC", PositionQB, false)
	rb := NewPlayer("RB One", "SF", PositionRB, false)
	unranked := NewPlayer("WR One", "MIA", PositionWR, false)
	ranking := NewPlayerRanking([]*Player{qb, rb})

	if got := ranking.RankOf(rb); got != 2 {
		t.Errorf("expected rank 2, got %d", got)
	}
	if got := ranking.RankOf(unranked); got != 0 {
		t.Errorf("expected rank 0 for unranked player, got %d", got)
	}
}
