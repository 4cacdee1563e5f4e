package models

import (
	"errors"
	"testing"
)

func testLimits() map[RosterSpot]int {
	return map[RosterSpot]int{
		SpotQB:    1,
		SpotRB:    2,
		SpotWR:    2,
		SpotTE:    1,
		SpotFlex:  1,
		SpotBench: 2,
		SpotIR:    1,
	}
}

func TestAddPlayerFillsPositionBeforeFlex(t *testing.T) {
	roster := NewRoster(testLimits())
	rb1 := NewPlayer("RB One", "SF", PositionRB, false)
	rb2 := NewPlayer("RB Two", "DAL", PositionRB, false)
	rb3 := NewPlayer("RB Three", "NYG", PositionRB, false)

	for _, p := range []*Player{rb1, rb2, rb3} {
		if err := roster.AddPlayer(p); err != nil {
			t.Fatalf("expected no error adding %s, got %v", p.Name, err)
		}
	}
	if got := len(roster.PlayersAt(SpotRB)); got != 2 {
		t.Errorf("expected 2 players at RB, got %d", got)
	}
	if got := len(roster.PlayersAt(SpotFlex)); got != 1 {
		t.Errorf("expected third RB at FLEX, got %d there", got)
	}
}

func TestAddPlayerNoSpace(t *testing.T) {
	roster := NewRoster(map[RosterSpot]int{SpotQB: 1})
	qb1 := NewPlayer("QB One", "KC", PositionQB, false)
	qb2 := NewPlayer("QB Two", "BUF", PositionQB, false)
	if err := roster.AddPlayer(qb1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := roster.AddPlayer(qb2); !errors.Is(err, ErrNoRosterSpace) {
		t.Fatalf("expected ErrNoRosterSpace, got %v", err)
	}
}

func TestRemovePlayer(t *testing.T) {
	roster := NewRoster(testLimits())
	wr := NewPlayer("WR One", "MIA", PositionWR, false)
	if err := roster.AddPlayer(wr); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	roster.RemovePlayer(wr)
	if roster.Size() != 0 {
		t.Errorf("expected empty roster, size %d", roster.Size())
	}
}

func TestSwapPlayers(t *testing.T) {
	roster := NewRoster(testLimits())
	rb1 := NewPlayer("RB One", "SF", PositionRB, false)
	rb2 := NewPlayer("RB Two", "DAL", PositionRB, false)
	rb3 := NewPlayer("RB Three", "NYG", PositionRB, false)
	for _, p := range []*Player{rb1, rb2, rb3} {
		if err := roster.AddPlayer(p); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	// rb3 sits at FLEX; swap with rb1 at RB
	if err := roster.SwapPlayers(rb1, rb3); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !hasPlayer(roster.PlayersAt(SpotFlex), rb1) {
		t.Errorf("expected RB One at FLEX after swap")
	}
	if !hasPlayer(roster.PlayersAt(SpotRB), rb3) {
		t.Errorf("expected RB Three at RB after swap")
	}
}

func TestSwapIneligible(t *testing.T) {
	roster := NewRoster(testLimits())
	qb := NewPlayer("QB One", "KC", PositionQB, false)
	rb := NewPlayer("RB One", "SF", PositionRB, false)
	for _, p := range []*Player{qb, rb} {
		if err := roster.AddPlayer(p); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if err := roster.SwapPlayers(qb, rb); !errors.Is(err, ErrSwapIneligible) {
		t.Fatalf("expected ErrSwapIneligible, got %v", err)
	}
}

func TestMovePlayer(t *testing.T) {
	roster := NewRoster(testLimits())
	rb := NewPlayer("RB One", "SF", PositionRB, false)
	if err := roster.AddPlayer(rb); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := roster.MovePlayer(rb, SpotBench); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !hasPlayer(roster.PlayersAt(SpotBench), rb) {
		t.Errorf("expected player on bench")
	}
	if len(roster.PlayersAt(SpotRB)) != 0 {
		t.Errorf("expected RB spot vacated")
	}
}

func TestMovePlayerErrors(t *testing.T) {
	roster := NewRoster(testLimits())
	qb := NewPlayer("QB One", "KC", PositionQB, false)
	rb := NewPlayer("RB One", "SF", PositionRB, false)
	if err := roster.AddPlayer(qb); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := roster.MovePlayer(qb, SpotFlex); !errors.Is(err, ErrSpotIneligible) {
		t.Fatalf("expected ErrSpotIneligible, got %v", err)
	}
	if err := roster.MovePlayer(rb, SpotBench); !errors.Is(err, ErrPlayerNotOnRoster) {
		t.Fatalf("expected ErrPlayerNotOnRoster, got %v", err)
	}
}

func TestIRRequiresEligibility(t *testing.T) {
	eligible := NewPlayer("RB Hurt", "SF", PositionRB, true)
	healthy := NewPlayer("RB Fine", "DAL", PositionRB, false)
	if !eligible.IsRosterEligible(SpotIR) {
		t.Errorf("expected IR-eligible player to fit IR")
	}
	if healthy.IsRosterEligible(SpotIR) {
		t.Errorf("expected healthy player to be barred from IR")
	}
}

func hasPlayer(players []*Player, player *Player) bool {
	for _, p := range players {
		if p.ID == player.ID {
			return true
		}
	}
	return false
}
