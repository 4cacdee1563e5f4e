package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Position is a fantasy football player's primary position
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionDST Position = "DST"
	PositionK   Position = "K"
)

// Positions lists every primary position
var Positions = []Position{PositionQB, PositionRB, PositionWR, PositionTE, PositionDST, PositionK}

// IsValid reports whether p is a known position
func (p Position) IsValid() bool {
	switch p {
	case PositionQB, PositionRB, PositionWR, PositionTE, PositionDST, PositionK:
		return true
	}
	return false
}

// Player represents a football player in fantasy football
type Player struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name" validate:"required"`
	NFLTeam    string    `db:"nfl_team" json:"nfl_team"`
	Position   Position  `db:"position" json:"position" validate:"required"`
	IREligible bool      `db:"ir_eligible" json:"ir_eligible"`
}

// NewPlayer creates a player with a fresh ID
func NewPlayer(name, nflTeam string, position Position, irEligible bool) *Player {
	return &Player{
		ID:         uuid.New(),
		Name:       name,
		NFLTeam:    nflTeam,
		Position:   position,
		IREligible: irEligible,
	}
}

// IsRosterEligible reports whether the player can occupy the given roster spot
func (p *Player) IsRosterEligible(spot RosterSpot) bool {
	switch spot {
	case SpotQB:
		return p.Position == PositionQB
	case SpotRB:
		return p.Position == PositionRB
	case SpotWR:
		return p.Position == PositionWR
	case SpotTE:
		return p.Position == PositionTE
	case SpotDST:
		return p.Position == PositionDST
	case SpotK:
		return p.Position == PositionK
	case SpotFlex:
		return p.Position == PositionRB || p.Position == PositionWR || p.Position == PositionTE
	case SpotQBFlex:
		return p.Position == PositionQB || p.Position == PositionRB || p.Position == PositionWR || p.Position == PositionTE
	case SpotBench:
		return true
	case SpotIR:
		return p.IREligible
	}
	return false
}

func (p *Player) String() string {
	return fmt.Sprintf("%s %s (%s)", p.Name, p.NFLTeam, p.Position)
}
