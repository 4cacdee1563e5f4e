package models

import "fmt"

// RosterSpot is a slot type on a fantasy roster
type RosterSpot string

const (
	SpotQB     RosterSpot = "QB"
	SpotRB     RosterSpot = "RB"
	SpotWR     RosterSpot = "WR"
	SpotTE     RosterSpot = "TE"
	SpotDST    RosterSpot = "DST"
	SpotK      RosterSpot = "K"
	SpotFlex   RosterSpot = "FLEX"
	SpotQBFlex RosterSpot = "QBFLEX"
	SpotBench  RosterSpot = "BENCH"
	SpotIR     RosterSpot = "IR"
)

// RosterSpotOrder lists roster spots in fill-priority order. AddPlayer walks
// this list, so dedicated position slots absorb players before flex and bench.
var RosterSpotOrder = []RosterSpot{
	SpotQB, SpotRB, SpotWR, SpotTE, SpotDST, SpotK,
	SpotFlex, SpotQBFlex, SpotBench, SpotIR,
}

// Roster holds an owner's players keyed by the spot they occupy
type Roster struct {
	limits  map[RosterSpot]int
	players map[RosterSpot][]*Player
}

// NewRoster creates an empty roster with per-spot capacity limits
func NewRoster(limits map[RosterSpot]int) *Roster {
	players := make(map[RosterSpot][]*Player, len(RosterSpotOrder))
	for _, spot := range RosterSpotOrder {
		players[spot] = nil
	}
	return &Roster{limits: limits, players: players}
}

// AddPlayer places the player into the first eligible spot with room
func (r *Roster) AddPlayer(player *Player) error {
	for _, spot := range RosterSpotOrder {
		if player.IsRosterEligible(spot) && len(r.players[spot]) < r.limits[spot] {
			r.players[spot] = append(r.players[spot], player)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoRosterSpace, player)
}

// RemovePlayer removes the player from whichever spot holds them
func (r *Roster) RemovePlayer(player *Player) {
	for spot, players := range r.players {
		for i, p := range players {
			if p.ID == player.ID {
				r.players[spot] = append(players[:i], players[i+1:]...)
				return
			}
		}
	}
}

// SwapPlayers exchanges the roster spots of two rostered players. Each player
// must be eligible for the other's current spot.
func (r *Roster) SwapPlayers(a, b *Player) error {
	var aSpot, bSpot RosterSpot
	var aFound, bFound bool
	for spot, players := range r.players {
		for _, p := range players {
			if p.ID == a.ID && b.IsRosterEligible(spot) {
				aSpot, aFound = spot, true
			}
			if p.ID == b.ID && a.IsRosterEligible(spot) {
				bSpot, bFound = spot, true
			}
		}
	}
	if !aFound || !bFound {
		return fmt.Errorf("%w: %s and %s", ErrSwapIneligible, a, b)
	}
	r.removeFromSpot(aSpot, a)
	r.players[aSpot] = append(r.players[aSpot], b)
	r.removeFromSpot(bSpot, b)
	r.players[bSpot] = append(r.players[bSpot], a)
	return nil
}

// MovePlayer relocates a rostered player to a specific open, eligible spot
func (r *Roster) MovePlayer(player *Player, spot RosterSpot) error {
	if len(r.players[spot]) >= r.limits[spot] {
		return fmt.Errorf("%w: no open %s spot", ErrNoRosterSpace, spot)
	}
	if !player.IsRosterEligible(spot) {
		return fmt.Errorf("%w: %s at %s", ErrSpotIneligible, player, spot)
	}
	onRoster := false
	for current, players := range r.players {
		for _, p := range players {
			if p.ID == player.ID {
				r.removeFromSpot(current, player)
				onRoster = true
				break
			}
		}
		if onRoster {
			break
		}
	}
	if !onRoster {
		return fmt.Errorf("%w: %s", ErrPlayerNotOnRoster, player)
	}
	r.players[spot] = append(r.players[spot], player)
	return nil
}

// PlayersAt returns the players currently occupying the given spot
func (r *Roster) PlayersAt(spot RosterSpot) []*Player {
	return r.players[spot]
}

// Limit returns the capacity of the given spot
func (r *Roster) Limit(spot RosterSpot) int {
	return r.limits[spot]
}

// Size returns the total number of rostered players
func (r *Roster) Size() int {
	total := 0
	for _, players := range r.players {
		total += len(players)
	}
	return total
}

func (r *Roster) removeFromSpot(spot RosterSpot, player *Player) {
	players := r.players[spot]
	for i, p := range players {
		if p.ID == player.ID {
			r.players[spot] = append(players[:i], players[i+1:]...)
			return
		}
	}
}

func (r *Roster) String() string {
	out := ""
	for _, spot := range RosterSpotOrder {
		for _, p := range r.players[spot] {
			out += fmt.Sprintf("%s: %s\n", spot, p)
		}
	}
	return out
}
