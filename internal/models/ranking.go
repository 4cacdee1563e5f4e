package models

// PlayerRanking holds an ordered list of players, best rank first, and answers
// overall and positional ranking queries against it.
type PlayerRanking struct {
	players []*Player
}

// NewPlayerRanking stores an overall player ranking, highest rank to lowest
func NewPlayerRanking(players []*Player) *PlayerRanking {
	return &PlayerRanking{players: players}
}

// Overall returns the overall rankings with all positions mixed in
func (r *PlayerRanking) Overall() []*Player {
	return r.players
}

// ByPosition returns the rankings filtered to a single position, order preserved
func (r *PlayerRanking) ByPosition(position Position) []*Player {
	var filtered []*Player
	for _, p := range r.players {
		if p.Position == position {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// RankOf returns the 1-based overall rank of the player, or 0 if unranked
func (r *PlayerRanking) RankOf(player *Player) int {
	for i, p := range r.players {
		if p.ID == player.ID {
			return i + 1
		}
	}
	return 0
}

// Len returns the number of ranked players
func (r *PlayerRanking) Len() int {
	return len(r.players)
}
