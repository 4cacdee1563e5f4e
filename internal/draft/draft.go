// Package draft tracks the state of a snake draft: the pick order, the picks
// made so far, and the pool of undrafted players.
package draft

import (
	"fmt"

	"github.com/yourusername/ff-toolbox/internal/metrics"
	"github.com/yourusername/ff-toolbox/internal/models"
)

// Draft represents a snake draft in progress
type Draft struct {
	order     []*models.Team
	rounds    int
	picks     []*models.Player
	undrafted []*models.Player
	settings  models.LeagueSettings
}

// New creates a draft over the given snake order, round count, and player pool
func New(order []*models.Team, rounds int, playerPool []*models.Player, settings models.LeagueSettings) *Draft {
	return &Draft{
		order:     order,
		rounds:    rounds,
		undrafted: playerPool,
		settings:  settings,
	}
}

// SetPick records the player as the given pick (1-based). A pickNum of 0 means
// the next pick. Setting a past pick replaces it, returning the previously
// picked player to the pool; future pick numbers are rejected.
func (d *Draft) SetPick(player *models.Player, pickNum int) error {
	if !d.isUndrafted(player) {
		return fmt.Errorf("%w: %s", models.ErrPlayerUnavailable, player)
	}
	totalPicks := len(d.order) * d.rounds

	if pickNum == 0 || pickNum-1 == len(d.picks) {
		if len(d.picks) == totalPicks {
			return models.ErrDraftComplete
		}
		team, err := d.PickNumToTeam(len(d.picks) + 1)
		if err != nil {
			return err
		}
		if err := team.Roster.AddPlayer(player); err != nil {
			return err
		}
		d.removeFromPool(player)
		d.picks = append(d.picks, player)
		metrics.DraftPicksTotal.Inc()
		metrics.UndraftedPlayers.Set(float64(len(d.undrafted)))
		return nil
	}

	if pickNum < 0 || pickNum-1 > len(d.picks) {
		return fmt.Errorf("%w: pick %d, next pick is %d", models.ErrPickOutOfRange, pickNum, len(d.picks)+1)
	}

	// Replacing a past pick: previous player goes back to the pool. The
	// previous player only leaves the pick slot and roster once the new
	// player is known to fit, so a failed replacement changes nothing.
	team, err := d.PickNumToTeam(pickNum)
	if err != nil {
		return err
	}
	previous := d.picks[pickNum-1]
	team.Roster.RemovePlayer(previous)
	if err := team.Roster.AddPlayer(player); err != nil {
		if restoreErr := team.Roster.AddPlayer(previous); restoreErr != nil {
			return fmt.Errorf("replacement failed: %w, restoring previous pick failed: %v", err, restoreErr)
		}
		return err
	}
	d.undrafted = append(d.undrafted, previous)
	d.removeFromPool(player)
	d.picks[pickNum-1] = player
	return nil
}

// DeletePicks removes the last numPicks picks, returning each player to the
// pool. Zero deletes all picks.
func (d *Draft) DeletePicks(numPicks int) error {
	if numPicks == 0 || numPicks > len(d.picks) {
		numPicks = len(d.picks)
	}
	for i := 0; i < numPicks; i++ {
		last := d.picks[len(d.picks)-1]
		team, err := d.PickNumToTeam(len(d.picks))
		if err != nil {
			return err
		}
		team.Roster.RemovePlayer(last)
		d.undrafted = append(d.undrafted, last)
		d.picks = d.picks[:len(d.picks)-1]
	}
	metrics.UndraftedPlayers.Set(float64(len(d.undrafted)))
	return nil
}

// PickNumToTeam resolves a 1-based pick number to the team on the clock,
// reversing the order on even rounds.
func (d *Draft) PickNumToTeam(pickNum int) (*models.Team, error) {
	totalPicks := len(d.order) * d.rounds
	if pickNum <= 0 || pickNum > totalPicks {
		return nil, fmt.Errorf("%w: pick %d of %d", models.ErrPickOutOfRange, pickNum, totalPicks)
	}
	teamIdx := (pickNum - 1) % len(d.order)
	round := (pickNum-1)/len(d.order) + 1
	if round%2 == 0 {
		teamIdx = len(d.order) - teamIdx - 1
	}
	return d.order[teamIdx], nil
}

// Drafted returns the picks made so far, in pick order
func (d *Draft) Drafted() []*models.Player {
	return d.picks
}

// Undrafted returns the players still available
func (d *Draft) Undrafted() []*models.Player {
	return d.undrafted
}

// Settings returns the league settings the draft runs under
func (d *Draft) Settings() models.LeagueSettings {
	return d.settings
}

func (d *Draft) isUndrafted(player *models.Player) bool {
	for _, p := range d.undrafted {
		if p.ID == player.ID {
			return true
		}
	}
	return false
}

func (d *Draft) removeFromPool(player *models.Player) {
	for i, p := range d.undrafted {
		if p.ID == player.ID {
			d.undrafted = append(d.undrafted[:i], d.undrafted[i+1:]...)
			return
		}
	}
}
