package feed

import (
	"fmt"
	"strings"

	"github.com/yourusername/ff-toolbox/internal/draft"
	"github.com/yourusername/ff-toolbox/internal/models"
)

// ApplyToDraft returns a handler that records feed picks on the draft,
// matching players by name (case-insensitive) against the undrafted pool.
func ApplyToDraft(d *draft.Draft) PickHandler {
	return func(event PickEvent) error {
		player := findPlayer(d.Undrafted(), event.PlayerName)
		if player == nil {
			return fmt.Errorf("feed pick %d: player %q not in undrafted pool", event.PickNumber, event.PlayerName)
		}
		if err := d.SetPick(player, event.PickNumber); err != nil {
			return fmt.Errorf("feed pick %d: %w", event.PickNumber, err)
		}
		return nil
	}
}

func findPlayer(pool []*models.Player, name string) *models.Player {
	for _, p := range pool {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}
