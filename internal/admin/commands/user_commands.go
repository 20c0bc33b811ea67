package commands

import (
	"fmt"

	"github.com/udisondev/duels/internal/model"
)

// DuelStatus handles /duel — shows which arena the player is fighting in.
type DuelStatus struct {
	registry ArenaRegistry
}

// NewDuelStatus creates the duel status command handler.
func NewDuelStatus(registry ArenaRegistry) *DuelStatus {
	return &DuelStatus{registry: registry}
}

func (c *DuelStatus) Names() []string { return []string{"duel"} }

func (c *DuelStatus) Handle(player *model.Player, _ string) error {
	a := c.registry.FindByOccupant(player.ID())
	if a == nil {
		player.SetLastMessage("You are not in a duel.")
		return nil
	}
	player.SetLastMessage(fmt.Sprintf("You are fighting in arena %s.", a.Name()))
	return nil
}

// Online handles /online — shows number of online players.
type Online struct {
	world World
}

// NewOnline creates the online command handler.
func NewOnline(world World) *Online {
	return &Online{world: world}
}

func (c *Online) Names() []string { return []string{"online", "players"} }

func (c *Online) Handle(player *model.Player, _ string) error {
	player.SetLastMessage(fmt.Sprintf("Online: %d players", c.world.PlayerCount()))
	return nil
}
