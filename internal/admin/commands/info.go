package commands

import (
	"fmt"
	"strings"

	"github.com/udisondev/duels/internal/model"
)

// Info handles //info [player] — shows a player's state and arena, or server status.
type Info struct {
	world    World
	registry ArenaRegistry
}

// NewInfo creates the info command handler.
func NewInfo(world World, registry ArenaRegistry) *Info {
	return &Info{world: world, registry: registry}
}

func (c *Info) Names() []string           { return []string{"info", "status"} }
func (c *Info) RequiredAccessLevel() int32 { return 1 }

func (c *Info) Handle(player *model.Player, args []string) error {
	if len(args) < 2 {
		var b strings.Builder
		b.WriteString("=== Server Status ===\n")
		fmt.Fprintf(&b, "Online: %d players\n", c.world.PlayerCount())
		arenas := c.registry.Arenas()
		inUse := 0
		for _, a := range arenas {
			if a.Used() {
				inUse++
			}
		}
		fmt.Fprintf(&b, "Arenas: %d (%d in use)", len(arenas), inUse)
		player.SetLastMessage(b.String())
		return nil
	}

	target := c.world.FindPlayerByName(args[1])
	if target == nil {
		return fmt.Errorf("player %q not found", args[1])
	}
	player.SetLastMessage(c.formatPlayerInfo(target))
	return nil
}

func (c *Info) formatPlayerInfo(p *model.Player) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Player: %s ===\n", p.Name())
	fmt.Fprintf(&b, "Location: %s\n", p.Location())
	fmt.Fprintf(&b, "HP: %d/%d", p.CurrentHP(), p.MaxHP())
	switch {
	case p.IsDead():
		b.WriteString(" (dead)")
	case p.InCombat():
		b.WriteString(" (in combat)")
	}
	b.WriteString("\n")
	if a := c.registry.FindByOccupant(p.ID()); a != nil {
		fmt.Fprintf(&b, "Duel: arena %s", a.Name())
	} else {
		b.WriteString("Duel: none")
	}
	return b.String()
}
