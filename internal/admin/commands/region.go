package commands

import (
	"fmt"
	"strings"

	"github.com/udisondev/duels/internal/model"
)

// Region handles //region open|close — toggles teleports into the caller's region.
// Players extracted at shutdown into a closed region are eliminated instead.
type Region struct {
	world World
}

// NewRegion creates the region command handler.
func NewRegion(world World) *Region {
	return &Region{world: world}
}

func (c *Region) Names() []string           { return []string{"region"} }
func (c *Region) RequiredAccessLevel() int32 { return 2 }

func (c *Region) Handle(player *model.Player, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: //region open|close")
	}

	loc := player.Location()
	switch strings.ToLower(args[1]) {
	case "close":
		c.world.CloseRegion(loc)
		player.SetLastMessage(fmt.Sprintf("Region at %s closed.", loc))
	case "open":
		c.world.OpenRegion(loc)
		player.SetLastMessage(fmt.Sprintf("Region at %s opened.", loc))
	default:
		return fmt.Errorf("unknown region subcommand %q", args[1])
	}
	return nil
}
