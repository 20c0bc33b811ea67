package commands

import (
	"context"

	"github.com/udisondev/duels/internal/arena"
	"github.com/udisondev/duels/internal/model"
)

// ArenaRegistry is the part of arena.Registry the commands operate on.
type ArenaRegistry interface {
	FindByName(name string) *arena.Arena
	FindByOccupant(id model.PlayerID) *arena.Arena
	Create(name string) (*arena.Arena, error)
	Remove(a *arena.Arena) bool
	Summaries() []string
	Persist(ctx context.Context) error
	Arenas() []*arena.Arena
}

// World provides player lookup and region control for admin commands.
// Interface to avoid import cycle with the world package.
type World interface {
	// FindPlayerByName finds an online player by name (case-insensitive).
	FindPlayerByName(name string) *model.Player
	// PlayerCount returns number of online players.
	PlayerCount() int
	// CloseRegion stops teleports into the region containing loc.
	CloseRegion(loc model.Location)
	// OpenRegion re-enables teleports into the region containing loc.
	OpenRegion(loc model.Location)
}
