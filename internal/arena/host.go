package arena

import "github.com/udisondev/duels/internal/model"

// Host is the live game world the registry hands players back to.
// Implemented by world.World; the registry never touches the world directly.
type Host interface {
	// OnlinePlayer resolves id to a connected player.
	OnlinePlayer(id model.PlayerID) (*model.Player, bool)
	// Lobby returns the configured lobby, if any.
	Lobby() (model.Location, bool)
	// WorldSpawn returns the default spawn of the main world.
	WorldSpawn() model.Location

	SendMessage(p *model.Player, text string)
	ResetCombatState(p *model.Player)
	CanTeleport(p *model.Player, loc model.Location) bool
	Teleport(p *model.Player, loc model.Location) error
	RestoreInventory(p *model.Player, inv model.InventorySnapshot) error
	// Eliminate kills the player in place.
	Eliminate(p *model.Player) error
}
