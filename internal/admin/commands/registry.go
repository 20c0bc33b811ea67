package commands

import "github.com/udisondev/duels/internal/admin"

// RegisterAll registers all admin and user commands into the handler.
func RegisterAll(h *admin.Handler, registry ArenaRegistry, world World) {
	// Admin commands (// prefix)
	h.RegisterAdmin(NewArena(registry))
	h.RegisterAdmin(NewInfo(world, registry))
	h.RegisterAdmin(NewRegion(world))

	// User commands (/ prefix)
	h.RegisterUser(NewDuelStatus(registry))
	h.RegisterUser(NewOnline(world))
}
