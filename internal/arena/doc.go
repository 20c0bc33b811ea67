// Package arena tracks duel arenas: which exist, which can host a new match,
// who is fighting where, and how they are persisted.
//
// Lifecycle: Registry.Load at startup, StartMatch/EndMatch while the server
// runs, Registry.Save at shutdown. Save first pulls every occupant out of a
// running match through the Host (teleport to lobby/spawn or to the pre-match
// location, inventory restore), then writes the arena collection to the Store.
package arena
