package arena

import (
	"sync"

	"github.com/udisondev/duels/internal/model"
)

// Match is the data side of a running duel as seen by the registry.
// The duel engine owns the combat state; the registry only reads what it needs
// to put occupants back where they belong.
type Match interface {
	// LastLocation returns where the player stood before entering the arena.
	LastLocation(id model.PlayerID) (model.Location, bool)
	// Inventory returns the items and armor the player had before the duel.
	Inventory(id model.PlayerID) (model.InventorySnapshot, bool)
}

type snapshotEntry struct {
	location  model.Location
	inventory model.InventorySnapshot
}

// Snapshot is a Match that records player state at match start.
// Safe for concurrent use.
type Snapshot struct {
	mu      sync.RWMutex
	entries map[model.PlayerID]snapshotEntry
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{entries: make(map[model.PlayerID]snapshotEntry, 2)}
}

// Capture records p's current location and inventory.
func (s *Snapshot) Capture(p *model.Player) {
	s.Record(p.ID(), p.Location(), p.Inventory())
}

// Record stores state for id, replacing any earlier entry.
func (s *Snapshot) Record(id model.PlayerID, loc model.Location, inv model.InventorySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = snapshotEntry{location: loc, inventory: inv.Clone()}
}

func (s *Snapshot) LastLocation(id model.PlayerID) (model.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return e.location, ok
}

func (s *Snapshot) Inventory(id model.PlayerID) (model.InventorySnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return model.InventorySnapshot{}, false
	}
	return e.inventory.Clone(), true
}

// Len returns the number of captured players.
func (s *Snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
