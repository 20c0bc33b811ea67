package world

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/udisondev/duels/internal/arena"
	"github.com/udisondev/duels/internal/model"
)

var (
	ErrPlayerExists  = errors.New("player already in world")
	ErrOutsideWorld  = errors.New("location outside world grid")
	ErrRegionClosed  = errors.New("region is closed")
	ErrPlayerOffline = errors.New("player is offline")
)

// World is the live game host: who is online, where the default spawn and
// lobby are, and which regions currently accept players.
type World struct {
	spawn model.Location
	lobby *model.Location

	mu      sync.RWMutex
	players map[model.PlayerID]*model.Player
	closed  map[regionKey]struct{} // regions not accepting teleports (unloaded/maintenance)
}

var _ arena.Host = (*World)(nil)

// New creates a world. lobby may be nil.
func New(spawn model.Location, lobby *model.Location) *World {
	w := &World{
		spawn:   spawn,
		players: make(map[model.PlayerID]*model.Player, 64),
		closed:  make(map[regionKey]struct{}),
	}
	if lobby != nil {
		l := *lobby
		w.lobby = &l
	}
	return w
}

// AddPlayer puts p online.
func (w *World) AddPlayer(p *model.Player) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.players[p.ID()]; ok {
		return fmt.Errorf("add player %s: %w", p.Name(), ErrPlayerExists)
	}
	p.SetOnline(true)
	w.players[p.ID()] = p
	return nil
}

// RemovePlayer takes the player offline. Returns the removed player or nil.
func (w *World) RemovePlayer(id model.PlayerID) *model.Player {
	w.mu.Lock()
	p, ok := w.players[id]
	delete(w.players, id)
	w.mu.Unlock()

	if !ok {
		return nil
	}
	p.SetOnline(false)
	return p
}

// FindPlayerByName finds an online player by name (case-insensitive).
func (w *World) FindPlayerByName(name string) *model.Player {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, p := range w.players {
		if strings.EqualFold(p.Name(), name) {
			return p
		}
	}
	return nil
}

// PlayerCount returns number of online players.
func (w *World) PlayerCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.players)
}

// CloseRegion stops teleports into the region containing loc.
func (w *World) CloseRegion(loc model.Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed[regionOf(loc)] = struct{}{}
}

// OpenRegion re-enables teleports into the region containing loc.
func (w *World) OpenRegion(loc model.Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.closed, regionOf(loc))
}

func (w *World) regionOpen(loc model.Location) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, closed := w.closed[regionOf(loc)]
	return !closed
}

// --- arena.Host ---

func (w *World) OnlinePlayer(id model.PlayerID) (*model.Player, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	p, ok := w.players[id]
	return p, ok
}

func (w *World) Lobby() (model.Location, bool) {
	if w.lobby == nil {
		return model.Location{}, false
	}
	return *w.lobby, true
}

func (w *World) WorldSpawn() model.Location { return w.spawn }

// SendMessage delivers a system message to the player.
func (w *World) SendMessage(p *model.Player, text string) {
	p.SetLastMessage(text)
	slog.Debug("message sent", "player", p.Name(), "text", text)
}

// ResetCombatState leaves combat and restores full HP.
func (w *World) ResetCombatState(p *model.Player) {
	p.SetInCombat(false)
	if !p.IsDead() {
		p.SetCurrentHP(p.MaxHP())
	}
}

// CanTeleport reports whether p can be moved to loc right now.
func (w *World) CanTeleport(p *model.Player, loc model.Location) bool {
	if !p.IsOnline() || p.IsDead() {
		return false
	}
	return InWorld(loc) && w.regionOpen(loc)
}

// Teleport moves p to loc.
func (w *World) Teleport(p *model.Player, loc model.Location) error {
	if !p.IsOnline() {
		return fmt.Errorf("teleport %s: %w", p.Name(), ErrPlayerOffline)
	}
	if !InWorld(loc) {
		return fmt.Errorf("teleport %s to %s: %w", p.Name(), loc, ErrOutsideWorld)
	}
	if !w.regionOpen(loc) {
		return fmt.Errorf("teleport %s to %s: %w", p.Name(), loc, ErrRegionClosed)
	}
	p.SetLocation(loc)
	slog.Debug("player teleported", "player", p.Name(), "location", loc)
	return nil
}

// RestoreInventory replaces the player's items and armor.
func (w *World) RestoreInventory(p *model.Player, inv model.InventorySnapshot) error {
	if !p.IsOnline() {
		return fmt.Errorf("restore inventory of %s: %w", p.Name(), ErrPlayerOffline)
	}
	p.SetInventory(inv)
	return nil
}

// Eliminate kills the player where they stand.
func (w *World) Eliminate(p *model.Player) error {
	p.SetCurrentHP(0)
	slog.Info("player eliminated", "player", p.Name(), "location", p.Location())
	return nil
}
