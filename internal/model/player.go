package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// PlayerID identifies a player across sessions.
type PlayerID = uuid.UUID

// Player — живой игрок на сервере.
// All accessors are safe for concurrent use.
type Player struct {
	id   PlayerID
	name string

	mu sync.RWMutex

	// Access level from account. 0 = normal player, 1+ = GM, 100+ = full admin.
	accessLevel int32

	location  Location
	currentHP int32
	maxHP     int32
	dead      bool
	online    bool
	inCombat  bool

	inventory InventorySnapshot

	lastMessage string // last system/admin message delivered to the player
}

// NewPlayer creates an online, alive player at full HP.
func NewPlayer(id PlayerID, name string, maxHP int32) (*Player, error) {
	if name == "" {
		return nil, errors.New("player name must not be empty")
	}
	if maxHP <= 0 {
		return nil, fmt.Errorf("invalid max HP %d for player %q", maxHP, name)
	}
	return &Player{
		id:        id,
		name:      name,
		currentHP: maxHP,
		maxHP:     maxHP,
		online:    true,
	}, nil
}

func (p *Player) ID() PlayerID { return p.id }

func (p *Player) Name() string { return p.name }

// AccessLevel returns the player's access level.
func (p *Player) AccessLevel() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.accessLevel
}

// SetAccessLevel sets the player's access level.
func (p *Player) SetAccessLevel(level int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accessLevel = level
}

func (p *Player) Location() Location {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.location
}

func (p *Player) SetLocation(loc Location) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.location = loc
}

func (p *Player) CurrentHP() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.currentHP
}

func (p *Player) MaxHP() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.maxHP
}

// SetCurrentHP clamps hp to [0, maxHP]. Reaching 0 kills the player.
func (p *Player) SetCurrentHP(hp int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentHP = max(0, min(hp, p.maxHP))
	if p.currentHP == 0 {
		p.dead = true
		p.inCombat = false
	}
}

// IsDead reports whether the player has been killed.
func (p *Player) IsDead() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.dead
}

// IsOnline reports whether the player is still attached to the world.
func (p *Player) IsOnline() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.online
}

func (p *Player) SetOnline(online bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.online = online
}

func (p *Player) InCombat() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.inCombat
}

func (p *Player) SetInCombat(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inCombat = v
}

// Inventory returns a copy of the player's carried items and worn armor.
func (p *Player) Inventory() InventorySnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.inventory.Clone()
}

// SetInventory replaces carried items and armor with a copy of inv.
func (p *Player) SetInventory(inv InventorySnapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inventory = inv.Clone()
}

// LastMessage returns the last message delivered to the player.
func (p *Player) LastMessage() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastMessage
}

// SetLastMessage stores a message for delivery to the player's client.
func (p *Player) SetLastMessage(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastMessage = msg
}

// ClearLastMessage returns the pending message and clears it.
func (p *Player) ClearLastMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	msg := p.lastMessage
	p.lastMessage = ""
	return msg
}
