package arena

import (
	"slices"
	"sync"

	"github.com/udisondev/duels/internal/model"
)

// Status is the human-facing state of an arena.
type Status int

const (
	StatusAvailable Status = iota
	StatusOccupied
	StatusInvalid
	StatusDisabled
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusOccupied:
		return "occupied"
	case StatusInvalid:
		return "invalid"
	case StatusDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Arena is a named region where one duel can run.
//
// Invariant: Used() ⇔ CurrentMatch() != nil ⇔ len(Occupants()) > 0.
// Occupancy changes only through Registry.StartMatch / Registry.EndMatch so the
// registry's player index stays in sync.
type Arena struct {
	name string // immutable

	mu        sync.RWMutex
	disabled  bool
	bounds    Bounds
	match     Match
	occupants []model.PlayerID // match order
}

func newArena(name string, disabled bool, bounds Bounds) *Arena {
	return &Arena{name: name, disabled: disabled, bounds: bounds}
}

func (a *Arena) Name() string { return a.name }

func (a *Arena) Disabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.disabled
}

// SetDisabled excludes the arena from selection (operator toggle).
func (a *Arena) SetDisabled(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.disabled = v
}

func (a *Arena) Bounds() Bounds {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bounds
}

func (a *Arena) SetBounds(b Bounds) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bounds = b
}

// SetFirstCorner sets the first bound point.
func (a *Arena) SetFirstCorner(loc model.Location) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bounds = a.bounds.WithFirst(loc)
}

// SetSecondCorner sets the second bound point.
func (a *Arena) SetSecondCorner(loc model.Location) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bounds = a.bounds.WithSecond(loc)
}

// Valid reports whether both bound points are configured.
func (a *Arena) Valid() bool {
	return a.Bounds().Configured()
}

// Used reports whether a match is bound to the arena.
func (a *Arena) Used() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.match != nil
}

// CurrentMatch returns the running match or nil.
func (a *Arena) CurrentMatch() Match {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.match
}

// Occupants returns a copy of the occupant ids in match order.
func (a *Arena) Occupants() []model.PlayerID {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.occupants)
}

// Eligible reports whether a new match may be placed here:
// enabled, bounds configured and not in use.
func (a *Arena) Eligible() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return !a.disabled && a.bounds.Configured() && a.match == nil
}

// Status resolves the arena state with precedence
// disabled > invalid > occupied > available.
func (a *Arena) Status() Status {
	a.mu.RLock()
	defer a.mu.RUnlock()
	switch {
	case a.disabled:
		return StatusDisabled
	case !a.bounds.Configured():
		return StatusInvalid
	case a.match != nil:
		return StatusOccupied
	default:
		return StatusAvailable
	}
}

func (a *Arena) bind(m Match, occupants []model.PlayerID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.match = m
	a.occupants = slices.Clone(occupants)
}

// release clears the match and returns the former occupants.
func (a *Arena) release() []model.PlayerID {
	a.mu.Lock()
	defer a.mu.Unlock()
	prev := a.occupants
	a.match = nil
	a.occupants = nil
	return prev
}
