package arena

import "errors"

// Sentinel errors for the arena registry.
var (
	ErrEmptyName        = errors.New("empty arena name")
	ErrDuplicateName    = errors.New("arena name already exists")
	ErrArenaNotFound    = errors.New("arena not found")
	ErrArenaInUse       = errors.New("arena is in use")
	ErrArenaNotEligible = errors.New("arena is not eligible for a match")
	ErrNoOccupants      = errors.New("match has no occupants")
	ErrNilMatch         = errors.New("nil match")
	ErrPlayerBusy       = errors.New("player already occupies an arena")
)
