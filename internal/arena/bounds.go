package arena

import "github.com/udisondev/duels/internal/model"

// Bounds is the physical extent of an arena.
//
// The zero value is Unset. Operators set the two corners one at a time, so a
// half-configured value exists; it counts as Unset for validity purposes.
type Bounds struct {
	first  *model.Location
	second *model.Location
}

// NewBounds returns fully configured bounds.
func NewBounds(first, second model.Location) Bounds {
	return Bounds{first: &first, second: &second}
}

// WithFirst returns a copy with the first corner set.
func (b Bounds) WithFirst(loc model.Location) Bounds {
	b.first = &loc
	return b
}

// WithSecond returns a copy with the second corner set.
func (b Bounds) WithSecond(loc model.Location) Bounds {
	b.second = &loc
	return b
}

// First returns the first corner if set.
func (b Bounds) First() (model.Location, bool) {
	if b.first == nil {
		return model.Location{}, false
	}
	return *b.first, true
}

// Second returns the second corner if set.
func (b Bounds) Second() (model.Location, bool) {
	if b.second == nil {
		return model.Location{}, false
	}
	return *b.second, true
}

// Configured reports whether both corners are set.
func (b Bounds) Configured() bool {
	return b.first != nil && b.second != nil
}

// Corners returns both corners; ok is false unless Configured.
func (b Bounds) Corners() (first, second model.Location, ok bool) {
	if !b.Configured() {
		return model.Location{}, model.Location{}, false
	}
	return *b.first, *b.second, true
}

// Contains reports whether loc lies inside the axis-aligned box spanned by the
// corners (inclusive). Unconfigured bounds contain nothing.
func (b Bounds) Contains(loc model.Location) bool {
	a, c, ok := b.Corners()
	if !ok {
		return false
	}
	return within(loc.X, a.X, c.X) && within(loc.Y, a.Y, c.Y) && within(loc.Z, a.Z, c.Z)
}

func within(v, a, b int32) bool {
	lo, hi := min(a, b), max(a, b)
	return v >= lo && v <= hi
}
