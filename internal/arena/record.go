package arena

import "github.com/udisondev/duels/internal/model"

// Point is the persisted form of a bound corner.
type Point struct {
	X       int32  `json:"x"`
	Y       int32  `json:"y"`
	Z       int32  `json:"z"`
	Heading uint16 `json:"heading,omitempty"`
}

// BoundsRecord holds whichever corners are configured.
type BoundsRecord struct {
	First  *Point `json:"first,omitempty"`
	Second *Point `json:"second,omitempty"`
}

// Record is the persisted shape of one arena. Occupancy never round-trips.
type Record struct {
	Name     string        `json:"name"`
	Disabled bool          `json:"disabled"`
	Bounds   *BoundsRecord `json:"bounds,omitempty"`
}

// RecordOf snapshots the static fields of a.
func RecordOf(a *Arena) Record {
	r := Record{Name: a.Name(), Disabled: a.Disabled()}

	b := a.Bounds()
	first, hasFirst := b.First()
	second, hasSecond := b.Second()
	if hasFirst || hasSecond {
		r.Bounds = &BoundsRecord{}
		if hasFirst {
			r.Bounds.First = pointOf(first)
		}
		if hasSecond {
			r.Bounds.Second = pointOf(second)
		}
	}
	return r
}

// ToArena builds an idle arena from the record. No side effects.
func (r Record) ToArena() *Arena {
	var b Bounds
	if r.Bounds != nil {
		if r.Bounds.First != nil {
			b = b.WithFirst(r.Bounds.First.location())
		}
		if r.Bounds.Second != nil {
			b = b.WithSecond(r.Bounds.Second.location())
		}
	}
	return newArena(r.Name, r.Disabled, b)
}

func pointOf(loc model.Location) *Point {
	return &Point{X: loc.X, Y: loc.Y, Z: loc.Z, Heading: loc.Heading}
}

func (p Point) location() model.Location {
	return model.NewLocation(p.X, p.Y, p.Z, p.Heading)
}
