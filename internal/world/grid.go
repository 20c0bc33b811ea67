package world

import "github.com/udisondev/duels/internal/model"

// Grid constants of the game world.
const (
	// ShiftBy - shift by N bits for 2^N units per region (2^11 = 2048)
	ShiftBy = 11

	// World boundaries (game coordinates)
	WorldXMin = -131072
	WorldYMin = -262144
	WorldXMax = 196608
	WorldYMax = 229376

	// OffsetX = abs(WorldXMin >> ShiftBy) = 64
	// OffsetY = abs(WorldYMin >> ShiftBy) = 128
	OffsetX = 64
	OffsetY = 128

	// Grid size (regions count)
	RegionsX = 160
	RegionsY = 241

	// Region size in game units
	RegionSize = 1 << ShiftBy // 2048
)

// regionKey identifies one region of the grid.
type regionKey struct {
	rx, ry int32
}

// CoordToRegionIndex converts world coordinate to region index.
// Formula: (worldCoord >> ShiftBy) + Offset
func CoordToRegionIndex(x, y int32) (rx, ry int32) {
	rx = (x >> ShiftBy) + OffsetX
	ry = (y >> ShiftBy) + OffsetY
	return rx, ry
}

// IsValidRegionIndex checks if region index is within valid bounds.
func IsValidRegionIndex(rx, ry int32) bool {
	return rx >= 0 && rx < RegionsX && ry >= 0 && ry < RegionsY
}

// InWorld reports whether loc falls inside the region grid.
func InWorld(loc model.Location) bool {
	return IsValidRegionIndex(CoordToRegionIndex(loc.X, loc.Y))
}

func regionOf(loc model.Location) regionKey {
	rx, ry := CoordToRegionIndex(loc.X, loc.Y)
	return regionKey{rx: rx, ry: ry}
}
