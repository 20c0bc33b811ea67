package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/duels/internal/model"
)

func TestCoordToRegionIndex(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int32
		rx, ry int32
	}{
		{"origin", 0, 0, OffsetX, OffsetY},
		{"world min", WorldXMin, WorldYMin, 0, 0},
		{"last region", WorldXMax - 1, WorldYMax - 1, RegionsX - 1, RegionsY - 2},
		{"one region right", RegionSize, 0, OffsetX + 1, OffsetY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry := CoordToRegionIndex(tt.x, tt.y)
			assert.Equal(t, tt.rx, rx)
			assert.Equal(t, tt.ry, ry)
		})
	}
}

func TestInWorld(t *testing.T) {
	assert.True(t, InWorld(model.NewLocation(0, 0, 0, 0)))
	assert.True(t, InWorld(model.NewLocation(83400, 147943, -3404, 0)))
	assert.False(t, InWorld(model.NewLocation(WorldXMin-1, 0, 0, 0)))
	assert.False(t, InWorld(model.NewLocation(0, WorldYMax+RegionSize, 0, 0)))
}
