package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T, name string) *Player {
	t.Helper()
	p, err := NewPlayer(uuid.New(), name, 1000)
	require.NoError(t, err, "NewPlayer(%s)", name)
	return p
}

func TestNewPlayer(t *testing.T) {
	id := uuid.New()
	p, err := NewPlayer(id, "Hero", 500)
	require.NoError(t, err)

	assert.Equal(t, id, p.ID())
	assert.Equal(t, "Hero", p.Name())
	assert.Equal(t, int32(500), p.CurrentHP())
	assert.Equal(t, int32(500), p.MaxHP())
	assert.True(t, p.IsOnline())
	assert.False(t, p.IsDead())
	assert.Zero(t, p.AccessLevel())
}

func TestNewPlayer_Invalid(t *testing.T) {
	_, err := NewPlayer(uuid.New(), "", 100)
	assert.Error(t, err)

	_, err = NewPlayer(uuid.New(), "Hero", 0)
	assert.Error(t, err)
}

func TestPlayer_SetCurrentHP(t *testing.T) {
	p := newTestPlayer(t, "Hero")
	p.SetInCombat(true)

	p.SetCurrentHP(5000)
	assert.Equal(t, p.MaxHP(), p.CurrentHP(), "HP clamps to max")

	p.SetCurrentHP(0)
	assert.True(t, p.IsDead())
	assert.False(t, p.InCombat(), "dead players leave combat")
}

func TestPlayer_Inventory_Copied(t *testing.T) {
	p := newTestPlayer(t, "Hero")
	inv := InventorySnapshot{
		Items: []ItemStack{{ItemID: 57, Count: 1000}},
		Armor: []ItemStack{{ItemID: 2386, Count: 1}},
	}
	p.SetInventory(inv)

	// Изменение исходного среза не влияет на игрока
	inv.Items[0].Count = 1
	assert.Equal(t, int64(1000), p.Inventory().Items[0].Count)

	got := p.Inventory()
	got.Armor[0].ItemID = 0
	assert.Equal(t, int32(2386), p.Inventory().Armor[0].ItemID)
}

func TestPlayer_Messages(t *testing.T) {
	p := newTestPlayer(t, "Hero")
	p.SetLastMessage("hello")

	assert.Equal(t, "hello", p.LastMessage())
	assert.Equal(t, "hello", p.ClearLastMessage())
	assert.Empty(t, p.LastMessage())
}
