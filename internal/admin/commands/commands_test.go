package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/duels/internal/admin"
	"github.com/udisondev/duels/internal/arena"
	"github.com/udisondev/duels/internal/model"
	"github.com/udisondev/duels/internal/world"
)

var testSpawn = model.NewLocation(83400, 147943, -3404, 0)

func newTestRegistry(t *testing.T) (*arena.Registry, *arena.FileStore, *world.World) {
	t.Helper()
	w := world.New(testSpawn, nil)
	store := arena.NewFileStore(filepath.Join(t.TempDir(), arena.DefaultFileName))
	reg := arena.NewRegistry(store, w, arena.Options{})
	reg.Load(context.Background())
	return reg, store, w
}

func newTestPlayer(t *testing.T, name string) *model.Player {
	t.Helper()
	p, err := model.NewPlayer(uuid.New(), name, 1000)
	require.NoError(t, err)
	p.SetAccessLevel(100) // admin by default
	return p
}

func run(t *testing.T, cmd *Arena, p *model.Player, args ...string) error {
	t.Helper()
	return cmd.Handle(p, append([]string{"arena"}, args...))
}

func TestArena_Usage(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	cmd := NewArena(reg)
	gm := newTestPlayer(t, "GM")

	assert.Error(t, run(t, cmd, gm))
	assert.Error(t, run(t, cmd, gm, "create"))
	assert.Error(t, run(t, cmd, gm, "explode", "pit"))
}

func TestArena_ListEmpty(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	gm := newTestPlayer(t, "GM")

	require.NoError(t, run(t, NewArena(reg), gm, "list"))
	assert.Equal(t, arena.NoArenasMessage, gm.LastMessage())
}

func TestArena_CreateAndConfigure(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	cmd := NewArena(reg)
	gm := newTestPlayer(t, "GM")

	require.NoError(t, run(t, cmd, gm, "create", "pit"))
	a := reg.FindByName("pit")
	require.NotNil(t, a)
	assert.Equal(t, arena.StatusInvalid, a.Status())

	gm.SetLocation(model.NewLocation(100, 100, -3400, 0))
	require.NoError(t, run(t, cmd, gm, "pos1", "pit"))
	assert.Contains(t, gm.LastMessage(), "corner 1")
	assert.Contains(t, gm.LastMessage(), "Set the other corner")
	assert.False(t, a.Valid())

	gm.SetLocation(model.NewLocation(300, 300, -3300, 0))
	require.NoError(t, run(t, cmd, gm, "pos2", "pit"))
	assert.True(t, a.Valid())
	assert.Equal(t, arena.StatusAvailable, a.Status())

	require.NoError(t, run(t, cmd, gm, "list"))
	assert.Equal(t, "pit [available]", gm.LastMessage())

	require.NoError(t, run(t, cmd, gm, "info", "pit"))
	assert.Contains(t, gm.LastMessage(), "Corner 1: (100, 100, -3400)")
	assert.Contains(t, gm.LastMessage(), "Corner 2: (300, 300, -3300)")
	assert.Contains(t, gm.LastMessage(), "Occupants: 0")
	assert.Contains(t, gm.LastMessage(), "You are inside this arena.")

	gm.SetLocation(testSpawn)
	require.NoError(t, run(t, cmd, gm, "info", "pit"))
	assert.Contains(t, gm.LastMessage(), "You are outside this arena.")
}

func TestArena_ClearCorners(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	cmd := NewArena(reg)
	gm := newTestPlayer(t, "GM")
	fighter := newTestPlayer(t, "Fighter")

	a, err := reg.Create("pit")
	require.NoError(t, err)
	a.SetFirstCorner(model.NewLocation(0, 0, 0, 0))
	a.SetSecondCorner(model.NewLocation(10, 10, 10, 0))
	require.NoError(t, reg.StartMatch(a, arena.NewSnapshot(), []model.PlayerID{fighter.ID()}))

	assert.ErrorIs(t, run(t, cmd, gm, "clear", "pit"), arena.ErrArenaInUse)
	assert.True(t, a.Valid())

	reg.EndMatch(a)
	require.NoError(t, run(t, cmd, gm, "clear", "pit"))
	assert.False(t, a.Valid())
	_, hasFirst := a.Bounds().First()
	assert.False(t, hasFirst)
	assert.Equal(t, "Arena pit corners cleared (invalid).", gm.LastMessage())
}

func TestArena_CreateDuplicate(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	cmd := NewArena(reg)
	gm := newTestPlayer(t, "GM")

	require.NoError(t, run(t, cmd, gm, "create", "pit"))
	assert.ErrorIs(t, run(t, cmd, gm, "create", "pit"), arena.ErrDuplicateName)
}

func TestArena_EnableDisable(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	cmd := NewArena(reg)
	gm := newTestPlayer(t, "GM")
	require.NoError(t, run(t, cmd, gm, "create", "pit"))

	require.NoError(t, run(t, cmd, gm, "disable", "pit"))
	assert.True(t, reg.FindByName("pit").Disabled())
	assert.Equal(t, "Arena pit is now disabled.", gm.LastMessage())

	require.NoError(t, run(t, cmd, gm, "enable", "pit"))
	assert.False(t, reg.FindByName("pit").Disabled())

	assert.ErrorIs(t, run(t, cmd, gm, "enable", "missing"), arena.ErrArenaNotFound)
}

func TestArena_Remove(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	cmd := NewArena(reg)
	gm := newTestPlayer(t, "GM")
	require.NoError(t, run(t, cmd, gm, "create", "pit"))

	require.NoError(t, run(t, cmd, gm, "remove", "pit"))
	assert.Nil(t, reg.FindByName("pit"))
	assert.ErrorIs(t, run(t, cmd, gm, "remove", "pit"), arena.ErrArenaNotFound)
}

func TestArena_RemoveOccupied(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	cmd := NewArena(reg)
	gm := newTestPlayer(t, "GM")
	fighter := newTestPlayer(t, "Fighter")

	a, err := reg.Create("pit")
	require.NoError(t, err)
	a.SetFirstCorner(model.NewLocation(0, 0, 0, 0))
	a.SetSecondCorner(model.NewLocation(10, 10, 10, 0))
	require.NoError(t, reg.StartMatch(a, arena.NewSnapshot(), []model.PlayerID{fighter.ID()}))

	assert.ErrorIs(t, run(t, cmd, gm, "remove", "pit"), arena.ErrArenaInUse)
	assert.NotNil(t, reg.FindByName("pit"))
}

func TestArena_Save(t *testing.T) {
	reg, store, _ := newTestRegistry(t)
	cmd := NewArena(reg)
	gm := newTestPlayer(t, "GM")
	require.NoError(t, run(t, cmd, gm, "create", "pit"))

	require.NoError(t, run(t, cmd, gm, "save"))
	assert.Equal(t, "Arenas saved.", gm.LastMessage())

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pit", records[0].Name)
}

func TestDuelStatus(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	p := newTestPlayer(t, "Fighter")
	cmd := NewDuelStatus(reg)

	require.NoError(t, cmd.Handle(p, ""))
	assert.Equal(t, "You are not in a duel.", p.LastMessage())

	a, err := reg.Create("pit")
	require.NoError(t, err)
	a.SetFirstCorner(model.NewLocation(0, 0, 0, 0))
	a.SetSecondCorner(model.NewLocation(10, 10, 10, 0))
	require.NoError(t, reg.StartMatch(a, arena.NewSnapshot(), []model.PlayerID{p.ID()}))

	require.NoError(t, cmd.Handle(p, ""))
	assert.Equal(t, "You are fighting in arena pit.", p.LastMessage())
}

func TestInfo(t *testing.T) {
	reg, _, w := newTestRegistry(t)
	gm := newTestPlayer(t, "GM")
	fighter := newTestPlayer(t, "Fighter")
	require.NoError(t, w.AddPlayer(fighter))
	fighter.SetLocation(model.NewLocation(5, 5, 5, 0))
	cmd := NewInfo(w, reg)

	require.NoError(t, cmd.Handle(gm, []string{"info"}))
	assert.Contains(t, gm.LastMessage(), "Online: 1 players")
	assert.Contains(t, gm.LastMessage(), "Arenas: 0 (0 in use)")

	a, err := reg.Create("pit")
	require.NoError(t, err)
	a.SetFirstCorner(model.NewLocation(0, 0, 0, 0))
	a.SetSecondCorner(model.NewLocation(10, 10, 10, 0))
	require.NoError(t, reg.StartMatch(a, arena.NewSnapshot(), []model.PlayerID{fighter.ID()}))

	fighter.SetInCombat(true)
	require.NoError(t, cmd.Handle(gm, []string{"info"}))
	assert.Contains(t, gm.LastMessage(), "Arenas: 1 (1 in use)")

	require.NoError(t, cmd.Handle(gm, []string{"info", "fighter"}))
	assert.Contains(t, gm.LastMessage(), "HP: 1000/1000 (in combat)")
	assert.Contains(t, gm.LastMessage(), "=== Player: Fighter ===")
	assert.Contains(t, gm.LastMessage(), "Location: (5, 5, 5)")
	assert.Contains(t, gm.LastMessage(), "Duel: arena pit")

	assert.Error(t, cmd.Handle(gm, []string{"info", "nobody"}))
}

func TestRegion(t *testing.T) {
	_, _, w := newTestRegistry(t)
	gm := newTestPlayer(t, "GM")
	p := newTestPlayer(t, "Target")
	require.NoError(t, w.AddPlayer(p))
	gm.SetLocation(testSpawn)
	cmd := NewRegion(w)

	require.NoError(t, cmd.Handle(gm, []string{"region", "close"}))
	assert.False(t, w.CanTeleport(p, testSpawn))

	require.NoError(t, cmd.Handle(gm, []string{"region", "OPEN"}))
	assert.True(t, w.CanTeleport(p, testSpawn))

	assert.Error(t, cmd.Handle(gm, []string{"region"}))
	assert.Error(t, cmd.Handle(gm, []string{"region", "toggle"}))
}

func TestOnline(t *testing.T) {
	_, _, w := newTestRegistry(t)
	p := newTestPlayer(t, "Hero")
	require.NoError(t, w.AddPlayer(p))

	require.NoError(t, NewOnline(w).Handle(p, ""))
	assert.Equal(t, "Online: 1 players", p.LastMessage())
}

func TestRegisterAll(t *testing.T) {
	reg, _, w := newTestRegistry(t)
	h := admin.NewHandler()
	RegisterAll(h, reg, w)

	assert.Equal(t, 5, h.AdminCommandCount())
	assert.Equal(t, 3, h.UserCommandCount())

	gm := newTestPlayer(t, "GM")
	assert.True(t, h.HandleAdminCommand(gm, "arena create pit"))
	assert.NotNil(t, reg.FindByName("pit"))
}
