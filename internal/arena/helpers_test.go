package arena

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/duels/internal/model"
)

// mockStore implements Store in memory.
type mockStore struct {
	mu      sync.Mutex
	records []Record
	loadErr error
	saveErr error
	saves   int
}

func (s *mockStore) Load(_ context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return append([]Record(nil), s.records...), nil
}

func (s *mockStore) Save(_ context.Context, records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records = append([]Record(nil), records...)
	return nil
}

type hostCall struct {
	op     string
	player model.PlayerID
	loc    model.Location
	inv    model.InventorySnapshot
	text   string
}

// mockHost implements Host and records every player-side call.
type mockHost struct {
	mu      sync.Mutex
	players map[model.PlayerID]*model.Player
	lobby   *model.Location
	spawn   model.Location
	unsafe  map[model.PlayerID]bool
	failTP  map[model.PlayerID]bool
	calls   []hostCall
}

func newMockHost() *mockHost {
	return &mockHost{
		players: make(map[model.PlayerID]*model.Player),
		unsafe:  make(map[model.PlayerID]bool),
		failTP:  make(map[model.PlayerID]bool),
		spawn:   model.NewLocation(0, 0, 64, 0),
	}
}

func (h *mockHost) addPlayer(t *testing.T, name string) *model.Player {
	t.Helper()
	p, err := model.NewPlayer(uuid.New(), name, 1000)
	require.NoError(t, err)
	h.players[p.ID()] = p
	return p
}

func (h *mockHost) record(c hostCall) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, c)
}

func (h *mockHost) callsFor(id model.PlayerID) []hostCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []hostCall
	for _, c := range h.calls {
		if c.player == id {
			out = append(out, c)
		}
	}
	return out
}

func (h *mockHost) ops(id model.PlayerID) []string {
	var out []string
	for _, c := range h.callsFor(id) {
		out = append(out, c.op)
	}
	return out
}

func (h *mockHost) OnlinePlayer(id model.PlayerID) (*model.Player, bool) {
	p, ok := h.players[id]
	return p, ok
}

func (h *mockHost) Lobby() (model.Location, bool) {
	if h.lobby == nil {
		return model.Location{}, false
	}
	return *h.lobby, true
}

func (h *mockHost) WorldSpawn() model.Location { return h.spawn }

func (h *mockHost) SendMessage(p *model.Player, text string) {
	h.record(hostCall{op: "message", player: p.ID(), text: text})
}

func (h *mockHost) ResetCombatState(p *model.Player) {
	h.record(hostCall{op: "reset", player: p.ID()})
}

func (h *mockHost) CanTeleport(p *model.Player, _ model.Location) bool {
	return !h.unsafe[p.ID()]
}

func (h *mockHost) Teleport(p *model.Player, loc model.Location) error {
	if h.failTP[p.ID()] {
		return errors.New("teleport failed")
	}
	h.record(hostCall{op: "teleport", player: p.ID(), loc: loc})
	return nil
}

func (h *mockHost) RestoreInventory(p *model.Player, inv model.InventorySnapshot) error {
	h.record(hostCall{op: "restore", player: p.ID(), inv: inv})
	return nil
}

func (h *mockHost) Eliminate(p *model.Player) error {
	h.record(hostCall{op: "eliminate", player: p.ID()})
	return nil
}

// validBounds returns configured bounds for tests.
func validBounds() Bounds {
	return NewBounds(model.NewLocation(0, 0, 0, 0), model.NewLocation(100, 100, 50, 0))
}

// newTestRegistry creates a registry over an in-memory store with the given arenas
// already created; every arena gets valid bounds.
func newTestRegistry(t *testing.T, host *mockHost, opts Options, names ...string) (*Registry, *mockStore) {
	t.Helper()
	store := &mockStore{}
	reg := NewRegistry(store, host, opts)
	for _, n := range names {
		a, err := reg.Create(n)
		require.NoError(t, err)
		a.SetBounds(validBounds())
	}
	return reg, store
}
