package arena

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/udisondev/duels/internal/model"
)

// NoArenasMessage is the only summary line of an empty registry.
const NoArenasMessage = "No arenas are currently loaded."

// Options configures a Registry.
type Options struct {
	// TeleportToLatestLocation sends extracted players back to where they
	// stood before the match instead of the lobby/spawn.
	TeleportToLatestLocation bool
	// Rand drives arena selection. Nil means a randomly seeded source.
	Rand *rand.Rand
}

// Registry is the authoritative in-memory arena collection.
//
// Arenas keep insertion order (file order after Load). Two indexes back the
// lookups: name → arena and occupant → arena. All methods are safe for
// concurrent use; Host callbacks run with the registry lock held and must not
// call back into the registry.
type Registry struct {
	store Store
	host  Host
	opts  Options

	mu       sync.Mutex
	rnd      *rand.Rand
	arenas   []*Arena
	byName   map[string]*Arena
	byPlayer map[model.PlayerID]*Arena

	// loadFailed держит автосохранение, пока оператор не сохранит явно:
	// иначе битый файл молча перезапишется пустым списком.
	loadFailed bool
}

// NewRegistry creates an empty registry. Call Load to populate it.
func NewRegistry(store Store, host Host, opts Options) *Registry {
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Registry{
		store:    store,
		host:     host,
		opts:     opts,
		rnd:      rnd,
		byName:   make(map[string]*Arena, 16),
		byPlayer: make(map[model.PlayerID]*Arena, 32),
	}
}

// Load replaces the in-memory state with the stored arenas and returns how
// many were loaded. A store failure leaves the registry empty.
func (r *Registry) Load(ctx context.Context) int {
	records, err := r.store.Load(ctx)

	r.mu.Lock()
	r.arenas = r.arenas[:0]
	clear(r.byName)
	clear(r.byPlayer)

	r.loadFailed = err != nil
	if err != nil {
		slog.Warn("failed to load arenas", "error", err)
	}
	for _, rec := range records {
		if rec.Name == "" {
			slog.Warn("skipping arena without a name")
			continue
		}
		if _, dup := r.byName[rec.Name]; dup {
			slog.Warn("skipping duplicate arena", "arena", rec.Name)
			continue
		}
		a := rec.ToArena()
		r.arenas = append(r.arenas, a)
		r.byName[a.Name()] = a
	}
	count := len(r.arenas)
	r.mu.Unlock()

	slog.Info("arenas loaded", "count", count)
	return count
}

// Save is the shutdown operation: every occupied arena is drained through
// the Host, then all arenas are persisted. Failures are logged, never returned.
func (r *Registry) Save(ctx context.Context) ReconcileReport {
	r.mu.Lock()
	records, report := r.reconcileLocked()
	r.mu.Unlock()

	slog.Info("arena reconciliation complete",
		"arenas", report.Arenas,
		"occupied", report.Occupied,
		"extracted", report.Extracted,
		"eliminated", report.Eliminated,
		"skipped", report.Skipped)

	r.persist(ctx, records)
	return report
}

// Persist writes the static state of every arena without touching players.
// Used by the admin save command; a successful Persist also resumes an
// autosave held by a failed Load.
func (r *Registry) Persist(ctx context.Context) error {
	r.mu.Lock()
	records := make([]Record, 0, len(r.arenas))
	for _, a := range r.arenas {
		records = append(records, RecordOf(a))
	}
	r.mu.Unlock()

	if err := r.persist(ctx, records); err != nil {
		return err
	}

	r.mu.Lock()
	r.loadFailed = false
	r.mu.Unlock()
	return nil
}

// autosaveHeld reports whether autosave is paused because the last Load failed.
func (r *Registry) autosaveHeld() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadFailed
}

func (r *Registry) persist(ctx context.Context, records []Record) error {
	if err := r.store.Save(ctx, records); err != nil {
		slog.Warn("failed to save arenas", "count", len(records), "error", err)
		return err
	}
	slog.Debug("arenas saved", "count", len(records))
	return nil
}

// FindByName returns the arena with exactly this name, or nil.
func (r *Registry) FindByName(name string) *Arena {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byName[name]
}

// FindByOccupant returns the arena the player is fighting in, or nil.
func (r *Registry) FindByOccupant(id model.PlayerID) *Arena {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byPlayer[id]
}

// IsOccupant reports whether the player is in any arena.
func (r *Registry) IsOccupant(id model.PlayerID) bool {
	return r.FindByOccupant(id) != nil
}

// SelectAvailable picks uniformly among enabled, valid, unused arenas.
// Returns nil when none qualify.
func (r *Registry) SelectAvailable() *Arena {
	r.mu.Lock()
	defer r.mu.Unlock()
	return pickUniform(eligible(r.arenas), r.rnd)
}

// Create appends a new enabled arena with unset bounds.
// Names are unique: an existing name yields ErrDuplicateName.
func (r *Registry) Create(name string) (*Arena, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("create arena %q: %w", name, ErrDuplicateName)
	}

	a := newArena(name, false, Bounds{})
	r.arenas = append(r.arenas, a)
	r.byName[name] = a

	slog.Info("arena created", "arena", name)
	return a, nil
}

// Remove drops a from the registry. Reports false if a is not registered.
// Occupants of a removed arena are dropped from the occupant index.
func (r *Registry) Remove(a *Arena) bool {
	if a == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byName[a.Name()] != a {
		return false
	}

	r.arenas = slices.DeleteFunc(r.arenas, func(x *Arena) bool { return x == a })
	delete(r.byName, a.Name())
	r.unindexLocked(a)

	slog.Info("arena removed", "arena", a.Name())
	return true
}

// Summaries returns one status line per arena in registry order.
func (r *Registry) Summaries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.arenas) == 0 {
		return []string{NoArenasMessage}
	}

	lines := make([]string, 0, len(r.arenas))
	for _, a := range r.arenas {
		lines = append(lines, fmt.Sprintf("%s [%s]", a.Name(), a.Status()))
	}
	return lines
}

// StartMatch binds a running match to an eligible arena.
func (r *Registry) StartMatch(a *Arena, m Match, occupants []model.PlayerID) error {
	if m == nil {
		return ErrNilMatch
	}
	if len(occupants) == 0 {
		return ErrNoOccupants
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if a == nil || r.byName[a.Name()] != a {
		return ErrArenaNotFound
	}
	if !a.Eligible() {
		return fmt.Errorf("start match in %q (%s): %w", a.Name(), a.Status(), ErrArenaNotEligible)
	}

	seen := make(map[model.PlayerID]struct{}, len(occupants))
	for _, id := range occupants {
		if _, busy := r.byPlayer[id]; busy {
			return fmt.Errorf("start match in %q: player %s: %w", a.Name(), id, ErrPlayerBusy)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("start match in %q: player %s listed twice: %w", a.Name(), id, ErrPlayerBusy)
		}
		seen[id] = struct{}{}
	}

	a.bind(m, occupants)
	for _, id := range occupants {
		r.byPlayer[id] = a
	}

	slog.Debug("match bound to arena", "arena", a.Name(), "occupants", len(occupants))
	return nil
}

// EndMatch releases the arena and returns its former occupants.
func (r *Registry) EndMatch(a *Arena) []model.PlayerID {
	if a == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byName[a.Name()] != a {
		return nil
	}
	prev := r.unindexLocked(a)

	slog.Debug("match released from arena", "arena", a.Name(), "occupants", len(prev))
	return prev
}

// unindexLocked releases a and removes its occupants from the player index.
func (r *Registry) unindexLocked(a *Arena) []model.PlayerID {
	prev := a.release()
	for _, id := range prev {
		if r.byPlayer[id] == a {
			delete(r.byPlayer, id)
		}
	}
	return prev
}

// Arenas returns the arenas in registry order.
func (r *Registry) Arenas() []*Arena {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.arenas)
}

// Len returns the number of registered arenas.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.arenas)
}

// RunSaveLoop persists arenas every interval until ctx is canceled.
// It never reconciles players; shutdown calls Save for that. Ticks are
// skipped while autosaveHeld.
func (r *Registry) RunSaveLoop(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("arena save loop started", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("arena save loop stopping")
			return ctx.Err()
		case <-ticker.C:
			if r.autosaveHeld() {
				slog.Warn("autosave skipped, arena load failed; use //arena save to overwrite")
				continue
			}
			// ошибка уже залогирована в persist
			_ = r.Persist(ctx)
		}
	}
}
