package arena

import (
	"log/slog"

	"github.com/udisondev/duels/internal/model"
)

// ShutdownMessage is sent to every player pulled out of a running match.
const ShutdownMessage = "[Duels] Server is shutting down, matches are ended by default."

// ReconcileReport summarizes one shutdown reconciliation.
type ReconcileReport struct {
	Arenas     int // records captured
	Occupied   int // arenas with a running match
	Extracted  int // players teleported out
	Eliminated int // players killed in place because the target was unsafe
	Skipped    int // offline/dead players and failed teleports
}

type extractOutcome int

const (
	outcomeSkipped extractOutcome = iota
	outcomeExtracted
	outcomeEliminated
)

// reconcileLocked snapshots every arena and drains the occupied ones.
// Caller holds r.mu.
func (r *Registry) reconcileLocked() ([]Record, ReconcileReport) {
	var report ReconcileReport
	records := make([]Record, 0, len(r.arenas))
	fallback := r.fallbackLocation()

	for _, a := range r.arenas {
		records = append(records, RecordOf(a))
		report.Arenas++

		match := a.CurrentMatch()
		if match == nil {
			continue
		}
		report.Occupied++

		for _, id := range a.Occupants() {
			switch r.extract(a, match, id, fallback) {
			case outcomeExtracted:
				report.Extracted++
			case outcomeEliminated:
				report.Eliminated++
			default:
				report.Skipped++
			}
		}

		// Матч окончен: арена и индекс игроков освобождаются.
		r.unindexLocked(a)
	}

	return records, report
}

// fallbackLocation is the lobby if configured, else the world spawn.
func (r *Registry) fallbackLocation() model.Location {
	if lobby, ok := r.host.Lobby(); ok {
		return lobby
	}
	return r.host.WorldSpawn()
}

// extract moves one occupant out of a. Every failure is logged and reported
// as skipped so the remaining occupants are still processed.
func (r *Registry) extract(a *Arena, match Match, id model.PlayerID, fallback model.Location) extractOutcome {
	player, ok := r.host.OnlinePlayer(id)
	if !ok || player == nil || !player.IsOnline() || player.IsDead() {
		slog.Debug("occupant not in world, skipping", "arena", a.Name(), "player", id)
		return outcomeSkipped
	}

	target := fallback
	if r.opts.TeleportToLatestLocation {
		if loc, ok := match.LastLocation(id); ok {
			target = loc
		} else {
			slog.Warn("no latest location for occupant, using fallback",
				"arena", a.Name(), "player", player.Name())
		}
	}

	r.host.SendMessage(player, ShutdownMessage)
	r.host.ResetCombatState(player)

	inv, hasInv := match.Inventory(id)

	if !r.host.CanTeleport(player, target) {
		if err := r.host.Eliminate(player); err != nil {
			slog.Warn("failed to eliminate occupant",
				"arena", a.Name(), "player", player.Name(), "error", err)
			return outcomeSkipped
		}
		slog.Info("occupant eliminated, target unsafe",
			"arena", a.Name(), "player", player.Name(), "target", target)
		return outcomeEliminated
	}

	if err := r.host.Teleport(player, target); err != nil {
		slog.Warn("failed to teleport occupant",
			"arena", a.Name(), "player", player.Name(), "target", target, "error", err)
		return outcomeSkipped
	}

	if !hasInv {
		slog.Warn("no inventory snapshot for occupant", "arena", a.Name(), "player", player.Name())
	} else if err := r.host.RestoreInventory(player, inv); err != nil {
		slog.Warn("failed to restore occupant inventory",
			"arena", a.Name(), "player", player.Name(), "error", err)
	}

	return outcomeExtracted
}
