package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/udisondev/duels/internal/arena"
	"github.com/udisondev/duels/internal/model"
)

const arenaUsage = "usage: //arena list | create|remove|enable|disable|pos1|pos2|clear|info <name> | save"

// Arena handles //arena <subcommand> — operator management of duel arenas.
type Arena struct {
	registry ArenaRegistry
}

// NewArena creates the arena command handler.
func NewArena(registry ArenaRegistry) *Arena {
	return &Arena{registry: registry}
}

func (c *Arena) Names() []string           { return []string{"arena", "arenas"} }
func (c *Arena) RequiredAccessLevel() int32 { return 2 }

func (c *Arena) Handle(player *model.Player, args []string) error {
	if len(args) < 2 {
		return errors.New(arenaUsage)
	}

	sub := strings.ToLower(args[1])
	switch sub {
	case "list":
		player.SetLastMessage(strings.Join(c.registry.Summaries(), "\n"))
		return nil
	case "save":
		if err := c.registry.Persist(context.Background()); err != nil {
			return fmt.Errorf("saving arenas: %w", err)
		}
		player.SetLastMessage("Arenas saved.")
		return nil
	}

	name := strings.Join(args[2:], " ")
	if name == "" {
		return fmt.Errorf("usage: //arena %s <name>", sub)
	}

	switch sub {
	case "create":
		return c.create(player, name)
	case "remove", "delete":
		return c.remove(player, name)
	case "enable", "disable":
		a, err := c.find(name)
		if err != nil {
			return err
		}
		a.SetDisabled(sub == "disable")
		player.SetLastMessage(fmt.Sprintf("Arena %s is now %s.", a.Name(), a.Status()))
		return nil
	case "pos1", "pos2":
		return c.setCorner(player, name, sub == "pos1")
	case "clear":
		return c.clearCorners(player, name)
	case "info":
		a, err := c.find(name)
		if err != nil {
			return err
		}
		player.SetLastMessage(describe(a, player.Location()))
		return nil
	default:
		return fmt.Errorf("unknown arena subcommand %q; %s", sub, arenaUsage)
	}
}

func (c *Arena) find(name string) (*arena.Arena, error) {
	a := c.registry.FindByName(name)
	if a == nil {
		return nil, fmt.Errorf("arena %q: %w", name, arena.ErrArenaNotFound)
	}
	return a, nil
}

func (c *Arena) create(player *model.Player, name string) error {
	a, err := c.registry.Create(name)
	if err != nil {
		return err
	}
	player.SetLastMessage(fmt.Sprintf("Arena %s created. Set its corners with //arena pos1 and pos2.", a.Name()))
	return nil
}

func (c *Arena) remove(player *model.Player, name string) error {
	a, err := c.find(name)
	if err != nil {
		return err
	}
	// Арену с идущим матчем удалять нельзя: игроки останутся внутри.
	if a.Used() {
		return fmt.Errorf("arena %q: %w", name, arena.ErrArenaInUse)
	}
	if !c.registry.Remove(a) {
		return fmt.Errorf("arena %q: %w", name, arena.ErrArenaNotFound)
	}
	player.SetLastMessage(fmt.Sprintf("Arena %s removed.", name))
	return nil
}

func (c *Arena) setCorner(player *model.Player, name string, first bool) error {
	a, err := c.find(name)
	if err != nil {
		return err
	}

	loc := player.Location()
	corner := 2
	if first {
		a.SetFirstCorner(loc)
		corner = 1
	} else {
		a.SetSecondCorner(loc)
	}
	msg := fmt.Sprintf("Arena %s corner %d set to %s (%s).", a.Name(), corner, loc, a.Status())
	if !a.Valid() {
		msg += " Set the other corner to finish the arena."
	}
	player.SetLastMessage(msg)
	return nil
}

func (c *Arena) clearCorners(player *model.Player, name string) error {
	a, err := c.find(name)
	if err != nil {
		return err
	}
	if a.Used() {
		return fmt.Errorf("arena %q: %w", name, arena.ErrArenaInUse)
	}
	a.SetBounds(arena.Bounds{})
	player.SetLastMessage(fmt.Sprintf("Arena %s corners cleared (%s).", a.Name(), a.Status()))
	return nil
}

// describe renders //arena info; caller is where the operator stands.
func describe(a *arena.Arena, caller model.Location) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Arena: %s [%s]\n", a.Name(), a.Status())

	b := a.Bounds()
	if loc, ok := b.First(); ok {
		fmt.Fprintf(&sb, "Corner 1: %s\n", loc)
	} else {
		sb.WriteString("Corner 1: not set\n")
	}
	if loc, ok := b.Second(); ok {
		fmt.Fprintf(&sb, "Corner 2: %s\n", loc)
	} else {
		sb.WriteString("Corner 2: not set\n")
	}
	fmt.Fprintf(&sb, "Occupants: %d\n", len(a.Occupants()))
	if b.Contains(caller) {
		sb.WriteString("You are inside this arena.")
	} else {
		sb.WriteString("You are outside this arena.")
	}
	return sb.String()
}
