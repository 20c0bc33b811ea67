package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/udisondev/duels/internal/admin"
	"github.com/udisondev/duels/internal/model"
)

// consoleAccessLevel gives the stdin operator full admin rights.
const consoleAccessLevel = 100

// console executes operator lines from stdin as a built-in admin player.
//
// "//cmd ..." and bare "cmd ..." are admin commands, "/cmd ..." user commands.
// "at <x> <y> <z>" moves the operator, so //arena pos1/pos2 can be set remotely.
type console struct {
	handler  *admin.Handler
	operator *model.Player
	in       io.Reader
	out      io.Writer
}

func newConsole(handler *admin.Handler, start model.Location, in io.Reader, out io.Writer) (*console, error) {
	op, err := model.NewPlayer(uuid.New(), "Console", 1)
	if err != nil {
		return nil, err
	}
	op.SetAccessLevel(consoleAccessLevel)
	op.SetLocation(start)
	return &console{handler: handler, operator: op, in: in, out: out}, nil
}

// Run reads lines until ctx is done or input ends. EOF is not an error:
// the server keeps running without a console.
//
// On cancel the input is closed when it is an io.Closer, which stops the
// reader goroutine. A terminal stdin may not be pollable: there the goroutine
// stays blocked in Scan until the next line or process exit.
func (c *console) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil && ctx.Err() == nil {
			slog.Warn("admin console read failed", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			c.closeInput()
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				slog.Info("admin console input closed")
				<-ctx.Done()
				return ctx.Err()
			}
			c.exec(line)
		}
	}
}

func (c *console) closeInput() {
	closer, ok := c.in.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		slog.Debug("closing admin console input", "error", err)
	}
}

// exec runs one console line and prints the reply, if any.
func (c *console) exec(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	switch {
	case strings.HasPrefix(line, "//"):
		c.handler.HandleAdminCommand(c.operator, line[2:])
	case strings.HasPrefix(line, "/"):
		if !c.handler.HandleUserCommand(c.operator, line[1:]) {
			c.operator.SetLastMessage("Unknown command: " + line)
		}
	case strings.HasPrefix(line, "at ") || line == "at":
		c.moveOperator(strings.Fields(line)[1:])
	default:
		c.handler.HandleAdminCommand(c.operator, line)
	}

	if msg := c.operator.ClearLastMessage(); msg != "" {
		fmt.Fprintln(c.out, msg)
	}
}

func (c *console) moveOperator(args []string) {
	if len(args) != 3 {
		c.operator.SetLastMessage("usage: at <x> <y> <z>")
		return
	}
	var coords [3]int32
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			c.operator.SetLastMessage(fmt.Sprintf("invalid coordinate %q: %v", a, err))
			return
		}
		coords[i] = int32(v)
	}
	loc := c.operator.Location().WithCoordinates(coords[0], coords[1], coords[2])
	c.operator.SetLocation(loc)
	c.operator.SetLastMessage("Operator at " + loc.String())
}
