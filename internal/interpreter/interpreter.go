package interpreter

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"rover/pkg/log"
)

const (
	ActionMove   = "MOVE"
	ActionTurn   = "TURN"
	ActionReport = "REPORT"
)

type handler func(c *Context, args []string) error

var handlers = map[string]handler{
	ActionMove:   move,
	ActionTurn:   turn,
	ActionReport: report,
}

// Interpreter owns a single robot and applies command lines to it.
// It is not safe for concurrent use.
type Interpreter struct {
	state *Context
}

// New returns an interpreter with the robot at (0, 0) facing NORTH.
// REPORT output is written to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{state: &Context{Robot: NewRobot(), Out: out}}
}

// Robot exposes the interpreter's robot for inspection.
func (i *Interpreter) Robot() *Robot {
	return i.state.Robot
}

// Execute runs commands in order and stops at the first error.
func (i *Interpreter) Execute(ctx context.Context, commands []string) error {
	for n, line := range commands {
		if err := i.ExecuteLine(ctx, line); err != nil {
			log.FromCtx(ctx).Debug().Int("index", n).Int("skipped", len(commands)-n-1).Msg("aborting command sequence")
			return err
		}
	}
	return nil
}

// ExecuteLine parses a single line and dispatches it.
func (i *Interpreter) ExecuteLine(ctx context.Context, line string) error {
	logger := log.FromCtx(ctx)

	cmd, err := Parse(line)
	if err != nil {
		logger.Debug().Str("line", line).Err(err).Msg("parse failed")
		return err
	}
	h, ok := handlers[cmd.Action]
	if !ok {
		return syntaxErr(fmt.Sprintf("Unknown command: %s", cmd.Action))
	}
	if err := h(i.state, cmd.Args); err != nil {
		logger.Debug().Str("action", cmd.Action).Strs("args", cmd.Args).Err(err).Msg("command rejected")
		return err
	}
	r := i.state.Robot
	logger.Debug().
		Str("action", cmd.Action).
		Strs("args", cmd.Args).
		Stringer("x", r.X).
		Stringer("y", r.Y).
		Stringer("direction", r.Direction).
		Msg("command applied")
	return nil
}

func move(c *Context, args []string) error {
	if len(args) != 1 || !isDigits(args[0]) {
		return syntaxErr("MOVE requires a single numeric argument.")
	}
	distance, ok := new(big.Int).SetString(args[0], 10)
	if !ok {
		return syntaxErr("MOVE requires a single numeric argument.")
	}
	c.Robot.Move(distance)
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func turn(c *Context, args []string) error {
	if len(args) != 1 {
		return syntaxErr("TURN requires a single argument: LEFT or RIGHT.")
	}
	switch args[0] {
	case "LEFT":
		c.Robot.Direction = c.Robot.Direction.Left()
	case "RIGHT":
		c.Robot.Direction = c.Robot.Direction.Right()
	default:
		return syntaxErr("TURN requires a single argument: LEFT or RIGHT.")
	}
	return nil
}

// report ignores its arguments.
func report(c *Context, _ []string) error {
	return c.Display()
}
