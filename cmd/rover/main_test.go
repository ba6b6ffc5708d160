package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRover(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	opts.close()
	return out.String(), err
}

func TestRunArgs(t *testing.T) {
	out, err := runRover(t, "", "run", "MOVE 10", "TURN LEFT", "MOVE 5", "REPORT")
	require.NoError(t, err)
	assert.Equal(t, "Position: (-5, 10), Direction: WEST\n", out)
}

func TestRunStdin(t *testing.T) {
	out, err := runRover(t, "TURN RIGHT\nMOVE 3\nREPORT\n", "run")
	require.NoError(t, err)
	assert.Equal(t, "Position: (3, 0), Direction: EAST\n", out)
}

func TestRunUnknownCommand(t *testing.T) {
	out, err := runRover(t, "", "run", "MOVE 1", "JUMP 2", "REPORT")
	require.ErrorIs(t, err, errAborted)
	assert.Equal(t, "Error: Unknown command: JUMP\n", out)
}

func TestRunStdinStopsAtFirstError(t *testing.T) {
	out, err := runRover(t, "REPORT\nMOVE abc\nREPORT\n", "run")
	require.ErrorIs(t, err, errAborted)
	assert.Equal(t, "Position: (0, 0), Direction: NORTH\nError: MOVE requires a single numeric argument.\n", out)
}

func TestRunStdinBlankLine(t *testing.T) {
	out, err := runRover(t, "MOVE 1\n\nREPORT\n", "run")
	require.ErrorIs(t, err, errAborted)
	assert.Equal(t, "Error: Empty command.\n", out)
}

func TestRunDebugFlag(t *testing.T) {
	out, err := runRover(t, "", "run", "--debug", "MOVE 2", "REPORT")
	require.NoError(t, err)
	assert.Equal(t, "Position: (0, 2), Direction: NORTH\n", out)
}

func TestDemo(t *testing.T) {
	out, err := runRover(t, "", "demo")
	require.NoError(t, err)
	assert.Equal(t, "Position: (-5, 10), Direction: WEST\n", out)
}

func TestDemoRejectsArgs(t *testing.T) {
	_, err := runRover(t, "", "demo", "extra")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errAborted)
}

func TestRunStdinLongLineError(t *testing.T) {
	line := "MOVE " + strings.Repeat("1", 70000) + "x"
	out, err := runRover(t, line+"\nREPORT\n", "run")
	require.ErrorIs(t, err, errAborted)
	assert.Equal(t, "Error: MOVE requires a single numeric argument.\n", out)
}

func TestRunStdinLongLine(t *testing.T) {
	digits := strings.Repeat("1", 70000)
	out, err := runRover(t, "TURN RIGHT\nMOVE "+digits+"\nREPORT", "run")
	require.NoError(t, err)
	assert.Equal(t, "Position: ("+digits+", 0), Direction: EAST\n", out)
}

func TestRunStdinAndArgsAgree(t *testing.T) {
	line := "MOVE " + strings.Repeat("9", 70000) + "-"
	fromArgs, argsErr := runRover(t, "", "run", line)
	fromStdin, stdinErr := runRover(t, line, "run")
	require.ErrorIs(t, argsErr, errAborted)
	require.ErrorIs(t, stdinErr, errAborted)
	assert.Equal(t, fromArgs, fromStdin)
}
