package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"rover/internal/interpreter"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [command...]",
		Short: "Run commands given as arguments, or one per line from stdin",
		Example: `  rover run "MOVE 10" "TURN LEFT" "MOVE 5" REPORT
  printf 'TURN RIGHT\nMOVE 3\nREPORT\n' | rover run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			interp := interpreter.New(out)

			if len(args) > 0 {
				if err := interp.Execute(ctx, args); err != nil {
					return reportFailure(cmd, out, err)
				}
				return nil
			}

			// no line length limit: MOVE distances are unbounded
			in := bufio.NewReader(cmd.InOrStdin())
			for {
				line, readErr := in.ReadString('\n')
				if readErr != nil && !errors.Is(readErr, io.EOF) {
					return fmt.Errorf("read commands: %w", readErr)
				}
				if readErr != nil && line == "" {
					return nil
				}
				if err := interp.ExecuteLine(ctx, strings.TrimSuffix(line, "\n")); err != nil {
					return reportFailure(cmd, out, err)
				}
				if readErr != nil {
					return nil
				}
			}
		},
	}
	return cmd
}
