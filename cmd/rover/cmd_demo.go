package main

import (
	"github.com/spf13/cobra"

	"rover/internal/interpreter"
)

var demoInstructions = []string{
	"MOVE 10",
	"TURN LEFT",
	"MOVE 5",
	"REPORT",
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in instruction list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := interpreter.New(out).Execute(cmd.Context(), demoInstructions); err != nil {
				return reportFailure(cmd, out, err)
			}
			return nil
		},
	}
}
