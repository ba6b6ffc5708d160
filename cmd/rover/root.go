package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rover/internal/config"
	"rover/internal/interpreter"
	"rover/pkg/log"
)

// errAborted marks a command sequence stopped by an interpreter error that
// has already been reported to the user.
var errAborted = errors.New("command sequence aborted")

type rootOptions struct {
	debug    bool
	flushLog func()
}

func (o *rootOptions) close() {
	if o.flushLog != nil {
		o.flushLog()
		o.flushLog = nil
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rover",
		Short:         "Drive a rover around a 2D grid",
		Long:          `rover applies MOVE <n>, TURN LEFT|RIGHT and REPORT commands to a rover starting at (0, 0) facing NORTH.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, flush := log.NewContextWithLogger(cmd.Context(), log.Options{
				Debug: opts.debug || cfg.Debug,
				JSON:  cfg.LogJSON,
				Out:   cmd.ErrOrStderr(),
			})
			opts.flushLog = flush
			cmd.SetContext(ctx)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDemoCmd())

	return rootCmd
}

// reportFailure prints the interpreter error the way users see it and turns
// it into errAborted for the exit status.
func reportFailure(cmd *cobra.Command, out io.Writer, err error) error {
	log.FromCtx(cmd.Context()).Debug().
		Bool("syntax", interpreter.IsSyntax(err)).
		Bool("runtime", interpreter.IsRuntime(err)).
		Msg("interpreter stopped")
	fmt.Fprintf(out, "Error: %v\n", err)
	return errAborted
}
