package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	opts := &rootOptions{}
	rootCmd := newRootCmd(opts)

	err := rootCmd.Execute()
	// the run commands already printed the interpreter error
	if err != nil && !errors.Is(err, errAborted) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	opts.close()
	if err != nil {
		os.Exit(1)
	}
}
