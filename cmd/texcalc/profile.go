package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"texcalc/internal/prof"
)

var profSession *prof.Session

// startProfiling reads the root profiling flags and starts the requested profilers.
func startProfiling(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()
	var opts prof.Options
	var err error
	if opts.CPUProfile, err = root.PersistentFlags().GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.MemProfile, err = root.PersistentFlags().GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.RuntimeTrace, err = root.PersistentFlags().GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	profSession, err = prof.Start(opts)
	return err
}

// stopProfiling runs after a successful command; main calls it again on error.
func stopProfiling(*cobra.Command, []string) error {
	err := profSession.Stop()
	profSession = nil
	return err
}
