package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"texcalc/internal/diag"
	"texcalc/internal/diagfmt"
	"texcalc/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file...]",
	Short: "Report lexical errors without printing tokens",
	RunE:  runCheck,
}

func init() {
	registerCheckFlags(checkCmd)
}

func registerCheckFlags(cmd *cobra.Command) {
	cmd.Flags().String("diag-format", "", "diagnostic format (pretty|short|json)")
	cmd.Flags().Bool("quiet", false, "print nothing for inputs without errors")
	addInputFlags(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolveSettings(cmd, "diag-format")
	if err != nil {
		return err
	}
	switch cfg.format {
	case "", "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown diagnostic format: %s", cfg.format)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	results, err := lexInputs(cmd.Context(), cmd, args, driver.TokenizeOptions{NFC: cfg.nfc, Timings: cfg.timings})
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	failed := false
	for _, r := range results {
		res := r.Result
		if !res.Failed() {
			if !quiet {
				fmt.Fprintf(stdout, "%s: ok (%d tokens)\n", r.Path, len(res.Tokens))
			}
			printTimings(stderr, cfg, r)
			continue
		}

		failed = true
		switch cfg.format {
		case "short":
			fmt.Fprintln(stderr, diag.FormatShort(r.Path, res.File.Content, res.Err))
		case "json":
			err = diagfmt.FormatErrorJSON(stdout, res.File.Content, res.Err, diagfmt.JSONOpts{IncludePositions: true, Path: r.Path})
		default:
			err = diagfmt.Pretty(stderr, res.File.Content, res.Err, diagfmt.PrettyOpts{Color: cfg.color, Path: prettyPath(r.Path)})
		}
		if err != nil {
			return err
		}
		printTimings(stderr, cfg, r)
	}

	if failed {
		return errDiagnostics
	}
	return nil
}
