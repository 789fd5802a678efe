package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"texcalc/internal/diagfmt"
	"texcalc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file...]",
	Short: "Tokenize expression sources",
	Long:  `Tokenize breaks expression sources into tokens; the first lexical error of each input is reported with a caret diagnostic`,
	RunE:  runTokenize,
}

func init() {
	registerTokenizeFlags(tokenizeCmd)
}

func registerTokenizeFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "output format (pretty|json|msgpack)")
	addInputFlags(cmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg, err := resolveSettings(cmd, "format")
	if err != nil {
		return err
	}
	format, ok := diagfmt.ParseTokenFormat(cfg.format)
	if !ok {
		return fmt.Errorf("unknown format: %s", cfg.format)
	}

	results, err := lexInputs(cmd.Context(), cmd, args, driver.TokenizeOptions{NFC: cfg.nfc, Timings: cfg.timings})
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	failed := false
	for _, r := range results {
		res := r.Result
		if res.Failed() {
			failed = true
			if err := diagfmt.Pretty(stderr, res.File.Content, res.Err, diagfmt.PrettyOpts{Color: cfg.color, Path: prettyPath(r.Path)}); err != nil {
				return err
			}
		} else {
			if len(results) > 1 && format == diagfmt.TokenFormatPretty {
				fmt.Fprintf(stdout, "== %s\n", r.Path)
			}
			if err := diagfmt.FormatTokens(stdout, format, res.File.Content, res.Tokens); err != nil {
				return err
			}
		}
		printTimings(stderr, cfg, r)
	}

	if failed {
		return errDiagnostics
	}
	return nil
}

func printTimings(w io.Writer, cfg settings, r driver.FileResult) {
	if !cfg.timings || r.Result == nil || r.Result.Timing == nil {
		return
	}
	fmt.Fprint(w, r.Result.Timing.Summary(r.Path))
}
