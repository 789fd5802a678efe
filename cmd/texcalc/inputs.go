package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"texcalc/internal/driver"
)

const exprInputName = "<expr>"
const stdinInputName = "<stdin>"

// lexInputs tokenizes --expr text, the file arguments, or stdin when neither is given.
// Load errors abort; lexical errors are returned inside the results.
func lexInputs(ctx context.Context, cmd *cobra.Command, args []string, opts driver.TokenizeOptions) ([]driver.FileResult, error) {
	expr, err := cmd.Flags().GetString("expr")
	if err != nil {
		return nil, fmt.Errorf("failed to get expr flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}

	var results []driver.FileResult
	if cmd.Flags().Changed("expr") {
		res, err := driver.TokenizeText(exprInputName, expr, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, driver.FileResult{Path: exprInputName, Result: res})
	}

	if len(args) > 0 {
		fileResults, err := driver.TokenizeFiles(ctx, args, opts, jobs)
		if err != nil {
			return nil, fmt.Errorf("tokenization failed: %w", err)
		}
		for _, r := range fileResults {
			if r.LoadErr != nil {
				return nil, r.LoadErr
			}
		}
		results = append(results, fileResults...)
	}

	if len(results) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		res, err := driver.TokenizeText(stdinInputName, string(data), opts)
		if err != nil {
			return nil, err
		}
		results = append(results, driver.FileResult{Path: stdinInputName, Result: res})
	}

	return results, nil
}

// prettyPath is the path shown on the " --> " line. In-memory inputs have no
// file, so their location stays the bare "line:col".
func prettyPath(p string) string {
	if p == exprInputName || p == stdinInputName {
		return ""
	}
	return p
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("expr", "e", "", "expression text to lex instead of files")
	cmd.Flags().IntP("jobs", "j", 0, "max parallel files (0 = GOMAXPROCS)")
}
