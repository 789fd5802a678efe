package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"texcalc/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var (
	versionFormat   string
	versionShowFull bool
)

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "include git commit and build date")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show texcalc build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(versionFormat) {
		case "json":
			return renderVersionJSON(cmd.OutOrStdout(), versionShowFull)
		case "pretty":
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}

		cfg, err := resolveSettings(cmd, "")
		if err != nil {
			return err
		}
		prev := color.NoColor
		color.NoColor = !cfg.color
		defer func() { color.NoColor = prev }()

		renderVersionPretty(cmd.OutOrStdout(), versionShowFull)
		return nil
	},
}

func renderVersionPretty(w io.Writer, full bool) {
	fmt.Fprintf(w, "texcalc %s\n", version.Colored())
	if !full {
		return
	}
	if version.GitCommit != "" {
		fmt.Fprintf(w, "  commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(w, "  built:  %s\n", version.BuildDate)
	}
}

func renderVersionJSON(w io.Writer, full bool) error {
	payload := versionPayload{Tool: "texcalc", Version: version.Version}
	if full {
		payload.GitCommit = version.GitCommit
		payload.BuildDate = version.BuildDate
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
