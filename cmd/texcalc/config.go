package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configFileName = "texcalc.toml"

type cliConfig struct {
	Output outputConfig `toml:"output"`
	Input  inputConfig  `toml:"input"`
}

type outputConfig struct {
	Color      string `toml:"color"`
	Format     string `toml:"format"`      // tokenize
	DiagFormat string `toml:"diag_format"` // check
}

type inputConfig struct {
	NFC bool `toml:"nfc"`
}

// settings is the effective configuration after merging file and flags.
type settings struct {
	color   bool
	format  string
	nfc     bool
	timings bool
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (cliConfig, error) {
	var cfg cliConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cliConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cliConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("output", "color") {
		if _, err := parseColorMode(cfg.Output.Color); err != nil {
			return cliConfig{}, fmt.Errorf("%s: [output].color: %w", path, err)
		}
	}
	return cfg, nil
}

type colorMode uint8

const (
	colorAuto colorMode = iota
	colorOn
	colorOff
)

func parseColorMode(s string) (colorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return colorAuto, nil
	case "on", "always":
		return colorOn, nil
	case "off", "never":
		return colorOff, nil
	}
	return colorAuto, fmt.Errorf("invalid color mode %q (expected auto|on|off)", s)
}

// resolveSettings merges texcalc.toml with flags; flags set explicitly win.
func resolveSettings(cmd *cobra.Command, formatFlag string) (settings, error) {
	var cfg cliConfig

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath == "" {
		path, ok, findErr := findConfig(".")
		if findErr != nil {
			return settings{}, findErr
		}
		if ok {
			configPath = path
		}
	}
	if configPath != "" {
		if cfg, err = loadConfig(configPath); err != nil {
			return settings{}, err
		}
	}

	flags := cmd.Flags()
	colorValue := cfg.Output.Color
	if flags.Changed("color") || colorValue == "" {
		if colorValue, err = flags.GetString("color"); err != nil {
			return settings{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	mode, err := parseColorMode(colorValue)
	if err != nil {
		return settings{}, err
	}

	var format string
	switch formatFlag {
	case "format":
		format = cfg.Output.Format
	case "diag-format":
		format = cfg.Output.DiagFormat
	}
	if formatFlag != "" && (flags.Changed(formatFlag) || format == "") {
		if format, err = flags.GetString(formatFlag); err != nil {
			return settings{}, fmt.Errorf("failed to get %s flag: %w", formatFlag, err)
		}
	}

	nfc := cfg.Input.NFC
	if flags.Changed("nfc") {
		if nfc, err = flags.GetBool("nfc"); err != nil {
			return settings{}, fmt.Errorf("failed to get nfc flag: %w", err)
		}
	}

	timings, err := flags.GetBool("timings")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get timings flag: %w", err)
	}

	return settings{
		color:   mode == colorOn || (mode == colorAuto && isTerminal(os.Stderr)),
		format:  strings.ToLower(format),
		nfc:     nfc,
		timings: timings,
	}, nil
}
