package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"texcalc/internal/version"
)

// errDiagnostics signals that diagnostics were already printed; main only sets the exit code.
var errDiagnostics = errors.New("lexical errors reported")

var rootCmd = &cobra.Command{
	Use:           "texcalc",
	Short:         "Expression front end: tokenize and check calculator input",
	Long:          `texcalc scans calculator expressions (with \times and \div commands) into tokens and reports lexical errors`,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE:  startProfiling,
	PersistentPostRunE: stopProfiling,
}

// main registers subcommands and persistent flags, then executes the root command.
// Any error exits with status 1; errors other than errDiagnostics are printed first.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(versionCmd)

	registerGlobalFlags(rootCmd)
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write runtime trace to file")

	if err := rootCmd.Execute(); err != nil {
		if stopErr := stopProfiling(nil, nil); stopErr != nil {
			fmt.Fprintln(os.Stderr, "error:", stopErr)
		}
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// registerGlobalFlags adds the flags every subcommand reads through resolveSettings.
func registerGlobalFlags(cmd *cobra.Command) {
	// Глобальные флаги
	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().Bool("timings", false, "show timing information")
	cmd.PersistentFlags().String("config", "", "path to texcalc.toml (default: search upward from the working directory)")
	cmd.PersistentFlags().Bool("nfc", false, "normalize input to Unicode NFC before lexing")
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
