package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"texcalc/internal/token"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the backslash-commands the lexer understands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, c := range token.Commands() {
			if _, err := fmt.Fprintf(out, "\\%-8s %-4s %s\n", c.Name, c.Kind.Describe(), c.Kind); err != nil {
				return err
			}
		}
		return nil
	},
}
