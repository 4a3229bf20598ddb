// Package cmd implements the CLI commands for ruby-snippets using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snippets",
	Short: "snippets — convert Rails pattern guides between HTML and Markdown",
	Long: `snippets converts fixed-schema HTML pattern guides into Markdown pattern
files, and merges Markdown pattern files back into a styled, searchable
HTML page.

Usage:
  snippets convert <guide.html | url> [flags]
  snippets publish <patterns.md> [more.md ...] [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
