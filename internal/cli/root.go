// Package cli implements the toctidy command-line front-end.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "toctidy",
	Short: "Clean up degraded tables of contents in Word documents",
	Long: `toctidy rewrites a document whose table of contents has degraded
(stray arrow glyphs, uneven dot runs, misaligned page numbers) into one with
consistent dot leaders, preserved hierarchy, and page numbers aligned at a
single right margin. Abbreviation definition lines are normalized too.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
