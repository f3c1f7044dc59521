// Package commands provides the CLI commands for routelens.
package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"routelens/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "routelens",
	Short: "routelens - resolve Laravel route paths from source",
	Long: `routelens scans Laravel route files, resolves nested route-group
prefixes, and annotates every route definition with its full URL path.

Quick Start:
  routelens annotate routes/web.php   Print a file with route-path markers
  routelens routes routes/*.php       List all resolved routes
  routelens watch routes/             Re-annotate on change
  routelens openapi routes/api.php    Generate an OpenAPI skeleton
  routelens serve routes/*.php        Serve the route table over HTTP
  routelens init                      Create a routelens.yaml`,
	Version: version.GetVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || jsonOutput {
			color.NoColor = true
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for automation and LLM agents)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&basePrefixFlag, "base-prefix", "", "Base prefix prepended to every route (overrides config and file-name detection)")
}
