package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"routelens/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run routelens as an MCP server over stdio",
	Long: `Run routelens as a Model Context Protocol server, exposing the
resolve_routes and annotate_file tools to MCP clients over stdio.

Example:
  routelens mcp
  routelens mcp --workdir /path/to/laravel-app`,
	Run: runMCP,
}

var mcpWorkdir string

func init() {
	mcpCmd.Flags().StringVar(&mcpWorkdir, "workdir", ".", "Directory relative file arguments resolve against")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) {
	server := mcp.NewServer(mcpWorkdir)
	if err := server.Serve(); err != nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
		os.Exit(1)
	}
}
