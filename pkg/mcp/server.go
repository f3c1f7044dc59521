// Package mcp exposes routelens over the Model Context Protocol so agents
// and editors can resolve route paths without shelling out to the CLI.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"routelens/internal/version"
)

// Server wraps an MCP server with routelens tools.
type Server struct {
	workdir   string
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server rooted at workdir. Relative file
// arguments in tool calls are resolved against it.
func NewServer(workdir string) *Server {
	s := &Server{
		workdir: workdir,
		mcpServer: server.NewMCPServer(
			"routelens",
			version.GetVersion(),
			server.WithToolCapabilities(false),
		),
	}
	s.registerTools()
	return s
}

// registerTools adds the routelens tools to the MCP server.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("resolve_routes",
		mcp.WithDescription("Resolve every route definition in a Laravel route file to its full URL path, group prefixes included. Returns a JSON list of routes."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path to the route file, absolute or relative to the workdir"),
		),
		mcp.WithString("base_prefix",
			mcp.Description("Base prefix to prepend to every route (overrides config and file-name detection)"),
		),
	), s.handleResolveRoutes)

	s.mcpServer.AddTool(mcp.NewTool("annotate_file",
		mcp.WithDescription("Return the contents of a Laravel route file with a 'Route Path' marker appended to every route-definition line."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path to the route file, absolute or relative to the workdir"),
		),
	), s.handleAnnotateFile)
}

// Serve runs the MCP server over stdio until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}
