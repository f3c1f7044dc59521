package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"routelens/internal/config"
	"routelens/pkg/annotate"
	"routelens/pkg/resolver"
)

// handleResolveRoutes resolves a route file and returns the records as JSON.
func (s *Server) handleResolveRoutes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := req.RequireString("file")
	if err != nil {
		return mcp.NewToolResultError("file parameter is required"), nil
	}

	path := s.resolvePath(file)
	text, err := os.ReadFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read %s: %v", path, err)), nil
	}

	basePrefix := req.GetString("base_prefix", "")
	if basePrefix == "" {
		basePrefix = s.basePrefixFor(path)
	}

	records := resolver.Resolve(string(text), resolver.Options{BasePrefix: basePrefix})

	result := map[string]any{
		"file":   path,
		"routes": records,
		"total":  len(records),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleAnnotateFile returns the file text with route-path markers.
func (s *Server) handleAnnotateFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := req.RequireString("file")
	if err != nil {
		return mcp.NewToolResultError("file parameter is required"), nil
	}

	path := s.resolvePath(file)
	text, err := os.ReadFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read %s: %v", path, err)), nil
	}

	annotator := &annotate.Annotator{BasePrefix: s.basePrefixFor(path)}
	return mcp.NewToolResultText(annotator.AnnotateText(string(text))), nil
}

// resolvePath makes a file path absolute relative to the server workdir.
func (s *Server) resolvePath(file string) string {
	if filepath.IsAbs(file) || s.workdir == "" {
		return file
	}
	return filepath.Join(s.workdir, file)
}

// basePrefixFor consults routelens.yaml in the workdir, falling back to the
// file-name heuristic. Config errors degrade to the heuristic; a tool call
// should not fail because of a bad config file.
func (s *Server) basePrefixFor(path string) string {
	cfg, err := config.Load(s.workdir)
	if err != nil {
		return config.DetectBasePrefix(path)
	}
	return cfg.BasePrefixFor(path)
}
