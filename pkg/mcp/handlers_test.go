package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// Helper to create a CallToolRequest with arguments
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func getResultText(result *mcp.CallToolResult) string {
	var out strings.Builder
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			out.WriteString(text.Text)
		}
	}
	return out.String()
}

func writeRouteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write route file: %v", err)
	}
	return path
}

func TestHandleResolveRoutes(t *testing.T) {
	tmpDir := t.TempDir()
	writeRouteFile(t, tmpDir, "web.php", strings.Join([]string{
		`Route::prefix('admin')->group(function () {`,
		`    Route::get('/users', 'index');`,
		`});`,
	}, "\n"))

	server := NewServer(tmpDir)

	req := makeRequest(map[string]any{"file": "web.php"})
	result, err := server.handleResolveRoutes(context.Background(), req)
	if err != nil {
		t.Fatalf("handleResolveRoutes failed: %v", err)
	}

	content := getResultText(result)
	if !strings.Contains(content, `"/admin/users"`) {
		t.Errorf("expected resolved path in result, got: %s", content)
	}
	if !strings.Contains(content, `"total": 1`) {
		t.Errorf("expected total 1 in result, got: %s", content)
	}
}

func TestHandleResolveRoutes_BasePrefixArgument(t *testing.T) {
	tmpDir := t.TempDir()
	writeRouteFile(t, tmpDir, "web.php", `Route::get('/users', 'index');`)

	server := NewServer(tmpDir)

	req := makeRequest(map[string]any{"file": "web.php", "base_prefix": "v2"})
	result, err := server.handleResolveRoutes(context.Background(), req)
	if err != nil {
		t.Fatalf("handleResolveRoutes failed: %v", err)
	}

	content := getResultText(result)
	if !strings.Contains(content, `"/v2/users"`) {
		t.Errorf("expected base prefix applied, got: %s", content)
	}
}

func TestHandleResolveRoutes_ApiFileHeuristic(t *testing.T) {
	tmpDir := t.TempDir()
	writeRouteFile(t, tmpDir, "api.php", `Route::get('/users', 'index');`)

	server := NewServer(tmpDir)

	req := makeRequest(map[string]any{"file": "api.php"})
	result, err := server.handleResolveRoutes(context.Background(), req)
	if err != nil {
		t.Fatalf("handleResolveRoutes failed: %v", err)
	}

	if !strings.Contains(getResultText(result), `"/api/users"`) {
		t.Errorf("expected api base prefix, got: %s", getResultText(result))
	}
}

func TestHandleResolveRoutes_MissingFile(t *testing.T) {
	server := NewServer(t.TempDir())

	req := makeRequest(map[string]any{"file": "missing.php"})
	result, err := server.handleResolveRoutes(context.Background(), req)
	if err != nil {
		t.Fatalf("handleResolveRoutes returned transport error: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error result for missing file")
	}
}

func TestHandleResolveRoutes_MissingArgument(t *testing.T) {
	server := NewServer(t.TempDir())

	result, err := server.handleResolveRoutes(context.Background(), makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handleResolveRoutes returned transport error: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error result for missing file argument")
	}
}

func TestHandleAnnotateFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeRouteFile(t, tmpDir, "web.php", `Route::get('/users', 'index');`)

	server := NewServer(tmpDir)

	req := makeRequest(map[string]any{"file": "web.php"})
	result, err := server.handleAnnotateFile(context.Background(), req)
	if err != nil {
		t.Fatalf("handleAnnotateFile failed: %v", err)
	}

	content := getResultText(result)
	if !strings.Contains(content, "Route Path: /users") {
		t.Errorf("expected marker in annotated text, got: %s", content)
	}
}
