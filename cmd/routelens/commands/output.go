package commands

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonOutput is the global flag for JSON output mode
var jsonOutput bool

// noColor is the global flag disabling ANSI colors
var noColor bool

// basePrefixFlag is the global --base-prefix override
var basePrefixFlag string

// JSONResponse is the standard response wrapper for JSON output
type JSONResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RoutesOutput represents the JSON output for the routes command
type RoutesOutput struct {
	Files       []FileRoutesOutput `json:"files"`
	TotalRoutes int                `json:"total_routes"`
}

// FileRoutesOutput represents one scanned file in JSON output
type FileRoutesOutput struct {
	File       string        `json:"file"`
	BasePrefix string        `json:"base_prefix,omitempty"`
	Routes     []RouteOutput `json:"routes"`
}

// RouteOutput represents a single route in JSON output
type RouteOutput struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	RawPath  string `json:"raw_path"`
	Line     int    `json:"line"`
	Resource bool   `json:"resource,omitempty"`
}

// AnnotateOutput represents the JSON output for the annotate command
type AnnotateOutput struct {
	File        string             `json:"file"`
	BasePrefix  string             `json:"base_prefix,omitempty"`
	Annotations []AnnotationOutput `json:"annotations"`
}

// AnnotationOutput represents a single marker in JSON output
type AnnotationOutput struct {
	Line   int    `json:"line"`
	Marker string `json:"marker"`
	Path   string `json:"path"`
}

// OpenAPIOutput represents the JSON output for the openapi command
type OpenAPIOutput struct {
	File     string   `json:"file"`
	Format   string   `json:"format"`
	Routes   int      `json:"routes"`
	Warnings []string `json:"warnings,omitempty"`
}

// InitOutput represents the JSON output for the init command
type InitOutput struct {
	ConfigPath string `json:"config_path"`
	Created    bool   `json:"created"`
}

// printJSON outputs data as formatted JSON to stdout
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
	}
}

// printSuccess outputs a successful JSON response
func printSuccess(data any) {
	printJSON(JSONResponse{Success: true, Data: data})
}

// printJSONError outputs an error as JSON
func printJSONError(err error) {
	printJSON(JSONResponse{Success: false, Error: err.Error()})
}
