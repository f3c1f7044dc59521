package commands

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"routelens/internal/config"
	"routelens/pkg/resolver"
)

// loadConfig reads routelens.yaml from the working directory. A broken
// config is reported and the defaults are used; commands keep working.
func loadConfig() *config.Config {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		return config.Defaults()
	}
	return cfg
}

// useColor decides whether to emit ANSI colors: config and --no-color both
// have to allow it, and stdout has to be a terminal.
func useColor(cfg *config.Config) bool {
	if noColor || !cfg.Color || jsonOutput {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// basePrefixFor picks the base prefix for a file: the --base-prefix flag
// wins, then the config mapping, then the file-name heuristic.
func basePrefixFor(cfg *config.Config, path string) string {
	if basePrefixFlag != "" {
		return basePrefixFlag
	}
	return cfg.BasePrefixFor(path)
}

// scanFile reads and resolves one route file.
func scanFile(cfg *config.Config, path string) ([]resolver.RouteRecord, string, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	base := basePrefixFor(cfg, path)
	return resolver.Resolve(string(text), resolver.Options{BasePrefix: base}), base, nil
}

// routeOutputs converts resolver records to their JSON output shape.
func routeOutputs(records []resolver.RouteRecord) []RouteOutput {
	out := make([]RouteOutput, 0, len(records))
	for _, r := range records {
		out = append(out, RouteOutput{
			Method:   r.Method,
			Path:     r.ResolvedPath,
			RawPath:  r.RawPath,
			Line:     r.LineIndex,
			Resource: r.Resource,
		})
	}
	return out
}
