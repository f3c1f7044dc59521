// Package config loads routelens.yaml and answers per-file questions such
// as which base prefix applies to a given route file.
package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultDebounce is the quiet period used when the config does not set one.
const DefaultDebounce = 300 * time.Millisecond

// Config holds the routelens.yaml settings. The zero value plus Defaults is
// a fully working configuration.
type Config struct {
	// Marker is the annotation glyph.
	Marker string `mapstructure:"marker"`
	// DebounceMS is the watch quiet period in milliseconds.
	DebounceMS int `mapstructure:"debounce_ms"`
	// Color toggles ANSI-colored output.
	Color bool `mapstructure:"color"`
	// BasePrefixes maps file glob patterns to base prefixes, e.g.
	// "routes/api.php" -> "api". Patterns are matched against the path and
	// its base name; the first match wins.
	BasePrefixes map[string]string `mapstructure:"base_prefixes"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Marker:     "▸",
		DebounceMS: int(DefaultDebounce / time.Millisecond),
		Color:      true,
	}
}

// Load reads routelens.yaml from dir. A missing file is not an error; the
// defaults are returned. A malformed file is an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("routelens")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	cfg := Defaults()
	v.SetDefault("marker", cfg.Marker)
	v.SetDefault("debounce_ms", cfg.DebounceMS)
	v.SetDefault("color", cfg.Color)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read routelens.yaml: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse routelens.yaml: %w", err)
	}
	return cfg, nil
}

// Debounce returns the configured quiet period.
func (c *Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return DefaultDebounce
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// BasePrefixFor returns the base prefix to prepend for the given route file.
// An explicit config mapping wins; otherwise a small naming heuristic kicks
// in (api.php and api_*.php files get "api"). Empty means no base prefix.
func (c *Config) BasePrefixFor(path string) string {
	norm := filepath.ToSlash(path)
	base := filepath.Base(norm)

	// Patterns are tried in sorted order so overlapping globs resolve the
	// same way on every run.
	patterns := make([]string, 0, len(c.BasePrefixes))
	for pattern := range c.BasePrefixes {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, norm); ok {
			return c.BasePrefixes[pattern]
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return c.BasePrefixes[pattern]
		}
	}

	return DetectBasePrefix(path)
}

// DetectBasePrefix guesses a base prefix from the file name alone. Laravel
// serves routes/api.php under /api; files named api.php or api_v*.php get
// "api". This is a convenience default only — explicit configuration always
// overrides it.
func DetectBasePrefix(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), ".php")
	if base == "api" || strings.HasPrefix(base, "api_") || strings.HasPrefix(base, "api-") {
		return "api"
	}
	return ""
}
