// Package annotate renders resolved route paths as end-of-line markers on
// Laravel route-definition source. It is the presentation side of the
// resolver: the resolver computes (line, path) pairs, this package turns
// them into readable output.
package annotate

import (
	"strings"

	"github.com/fatih/color"

	"routelens/pkg/resolver"
)

// DefaultGlyph is the marker glyph prepended to each annotation.
const DefaultGlyph = "▸"

// Annotator renders route-path markers onto source text.
type Annotator struct {
	// Glyph is the marker glyph; DefaultGlyph when empty.
	Glyph string
	// BasePrefix is prepended to every resolved route path.
	BasePrefix string
	// Colorize enables ANSI-colored markers. The caller decides this, e.g.
	// from a terminal check or a --no-color flag.
	Colorize bool
}

// Annotation is one rendered marker, positioned at the end of a source line.
type Annotation struct {
	LineIndex int                  `json:"line"`
	Marker    string               `json:"marker"`
	Record    resolver.RouteRecord `json:"record"`
}

// Annotations resolves the text and returns one marker per detected route,
// in line order.
func (a *Annotator) Annotations(text string) []Annotation {
	records := resolver.Resolve(text, resolver.Options{BasePrefix: a.BasePrefix})

	annotations := make([]Annotation, 0, len(records))
	for _, r := range records {
		annotations = append(annotations, Annotation{
			LineIndex: r.LineIndex,
			Marker:    a.marker(r),
			Record:    r,
		})
	}
	return annotations
}

// AnnotateText returns the source text with a marker appended to every line
// that defines a route. Lines without routes pass through unchanged.
func (a *Annotator) AnnotateText(text string) string {
	byLine := make(map[int]string)
	for _, ann := range a.Annotations(text) {
		byLine[ann.LineIndex] = ann.Marker
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		marker, ok := byLine[i]
		if !ok {
			continue
		}
		// Keep the line's original terminator so CRLF input stays CRLF.
		crlf := strings.HasSuffix(line, "\r")
		line = strings.TrimRight(line, " \t\r") + "  " + marker
		if crlf {
			line += "\r"
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// marker formats a single route marker, e.g. "▸ Route Path: /api/users".
func (a *Annotator) marker(r resolver.RouteRecord) string {
	glyph := a.Glyph
	if glyph == "" {
		glyph = DefaultGlyph
	}

	path := r.ResolvedPath
	if r.Resource {
		path += " (resource)"
	}

	if a.Colorize {
		dim := color.New(color.Faint).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		return dim(glyph+" Route Path: ") + cyan(path)
	}
	return glyph + " Route Path: " + path
}
