package resolver

import "strings"

// JoinPaths joins path segments into a single URL path. Empty segments are
// skipped, the result always starts with "/", and any run of consecutive
// slashes is collapsed to one. With no non-empty segments the result is "/".
func JoinPaths(segments ...string) string {
	var parts []string
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		parts = append(parts, seg)
	}

	joined := "/" + strings.Join(parts, "/")
	return collapseSlashes(joined)
}

// collapseSlashes reduces every run of consecutive '/' to a single one.
func collapseSlashes(p string) string {
	if !strings.Contains(p, "//") {
		return p
	}

	var b strings.Builder
	b.Grow(len(p))
	prevSlash := false
	for i := 0; i < len(p); i++ {
		if p[i] == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteByte(p[i])
	}
	return b.String()
}

// splitLines splits text on '\n', tolerating both LF and CRLF endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
