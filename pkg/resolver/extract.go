package resolver

import (
	"regexp"
	"strings"
)

// routeCallRe recognizes a route-definition call: a verb token followed by a
// quoted literal path as the first argument. Anchored to match at most once
// per line; two calls on one line are not supported.
var routeCallRe = regexp.MustCompile(`Route::(get|post|put|delete|patch|options|any|resource|apiResource)\s*\(\s*(?:'([^']*)'|"([^"]*)")`)

// resourceVerbs are the verbs that declare a whole route collection at once.
var resourceVerbs = map[string]bool{
	"resource":    true,
	"apiResource": true,
}

// ExtractRoutes scans text for route-definition calls and resolves each one
// against the per-line prefixes and the optional base prefix. Records are
// returned in source line order, at most one per line.
func ExtractRoutes(text string, linePrefixes []string, basePrefix string) []RouteRecord {
	var records []RouteRecord

	for i, line := range splitLines(text) {
		m := routeCallRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		verb := m[1]
		rawPath := m[2]
		if rawPath == "" {
			rawPath = m[3]
		}

		groupPrefix := ""
		if i < len(linePrefixes) {
			groupPrefix = linePrefixes[i]
		}

		method := strings.ToUpper(verb)
		if resourceVerbs[verb] {
			method = MethodResource
		}

		records = append(records, RouteRecord{
			LineIndex:    i,
			Method:       method,
			RawPath:      rawPath,
			ResolvedPath: JoinPaths(basePrefix, groupPrefix, rawPath),
			Resource:     resourceVerbs[verb],
		})
	}

	return records
}
