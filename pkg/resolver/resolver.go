package resolver

// Resolve scans the full text of a route file and returns every recognized
// route definition with its resolved path, in source line order.
//
// Resolve is a pure function of its inputs: it holds no state between calls
// and recomputes the whole result every time. Malformed input never fails a
// scan; unrecognized lines are skipped and unbalanced braces degrade to a
// best-effort prefix mapping.
func Resolve(text string, opts Options) []RouteRecord {
	prefixes := LinePrefixes(text)
	return ExtractRoutes(text, prefixes, opts.BasePrefix)
}
