// Package resolver resolves Laravel route-group prefixes from raw source
// text. It tracks nested Route::group / ->prefix(...)->group(...) scopes by
// counting braces line by line and assigns each route definition the
// concatenation of all enclosing prefixes plus its own path segment.
//
// The scan is lexical, not grammatical: braces inside string literals and
// comments are counted like any other brace. That trade-off keeps the
// resolver fast and dependency-free at the cost of exotic formatting, and is
// isolated behind Resolve so a real parser could replace it later.
package resolver

// HTTP method tokens recognized on route-definition calls. RESOURCE covers
// Route::resource and Route::apiResource, which declare a whole collection
// of routes in one call; those are reported as a single marker record and
// never expanded.
const (
	MethodGet      = "GET"
	MethodPost     = "POST"
	MethodPut      = "PUT"
	MethodDelete   = "DELETE"
	MethodPatch    = "PATCH"
	MethodOptions  = "OPTIONS"
	MethodAny      = "ANY"
	MethodResource = "RESOURCE"
)

// RouteRecord is one detected route-definition call.
type RouteRecord struct {
	// LineIndex is the zero-based line number of the call in the source text.
	LineIndex int `json:"line"`
	// Method is the upper-cased verb token (GET, POST, ..., ANY, RESOURCE).
	Method string `json:"method"`
	// RawPath is the literal path argument as written, parameter
	// placeholders like {id} included.
	RawPath string `json:"raw_path"`
	// ResolvedPath is RawPath prefixed by every enclosing group prefix and
	// the optional base prefix, slash-joined and collapsed.
	ResolvedPath string `json:"resolved_path"`
	// Resource marks a resource-style bulk definition (Route::resource,
	// Route::apiResource). The record stands in for the generated routes.
	Resource bool `json:"resource,omitempty"`
}

// PrefixScope is an entry on the scope stack maintained during a scan.
type PrefixScope struct {
	// Prefix is the full concatenated prefix this scope contributes
	// (parent prefix joined with its own segment, already collapsed).
	Prefix string
	// OpenDepth is the brace depth recorded after the opening line's braces
	// were counted. The scope closes when the running depth drops below it.
	OpenDepth int
}

// Options configures a Resolve call.
type Options struct {
	// BasePrefix is an externally supplied prefix prepended to every route,
	// e.g. "api" for a routes/api.php file. Empty means none.
	BasePrefix string
}
