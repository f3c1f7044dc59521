package resolver

import (
	"regexp"
	"strings"
)

// Group-opening patterns, tried in priority order; the first match on a line
// wins and yields exactly one literal prefix capture.
var groupPatterns = []*regexp.Regexp{
	// Route::group(['prefix' => 'admin', ...], function () {
	regexp.MustCompile(`Route::group\s*\(\s*\[[^\]]*['"]prefix['"]\s*=>\s*['"]([^'"]*)['"][^\]]*\]\s*,\s*(?:function|fn)`),

	// Route::middleware('auth')->name('admin.')->prefix('admin')->group(
	regexp.MustCompile(`Route::\w+\s*\([^)]*\)\s*(?:->\s*\w+\s*\([^)]*\)\s*)*?->\s*prefix\s*\(\s*['"]([^'"]*)['"]\s*\)\s*(?:->\s*\w+\s*\([^)]*\)\s*)*->\s*group\s*\(`),

	// Route::get('/x', ...)->prefix('admin')->group( — verb variant kept for
	// odd-but-seen formatting
	regexp.MustCompile(`Route::(?:get|post|put|patch|delete|options|any|match)\s*\([^)]*\)\s*(?:->\s*\w+\s*\([^)]*\)\s*)*?->\s*prefix\s*\(\s*['"]([^'"]*)['"]\s*\)\s*(?:->\s*\w+\s*\([^)]*\)\s*)*->\s*group\s*\(`),

	// Route::controller(UserController::class)->prefix('users')->group(
	regexp.MustCompile(`Route::controller\s*\(\s*[\w\\]+::class\s*\)\s*->\s*prefix\s*\(\s*['"]([^'"]*)['"]\s*\)\s*(?:->\s*\w+\s*\([^)]*\)\s*)*->\s*group\s*\(`),

	// Route::prefix('admin')->group(
	regexp.MustCompile(`Route::prefix\s*\(\s*['"]([^'"]*)['"]\s*\)\s*->\s*group\s*\(`),
}

// LinePrefixes scans text and returns, for each line, the effective group
// prefix active at that line (the innermost enclosing scope's prefix, or ""
// when none). The scan never fails: unbalanced braces degrade to a
// best-effort mapping and every line still gets an entry.
func LinePrefixes(text string) []string {
	lines := splitLines(text)
	prefixes := make([]string, len(lines))

	stack := []PrefixScope{{Prefix: "", OpenDepth: 0}}
	depth := 0

	for i, line := range lines {
		depth += strings.Count(line, "{") - strings.Count(line, "}")

		if captured, ok := matchGroupOpen(line); ok {
			parent := stack[len(stack)-1].Prefix
			stack = append(stack, PrefixScope{
				Prefix:    JoinPaths(parent, captured),
				OpenDepth: depth,
			})
		}

		// A single line may close several scopes, e.g. "});});".
		for len(stack) > 1 && depth < stack[len(stack)-1].OpenDepth {
			stack = stack[:len(stack)-1]
		}

		prefixes[i] = stack[len(stack)-1].Prefix
	}

	return prefixes
}

// matchGroupOpen tries the ordered group patterns against a line and returns
// the captured prefix literal of the first one that matches.
func matchGroupOpen(line string) (string, bool) {
	for _, re := range groupPatterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}
