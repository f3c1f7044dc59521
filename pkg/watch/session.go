package watch

import "sync"

// Session tracks which document a scan's results may be applied to. A new
// scan request supersedes any prior pending result: results are applied only
// if their document is still the active one (last-write-wins).
type Session struct {
	mu     sync.Mutex
	active string
}

// NewSession creates a session with no active document.
func NewSession() *Session {
	return &Session{}
}

// SetActive marks path as the active document.
func (s *Session) SetActive(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = path
}

// Active returns the currently active document path.
func (s *Session) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Apply runs apply only if path is still the active document, and reports
// whether it ran. Stale results are dropped, not merged. The callback runs
// under the session lock, so concurrent applies never overlap.
func (s *Session) Apply(path string, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if path != s.active {
		return false
	}
	apply()
	return true
}
