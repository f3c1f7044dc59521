package annotate

import "fmt"

// State tells whether annotations are currently active. It is owned by the
// caller and passed into calls, never read from ambient globals.
type State int

const (
	// Disabled means annotations are not rendered.
	Disabled State = iota
	// Enabled means annotations are rendered.
	Enabled
)

// String returns a human-readable form of the state.
func (s State) String() string {
	switch s {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Toggle returns the opposite state.
func (s State) Toggle() State {
	if s == Enabled {
		return Disabled
	}
	return Enabled
}

// Decoration is a disposable rendering handle. The presentation layer
// acquires one while annotations are shown and releases it when they are
// cleared; rendering through a closed handle is a no-op.
type Decoration struct {
	annotator *Annotator
	closed    bool
}

// NewDecoration acquires a rendering handle backed by the given annotator.
func NewDecoration(a *Annotator) *Decoration {
	return &Decoration{annotator: a}
}

// Render annotates text through the handle. After Close it returns the text
// unchanged.
func (d *Decoration) Render(text string, state State) string {
	if d.closed || state != Enabled {
		return text
	}
	return d.annotator.AnnotateText(text)
}

// Close releases the handle. Closing twice is harmless.
func (d *Decoration) Close() error {
	d.closed = true
	return nil
}
