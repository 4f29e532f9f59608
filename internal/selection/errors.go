package selection

import "errors"

// Errors returned by surface operations.
var (
	// ErrNotAttached indicates a boundary node outside the surface tree.
	ErrNotAttached = errors.New("node not attached to surface")

	// ErrNotTextRun indicates a boundary node that is not a text run.
	ErrNotTextRun = errors.New("node is not a text run")

	// ErrOffsetOutOfRange indicates a codepoint offset beyond a run.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrNoSelection indicates an operation requiring a selection.
	ErrNoSelection = errors.New("no selection")
)
