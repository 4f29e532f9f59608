package selection

import "golang.org/x/net/html"

// Snapshot records a selection's boundary points. The refs point into
// the content tree that was live at save time and are not guaranteed
// to remain valid; Restore revalidates them.
type Snapshot struct {
	AnchorRef    *html.Node
	AnchorOffset int
	FocusRef     *html.Node
	FocusOffset  int
	Collapsed    bool
}

// Tracker captures and restores selection state across operations that
// move focus away from the editable surface.
type Tracker struct {
	surface *Surface
	snap    *Snapshot
}

// NewTracker creates a tracker bound to a surface.
func NewTracker(surface *Surface) *Tracker {
	return &Tracker{surface: surface}
}

// Save records the current selection if both boundary points are
// contained within the focused surface. Otherwise the prior snapshot,
// if any, is left untouched. Save reports whether a snapshot was
// recorded.
func (t *Tracker) Save() bool {
	if !t.surface.Focused() || !t.surface.HasSelection() {
		return false
	}
	anchor, anchorOff := t.surface.Anchor()
	focus, focusOff := t.surface.Caret()
	if !t.surface.Fragment().Contains(anchor) || !t.surface.Fragment().Contains(focus) {
		return false
	}
	t.snap = &Snapshot{
		AnchorRef:    anchor,
		AnchorOffset: anchorOff,
		FocusRef:     focus,
		FocusOffset:  focusOff,
		Collapsed:    t.surface.Collapsed(),
	}
	return true
}

// HasSnapshot reports whether a snapshot is pending.
func (t *Tracker) HasSnapshot() bool {
	return t.snap != nil
}

// Restore reapplies the last snapshot to the live selection if both
// recorded positions are still attached to the surface tree, and
// reports whether it succeeded. The snapshot is discarded either way.
func (t *Tracker) Restore() bool {
	snap := t.snap
	t.snap = nil
	if snap == nil {
		return false
	}
	if err := t.surface.Select(snap.AnchorRef, snap.AnchorOffset, snap.FocusRef, snap.FocusOffset); err != nil {
		return false
	}
	t.surface.Focus()
	return true
}
