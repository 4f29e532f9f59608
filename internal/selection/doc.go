// Package selection provides cursor and selection state for the
// editable page surface, and capture/restore of that state across
// operations that steal focus.
//
// The Surface wraps a parsed content fragment and addresses positions
// as (text run, codepoint offset) pairs, the non-DOM equivalent of a
// browser's node/offset selection boundary. The anchor is where the
// selection started; the focus is the caret end. When they coincide
// the selection is collapsed (a bare caret).
//
// The Tracker implements the save/restore contract used by formatting
// commands: Save records a snapshot only while the selection is inside
// a focused surface, and Restore reapplies it only if both boundary
// runs are still attached to the live tree. Toolbar interaction (e.g.
// opening a dropdown) blurs the surface without the user meaning to
// lose their place; commands call Restore immediately before applying
// themselves so the original selection is recovered.
package selection
