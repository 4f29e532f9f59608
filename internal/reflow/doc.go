// Package reflow keeps every page's rendered content within the page's
// content-area capacity by relocating overflow to subsequent pages.
//
// The engine never changes total information: splitting only moves
// content, at word granularity for text and whole-node granularity for
// structural elements. It never deletes or merges pages: shrinking a
// page's content leaves later pages alone until the user deletes them.
//
// Measurement is the single environment dependency. The host supplies
// a Measurer that reports the rendered height of markup at a given
// width; when measurement is unavailable the pass degrades by skipping
// pagination rather than failing the edit.
//
// Cascading resolution is an iterative work-list: the index of any
// page exceeding capacity is pushed, popped, and split; if relocation
// makes the next page exceed capacity, its index is pushed in turn.
// The loop ends when the list drains or a safety bound on total pages
// is reached.
package reflow
