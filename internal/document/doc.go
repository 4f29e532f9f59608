// Package document provides the page model store: the ordered list of
// pages that make up one paginated document.
//
// Pages have stable identity (a generated ID) and mutable content.
// Ordinal position is derived from list order and never stored. A
// document always holds at least one page; the store enforces this, so
// delete of the final page is a no-op rather than an error.
//
// The store tracks which page is active (holds the editing caret).
// Deleting the active page moves activation to min(deletedIndex,
// count-1), matching what a user expects after removing a page.
//
// Store is not safe for concurrent use; the editing session that owns
// it serializes access.
package document
