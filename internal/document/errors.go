package document

import "errors"

// Errors returned by store operations.
var (
	// ErrPageNotFound indicates an unknown page ID.
	ErrPageNotFound = errors.New("page not found")

	// ErrIndexOutOfRange indicates a page index outside the document.
	ErrIndexOutOfRange = errors.New("page index out of range")
)
