package printer

import "errors"

// Errors returned by print and export operations.
var (
	// ErrRenderFailed indicates the printable document could not be built.
	ErrRenderFailed = errors.New("print render failed")

	// ErrExportFailed indicates the external rendering target could
	// not produce the export.
	ErrExportFailed = errors.New("pdf export failed")
)
