package layout

import "errors"

// Errors returned by geometry construction and loading.
var (
	// ErrUnknownPreset indicates an unrecognized geometry preset name.
	ErrUnknownPreset = errors.New("unknown page preset")

	// ErrInvalidGeometry indicates a geometry with no usable content area.
	ErrInvalidGeometry = errors.New("invalid page geometry")
)
