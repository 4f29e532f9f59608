package reflow

import "errors"

// Errors returned by reflow operations.
var (
	// ErrMeasurementUnavailable indicates the host measurement
	// capability cannot be invoked. The edit proceeds unpaginated.
	ErrMeasurementUnavailable = errors.New("measurement unavailable")
)
