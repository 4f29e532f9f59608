package reflow

// Measurer reports the rendered height of markup content laid out at
// the given available width. It is the one capability the engine
// requires from its host environment.
//
// Implementations return an error wrapping ErrMeasurementUnavailable
// when no rendering surface (or font data) is available; the reflow
// pass then degrades by skipping pagination for that pass.
type Measurer interface {
	MeasureHeight(content string, width float64) (float64, error)
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(content string, width float64) (float64, error)

// MeasureHeight calls f.
func (f MeasureFunc) MeasureHeight(content string, width float64) (float64, error) {
	return f(content, width)
}
