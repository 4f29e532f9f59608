package main

import (
	"log/slog"

	"github.com/foliodocs/folio/internal/layout"
	"github.com/foliodocs/folio/internal/measure"
	"github.com/foliodocs/folio/internal/reflow"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	geometryPath string
	preset       string
	fontPath     string
	fontSize     float64
	logLevel     string
}

// resolveGeometry picks the page geometry, most specific source first:
// an explicit geometry file, then the document's own preset, then the
// --preset flag.
func (o *globalOptions) resolveGeometry(d *doc) (layout.Geometry, error) {
	if o.geometryPath != "" {
		return layout.LoadGeometryFile(o.geometryPath)
	}
	if d != nil && d.Geometry != "" {
		return layout.Preset(d.Geometry)
	}
	return layout.Preset(o.preset)
}

// resolveMeasurer builds the text measurer. A font face gives real
// glyph metrics; without one the estimate fallback is used.
func (o *globalOptions) resolveMeasurer() reflow.Measurer {
	m := measure.NewFontMetrics(o.fontPath, o.fontSize)
	if o.fontPath != "" && !m.Loaded() {
		slog.Warn("font face unavailable, using estimated metrics", "font", o.fontPath)
	}
	return m
}
