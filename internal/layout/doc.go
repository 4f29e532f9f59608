// Package layout defines the fixed page geometry shared by the live
// editing surface and the print renderer.
//
// The WYSIWYG guarantee of the engine rests on both sides reading the
// same Geometry value: the reflow engine paginates against
// ContentWidth/ContentHeight, and the print renderer emits pages with
// the identical pixel dimensions. Geometry is a plain value type;
// copying it is cheap and safe.
//
// Geometries can be constructed from the built-in presets (A4, US
// Letter at 96 dpi) or loaded from a YAML file that overrides
// individual fields of a preset.
package layout
