// Package measure provides host-side implementations of the reflow
// engine's measurement capability.
//
// A browser host measures markup against a live rendering surface; a
// non-web host substitutes a text-layout service. FontMetrics is such
// a service: it breaks text into lines with real font metrics and sums
// line heights. Fixed is a deterministic measurer with constant
// character cells, suitable for tests and headless use.
package measure
