// Package markup provides parsing, rendering, and text helpers for the
// HTML fragments that make up page content.
//
// A Fragment is a parsed page body. The reflow engine walks its
// top-level nodes, the selection surface addresses its text runs, and
// formatting commands mutate it in place before re-rendering.
package markup
