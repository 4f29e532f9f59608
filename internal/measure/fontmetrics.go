package measure

import (
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/net/html"

	"github.com/foliodocs/folio/internal/markup"
)

// estimateWidthFactor approximates average glyph width as a fraction
// of the font size when no font face is loaded.
const estimateWidthFactor = 0.6

// FontMetrics measures markup with real font metrics: text is broken
// into lines at word boundaries against the available width, and line
// heights are summed per block. When the font face cannot be loaded it
// falls back to a character-count estimate, so measurement stays
// available.
//
// FontMetrics is not safe for concurrent use; the editing session is
// single-threaded.
type FontMetrics struct {
	fontSize    float64
	lineSpacing float64
	dc          *gg.Context
	loaded      bool
}

// NewFontMetrics creates a measurer over the font at fontPath rendered
// at fontSize. A missing or unreadable font degrades to estimated
// glyph widths rather than failing.
func NewFontMetrics(fontPath string, fontSize float64) *FontMetrics {
	if fontSize <= 0 {
		fontSize = 16
	}
	f := &FontMetrics{
		fontSize:    fontSize,
		lineSpacing: 1.5,
	}
	dc := gg.NewContext(1, 1)
	if fontPath != "" {
		if err := dc.LoadFontFace(fontPath, fontSize); err == nil {
			f.dc = dc
			f.loaded = true
		}
	}
	return f
}

// Loaded reports whether a real font face backs the measurements.
func (f *FontMetrics) Loaded() bool {
	return f.loaded
}

// MeasureHeight implements reflow.Measurer.
func (f *FontMetrics) MeasureHeight(content string, width float64) (float64, error) {
	frag, err := markup.ParseFragment(content)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, n := range frag.Nodes() {
		total += f.blockHeight(n, width)
	}
	return total, nil
}

func (f *FontMetrics) blockHeight(n *html.Node, width float64) float64 {
	scale := blockScale(n)
	lineHeight := f.fontSize * f.lineSpacing * scale

	text := markup.NodeText(n)
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return lineHeight
	}

	spaceW := f.stringWidth(" ") * scale
	lines := 1
	var cur float64
	for _, w := range fields {
		ww := f.stringWidth(w) * scale
		if cur > 0 && cur+spaceW+ww > width {
			lines++
			cur = ww
			continue
		}
		if cur > 0 {
			cur += spaceW + ww
		} else {
			cur = ww
		}
	}
	return float64(lines) * lineHeight
}

func (f *FontMetrics) stringWidth(s string) float64 {
	if f.loaded {
		w, _ := f.dc.MeasureString(s)
		return w
	}
	return float64(markup.RuneLen(s)) * f.fontSize * estimateWidthFactor
}

// blockScale returns the relative text size of a block element.
func blockScale(n *html.Node) float64 {
	if n.Type != html.ElementNode {
		return 1.0
	}
	switch n.Data {
	case "h1":
		return 2.0
	case "h2":
		return 1.5
	case "h3":
		return 1.2
	default:
		return 1.0
	}
}
