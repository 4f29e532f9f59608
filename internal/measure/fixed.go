package measure

import (
	"strings"
	"unicode/utf8"

	"github.com/foliodocs/folio/internal/markup"
	"github.com/foliodocs/folio/internal/reflow"
)

// Fixed measures markup with constant-width character cells: every
// top-level node renders as whole lines of width/CharWidth characters,
// one line minimum. Deterministic and host-independent.
type Fixed struct {
	// CharWidth is the width of one character cell.
	CharWidth float64

	// LineHeight is the height of one rendered line.
	LineHeight float64
}

// NewFixed creates a fixed-cell measurer.
func NewFixed(charWidth, lineHeight float64) *Fixed {
	return &Fixed{CharWidth: charWidth, LineHeight: lineHeight}
}

// MeasureHeight implements reflow.Measurer.
func (f *Fixed) MeasureHeight(content string, width float64) (float64, error) {
	frag, err := markup.ParseFragment(content)
	if err != nil {
		return 0, err
	}
	perLine := 1
	if f.CharWidth > 0 {
		if n := int(width / f.CharWidth); n > 1 {
			perLine = n
		}
	}
	lines := 0
	for _, n := range frag.Nodes() {
		lines += wrapLineCount(markup.NodeText(n), perLine)
	}
	return float64(lines) * f.LineHeight, nil
}

// wrapLineCount counts the lines text occupies when greedily wrapped
// at word boundaries into perLine-character lines.
func wrapLineCount(text string, perLine int) int {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 1
	}
	lines := 1
	cur := 0
	for _, w := range fields {
		wlen := utf8.RuneCountInString(w)
		if cur > 0 && cur+1+wlen > perLine {
			lines++
			cur = 0
		}
		if cur > 0 {
			cur += 1 + wlen
		} else {
			cur = wlen
		}
		// A word longer than the line hard-wraps.
		for cur > perLine {
			lines++
			cur -= perLine
		}
	}
	return lines
}

// Unavailable returns a measurer that always reports the measurement
// capability as missing, the state of a host whose rendering surface
// is not mounted.
func Unavailable() reflow.Measurer {
	return reflow.MeasureFunc(func(string, float64) (float64, error) {
		return 0, reflow.ErrMeasurementUnavailable
	})
}
