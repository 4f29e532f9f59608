package selection

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/foliodocs/folio/internal/markup"
)

// Surface is the editable-buffer abstraction for one page's content.
// It owns a parsed fragment and the current selection over its text
// runs. Surface is not safe for concurrent use.
type Surface struct {
	frag *markup.Fragment

	anchor    *html.Node
	anchorOff int
	focus     *html.Node
	focusOff  int
	hasSel    bool

	focused bool
}

// NewSurface creates a surface over a parsed fragment.
func NewSurface(frag *markup.Fragment) *Surface {
	return &Surface{frag: frag}
}

// Fragment returns the surface's content tree.
func (s *Surface) Fragment() *markup.Fragment {
	return s.frag
}

// SetFragment replaces the content tree. Any selection into the old
// tree is cleared; the focused state is preserved.
func (s *Surface) SetFragment(frag *markup.Fragment) {
	s.frag = frag
	s.ClearSelection()
}

// Focus marks the surface as holding input focus.
func (s *Surface) Focus() { s.focused = true }

// Blur marks the surface as having lost input focus, e.g. to a
// toolbar control. The selection boundaries are kept.
func (s *Surface) Blur() { s.focused = false }

// Focused reports whether the surface holds input focus.
func (s *Surface) Focused() bool { return s.focused }

// Select sets the selection boundaries. Both nodes must be text runs
// attached to the surface tree with offsets inside the run.
func (s *Surface) Select(anchor *html.Node, anchorOff int, focus *html.Node, focusOff int) error {
	if err := s.validate(anchor, anchorOff); err != nil {
		return err
	}
	if err := s.validate(focus, focusOff); err != nil {
		return err
	}
	s.anchor, s.anchorOff = anchor, anchorOff
	s.focus, s.focusOff = focus, focusOff
	s.hasSel = true
	return nil
}

// Collapse places a bare caret at the given run and offset.
func (s *Surface) Collapse(n *html.Node, off int) error {
	return s.Select(n, off, n, off)
}

// ClearSelection removes any selection.
func (s *Surface) ClearSelection() {
	s.anchor, s.focus = nil, nil
	s.anchorOff, s.focusOff = 0, 0
	s.hasSel = false
}

// HasSelection reports whether a selection (or caret) exists.
func (s *Surface) HasSelection() bool { return s.hasSel }

// Collapsed reports whether the selection is a bare caret.
func (s *Surface) Collapsed() bool {
	return s.hasSel && s.anchor == s.focus && s.anchorOff == s.focusOff
}

// Anchor returns the selection's starting boundary.
func (s *Surface) Anchor() (*html.Node, int) { return s.anchor, s.anchorOff }

// Caret returns the selection's focus boundary, where typing occurs.
func (s *Surface) Caret() (*html.Node, int) { return s.focus, s.focusOff }

// Ordered returns the selection boundaries in document order.
func (s *Surface) Ordered() (start *html.Node, startOff int, end *html.Node, endOff int, err error) {
	if !s.hasSel {
		return nil, 0, nil, 0, ErrNoSelection
	}
	if s.anchor == s.focus {
		if s.anchorOff <= s.focusOff {
			return s.anchor, s.anchorOff, s.focus, s.focusOff, nil
		}
		return s.focus, s.focusOff, s.anchor, s.anchorOff, nil
	}
	ai := s.frag.RunIndex(s.anchor)
	fi := s.frag.RunIndex(s.focus)
	if ai < 0 || fi < 0 {
		return nil, 0, nil, 0, ErrNotAttached
	}
	if ai <= fi {
		return s.anchor, s.anchorOff, s.focus, s.focusOff, nil
	}
	return s.focus, s.focusOff, s.anchor, s.anchorOff, nil
}

// SelectedText returns the plain text covered by the selection, in
// document order. A collapsed selection yields the empty string.
func (s *Surface) SelectedText() string {
	start, startOff, end, endOff, err := s.Ordered()
	if err != nil {
		return ""
	}
	if start == end {
		bs := markup.RuneOffsetToByte(start.Data, startOff)
		be := markup.RuneOffsetToByte(start.Data, endOff)
		return start.Data[bs:be]
	}

	var b strings.Builder
	inside := false
	for _, run := range s.frag.TextRuns() {
		switch run {
		case start:
			b.WriteString(run.Data[markup.RuneOffsetToByte(run.Data, startOff):])
			inside = true
		case end:
			b.WriteString(run.Data[:markup.RuneOffsetToByte(run.Data, endOff)])
			return b.String()
		default:
			if inside {
				b.WriteString(run.Data)
			}
		}
	}
	return b.String()
}

func (s *Surface) validate(n *html.Node, off int) error {
	if n == nil || !s.frag.Contains(n) {
		return ErrNotAttached
	}
	if n.Type != html.TextNode {
		return ErrNotTextRun
	}
	if runes := markup.RuneLen(n.Data); off < 0 || off > runes {
		return fmt.Errorf("%w: %d in run of %d", ErrOffsetOutOfRange, off, runes)
	}
	return nil
}
