package session

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/foliodocs/folio/internal/markup"
	"github.com/foliodocs/folio/internal/selection"
)

// Formatting commands. Every command restores the last saved selection
// before applying itself: the toolbar interaction that triggered it
// has typically moved focus away from the editable surface without the
// user meaning to lose their place. When restoration fails the command
// proceeds against whatever selection currently exists.

// ApplyBold wraps the selected text in a bold element.
func (s *Session) ApplyBold() error { return s.applyInline("b") }

// ApplyItalic wraps the selected text in an italic element.
func (s *Session) ApplyItalic() error { return s.applyInline("i") }

// ApplyUnderline wraps the selected text in an underline element.
func (s *Session) ApplyUnderline() error { return s.applyInline("u") }

// ApplyFontSize wraps the selected text in a span with the given font
// size in pixels.
func (s *Session) ApplyFontSize(px float64) error {
	return s.applyInline("span", html.Attribute{
		Key: "style",
		Val: fmt.Sprintf("font-size: %gpx", px),
	})
}

// ApplyLink wraps the selected text in a link to the given URL.
func (s *Session) ApplyLink(url string) error {
	return s.applyInline("a", html.Attribute{Key: "href", Val: url})
}

func (s *Session) applyInline(tag string, attrs ...html.Attribute) error {
	s.mu.Lock()
	if !s.tracker.Restore() {
		// Documented limitation: the command proceeds against the
		// live selection, which may not be where the user started.
		s.logger.Debug("selection restore failed, using live selection", "command", tag)
	}

	start, startOff, end, endOff, err := s.surface.Ordered()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if start == end && startOff == endOff {
		s.mu.Unlock()
		return nil
	}

	if start == end {
		inner, err := markup.WrapTextRange(start, startOff, endOff, tag, attrs...)
		if err != nil {
			s.mu.Unlock()
			return err
		}
		_ = s.surface.Collapse(inner, markup.RuneLen(inner.Data))
	} else if err := s.wrapAcrossRunsLocked(start, startOff, end, endOff, tag, attrs); err != nil {
		s.mu.Unlock()
		return err
	}

	err = s.commitActiveLocked()
	pending := s.takePending()
	s.mu.Unlock()

	s.deliver(pending)
	return err
}

// wrapAcrossRunsLocked wraps a selection spanning several text runs:
// the covered portion of the boundary runs and the whole of every run
// between them.
func (s *Session) wrapAcrossRunsLocked(start *html.Node, startOff int, end *html.Node, endOff int, tag string, attrs []html.Attribute) error {
	runs := s.surface.Fragment().TextRuns()
	si, ei := -1, -1
	for i, r := range runs {
		if r == start {
			si = i
		}
		if r == end {
			ei = i
		}
	}
	if si < 0 || ei < 0 {
		return selection.ErrNotAttached
	}

	var lastInner *html.Node
	for i := si; i <= ei; i++ {
		run := runs[i]
		from, to := 0, markup.RuneLen(run.Data)
		if i == si {
			from = startOff
		}
		if i == ei {
			to = endOff
		}
		if from >= to {
			continue
		}
		inner, err := markup.WrapTextRange(run, from, to, tag, attrs...)
		if err != nil {
			return err
		}
		lastInner = inner
	}
	if lastInner != nil {
		_ = s.surface.Collapse(lastInner, markup.RuneLen(lastInner.Data))
	}
	return nil
}

// ApplyAlignment sets the text alignment of every top-level block the
// selection touches. Valid alignments are left, right, center, and
// justify.
func (s *Session) ApplyAlignment(align string) error {
	switch align {
	case "left", "right", "center", "justify":
	default:
		return fmt.Errorf("invalid alignment %q", align)
	}

	s.mu.Lock()
	if !s.tracker.Restore() {
		s.logger.Debug("selection restore failed, using live selection", "command", "align")
	}

	start, _, end, _, err := s.surface.Ordered()
	if err != nil {
		s.mu.Unlock()
		return err
	}

	body := s.surface.Fragment().Body()
	first := topAncestor(body, start)
	last := topAncestor(body, end)
	for n := first; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			setStyleProperty(n, "text-align", align)
		}
		if n == last {
			break
		}
	}

	err = s.commitActiveLocked()
	pending := s.takePending()
	s.mu.Unlock()

	s.deliver(pending)
	return err
}

// topAncestor returns the top-level node containing n.
func topAncestor(body, n *html.Node) *html.Node {
	for n != nil && n.Parent != body {
		n = n.Parent
	}
	return n
}

// setStyleProperty sets one CSS property on an element's style
// attribute, replacing any existing declaration of the same property.
func setStyleProperty(n *html.Node, prop, value string) {
	decl := prop + ": " + value
	for i, attr := range n.Attr {
		if attr.Key != "style" {
			continue
		}
		var kept []string
		for _, part := range strings.Split(attr.Val, ";") {
			part = strings.TrimSpace(part)
			if part == "" || strings.HasPrefix(part, prop+":") || strings.HasPrefix(part, prop+" ") {
				continue
			}
			kept = append(kept, part)
		}
		kept = append(kept, decl)
		n.Attr[i].Val = strings.Join(kept, "; ")
		return
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: decl})
}
