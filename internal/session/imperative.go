package session

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/foliodocs/folio/internal/markup"
	"github.com/foliodocs/folio/internal/selection"
)

// surroundingWindow is how many codepoints of context
// GetSurroundingContent returns on each side of the caret.
const surroundingWindow = 500

// Focus gives the editable surface input focus.
func (s *Session) Focus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surface.Focus()
}

// Blur moves input focus away from the editable surface, as a toolbar
// control does when opened. Selection boundaries are kept.
func (s *Session) Blur() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surface.Blur()
}

// SelectRange sets the selection by run index and codepoint offset on
// the active page. Runs are the text nodes of the page in document
// order.
func (s *Session) SelectRange(anchorRun, anchorOff, focusRun, focusOff int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	runs := s.surface.Fragment().TextRuns()
	if anchorRun < 0 || anchorRun >= len(runs) || focusRun < 0 || focusRun >= len(runs) {
		return fmt.Errorf("%w: run index", selection.ErrNotAttached)
	}
	if err := s.surface.Select(runs[anchorRun], anchorOff, runs[focusRun], focusOff); err != nil {
		return err
	}
	s.surface.Focus()
	return nil
}

// CollapseTo places the caret at a run index and codepoint offset on
// the active page.
func (s *Session) CollapseTo(run, off int) error {
	return s.SelectRange(run, off, run, off)
}

// SaveSelection records the current selection for later restoration.
// Hosts call it before an interaction that will move focus away.
func (s *Session) SaveSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Save()
}

// RestoreSelection reapplies the last recorded selection and reports
// success.
func (s *Session) RestoreSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Restore()
}

// GetSelectedText returns the plain text covered by the current
// selection on the active page.
func (s *Session) GetSelectedText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.SelectedText()
}

// GetSurroundingContent returns the plain text before and after the
// caret on the active page, clipped to a fixed window. Without a
// caret, the whole page text is returned as leading context.
func (s *Session) GetSurroundingContent() (before, after string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frag := s.surface.Fragment()
	text := []rune(frag.PlainText())

	caret := -1
	if s.surface.HasSelection() {
		run, off := s.surface.Caret()
		pos := 0
		for _, r := range frag.TextRuns() {
			if r == run {
				caret = pos + off
				break
			}
			pos += markup.RuneLen(r.Data)
		}
	}
	if caret < 0 {
		if len(text) > surroundingWindow {
			text = text[len(text)-surroundingWindow:]
		}
		return string(text), ""
	}

	start := caret - surroundingWindow
	if start < 0 {
		start = 0
	}
	end := caret + surroundingWindow
	if end > len(text) {
		end = len(text)
	}
	return string(text[start:caret]), string(text[caret:end])
}

// InsertAtCursor inserts plain text at the caret on the active page.
// Without a caret the text is appended to the end of the page. The
// edit emits a new value and resolves overflow like any other.
func (s *Session) InsertAtCursor(text string) error {
	if text == "" {
		return nil
	}

	s.mu.Lock()
	if s.surface.HasSelection() {
		run, off := s.surface.Caret()
		after, err := markup.InsertText(run, off, text)
		if err != nil {
			s.mu.Unlock()
			return err
		}
		if err := s.surface.Collapse(run, after); err != nil {
			s.mu.Unlock()
			return err
		}
	} else {
		n := &html.Node{Type: html.TextNode, Data: text}
		s.surface.Fragment().Body().AppendChild(n)
		if err := s.surface.Collapse(n, markup.RuneLen(text)); err != nil {
			s.mu.Unlock()
			return err
		}
	}

	err := s.commitActiveLocked()
	pending := s.takePending()
	s.mu.Unlock()

	s.deliver(pending)
	return err
}

// commitActiveLocked writes the surface's (possibly mutated) fragment
// back to the active page, emits the new value, and resolves overflow.
func (s *Session) commitActiveLocked() error {
	content := s.surface.Fragment().Render()
	if err := s.store.SetContentAt(s.store.ActiveIndex(), content); err != nil {
		return err
	}
	s.emitLocked()
	return s.reflowLocked(s.store.ActiveIndex())
}
