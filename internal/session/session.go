package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/foliodocs/folio/internal/document"
	"github.com/foliodocs/folio/internal/layout"
	"github.com/foliodocs/folio/internal/markup"
	"github.com/foliodocs/folio/internal/reflow"
	"github.com/foliodocs/folio/internal/selection"
	"github.com/foliodocs/folio/internal/serialize"
)

// Session is the editing controller for one open document.
type Session struct {
	mu sync.Mutex

	store    *document.Store
	reflower *reflow.Reflower
	surface  *selection.Surface
	tracker  *selection.Tracker
	logger   *slog.Logger

	onChange     func(string)
	initialValue string
	maxPages     int

	// lastEmitted is the value most recently handed to the host.
	// External values equal to it are echoes of our own update and
	// are suppressed.
	lastEmitted string

	// pending collects values to deliver to onChange once the lock
	// is released.
	pending []string
}

// New opens a session over the given measurement capability and page
// geometry. The initial page list is built by deserializing the
// initial value; an absent value opens a single empty page.
func New(m reflow.Measurer, geom layout.Geometry, opts ...Option) (*Session, error) {
	s := &Session{
		logger:   slog.Default(),
		maxPages: reflow.DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.store = document.NewStore(serialize.Deserialize(s.initialValue, nil)...)
	s.lastEmitted = s.initialValue
	s.reflower = reflow.New(m, geom,
		reflow.WithLogger(s.logger),
		reflow.WithMaxPages(s.maxPages),
	)

	frag, err := markup.ParseFragment(s.store.ActivePage().Content)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	s.surface = selection.NewSurface(frag)
	s.tracker = selection.NewTracker(s.surface)
	return s, nil
}

// Value returns the current serialized document value.
func (s *Session) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return serialize.Serialize(s.store.Pages())
}

// SetValue applies an externally delivered value. A value equal to the
// session's own last emission is an echo and is ignored; any other
// value is authoritative and replaces the page list, reusing page
// identity positionally. An uncommitted local edit in flight is
// discarded by design.
func (s *Session) SetValue(value string) error {
	s.mu.Lock()
	if value == s.lastEmitted {
		s.mu.Unlock()
		s.logger.Debug("suppressed echoed value", "bytes", len(value))
		return nil
	}

	pages := serialize.Deserialize(value, s.store.Pages())
	s.store.Replace(pages)
	s.lastEmitted = value
	err := s.rebuildSurfaceLocked()
	if err == nil {
		err = s.reflowLocked(-1)
	}
	pending := s.takePending()
	s.mu.Unlock()

	s.deliver(pending)
	return err
}

// Pages returns a copy of the current page list.
func (s *Session) Pages() []document.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Pages()
}

// PageCount returns the number of pages.
func (s *Session) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

// ActivePage returns the page currently holding the caret.
func (s *Session) ActivePage() document.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ActivePage()
}

// SetActivePage moves activation to the page with the given ID and
// reports success.
func (s *Session) SetActivePage(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.SetActive(id) {
		return false
	}
	if err := s.rebuildSurfaceLocked(); err != nil {
		s.logger.Warn("surface rebuild failed", "error", err)
	}
	return true
}

// UpdateContent replaces one page's content, emits the new value, and
// resolves any overflow the edit caused.
func (s *Session) UpdateContent(pageID, content string) error {
	s.mu.Lock()
	idx := s.store.IndexOf(pageID)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", document.ErrPageNotFound, pageID)
	}
	if err := s.store.SetContentAt(idx, content); err != nil {
		s.mu.Unlock()
		return err
	}
	var err error
	if idx == s.store.ActiveIndex() {
		err = s.rebuildSurfaceLocked()
	}
	s.emitLocked()
	if err == nil {
		err = s.reflowLocked(idx)
	}
	pending := s.takePending()
	s.mu.Unlock()

	s.deliver(pending)
	return err
}

// AddPage inserts an empty page after the given index; it becomes the
// active page. The new page is returned.
func (s *Session) AddPage(afterIndex int) (document.Page, error) {
	s.mu.Lock()
	page := s.store.InsertAfter(afterIndex)
	err := s.rebuildSurfaceLocked()
	s.emitLocked()
	pending := s.takePending()
	s.mu.Unlock()

	s.deliver(pending)
	return page, err
}

// DeletePage removes a page and reports whether anything was removed.
// The final remaining page is never removed.
func (s *Session) DeletePage(pageID string) bool {
	s.mu.Lock()
	removed := s.store.Delete(pageID)
	if removed {
		if err := s.rebuildSurfaceLocked(); err != nil {
			s.logger.Warn("surface rebuild failed", "error", err)
		}
		s.emitLocked()
	}
	pending := s.takePending()
	s.mu.Unlock()

	s.deliver(pending)
	return removed
}

// rebuildSurfaceLocked reparses the active page into the selection
// surface. Any selection into the previous tree is dropped.
func (s *Session) rebuildSurfaceLocked() error {
	frag, err := markup.ParseFragment(s.store.ActivePage().Content)
	if err != nil {
		return fmt.Errorf("rebuild surface: %w", err)
	}
	s.surface.SetFragment(frag)
	return nil
}

// emitLocked serializes the current page list and queues it for the
// host if it differs from the last emission.
func (s *Session) emitLocked() {
	value := serialize.Serialize(s.store.Pages())
	if value == s.lastEmitted {
		return
	}
	s.lastEmitted = value
	s.pending = append(s.pending, value)
}

// reflowLocked runs overflow resolution from the given page index, or
// across the whole document when index is negative. If relocation
// touched the active page, the selection surface is rebuilt.
func (s *Session) reflowLocked(index int) error {
	activeBefore := s.store.ActivePage().Content

	var (
		res reflow.Result
		err error
	)
	if index < 0 {
		res, err = s.reflower.ReflowAll(s.store)
	} else {
		res, err = s.reflower.ReflowFrom(s.store, index)
	}
	if err != nil {
		return err
	}
	if res.Skipped || !res.Changed {
		return nil
	}

	if s.store.ActivePage().Content != activeBefore {
		if err := s.rebuildSurfaceLocked(); err != nil {
			return err
		}
	}
	s.emitLocked()
	return nil
}

func (s *Session) takePending() []string {
	pending := s.pending
	s.pending = nil
	return pending
}

func (s *Session) deliver(pending []string) {
	if s.onChange == nil {
		return
	}
	for _, value := range pending {
		s.onChange(value)
	}
}
