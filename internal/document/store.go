package document

import "fmt"

// Store holds the ordered page list for one document and tracks the
// active page. All mutation of the page list goes through the store.
type Store struct {
	pages  []Page
	active int
}

// NewStore creates a store over the given pages. An empty argument
// list yields a single empty page; a document never has zero pages.
func NewStore(pages ...Page) *Store {
	if len(pages) == 0 {
		pages = []Page{NewPage("")}
	}
	s := &Store{pages: make([]Page, len(pages))}
	copy(s.pages, pages)
	return s
}

// Len returns the number of pages.
func (s *Store) Len() int {
	return len(s.pages)
}

// Pages returns a copy of the page list.
func (s *Store) Pages() []Page {
	out := make([]Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// Page returns the page with the given ID.
func (s *Store) Page(id string) (Page, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return Page{}, false
	}
	return s.pages[i], true
}

// At returns the page at index i.
func (s *Store) At(i int) (Page, bool) {
	if i < 0 || i >= len(s.pages) {
		return Page{}, false
	}
	return s.pages[i], true
}

// IndexOf returns the ordinal position of the page with the given ID,
// or -1 if no such page exists.
func (s *Store) IndexOf(id string) int {
	for i, p := range s.pages {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// UpdateContent replaces one page's content. No other page is
// affected; cascading overflow is the reflow engine's responsibility.
func (s *Store) UpdateContent(id, content string) error {
	i := s.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPageNotFound, id)
	}
	s.pages[i].Content = content
	return nil
}

// SetContentAt replaces the content of the page at index i.
func (s *Store) SetContentAt(i int, content string) error {
	if i < 0 || i >= len(s.pages) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	s.pages[i].Content = content
	return nil
}

// InsertAfter inserts a new empty page after the given index and makes
// it active. An index below zero inserts at the front; an index at or
// past the end appends.
func (s *Store) InsertAfter(index int) Page {
	page := NewPage("")
	at := index + 1
	if at < 0 {
		at = 0
	}
	if at > len(s.pages) {
		at = len(s.pages)
	}
	s.pages = append(s.pages, Page{})
	copy(s.pages[at+1:], s.pages[at:])
	s.pages[at] = page
	s.active = at
	return page
}

// Append adds a page with the given content at the end of the document
// without changing the active page. Used by overflow resolution, which
// must not steal activation from the page being edited.
func (s *Store) Append(content string) Page {
	page := NewPage(content)
	s.pages = append(s.pages, page)
	return page
}

// Delete removes the page with the given ID. Removing the last
// remaining page is a no-op, as is an unknown ID; Delete reports
// whether a page was removed. If the active page is removed,
// activation moves to min(deletedIndex, count-1).
func (s *Store) Delete(id string) bool {
	if len(s.pages) <= 1 {
		return false
	}
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.pages = append(s.pages[:i], s.pages[i+1:]...)
	switch {
	case s.active == i:
		if s.active > len(s.pages)-1 {
			s.active = len(s.pages) - 1
		}
	case s.active > i:
		s.active--
	}
	return true
}

// Replace swaps in a whole new page list, e.g. after an authoritative
// external value arrives. The active index is clamped to the new list.
func (s *Store) Replace(pages []Page) {
	if len(pages) == 0 {
		pages = []Page{NewPage("")}
	}
	s.pages = make([]Page, len(pages))
	copy(s.pages, pages)
	if s.active >= len(s.pages) {
		s.active = len(s.pages) - 1
	}
}

// ActiveIndex returns the ordinal position of the active page.
func (s *Store) ActiveIndex() int {
	return s.active
}

// ActivePage returns the active page.
func (s *Store) ActivePage() Page {
	return s.pages[s.active]
}

// SetActive makes the page with the given ID active. Unknown IDs
// leave activation unchanged; SetActive reports success.
func (s *Store) SetActive(id string) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.active = i
	return true
}
