package document

import "github.com/google/uuid"

// Page is one fixed-capacity unit of a paginated document.
type Page struct {
	// ID is the page's stable opaque identifier.
	ID string

	// Content is the page's serialized rich-text markup.
	Content string
}

// NewPage creates a page with a fresh identity.
func NewPage(content string) Page {
	return Page{ID: uuid.NewString(), Content: content}
}
