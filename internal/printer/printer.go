package printer

import (
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/foliodocs/folio/internal/document"
	"github.com/foliodocs/folio/internal/layout"
)

// Renderer builds standalone printable documents from a page list.
// It is bound to the same geometry the editing session paginates
// against, which is what makes on-screen and printed pages identical.
type Renderer struct {
	geom   layout.Geometry
	policy *bluemonday.Policy
	title  string
	logger *slog.Logger
}

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithTitle sets the printable document's title.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.title = title
	}
}

// WithLogger sets the logger used for export diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Renderer for the given page geometry.
func New(geom layout.Geometry, opts ...Option) *Renderer {
	r := &Renderer{
		geom:   geom,
		policy: printPolicy(),
		title:  "Document",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Geometry returns the geometry the renderer prints at.
func (r *Renderer) Geometry() layout.Geometry {
	return r.geom
}

// Sanitize strips unsafe constructs from user content while keeping
// the allowed formatting vocabulary.
func (r *Renderer) Sanitize(content string) string {
	return r.policy.Sanitize(content)
}

// RenderHTML produces the standalone printable document for the given
// pages. Every page's content is sanitized before embedding.
func (r *Renderer) RenderHTML(pages []document.Page) (string, error) {
	data := printData{
		Title:         r.title,
		PageWidth:     r.geom.PageWidth,
		PageHeight:    r.geom.PageHeight,
		MarginTop:     r.geom.MarginTop,
		MarginRight:   r.geom.MarginRight,
		MarginBottom:  r.geom.MarginBottom,
		MarginLeft:    r.geom.MarginLeft,
		HeaderHeight:  r.geom.HeaderHeight,
		FooterHeight:  r.geom.FooterHeight,
		ContentWidth:  r.geom.ContentWidth(),
		ContentHeight: r.geom.ContentHeight(),
		PageCount:     len(pages),
	}
	for i, p := range pages {
		data.Pages = append(data.Pages, printPage{
			Number: i + 1,
			// Sanitized content is the only raw HTML the template embeds.
			Content: toTrustedHTML(r.Sanitize(p.Content)),
		})
	}

	var b strings.Builder
	if err := printTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return b.String(), nil
}

// toTrustedHTML marks sanitized content as safe for template embedding.
// Only output of the print policy may pass through here.
func toTrustedHTML(sanitized string) template.HTML {
	return template.HTML(sanitized)
}
