package reflow

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/foliodocs/folio/internal/document"
	"github.com/foliodocs/folio/internal/layout"
	"github.com/foliodocs/folio/internal/markup"
)

// Result summarizes one reflow pass.
type Result struct {
	// Passes is the number of page splits performed.
	Passes int

	// PagesCreated is the number of trailing pages appended.
	PagesCreated int

	// Changed reports whether any page content moved.
	Changed bool

	// Skipped reports that measurement was unavailable and the pass
	// left the document untouched.
	Skipped bool
}

// Reflower redistributes overflowing page content across pages.
// It is stateless between passes; all document state lives in the
// store it operates on.
type Reflower struct {
	measurer Measurer
	geom     layout.Geometry
	maxPages int
	logger   *slog.Logger
}

// New creates a Reflower measuring against the given geometry. A nil
// measurer is treated as measurement being unavailable.
func New(m Measurer, geom layout.Geometry, opts ...Option) *Reflower {
	r := &Reflower{
		measurer: m,
		geom:     geom,
		maxPages: DefaultMaxPages,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Geometry returns the page geometry the reflower paginates against.
func (r *Reflower) Geometry() layout.Geometry {
	return r.geom
}

// ReflowFrom resolves overflow starting at the given page index,
// cascading forward as far as relocation requires.
func (r *Reflower) ReflowFrom(store *document.Store, index int) (Result, error) {
	return r.run(store, []int{index})
}

// ReflowAll resolves overflow across the whole document, e.g. after an
// authoritative external value replaced every page.
func (r *Reflower) ReflowAll(store *document.Store) (Result, error) {
	work := make([]int, store.Len())
	for i := range work {
		work[i] = i
	}
	return r.run(store, work)
}

func (r *Reflower) run(store *document.Store, work []int) (Result, error) {
	var res Result
	capacity := r.geom.ContentHeight()
	width := r.geom.ContentWidth()

	passes := 0
	for len(work) > 0 {
		i := work[0]
		work = work[1:]
		if i < 0 || i >= store.Len() {
			continue
		}

		page, _ := store.At(i)
		h, err := r.measure(page.Content, width)
		if err != nil {
			if errors.Is(err, ErrMeasurementUnavailable) {
				r.logger.Warn("measurement unavailable, skipping reflow pass", "page", i)
				res.Skipped = true
				return res, nil
			}
			return res, fmt.Errorf("measure page %d: %w", i, err)
		}
		if h <= capacity {
			continue
		}

		fitting, overflow, err := r.split(page.Content, capacity, width)
		if err != nil {
			if errors.Is(err, ErrMeasurementUnavailable) {
				res.Skipped = true
				return res, nil
			}
			return res, fmt.Errorf("split page %d: %w", i, err)
		}

		if overflow == "" {
			// Nothing relocatable: an oversized atomic element is
			// allowed to exceed capacity rather than loop.
			continue
		}
		if markup.IsWhitespaceOnly(overflow) {
			// Not a real overflow; do not create or pollute a page
			// for invisible trailing whitespace.
			if err := store.SetContentAt(i, fitting); err != nil {
				return res, err
			}
			res.Changed = true
			continue
		}

		passes++
		if passes > r.maxPages {
			r.logger.Warn("reflow pass bound reached", "passes", passes)
			break
		}
		if i == store.Len()-1 && store.Len() >= r.maxPages {
			// Safety bound: keep the overflow where it is instead of
			// growing the document further.
			r.logger.Warn("page safety bound reached, overflow left in place",
				"pages", store.Len())
			break
		}

		if err := store.SetContentAt(i, fitting); err != nil {
			return res, err
		}
		res.Passes = passes
		res.Changed = true

		if i == store.Len()-1 {
			store.Append(overflow)
			res.PagesCreated++
		} else {
			next, _ := store.At(i + 1)
			if err := store.SetContentAt(i+1, overflow+next.Content); err != nil {
				return res, err
			}
		}

		r.logger.Debug("relocated overflow",
			"page", i,
			"overflowBytes", len(overflow),
			"pages", store.Len())

		work = append(work, i+1)
	}

	return res, nil
}

func (r *Reflower) measure(content string, width float64) (float64, error) {
	if r.measurer == nil {
		return 0, ErrMeasurementUnavailable
	}
	return r.measurer.MeasureHeight(content, width)
}
