package reflow

import (
	"golang.org/x/net/html"

	"github.com/foliodocs/folio/internal/markup"
)

// split divides page content into a fitting buffer and an overflow
// payload. The fitting buffer is the longest node prefix whose
// cumulative height stays within capacity; the node that first exceeds
// capacity is split at word granularity if it is text, or moved whole
// if it is structural. All later nodes follow the payload unchanged.
//
// An empty overflow payload means nothing can be relocated: either the
// content fits after all or a single oversized atomic node occupies
// the page and is allowed to exceed capacity.
func (r *Reflower) split(content string, capacity, width float64) (fitting, overflow string, err error) {
	frag, err := markup.ParseFragment(content)
	if err != nil {
		return "", "", err
	}
	nodes := frag.Nodes()
	if len(nodes) == 0 {
		return content, "", nil
	}

	overflowAt := -1
	for k := range nodes {
		h, err := r.measure(markup.RenderNodes(nodes[:k+1]), width)
		if err != nil {
			return "", "", err
		}
		if h > capacity {
			overflowAt = k
			break
		}
	}
	if overflowAt == -1 {
		// Every cumulative prefix fits; the over-capacity measurement
		// was at the margin. Nothing to relocate.
		return content, "", nil
	}

	n := nodes[overflowAt]
	head := markup.RenderNodes(nodes[:overflowAt])
	tail := markup.RenderNodes(nodes[overflowAt+1:])

	if n.Type == html.TextNode {
		fitText, restText, err := r.splitText(head, n.Data, capacity, width, overflowAt == 0)
		if err != nil {
			return "", "", err
		}
		return head + markup.TextNodeHTML(fitText), markup.TextNodeHTML(restText) + tail, nil
	}

	// Structural elements are never fitted partially.
	if overflowAt == 0 {
		// Oversized leading atom: it stays, and only later nodes
		// overflow. The page may exceed capacity; splitting an atomic
		// element would otherwise loop without progress.
		return markup.NodeHTML(n), tail, nil
	}
	return head, markup.NodeHTML(n) + tail, nil
}

// splitText finds the longest word prefix of text that still fits when
// rendered after head. Splits land only on whitespace boundaries;
// words are never broken mid-token. first indicates text is the page's
// leading node, in which case at least one word is kept so the pass
// always makes progress.
func (r *Reflower) splitText(head, text string, capacity, width float64, first bool) (fit, rest string, err error) {
	points := markup.SplitPoints(text)
	best := -1
	for _, p := range points {
		h, err := r.measure(head+markup.TextNodeHTML(text[:p]), width)
		if err != nil {
			return "", "", err
		}
		if h > capacity {
			break
		}
		best = p
	}

	if best == -1 {
		if !first {
			// Not even the first word fits after head: the whole run
			// overflows.
			return "", text, nil
		}
		if len(points) == 0 {
			// A single word alone on the page: atomic, stays whole.
			return text, "", nil
		}
		// Leading node on the page: keep the first word regardless so
		// relocation terminates.
		best = points[0]
	}

	return text[:best], text[best:], nil
}
