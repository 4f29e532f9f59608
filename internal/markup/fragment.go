package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is a parsed page-content fragment. The fragment owns a
// synthetic body node; the page's top-level nodes are its children.
// Fragment is not safe for concurrent use.
type Fragment struct {
	body *html.Node
}

// ParseFragment parses page content into a Fragment. Content is parsed
// in body context, matching how the live editing surface hosts it.
func ParseFragment(content string) (*Fragment, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return &Fragment{body: body}, nil
}

// Body returns the fragment's synthetic body node.
func (f *Fragment) Body() *html.Node {
	return f.body
}

// Nodes returns the fragment's top-level nodes in document order.
func (f *Fragment) Nodes() []*html.Node {
	var nodes []*html.Node
	for n := f.body.FirstChild; n != nil; n = n.NextSibling {
		nodes = append(nodes, n)
	}
	return nodes
}

// Render serializes the fragment back to page content.
func (f *Fragment) Render() string {
	return RenderNodes(f.Nodes())
}

// Contains reports whether n is still attached to this fragment's tree.
func (f *Fragment) Contains(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == f.body {
			return true
		}
	}
	return false
}

// TextRuns returns the fragment's text nodes in document order.
// These are the addressable runs of the selection surface.
func (f *Fragment) TextRuns() []*html.Node {
	var runs []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			runs = append(runs, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := f.body.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return runs
}

// RunIndex returns the position of n among the fragment's text runs,
// or -1 if n is not an attached text run.
func (f *Fragment) RunIndex(n *html.Node) int {
	for i, run := range f.TextRuns() {
		if run == n {
			return i
		}
	}
	return -1
}

// PlainText returns the concatenated text content of the fragment.
func (f *Fragment) PlainText() string {
	var b strings.Builder
	for _, run := range f.TextRuns() {
		b.WriteString(run.Data)
	}
	return b.String()
}

// RenderNodes serializes nodes to markup, in order.
func RenderNodes(nodes []*html.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		// Render only fails on unrenderable node types, which page
		// content never contains.
		_ = html.Render(&b, n)
	}
	return b.String()
}

// NodeHTML serializes a single node to markup.
func NodeHTML(n *html.Node) string {
	var b strings.Builder
	_ = html.Render(&b, n)
	return b.String()
}

// NodeText returns the concatenated text content of a node's subtree.
func NodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
