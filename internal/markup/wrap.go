package markup

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Errors returned by fragment mutation helpers.
var (
	// ErrNotTextNode indicates a text-run operation on a non-text node.
	ErrNotTextNode = errors.New("node is not a text run")

	// ErrOffsetOutOfRange indicates a codepoint offset beyond the run.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrDetachedNode indicates a node with no parent in the tree.
	ErrDetachedNode = errors.New("node is detached")
)

// WrapTextRange wraps the [start, end) codepoint range of a text run in
// a new element with the given tag and attributes. The run is replaced
// in place by up to three nodes: leading text, the wrapping element,
// and trailing text. Returns the inner text node of the new element.
func WrapTextRange(n *html.Node, start, end int, tag string, attrs ...html.Attribute) (*html.Node, error) {
	if n.Type != html.TextNode {
		return nil, ErrNotTextNode
	}
	if n.Parent == nil {
		return nil, ErrDetachedNode
	}
	runes := RuneLen(n.Data)
	if start < 0 || end > runes || start > end {
		return nil, fmt.Errorf("%w: [%d,%d) in run of %d", ErrOffsetOutOfRange, start, end, runes)
	}

	text := n.Data
	bs := RuneOffsetToByte(text, start)
	be := RuneOffsetToByte(text, end)

	inner := &html.Node{Type: html.TextNode, Data: text[bs:be]}
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	el.AppendChild(inner)

	parent := n.Parent
	if bs > 0 {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text[:bs]}, n)
	}
	parent.InsertBefore(el, n)
	if be < len(text) {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text[be:]}, n)
	}
	parent.RemoveChild(n)

	return inner, nil
}

// InsertText inserts s into a text run at the given codepoint offset
// and returns the codepoint offset just past the insertion.
func InsertText(n *html.Node, offset int, s string) (int, error) {
	if n.Type != html.TextNode {
		return 0, ErrNotTextNode
	}
	runes := RuneLen(n.Data)
	if offset < 0 || offset > runes {
		return 0, fmt.Errorf("%w: %d in run of %d", ErrOffsetOutOfRange, offset, runes)
	}
	b := RuneOffsetToByte(n.Data, offset)
	n.Data = n.Data[:b] + s + n.Data[b:]
	return offset + RuneLen(s), nil
}
