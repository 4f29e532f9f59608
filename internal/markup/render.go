package markup

import "golang.org/x/net/html"

// TextNodeHTML renders plain text the way it appears inside page
// markup, with entity escaping applied.
func TextNodeHTML(s string) string {
	if s == "" {
		return ""
	}
	return NodeHTML(&html.Node{Type: html.TextNode, Data: s})
}
