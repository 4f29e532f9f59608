package printer

import "github.com/microcosm-cc/bluemonday"

// printPolicy allows only the formatting vocabulary the editor itself
// produces: bold/italic/underline, lists, headings, links, paragraph
// containers, and text alignment. Everything executable or otherwise
// unsafe is stripped.
func printPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "div", "span", "br",
		"b", "strong", "i", "em", "u",
		"ul", "ol", "li",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"blockquote",
	)

	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)

	p.AllowAttrs("style").OnElements("p", "div", "span", "h1", "h2", "h3", "h4", "h5", "h6", "li")
	p.AllowStyles("text-align").MatchingEnum("left", "right", "center", "justify").Globally()
	p.AllowStyles("font-size").Globally()

	return p
}
