package serialize

import (
	"regexp"
	"strings"

	"github.com/foliodocs/folio/internal/document"
)

// Sentinel is the reserved page-break marker. It is a comment-style
// token so that hosts treating the value as markup never render it.
const Sentinel = "<!--folio:page-break-->"

// sentinelShaped matches the sentinel and all of its escaped forms.
// The tilde run is the escape counter: serialize adds one tilde to
// every sentinel-shaped substring found inside page content, and
// deserialize removes one. Only the bare sentinel (zero tildes) ever
// appears as a page delimiter, so splitting on it is unambiguous.
var sentinelShaped = regexp.MustCompile(`<!--folio:page-break(~*)-->`)

// escape rewrites sentinel-shaped substrings so the content can sit
// inside the joined value without colliding with page delimiters.
func escape(content string) string {
	return sentinelShaped.ReplaceAllString(content, "<!--folio:page-break$1~-->")
}

// unescape reverses escape by removing one tilde from every
// sentinel-shaped substring.
func unescape(content string) string {
	return sentinelShaped.ReplaceAllStringFunc(content, func(m string) string {
		return strings.Replace(m, "~-->", "-->", 1)
	})
}

// Serialize joins the page contents with the sentinel, in order.
// A single empty page serializes to the empty string.
func Serialize(pages []document.Page) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = escape(p.Content)
	}
	return strings.Join(parts, Sentinel)
}

// Deserialize splits a serialized value into pages. When previous
// pages are supplied, each positional match reuses the previous page's
// ID so live editing identity survives an externally driven re-sync;
// pages beyond the previous count get fresh IDs. An empty value yields
// exactly one empty page.
func Deserialize(value string, previous []document.Page) []document.Page {
	parts := strings.Split(value, Sentinel)
	pages := make([]document.Page, len(parts))
	for i, part := range parts {
		content := unescape(part)
		if i < len(previous) {
			pages[i] = document.Page{ID: previous[i].ID, Content: content}
		} else {
			pages[i] = document.NewPage(content)
		}
	}
	return pages
}
