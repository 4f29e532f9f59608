package printer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/foliodocs/folio/internal/document"
	"github.com/foliodocs/folio/internal/layout"
)

func TestRenderHTMLTwoPages(t *testing.T) {
	// A two-page document yields two hard-broken page
	// boxes matching the live geometry exactly.
	geom := layout.USLetter()
	r := New(geom, WithTitle("Engagement Letter"))

	pages := []document.Page{
		document.NewPage("<p>first page</p>"),
		document.NewPage("<p>second page</p>"),
	}
	out, err := r.RenderHTML(pages)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	if got := strings.Count(out, `<div class="page">`); got != 2 {
		t.Errorf("page boxes = %d, want 2", got)
	}
	if !strings.Contains(out, "page-break-after: always") {
		t.Error("pages must be separated by hard breaks")
	}
	if !strings.Contains(out, "<p>first page</p>") || !strings.Contains(out, "<p>second page</p>") {
		t.Error("page contents missing from output")
	}
	if !strings.Contains(out, "Page 1 of 2") || !strings.Contains(out, "Page 2 of 2") {
		t.Error("page-number decorations missing")
	}
	if !strings.Contains(out, "Engagement Letter") {
		t.Error("title missing")
	}
}

func TestRenderGeometryMatchesLiveConstants(t *testing.T) {
	geom := layout.Geometry{
		DPI:          96,
		PageWidth:    794,
		PageHeight:   1123,
		MarginTop:    96,
		MarginRight:  72,
		MarginBottom: 96,
		MarginLeft:   72,
		HeaderHeight: 40,
		FooterHeight: 24,
	}
	r := New(geom)
	out, err := r.RenderHTML([]document.Page{document.NewPage("<p>x</p>")})
	if err != nil {
		t.Fatal(err)
	}

	// The printable output must carry the exact editing geometry.
	for _, want := range []string{
		fmt.Sprintf("width: %vpx", geom.PageWidth),
		fmt.Sprintf("height: %vpx", geom.PageHeight),
		fmt.Sprintf("padding: %vpx %vpx %vpx %vpx", geom.MarginTop, geom.MarginRight, geom.MarginBottom, geom.MarginLeft),
		fmt.Sprintf("size: %vpx %vpx", geom.PageWidth, geom.PageHeight),
		fmt.Sprintf("width: %vpx", geom.ContentWidth()),
		fmt.Sprintf("height: %vpx", geom.ContentHeight()),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing geometry constant %q", want)
		}
	}
}

func TestSanitizeStripsUnsafe(t *testing.T) {
	r := New(layout.A4())

	tests := []struct {
		in       string
		mustDrop string
		mustKeep string
	}{
		{`<p>ok</p><script>alert(1)</script>`, "script", "<p>ok</p>"},
		{`<p onclick="evil()">text</p>`, "onclick", "text"},
		{`<a href="javascript:evil()">link</a>`, "javascript:", "link"},
		{`<iframe src="https://x"></iframe><b>bold</b>`, "iframe", "<b>bold</b>"},
		{`<img src="x" onerror="evil()"><i>it</i>`, "img", "<i>it</i>"},
	}

	for _, tt := range tests {
		got := r.Sanitize(tt.in)
		if strings.Contains(got, tt.mustDrop) {
			t.Errorf("Sanitize(%q) kept %q: %q", tt.in, tt.mustDrop, got)
		}
		if !strings.Contains(got, tt.mustKeep) {
			t.Errorf("Sanitize(%q) dropped %q: %q", tt.in, tt.mustKeep, got)
		}
	}
}

func TestSanitizeKeepsFormattingVocabulary(t *testing.T) {
	r := New(layout.A4())

	tests := []string{
		"<b>bold</b>",
		"<strong>strong</strong>",
		"<i>italic</i>",
		"<em>em</em>",
		"<u>underline</u>",
		"<ul><li>item</li></ul>",
		"<ol><li>item</li></ol>",
		"<h1>heading</h1>",
		"<h3>heading</h3>",
		`<a href="https://example.com">link</a>`,
		`<p style="text-align: center">centered</p>`,
	}

	for _, in := range tests {
		if got := r.Sanitize(in); got != in {
			t.Errorf("Sanitize(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestRenderHTMLSanitizesContent(t *testing.T) {
	r := New(layout.A4())
	out, err := r.RenderHTML([]document.Page{
		document.NewPage(`<p>fine</p><script>alert(1)</script>`),
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "alert(1)") {
		t.Error("script content leaked into printable output")
	}
	if !strings.Contains(out, "<p>fine</p>") {
		t.Error("allowed content was dropped")
	}
}

func TestPercentEncode(t *testing.T) {
	if got := percentEncode("a b"); got != "a%20b" {
		t.Errorf("space must encode as %%20, got %q", got)
	}
	if got := percentEncode("<p>"); got != "%3Cp%3E" {
		t.Errorf("got %q", got)
	}
	if got := percentEncode("safe-._~AZ09"); got != "safe-._~AZ09" {
		t.Errorf("unreserved characters must pass through, got %q", got)
	}
}
