package markup

import (
	"testing"

	"golang.org/x/net/html"
)

func TestParseFragmentRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"plain text",
		"<p>Hello</p>",
		"Hello <b>world</b> again",
		"<h1>Title</h1><p>Body with <i>emphasis</i>.</p>",
		"<ul><li>one</li><li>two</li></ul>",
	}

	for _, content := range tests {
		frag, err := ParseFragment(content)
		if err != nil {
			t.Fatalf("ParseFragment(%q): %v", content, err)
		}
		if got := frag.Render(); got != content {
			t.Errorf("Render = %q, want %q", got, content)
		}
	}
}

func TestNodes(t *testing.T) {
	frag, err := ParseFragment("intro <b>bold</b><p>para</p>")
	if err != nil {
		t.Fatal(err)
	}
	nodes := frag.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("expected 3 top-level nodes, got %d", len(nodes))
	}
	if nodes[0].Type != html.TextNode {
		t.Error("first node should be text")
	}
	if nodes[1].Data != "b" || nodes[2].Data != "p" {
		t.Errorf("unexpected elements %q, %q", nodes[1].Data, nodes[2].Data)
	}
}

func TestContains(t *testing.T) {
	frag, err := ParseFragment("<p>Hello <b>world</b></p>")
	if err != nil {
		t.Fatal(err)
	}
	runs := frag.TextRuns()
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !frag.Contains(runs[1]) {
		t.Error("attached run should be contained")
	}

	// Detach the <b> element; its run must no longer be contained.
	b := runs[1].Parent
	b.Parent.RemoveChild(b)
	if frag.Contains(runs[1]) {
		t.Error("detached run should not be contained")
	}
	if frag.Contains(nil) {
		t.Error("nil should not be contained")
	}
}

func TestTextRunsOrder(t *testing.T) {
	frag, err := ParseFragment("alpha <b>beta</b> gamma<p>delta</p>")
	if err != nil {
		t.Fatal(err)
	}
	runs := frag.TextRuns()
	want := []string{"alpha ", "beta", " gamma", "delta"}
	if len(runs) != len(want) {
		t.Fatalf("expected %d runs, got %d", len(want), len(runs))
	}
	for i, w := range want {
		if runs[i].Data != w {
			t.Errorf("run %d = %q, want %q", i, runs[i].Data, w)
		}
	}
	if frag.RunIndex(runs[2]) != 2 {
		t.Error("RunIndex should locate an attached run")
	}
	if frag.RunIndex(&html.Node{Type: html.TextNode, Data: "x"}) != -1 {
		t.Error("RunIndex of a foreign node should be -1")
	}
}

func TestPlainText(t *testing.T) {
	frag, err := ParseFragment("<h1>Title</h1><p>Body <b>bold</b></p>")
	if err != nil {
		t.Fatal(err)
	}
	if got := frag.PlainText(); got != "TitleBody bold" {
		t.Errorf("PlainText = %q", got)
	}
}

func TestWrapTextRangeMiddle(t *testing.T) {
	frag, err := ParseFragment("<p>hello brave world</p>")
	if err != nil {
		t.Fatal(err)
	}
	run := frag.TextRuns()[0]
	inner, err := WrapTextRange(run, 6, 11, "b")
	if err != nil {
		t.Fatalf("WrapTextRange: %v", err)
	}
	if inner.Data != "brave" {
		t.Errorf("inner text = %q, want %q", inner.Data, "brave")
	}
	if got := frag.Render(); got != "<p>hello <b>brave</b> world</p>" {
		t.Errorf("Render = %q", got)
	}
}

func TestWrapTextRangeWholeRun(t *testing.T) {
	frag, err := ParseFragment("<p>word</p>")
	if err != nil {
		t.Fatal(err)
	}
	run := frag.TextRuns()[0]
	if _, err := WrapTextRange(run, 0, 4, "u"); err != nil {
		t.Fatalf("WrapTextRange: %v", err)
	}
	if got := frag.Render(); got != "<p><u>word</u></p>" {
		t.Errorf("Render = %q", got)
	}
}

func TestWrapTextRangeErrors(t *testing.T) {
	frag, err := ParseFragment("<p>short</p>")
	if err != nil {
		t.Fatal(err)
	}
	run := frag.TextRuns()[0]
	if _, err := WrapTextRange(run, 2, 99, "b"); err == nil {
		t.Error("expected error for out-of-range offsets")
	}
	if _, err := WrapTextRange(run.Parent, 0, 1, "b"); err != ErrNotTextNode {
		t.Errorf("expected ErrNotTextNode, got %v", err)
	}
}

func TestInsertText(t *testing.T) {
	frag, err := ParseFragment("<p>helloworld</p>")
	if err != nil {
		t.Fatal(err)
	}
	run := frag.TextRuns()[0]
	after, err := InsertText(run, 5, ", ")
	if err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if after != 7 {
		t.Errorf("caret after insert = %d, want 7", after)
	}
	if got := frag.Render(); got != "<p>hello, world</p>" {
		t.Errorf("Render = %q", got)
	}
}

func TestInsertTextUnicode(t *testing.T) {
	frag, err := ParseFragment("<p>héllo</p>")
	if err != nil {
		t.Fatal(err)
	}
	run := frag.TextRuns()[0]
	if _, err := InsertText(run, 5, "!"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if run.Data != "héllo!" {
		t.Errorf("run = %q", run.Data)
	}
}
