package selection

import (
	"errors"
	"testing"

	"github.com/foliodocs/folio/internal/markup"
)

func surfaceOf(t *testing.T, content string) *Surface {
	t.Helper()
	frag, err := markup.ParseFragment(content)
	if err != nil {
		t.Fatalf("ParseFragment(%q): %v", content, err)
	}
	return NewSurface(frag)
}

func TestSelectAndSelectedText(t *testing.T) {
	s := surfaceOf(t, "<p>hello brave world</p>")
	run := s.Fragment().TextRuns()[0]

	if err := s.Select(run, 6, run, 11); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := s.SelectedText(); got != "brave" {
		t.Errorf("SelectedText = %q, want %q", got, "brave")
	}
	if s.Collapsed() {
		t.Error("selection with extent should not be collapsed")
	}
}

func TestBackwardSelection(t *testing.T) {
	s := surfaceOf(t, "<p>hello world</p>")
	run := s.Fragment().TextRuns()[0]

	// Anchor after focus: the user dragged right to left.
	if err := s.Select(run, 11, run, 6); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := s.SelectedText(); got != "world" {
		t.Errorf("SelectedText = %q, want %q", got, "world")
	}
}

func TestSelectedTextAcrossRuns(t *testing.T) {
	s := surfaceOf(t, "alpha <b>beta</b> gamma")
	runs := s.Fragment().TextRuns()

	if err := s.Select(runs[0], 2, runs[2], 3); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := s.SelectedText(); got != "pha beta ga" {
		t.Errorf("SelectedText = %q, want %q", got, "pha beta ga")
	}

	// Backward across runs.
	if err := s.Select(runs[2], 3, runs[0], 2); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := s.SelectedText(); got != "pha beta ga" {
		t.Errorf("backward SelectedText = %q, want %q", got, "pha beta ga")
	}
}

func TestCollapse(t *testing.T) {
	s := surfaceOf(t, "<p>text</p>")
	run := s.Fragment().TextRuns()[0]
	if err := s.Collapse(run, 2); err != nil {
		t.Fatalf("Collapse: %v", err)
	}
	if !s.Collapsed() {
		t.Error("caret should be collapsed")
	}
	if got := s.SelectedText(); got != "" {
		t.Errorf("collapsed SelectedText = %q, want empty", got)
	}
}

func TestSelectValidation(t *testing.T) {
	s := surfaceOf(t, "<p>abc</p>")
	run := s.Fragment().TextRuns()[0]

	if err := s.Select(run, 0, run, 9); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if err := s.Select(nil, 0, run, 1); !errors.Is(err, ErrNotAttached) {
		t.Errorf("expected ErrNotAttached, got %v", err)
	}
	if err := s.Select(run.Parent, 0, run, 1); !errors.Is(err, ErrNotTextRun) {
		t.Errorf("expected ErrNotTextRun, got %v", err)
	}

	other := surfaceOf(t, "<p>elsewhere</p>")
	foreign := other.Fragment().TextRuns()[0]
	if err := s.Select(foreign, 0, foreign, 1); !errors.Is(err, ErrNotAttached) {
		t.Errorf("expected ErrNotAttached for foreign run, got %v", err)
	}
}

func TestTrackerSaveRequiresFocus(t *testing.T) {
	s := surfaceOf(t, "<p>hello</p>")
	run := s.Fragment().TextRuns()[0]
	tr := NewTracker(s)

	if err := s.Select(run, 0, run, 5); err != nil {
		t.Fatal(err)
	}
	if tr.Save() {
		t.Error("Save should refuse while surface is blurred")
	}

	s.Focus()
	if !tr.Save() {
		t.Error("Save should record with focused surface and selection")
	}
	if !tr.HasSnapshot() {
		t.Error("snapshot should be pending")
	}
}

func TestTrackerSaveKeepsPriorSnapshot(t *testing.T) {
	s := surfaceOf(t, "<p>hello world</p>")
	run := s.Fragment().TextRuns()[0]
	tr := NewTracker(s)

	s.Focus()
	if err := s.Select(run, 0, run, 5); err != nil {
		t.Fatal(err)
	}
	tr.Save()

	// Focus moves to a toolbar control; a failing save must not wipe
	// the recorded snapshot.
	s.Blur()
	if tr.Save() {
		t.Error("Save should do nothing while blurred")
	}
	if !tr.HasSnapshot() {
		t.Error("prior snapshot should survive a refused save")
	}

	if !tr.Restore() {
		t.Error("Restore should reapply the earlier snapshot")
	}
	if got := s.SelectedText(); got != "hello" {
		t.Errorf("restored SelectedText = %q, want %q", got, "hello")
	}
	if !s.Focused() {
		t.Error("Restore should refocus the surface")
	}
}

func TestTrackerRestoreConsumesSnapshot(t *testing.T) {
	s := surfaceOf(t, "<p>hello</p>")
	run := s.Fragment().TextRuns()[0]
	tr := NewTracker(s)

	s.Focus()
	if err := s.Select(run, 1, run, 3); err != nil {
		t.Fatal(err)
	}
	tr.Save()

	if !tr.Restore() {
		t.Fatal("first Restore should succeed")
	}
	if tr.Restore() {
		t.Error("second Restore should fail: snapshot discarded")
	}
}

func TestTrackerRestoreDetachedFails(t *testing.T) {
	s := surfaceOf(t, "<p>hello</p><p>world</p>")
	runs := s.Fragment().TextRuns()
	tr := NewTracker(s)

	s.Focus()
	if err := s.Select(runs[1], 0, runs[1], 5); err != nil {
		t.Fatal(err)
	}
	tr.Save()

	// Content replaced from outside: the recorded refs point into a
	// dead tree.
	frag, err := markup.ParseFragment("<p>entirely new</p>")
	if err != nil {
		t.Fatal(err)
	}
	s.SetFragment(frag)

	if tr.Restore() {
		t.Error("Restore should fail for detached refs")
	}
	if tr.HasSnapshot() {
		t.Error("failed Restore must still discard the snapshot")
	}
}

func TestTrackerRestoreWithoutSnapshot(t *testing.T) {
	s := surfaceOf(t, "<p>hello</p>")
	tr := NewTracker(s)
	if tr.Restore() {
		t.Error("Restore with no snapshot should report failure")
	}
}
