package document

import (
	"errors"
	"testing"
)

func TestNewStoreNeverEmpty(t *testing.T) {
	s := NewStore()
	if s.Len() != 1 {
		t.Fatalf("empty store should hold one page, got %d", s.Len())
	}
	if s.ActivePage().Content != "" {
		t.Error("initial page should be empty")
	}
	if s.ActivePage().ID == "" {
		t.Error("initial page should have an identity")
	}
}

func TestUpdateContent(t *testing.T) {
	a := NewPage("a")
	b := NewPage("b")
	s := NewStore(a, b)

	if err := s.UpdateContent(a.ID, "changed"); err != nil {
		t.Fatalf("UpdateContent: %v", err)
	}
	got, _ := s.At(0)
	if got.Content != "changed" {
		t.Errorf("content = %q, want %q", got.Content, "changed")
	}
	other, _ := s.At(1)
	if other.Content != "b" {
		t.Error("UpdateContent must not touch other pages")
	}

	if err := s.UpdateContent("missing", "x"); !errors.Is(err, ErrPageNotFound) {
		t.Errorf("expected ErrPageNotFound, got %v", err)
	}
}

func TestInsertAfter(t *testing.T) {
	a := NewPage("a")
	c := NewPage("c")
	s := NewStore(a, c)

	page := s.InsertAfter(0)
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	got, _ := s.At(1)
	if got.ID != page.ID {
		t.Error("new page should sit after index 0")
	}
	if s.ActiveIndex() != 1 {
		t.Errorf("new page should become active, active = %d", s.ActiveIndex())
	}
	if page.Content != "" {
		t.Error("inserted page should be empty")
	}
}

func TestInsertAfterClamps(t *testing.T) {
	s := NewStore(NewPage("a"))
	s.InsertAfter(99)
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if s.ActiveIndex() != 1 {
		t.Errorf("active = %d, want 1", s.ActiveIndex())
	}
	s.InsertAfter(-5)
	got, _ := s.At(0)
	if got.Content != "" || s.ActiveIndex() != 0 {
		t.Error("negative index should insert at front")
	}
}

func TestAppendKeepsActivation(t *testing.T) {
	a := NewPage("a")
	s := NewStore(a)
	s.SetActive(a.ID)

	s.Append("overflow")
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if s.ActiveIndex() != 0 {
		t.Error("Append must not steal activation")
	}
	got, _ := s.At(1)
	if got.Content != "overflow" {
		t.Errorf("appended content = %q", got.Content)
	}
}

func TestDeleteLastPageIsNoOp(t *testing.T) {
	a := NewPage("only")
	s := NewStore(a)
	if s.Delete(a.ID) {
		t.Error("deleting the only page should be refused")
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestDeleteMinimumPageInvariant(t *testing.T) {
	s := NewStore(NewPage("a"), NewPage("b"), NewPage("c"))
	for _, p := range s.Pages() {
		s.Delete(p.ID)
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1 after deleting everything", s.Len())
	}
}

func TestDeleteActivation(t *testing.T) {
	a := NewPage("a")
	b := NewPage("b")
	c := NewPage("c")

	// Deleting the active middle page keeps activation at that index.
	s := NewStore(a, b, c)
	s.SetActive(b.ID)
	s.Delete(b.ID)
	if s.ActiveIndex() != 1 {
		t.Errorf("active = %d, want 1", s.ActiveIndex())
	}
	if s.ActivePage().ID != c.ID {
		t.Error("activation should move to the following page")
	}

	// Deleting the active final page moves activation back.
	s = NewStore(a, b, c)
	s.SetActive(c.ID)
	s.Delete(c.ID)
	if s.ActiveIndex() != 1 {
		t.Errorf("active = %d, want 1", s.ActiveIndex())
	}

	// Deleting before the active page keeps the same page active.
	s = NewStore(a, b, c)
	s.SetActive(c.ID)
	s.Delete(a.ID)
	if s.ActivePage().ID != c.ID {
		t.Error("active page identity should survive deletes before it")
	}
}

func TestDeleteUnknownID(t *testing.T) {
	s := NewStore(NewPage("a"), NewPage("b"))
	if s.Delete("missing") {
		t.Error("unknown ID should be a no-op")
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}
}

func TestReplace(t *testing.T) {
	s := NewStore(NewPage("a"), NewPage("b"), NewPage("c"))
	s.SetActive(s.Pages()[2].ID)

	s.Replace([]Page{NewPage("x")})
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if s.ActiveIndex() != 0 {
		t.Errorf("active index should clamp, got %d", s.ActiveIndex())
	}

	s.Replace(nil)
	if s.Len() != 1 {
		t.Fatal("Replace(nil) should leave one empty page")
	}
}

func TestPagesReturnsCopy(t *testing.T) {
	s := NewStore(NewPage("a"))
	pages := s.Pages()
	pages[0].Content = "mutated"
	got, _ := s.At(0)
	if got.Content != "a" {
		t.Error("Pages must return a copy")
	}
}

func TestSetContentAt(t *testing.T) {
	s := NewStore(NewPage("a"))
	if err := s.SetContentAt(0, "z"); err != nil {
		t.Fatalf("SetContentAt: %v", err)
	}
	if err := s.SetContentAt(5, "z"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}
