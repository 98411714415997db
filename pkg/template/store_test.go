package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	in := &Template{
		Name:  "standup",
		Kind:  KindEvent,
		Title: "Standup {date}",
		Start: "9am",
		Alarm: "10m",
	}
	if err := s.Save(in, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := s.Load("standup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Title != in.Title || out.Kind != in.Kind || out.Alarm != in.Alarm {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestSaveCollision(t *testing.T) {
	s := testStore(t)
	in := &Template{Name: "weekly", Kind: KindReminder, Title: "Review {week}"}
	if err := s.Save(in, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Save(in, false); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	if err := s.Save(in, true); err != nil {
		t.Fatalf("force save failed: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	s := testStore(t)
	if _, err := s.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	s, _ := NewStore(dir)
	good := &Template{Name: "good", Kind: KindReminder, Title: "ok"}
	if err := s.Save(good, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("\t: not yaml {{{"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, err := s.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "good" {
		t.Fatalf("expected only the good template, got %+v", list)
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t)
	in := &Template{Name: "gone", Kind: KindReminder, Title: "x"}
	if err := s.Save(in, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Delete("gone"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Delete("gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
