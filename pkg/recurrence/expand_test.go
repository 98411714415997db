package recurrence

import (
	"testing"
	"time"
)

var seriesStart = time.Date(2024, 2, 5, 9, 0, 0, 0, time.Local)

func TestExpandDaily(t *testing.T) {
	r, _ := New("daily", 1, nil, 0)
	from := time.Date(2024, 2, 5, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, 4)
	got, err := Expand(r, seriesStart, from, to, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 occurrences, got %d: %v", len(got), got)
	}
	if !got[0].Equal(seriesStart) {
		t.Fatalf("first occurrence: got %v", got[0])
	}
	if !got[3].Equal(seriesStart.AddDate(0, 0, 3)) {
		t.Fatalf("last occurrence: got %v", got[3])
	}
}

func TestExpandInterval(t *testing.T) {
	r, _ := New("weekly", 2, nil, 0)
	from := seriesStart.AddDate(0, 0, -1)
	to := seriesStart.AddDate(0, 0, 29)
	got, err := Expand(r, seriesStart, from, to, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 occurrences, got %d: %v", len(got), got)
	}
	if !got[1].Equal(seriesStart.AddDate(0, 0, 14)) {
		t.Fatalf("second occurrence: got %v", got[1])
	}
}

func TestExpandCountTerminator(t *testing.T) {
	r, _ := New("daily", 1, nil, 3)
	from := seriesStart.AddDate(0, 0, -1)
	to := seriesStart.AddDate(0, 0, 30)
	got, err := Expand(r, seriesStart, from, to, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(got))
	}
}

func TestExpandUntilTerminator(t *testing.T) {
	until := seriesStart.AddDate(0, 0, 2)
	r, _ := New("daily", 1, &until, 0)
	from := seriesStart.AddDate(0, 0, -1)
	to := seriesStart.AddDate(0, 0, 30)
	got, err := Expand(r, seriesStart, from, to, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 occurrences, got %d: %v", len(got), got)
	}
}

func TestExpandSkips(t *testing.T) {
	r, _ := New("daily", 1, nil, 0)
	from := seriesStart.AddDate(0, 0, -1)
	to := seriesStart.AddDate(0, 0, 5)
	skip := []time.Time{seriesStart.AddDate(0, 0, 1)}
	got, err := Expand(r, seriesStart, from, to, skip, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, occ := range got {
		if occ.Equal(seriesStart.AddDate(0, 0, 1)) {
			t.Fatalf("skipped date still present: %v", occ)
		}
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 occurrences, got %d: %v", len(got), got)
	}
}

func TestExpandNonRecurring(t *testing.T) {
	from := seriesStart.AddDate(0, 0, -1)
	to := seriesStart.AddDate(0, 0, 1)
	got, err := Expand(nil, seriesStart, from, to, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || !got[0].Equal(seriesStart) {
		t.Fatalf("expected the single start, got %v", got)
	}
	got, err = Expand(nil, seriesStart, to, to.AddDate(0, 0, 1), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no occurrences outside window, got %v", got)
	}
}

func TestNextAdvances(t *testing.T) {
	r, _ := New("weekly", 1, nil, 0)
	next, err := Next(r, seriesStart, seriesStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !next.Equal(seriesStart.AddDate(0, 0, 7)) {
		t.Fatalf("expected one week out, got %v", next)
	}
}

func TestNextExhausted(t *testing.T) {
	r, _ := New("daily", 1, nil, 2)
	next, err := Next(r, seriesStart, seriesStart.AddDate(0, 0, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !next.IsZero() {
		t.Fatalf("expected exhausted series, got %v", next)
	}
}
