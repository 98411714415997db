package event

import (
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/recurrence"
	"tableflip.dev/agenda/pkg/temporal"
)

var testStart = time.Date(2024, 2, 5, 9, 0, 0, 0, time.Local) // a Monday

func dailyRule(t *testing.T) *recurrence.Rule {
	t.Helper()
	r, err := recurrence.New("daily", 1, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestOccurrencesOneOff(t *testing.T) {
	e := New("work", "standup", testStart, testStart.Add(time.Hour))

	occs, err := Occurrences(e, testStart.AddDate(0, 0, -1), testStart.AddDate(0, 0, 1), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(occs) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(occs))
	}
	if !occs[0].Start.Equal(testStart) {
		t.Errorf("start = %v, want %v", occs[0].Start, testStart)
	}
	if !occs[0].End.Equal(testStart.Add(time.Hour)) {
		t.Errorf("end = %v, want %v", occs[0].End, testStart.Add(time.Hour))
	}
}

func TestOccurrencesSkipAndOverride(t *testing.T) {
	e := New("work", "standup", testStart, testStart.Add(time.Hour))
	e.Recurrence = dailyRule(t)
	e.SkipDates = []temporal.Timestamp{{Time: testStart.AddDate(0, 0, 1)}}
	title := "standup (moved)"
	moved := temporal.Timestamp{Time: testStart.AddDate(0, 0, 2).Add(time.Hour)}
	e.Overrides = []Override{{
		Date:  temporal.Timestamp{Time: testStart.AddDate(0, 0, 2)},
		Title: &title,
		Start: &moved,
	}}

	occs, err := Occurrences(e, testStart, testStart.AddDate(0, 0, 3), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(occs) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(occs))
	}
	if occs[0].IsModified {
		t.Errorf("first occurrence should be unmodified")
	}
	if !occs[1].IsModified || occs[1].Title != title {
		t.Errorf("second occurrence = %+v, want the override applied", occs[1])
	}
	if !occs[1].Start.Equal(moved.Time) {
		t.Errorf("second start = %v, want %v", occs[1].Start, moved.Time)
	}
}

func TestExpandWindowFansOut(t *testing.T) {
	recurring := New("work", "standup", testStart, testStart.Add(time.Hour))
	recurring.Recurrence = dailyRule(t)
	oneOff := New("home", "dentist", testStart.AddDate(0, 0, 1).Add(5*time.Hour), testStart.AddDate(0, 0, 1).Add(6*time.Hour))
	outside := New("home", "past thing", testStart.AddDate(0, 0, -7), testStart.AddDate(0, 0, -7).Add(time.Hour))

	got := ExpandWindow([]*Event{recurring, oneOff, outside}, testStart, testStart.AddDate(0, 0, 3))
	if len(got) != 4 {
		t.Fatalf("expected 3 standups + 1 one-off, got %d", len(got))
	}
	for _, e := range got[:3] {
		if e.Title != "standup" {
			t.Fatalf("expected expanded standups first, got %q", e.Title)
		}
	}
	if got[3].Title != "dentist" {
		t.Errorf("expected the one-off last, got %q", got[3].Title)
	}
}

func TestEventDuration(t *testing.T) {
	e := New("work", "standup", testStart, testStart.Add(90*time.Minute))
	if e.Duration() != 90*time.Minute {
		t.Errorf("duration = %v, want 90m", e.Duration())
	}
}
