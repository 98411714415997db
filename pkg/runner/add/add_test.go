package add

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/store"
)

var testNow = time.Date(2024, 2, 5, 15, 30, 0, 0, time.Local) // a Monday

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestAddParsesDue(t *testing.T) {
	s := testStore(t)
	run := Add{
		Title: "water plants",
		List:  "chores",
		Due:   "next friday",
		Plain: true,
		Store: s,
		Now:   testNow,
	}
	if err := run.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := s.Reminders.List(context.Background(), store.ReminderFilter{List: "chores"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(all))
	}
	r := all[0]
	if r.DueDate == nil {
		t.Fatalf("expected a due date")
	}
	want := time.Date(2024, 2, 9, 0, 0, 0, 0, time.Local)
	if !r.DueDate.Equal(want) {
		t.Errorf("due = %v, want %v", r.DueDate.Time, want)
	}
}

func TestAddWithAlarmAndRepeat(t *testing.T) {
	s := testStore(t)
	run := Add{
		Title:  "pay rent",
		Due:    "2024-03-01 9:00",
		Alarm:  "1d",
		Repeat: "monthly",
		Plain:  true,
		Store:  s,
		Now:    testNow,
	}
	if err := run.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := s.Reminders.List(context.Background(), store.ReminderFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(all))
	}
	r := all[0]
	if r.List != "inbox" {
		t.Errorf("list = %q, want inbox", r.List)
	}
	if len(r.Alarms) != 1 {
		t.Fatalf("expected 1 alarm, got %d", len(r.Alarms))
	}
	if offset, ok := r.Alarms[0].Relative(); !ok || offset != -24*time.Hour {
		t.Errorf("alarm = %v relative=%v, want -24h", offset, ok)
	}
	if r.Recurrence == nil {
		t.Fatalf("expected a recurrence rule")
	}
}

func TestAddRejectsBadDue(t *testing.T) {
	s := testStore(t)
	run := Add{
		Title: "broken",
		Due:   "whenever",
		Store: s,
		Now:   testNow,
	}
	if err := run.Do(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
	all, err := s.Reminders.List(context.Background(), store.ReminderFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(all))
	}
}
