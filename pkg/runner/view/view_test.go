package view

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/recurrence"
	"tableflip.dev/agenda/pkg/reminder"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/temporal"
)

var testNow = time.Date(2024, 2, 5, 8, 0, 0, 0, time.Local) // a Monday

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func seedEvent(t *testing.T, s *store.Store, title string, start time.Time, rule *recurrence.Rule) *event.Event {
	t.Helper()
	e := event.New("work", title, start, start.Add(time.Hour))
	e.Recurrence = rule
	if err := s.Events.Create(context.Background(), e); err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return e
}

func seedReminder(t *testing.T, s *store.Store, title string, due *time.Time) *reminder.Reminder {
	t.Helper()
	r := reminder.New("inbox", title)
	if due != nil {
		r.DueDate = &temporal.Timestamp{Time: *due}
	}
	if err := s.Reminders.Create(context.Background(), r); err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return r
}

func TestViewDayBuckets(t *testing.T) {
	s := testStore(t)
	seedEvent(t, s, "standup", testNow.Add(time.Hour), nil)
	due := testNow.Add(4 * time.Hour)
	seedReminder(t, s, "send report", &due)
	seedReminder(t, s, "someday", nil)

	v := &View{Days: 1, Store: s, Now: testNow}
	window, err := v.window(testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	days, err := v.days(context.Background(), window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One dated bucket plus the unscheduled bucket.
	if len(days) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(days))
	}
	if got := len(days[0].Items); got != 2 {
		t.Fatalf("expected 2 items today, got %d", got)
	}
	if days[0].Items[0].Title != "standup" {
		t.Errorf("first item = %q, want standup", days[0].Items[0].Title)
	}
	last := days[len(days)-1]
	if !last.Date.IsZero() || len(last.Items) != 1 || !last.Items[0].Unscheduled {
		t.Fatalf("expected a trailing unscheduled bucket, got %+v", last)
	}
}

func TestViewExpandsRecurringEvents(t *testing.T) {
	s := testStore(t)
	rule, err := recurrence.New("daily", 1, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seedEvent(t, s, "standup", testNow.Add(time.Hour), rule)

	v := &View{Days: 7, Store: s, Now: testNow}
	window, err := v.window(testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	days, err := v.days(context.Background(), window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(days) != 7 {
		t.Fatalf("expected 7 day buckets, got %d", len(days))
	}
	for i, d := range days {
		if len(d.Items) != 1 || d.Items[0].Title != "standup" {
			t.Fatalf("day %d: expected one standup, got %+v", i, d.Items)
		}
	}
}

func TestViewWindowFromExpressions(t *testing.T) {
	v := &View{From: "next monday", To: "2/16"}
	window, err := v.window(testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := time.Date(2024, 2, 12, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2024, 2, 17, 0, 0, 0, 0, time.Local)
	if !window.Start.Equal(wantStart) || !window.End.Equal(wantEnd) {
		t.Fatalf("window = %v..%v, want %v..%v", window.Start, window.End, wantStart, wantEnd)
	}
}

func TestViewFiltersKinds(t *testing.T) {
	s := testStore(t)
	seedEvent(t, s, "standup", testNow.Add(time.Hour), nil)
	due := testNow.Add(2 * time.Hour)
	seedReminder(t, s, "send report", &due)

	v := &View{Days: 1, EventsOnly: true, Store: s, Now: testNow}
	window, _ := v.window(testNow)
	days, err := v.days(context.Background(), window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range days {
		for _, item := range d.Items {
			if item.Kind != agenda.KindEvent {
				t.Fatalf("expected events only, got %+v", item)
			}
		}
	}
}
