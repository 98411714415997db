package agenda

import (
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/reminder"
	"tableflip.dev/agenda/pkg/temporal"
)

var (
	day0   = time.Date(2024, 2, 5, 0, 0, 0, 0, time.Local)
	window = Window{Start: day0, End: day0.AddDate(0, 0, 7)}
)

func testEvent(id, calendar string, start time.Time) *event.Event {
	e := event.New(calendar, "event "+id, start, start.Add(time.Hour))
	e.ID = id
	return e
}

func testReminder(id, list string, due *time.Time) *reminder.Reminder {
	r := reminder.New(list, "reminder "+id)
	r.ID = id
	if due != nil {
		r.DueDate = &temporal.Timestamp{Time: *due}
	}
	return r
}

func TestMergeEmpty(t *testing.T) {
	if got := Merge(nil, nil, window, Filters{}); len(got) != 0 {
		t.Fatalf("expected empty merge, got %d items", len(got))
	}
}

func TestMergeOrdering(t *testing.T) {
	nine := day0.Add(9 * time.Hour)
	noon := day0.Add(12 * time.Hour)
	events := []*event.Event{testEvent("e1", "work", noon)}
	due := nine
	reminders := []*reminder.Reminder{testReminder("r1", "inbox", &due)}

	got := Merge(events, reminders, window, Filters{})
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != "r1" || got[1].ID != "e1" {
		t.Fatalf("wrong order: %s, %s", got[0].ID, got[1].ID)
	}
}

// An event never sorts after a reminder at the identical instant.
func TestMergeTieBreakEventFirst(t *testing.T) {
	nine := day0.Add(9 * time.Hour)
	events := []*event.Event{testEvent("e1", "work", nine)}
	reminders := []*reminder.Reminder{testReminder("r1", "inbox", &nine)}

	got := Merge(events, reminders, window, Filters{})
	if got[0].Kind != KindEvent || got[1].Kind != KindReminder {
		t.Fatalf("tie-break violated: %v then %v", got[0].Kind, got[1].Kind)
	}

	// Same result regardless of the fetch being reminder-heavy first.
	second := testReminder("r2", "inbox", &nine)
	got = Merge(events, []*reminder.Reminder{second, testReminder("r3", "inbox", &nine)}, window, Filters{})
	if got[0].Kind != KindEvent {
		t.Fatalf("tie-break violated: %v first", got[0].Kind)
	}
	if got[1].ID != "r2" || got[2].ID != "r3" {
		t.Fatalf("fetch order not preserved: %s, %s", got[1].ID, got[2].ID)
	}
}

func TestMergeWindowClipsEvents(t *testing.T) {
	inside := testEvent("in", "work", day0.Add(time.Hour))
	before := testEvent("before", "work", day0.Add(-time.Hour))
	after := testEvent("after", "work", window.End)

	got := Merge([]*event.Event{inside, before, after}, nil, window, Filters{})
	if len(got) != 1 || got[0].ID != "in" {
		t.Fatalf("window not applied: %+v", got)
	}
}

// Reminders with no date at all are always surfaced, after everything
// scheduled.
func TestMergeUndatedRemindersSurfaced(t *testing.T) {
	nine := day0.Add(9 * time.Hour)
	dated := testReminder("dated", "inbox", &nine)
	undated := testReminder("undated", "inbox", nil)

	got := Merge(nil, []*reminder.Reminder{undated, dated}, window, Filters{})
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != "dated" || got[1].ID != "undated" {
		t.Fatalf("unscheduled not last: %s, %s", got[0].ID, got[1].ID)
	}
	if !got[1].Unscheduled {
		t.Fatalf("unscheduled flag missing")
	}
}

func TestMergeFilters(t *testing.T) {
	nine := day0.Add(9 * time.Hour)
	events := []*event.Event{
		testEvent("work", "work", nine),
		testEvent("home", "home", nine),
	}
	done := testReminder("done", "inbox", &nine)
	done.Completed = true
	reminders := []*reminder.Reminder{
		testReminder("open", "inbox", &nine),
		testReminder("other", "errands", &nine),
		done,
	}

	got := Merge(events, reminders, window, Filters{EventsOnly: true})
	if len(got) != 2 {
		t.Fatalf("events-only: got %d items", len(got))
	}

	got = Merge(events, reminders, window, Filters{RemindersOnly: true})
	for _, item := range got {
		if item.Kind != KindReminder {
			t.Fatalf("reminders-only returned %v", item.Kind)
		}
	}

	got = Merge(events, reminders, window, Filters{Calendar: "home", RemindersOnly: false, List: "inbox"})
	for _, item := range got {
		if item.Kind == KindEvent && item.Source != "home" {
			t.Fatalf("calendar filter leaked %q", item.Source)
		}
		if item.Kind == KindReminder && item.Source != "inbox" {
			t.Fatalf("list filter leaked %q", item.Source)
		}
	}

	got = Merge(nil, reminders, window, Filters{})
	for _, item := range got {
		if item.ID == "done" {
			t.Fatalf("completed reminder included without flag")
		}
	}
	got = Merge(nil, reminders, window, Filters{IncludeCompleted: true})
	found := false
	for _, item := range got {
		if item.ID == "done" {
			found = true
		}
	}
	if !found {
		t.Fatalf("completed reminder missing with include flag")
	}
}

func TestGroupByDay(t *testing.T) {
	m1 := day0.Add(9 * time.Hour)
	m2 := day0.AddDate(0, 0, 1).Add(10 * time.Hour)
	events := []*event.Event{
		testEvent("d1a", "work", m1),
		testEvent("d2", "work", m2),
		testEvent("d1b", "work", m1.Add(time.Hour)),
	}
	undated := testReminder("loose", "inbox", nil)

	days := GroupByDay(Merge(events, []*reminder.Reminder{undated}, window, Filters{}))
	if len(days) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(days))
	}
	if !days[0].Date.Equal(day0) || len(days[0].Items) != 2 {
		t.Fatalf("first bucket wrong: %+v", days[0])
	}
	if !days[1].Date.Equal(day0.AddDate(0, 0, 1)) {
		t.Fatalf("second bucket wrong: %+v", days[1])
	}
	if !days[2].Date.IsZero() || len(days[2].Items) != 1 {
		t.Fatalf("unscheduled bucket wrong: %+v", days[2])
	}
}
