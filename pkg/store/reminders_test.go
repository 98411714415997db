package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/recurrence"
	"tableflip.dev/agenda/pkg/reminder"
	"tableflip.dev/agenda/pkg/temporal"
)

var due = time.Date(2024, 2, 9, 17, 0, 0, 0, time.Local)

func createReminder(t *testing.T, s *Store, list, title string, dueAt *time.Time) *reminder.Reminder {
	t.Helper()
	r := reminder.New(list, title)
	if dueAt != nil {
		r.DueDate = &temporal.Timestamp{Time: *dueAt}
	}
	if err := s.Reminders.Create(context.Background(), r); err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return r
}

func TestReminderCreateGet(t *testing.T) {
	s := testStore(t)
	r := createReminder(t, s, "inbox", "buy milk", &due)

	got, err := s.Reminders.Get(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "buy milk" || got.List != "inbox" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("due date mismatch: %v", got.DueDate)
	}
}

func TestReminderDefaultList(t *testing.T) {
	s := testStore(t)
	r := reminder.New("", "loose end")
	if err := s.Reminders.Create(context.Background(), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.List != "inbox" {
		t.Fatalf("expected inbox default, got %q", r.List)
	}
}

func TestReminderListOrder(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	later := due.AddDate(0, 0, 2)
	createReminder(t, s, "inbox", "later", &later)
	createReminder(t, s, "inbox", "sooner", &due)
	createReminder(t, s, "inbox", "undated", nil)

	all, err := s.Reminders.List(ctx, ReminderFilter{List: "inbox"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 reminders, got %d", len(all))
	}
	if all[0].Title != "sooner" || all[1].Title != "later" || all[2].Title != "undated" {
		t.Fatalf("wrong order: %s, %s, %s", all[0].Title, all[1].Title, all[2].Title)
	}
}

func TestReminderGetByIndex(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	createReminder(t, s, "errands", "first", &due)
	later := due.AddDate(0, 0, 1)
	createReminder(t, s, "errands", "second", &later)

	got, err := s.Reminders.GetByIndex(ctx, "errands", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "second" {
		t.Fatalf("expected second, got %q", got.Title)
	}
	if _, err := s.Reminders.GetByIndex(ctx, "errands", 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReminderComplete(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	r := createReminder(t, s, "inbox", "one shot", &due)

	done, err := s.Reminders.SetComplete(ctx, r.ID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done.Completed || done.CompletedAt == nil {
		t.Fatalf("not completed: %+v", done)
	}

	// Completed reminders drop out of default listings.
	all, _ := s.Reminders.List(ctx, ReminderFilter{})
	if len(all) != 0 {
		t.Fatalf("completed reminder still listed")
	}
	all, _ = s.Reminders.List(ctx, ReminderFilter{IncludeCompleted: true})
	if len(all) != 1 {
		t.Fatalf("completed reminder missing from full listing")
	}

	undone, err := s.Reminders.SetComplete(ctx, r.ID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if undone.Completed || undone.CompletedAt != nil {
		t.Fatalf("uncomplete failed: %+v", undone)
	}
}

// Completing a recurring reminder advances the due date instead of
// closing it.
func TestReminderCompleteRecurring(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	r := reminder.New("inbox", "water plants")
	r.DueDate = &temporal.Timestamp{Time: due}
	rule, _ := recurrence.New("weekly", 1, nil, 0)
	r.Recurrence = rule
	if err := s.Reminders.Create(ctx, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Reminders.SetComplete(ctx, r.ID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Completed {
		t.Fatalf("recurring reminder closed instead of advancing")
	}
	if got.DueDate == nil || !got.DueDate.Equal(due.AddDate(0, 0, 7)) {
		t.Fatalf("due date not advanced: %v", got.DueDate)
	}
}

func TestReminderUpdateAndDelete(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	r := createReminder(t, s, "inbox", "draft", &due)

	title := "final"
	priority := reminder.PriorityHigh
	updated, err := s.Reminders.Update(ctx, r.ID, ReminderPatch{Title: &title, Priority: &priority, ClearDue: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "final" || updated.Priority != reminder.PriorityHigh {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.DueDate != nil {
		t.Fatalf("due date not cleared")
	}

	name, err := s.Reminders.Delete(ctx, r.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "final" {
		t.Fatalf("expected deleted title, got %q", name)
	}
	if _, err := s.Reminders.Get(ctx, r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReminderLists(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	createReminder(t, s, "inbox", "a", nil)
	createReminder(t, s, "errands", "b", nil)

	lists, err := s.Reminders.Lists(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lists) != 2 || lists[0] != "errands" || lists[1] != "inbox" {
		t.Fatalf("unexpected lists: %v", lists)
	}
}

func TestReminderMoveListMovesKey(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	r := createReminder(t, s, "inbox", "move me", nil)

	list := "errands"
	if _, err := s.Reminders.Update(ctx, r.ID, ReminderPatch{List: &list}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	moved, _ := s.Reminders.List(ctx, ReminderFilter{List: "errands"})
	if len(moved) != 1 {
		t.Fatalf("reminder not in new list")
	}
	old, _ := s.Reminders.List(ctx, ReminderFilter{List: "inbox"})
	if len(old) != 0 {
		t.Fatalf("stale record left in old list")
	}
}
