package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/agenda/pkg/recurrence"
	"tableflip.dev/agenda/pkg/reminder"
	"tableflip.dev/agenda/pkg/temporal"
)

// ReminderFilter narrows a List call.
type ReminderFilter struct {
	List             string
	From             time.Time
	To               time.Time
	Search           string
	IncludeCompleted bool
}

// ReminderPatch carries partial updates; nil fields are left untouched.
// ClearDue and ClearStart drop the respective dates.
type ReminderPatch struct {
	Title      *string
	Notes      *string
	List       *string
	StartDate  *time.Time
	DueDate    *time.Time
	ClearStart bool
	ClearDue   bool
	Priority   *string
	Alarms     []temporal.AlarmTrigger
	Repeat     *recurrence.Rule
}

func (p ReminderPatch) apply(r *reminder.Reminder) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	if p.List != nil {
		r.List = *p.List
	}
	switch {
	case p.ClearStart:
		r.StartDate = nil
	case p.StartDate != nil:
		r.StartDate = &temporal.Timestamp{Time: *p.StartDate}
	}
	switch {
	case p.ClearDue:
		r.DueDate = nil
	case p.DueDate != nil:
		r.DueDate = &temporal.Timestamp{Time: *p.DueDate}
	}
	if p.Priority != nil {
		r.Priority = *p.Priority
	}
	if p.Alarms != nil {
		r.Alarms = p.Alarms
	}
	if p.Repeat != nil {
		r.Recurrence = p.Repeat
	}
}

// ReminderStore is the task half of the database.
type ReminderStore struct {
	d        *diskv.Diskv
	basePath string
}

func (s *ReminderStore) key(r *reminder.Reminder) string {
	return recordKey(domainReminders, r.List, r.Created.Format(layoutISO), r.ID)
}

func (s *ReminderStore) read(key string) (*reminder.Reminder, error) {
	val, err := s.d.Read(key)
	if err != nil {
		return nil, err
	}
	r := &reminder.Reminder{}
	if err := json.Unmarshal(val, r); err != nil {
		return nil, err
	}
	if r.ID == "" {
		r.ID = keyToPathTransform(key).FileName
	}
	return r, nil
}

func (s *ReminderStore) write(r *reminder.Reminder) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.d.Write(s.key(r), data)
}

func (s *ReminderStore) findKey(ctx context.Context, id string) (string, error) {
	for key := range s.d.Keys(ctx.Done()) {
		if pk, ok := parseKey(key); ok && pk.domain == domainReminders && pk.id == id {
			return key, nil
		}
	}
	return "", fmt.Errorf("reminder %q: %w", id, ErrNotFound)
}

// Create persists a new reminder and assigns its id.
func (s *ReminderStore) Create(ctx context.Context, r *reminder.Reminder) error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("reminder title required")
	}
	if r.List == "" {
		r.List = "inbox"
	}
	if r.ID == "" {
		r.ID = newID()
	}
	if r.Created.IsZero() {
		r.Created = temporal.Timestamp{Time: time.Now()}
	}
	return s.write(r)
}

// Get loads one reminder by id.
func (s *ReminderStore) Get(ctx context.Context, id string) (*reminder.Reminder, error) {
	key, err := s.findKey(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.read(key)
}

// GetByIndex addresses a reminder by its 1-based position within a named
// list, in List order.
func (s *ReminderStore) GetByIndex(ctx context.Context, list string, index int) (*reminder.Reminder, error) {
	all, err := s.List(ctx, ReminderFilter{List: list, IncludeCompleted: true})
	if err != nil {
		return nil, err
	}
	if index < 1 || index > len(all) {
		return nil, fmt.Errorf("reminder %d in list %q: %w", index, list, ErrNotFound)
	}
	return all[index-1], nil
}

// List returns reminders matching the filter, scheduled ones first in due
// order, then unscheduled ones in creation order. Malformed records are
// skipped with a note to stderr.
func (s *ReminderStore) List(ctx context.Context, f ReminderFilter) ([]*reminder.Reminder, error) {
	all := make([]*reminder.Reminder, 0)
	for key := range s.d.Keys(ctx.Done()) {
		pk, ok := parseKey(key)
		if !ok || pk.domain != domainReminders {
			continue
		}
		if f.List != "" && pk.group != f.List {
			continue
		}
		r, err := s.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		if !matchReminder(r, f) {
			continue
		}
		all = append(all, r)
	}
	sort.SliceStable(all, func(i, j int) bool {
		li, lok := all[i].When()
		rj, rok := all[j].When()
		switch {
		case lok && rok:
			if li.Equal(rj) {
				return all[i].Created.Before(all[j].Created.Time)
			}
			return li.Before(rj)
		case lok:
			return true
		case rok:
			return false
		default:
			return all[i].Created.Before(all[j].Created.Time)
		}
	})
	return all, nil
}

func matchReminder(r *reminder.Reminder, f ReminderFilter) bool {
	if !f.IncludeCompleted && r.Completed {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		hay := strings.ToLower(r.Title + " " + r.Notes)
		if !strings.Contains(hay, needle) {
			return false
		}
	}
	if f.From.IsZero() && f.To.IsZero() {
		return true
	}
	at, ok := r.When()
	if !ok {
		// Undated reminders are always surfaced.
		return true
	}
	if !f.From.IsZero() && at.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !at.Before(f.To) {
		return false
	}
	return true
}

// Update applies a partial patch.
func (s *ReminderStore) Update(ctx context.Context, id string, patch ReminderPatch) (*reminder.Reminder, error) {
	key, err := s.findKey(ctx, id)
	if err != nil {
		return nil, err
	}
	r, err := s.read(key)
	if err != nil {
		return nil, err
	}
	patch.apply(r)
	if newKey := s.key(r); newKey != key {
		if err := s.d.Erase(key); err != nil {
			return nil, err
		}
	}
	if err := s.write(r); err != nil {
		return nil, err
	}
	return r, nil
}

// SetComplete marks a reminder done or not done. Completing a recurring
// reminder with a due date advances the due date to the next instance and
// leaves it open; the series closes when the rule is exhausted.
func (s *ReminderStore) SetComplete(ctx context.Context, id string, done bool) (*reminder.Reminder, error) {
	key, err := s.findKey(ctx, id)
	if err != nil {
		return nil, err
	}
	r, err := s.read(key)
	if err != nil {
		return nil, err
	}

	if !done {
		r.Completed = false
		r.CompletedAt = nil
		if err := s.write(r); err != nil {
			return nil, err
		}
		return r, nil
	}

	if r.Recurrence != nil && r.DueDate != nil && !r.DueDate.IsZero() {
		next, err := recurrence.Next(r.Recurrence, r.DueDate.Time, r.DueDate.Time)
		if err != nil {
			return nil, err
		}
		if !next.IsZero() {
			r.DueDate = &temporal.Timestamp{Time: next}
			if err := s.write(r); err != nil {
				return nil, err
			}
			return r, nil
		}
	}

	r.Completed = true
	r.CompletedAt = &temporal.Timestamp{Time: time.Now()}
	if err := s.write(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes a reminder and returns its title.
func (s *ReminderStore) Delete(ctx context.Context, id string) (string, error) {
	key, err := s.findKey(ctx, id)
	if err != nil {
		return "", err
	}
	r, err := s.read(key)
	if err != nil {
		return "", err
	}
	if err := s.d.Erase(key); err != nil {
		return "", err
	}
	return r.Title, nil
}

// Lists returns the known reminder list names.
func (s *ReminderStore) Lists(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	for key := range s.d.Keys(ctx.Done()) {
		if pk, ok := parseKey(key); ok && pk.domain == domainReminders {
			seen[pk.group] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
