// Package edit provides the runner logic for patching reminders.
package edit

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/reminder"
	"tableflip.dev/agenda/pkg/runner/add"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/temporal"
)

// Edit updates a reminder in place. Only fields whose Set flag is true (or
// whose string is non-empty for temporal expressions) reach the patch, so
// untouched fields survive.
type Edit struct {
	ID string

	Title    string
	SetTitle bool
	Notes    string
	SetNotes bool
	List     string

	Due        string
	ClearDue   bool
	Start      string
	ClearStart bool
	Alarm      string
	Priority   string
	SetPrio    bool

	Repeat string
	Every  int
	Until  string
	Count  int

	JSON  bool
	Plain bool

	Store *store.Store
	Now   time.Time
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	patch := store.ReminderPatch{
		ClearStart: n.ClearStart,
		ClearDue:   n.ClearDue,
	}
	if n.SetTitle {
		patch.Title = &n.Title
	}
	if n.SetNotes {
		patch.Notes = &n.Notes
	}
	if n.List != "" {
		patch.List = &n.List
	}
	if n.Due != "" {
		due, err := temporal.ParseTimePoint(n.Due, now)
		if err != nil {
			return err
		}
		patch.DueDate = &due
	}
	if n.Start != "" {
		start, err := temporal.ParseTimePoint(n.Start, now)
		if err != nil {
			return err
		}
		patch.StartDate = &start
	}
	if n.SetPrio {
		priority, err := reminder.ParsePriority(n.Priority)
		if err != nil {
			return err
		}
		patch.Priority = &priority
	}
	if n.Alarm != "" {
		var anchor *time.Time
		if patch.DueDate != nil {
			anchor = patch.DueDate
		} else if current, err := n.Store.Reminders.Get(ctx, n.ID); err == nil && current.DueDate != nil {
			anchor = &current.DueDate.Time
		}
		trigger, err := temporal.ParseAlarm(n.Alarm, anchor, now)
		if err != nil {
			return err
		}
		patch.Alarms = []temporal.AlarmTrigger{trigger}
	}
	if n.Repeat != "" {
		rule, err := add.ParseRepeat(n.Repeat, n.Every, n.Until, n.Count, now)
		if err != nil {
			return err
		}
		patch.Repeat = rule
	}

	r, err := n.Store.Reminders.Update(ctx, n.ID, patch)
	if err != nil {
		return err
	}

	switch {
	case n.JSON:
		return printers.JSON(r)
	case n.Plain:
		printers.PlainReminders([]*reminder.Reminder{r})
		return nil
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(r.List)
	pp.Reminders(r)
	return nil
}
