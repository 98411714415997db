// Package add provides the runner logic for creating reminders.
package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/recurrence"
	"tableflip.dev/agenda/pkg/reminder"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/temporal"
)

// Add creates one reminder from raw CLI input. The temporal fields hold
// unparsed expressions; Do resolves them against the current clock.
type Add struct {
	Title    string
	List     string
	Notes    string
	Due      string
	Start    string
	Alarm    string
	Priority string

	Repeat string
	Every  int
	Until  string
	Count  int

	JSON  bool
	Plain bool

	Store *store.Store
	Now   time.Time
}

// Do resolves the expressions and persists the reminder.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	r := reminder.New(n.List, n.Title)
	r.Notes = n.Notes

	if n.Due != "" {
		due, err := temporal.ParseTimePoint(n.Due, now)
		if err != nil {
			return err
		}
		r.DueDate = &temporal.Timestamp{Time: due}
	}
	if n.Start != "" {
		start, err := temporal.ParseTimePoint(n.Start, now)
		if err != nil {
			return err
		}
		r.StartDate = &temporal.Timestamp{Time: start}
	}

	priority, err := reminder.ParsePriority(n.Priority)
	if err != nil {
		return err
	}
	r.Priority = priority

	if n.Alarm != "" {
		var anchor *time.Time
		if r.DueDate != nil {
			anchor = &r.DueDate.Time
		}
		trigger, err := temporal.ParseAlarm(n.Alarm, anchor, now)
		if err != nil {
			return err
		}
		r.Alarms = append(r.Alarms, trigger)
	}

	if n.Repeat != "" {
		rule, err := ParseRepeat(n.Repeat, n.Every, n.Until, n.Count, now)
		if err != nil {
			return err
		}
		r.Recurrence = rule
	}

	if err := n.Store.Reminders.Create(ctx, r); err != nil {
		return err
	}

	switch {
	case n.JSON:
		return printers.JSON(r)
	case n.Plain:
		printers.PlainReminders([]*reminder.Reminder{r})
		return nil
	}

	pp := printers.PrettyPrint{}
	all, err := n.Store.Reminders.List(ctx, store.ReminderFilter{List: r.List})
	if err != nil {
		return err
	}
	pp.Title(r.List)
	pp.Reminders(all...)
	return nil
}

// ParseRepeat builds a recurrence rule from the CLI flag group. The until
// expression, when present, wins over a count.
func ParseRepeat(repeat string, every int, until string, count int, now time.Time) (*recurrence.Rule, error) {
	var end *time.Time
	if until != "" {
		t, err := temporal.ParseTimePoint(until, now)
		if err != nil {
			return nil, err
		}
		end = &t
	}
	return recurrence.New(repeat, every, end, count)
}
