// Package complete provides the runner logic for marking reminders done.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/reminder"
	"tableflip.dev/agenda/pkg/store"
)

// Complete toggles completion on one reminder. Completing a recurring
// reminder advances the due date instead of closing it; Undo reopens a
// non-recurring one.
type Complete struct {
	ID   string
	Undo bool

	JSON  bool
	Plain bool

	Store *store.Store
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not complete, no store")
	}

	r, err := n.Store.Reminders.SetComplete(ctx, n.ID, !n.Undo)
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
	if r.Recurrence != nil && !r.Completed {
		fmt.Printf("done, next occurrence scheduled\n")
	}
	all, err := n.Store.Reminders.List(ctx, store.ReminderFilter{List: r.List, IncludeCompleted: true})
	if err != nil {
		return err
	}
	pp.Title(r.List)
	pp.Reminders(all...)
	return nil
}
