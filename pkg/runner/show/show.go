// Package show provides the runner logic for listing and inspecting
// reminders.
package show

import (
	"context"
	"errors"
	"strconv"
	"time"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/reminder"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/temporal"
)

// Show lists reminders, optionally scoped to one list or one ID.
type Show struct {
	ID               string
	List             string
	Search           string
	From             string
	To               string
	IncludeCompleted bool

	JSON  bool
	Plain bool

	Store *store.Store
	Now   time.Time
}

func (n *Show) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	if n.ID != "" {
		r, err := n.lookup(ctx)
		if err != nil {
			return err
		}
		return n.print([]*reminder.Reminder{r}, r.List)
	}

	f := store.ReminderFilter{
		List:             n.List,
		Search:           n.Search,
		IncludeCompleted: n.IncludeCompleted,
	}
	if n.From != "" {
		from, err := temporal.ParseTimePoint(n.From, now)
		if err != nil {
			return err
		}
		f.From = temporal.StartOfDay(from)
	}
	if n.To != "" {
		to, err := temporal.ParseTimePoint(n.To, now)
		if err != nil {
			return err
		}
		f.To = temporal.EndOfDay(to)
	}

	all, err := n.Store.Reminders.List(ctx, f)
	if err != nil {
		return err
	}

	if n.List != "" {
		return n.print(all, n.List)
	}

	if n.JSON || n.Plain {
		return n.print(all, "")
	}

	// No list given: group the pretty view by list.
	byList := make(map[string][]*reminder.Reminder)
	var order []string
	for _, r := range all {
		if _, seen := byList[r.List]; !seen {
			order = append(order, r.List)
		}
		byList[r.List] = append(byList[r.List], r)
	}
	pp := printers.PrettyPrint{ShowID: true}
	for _, list := range order {
		pp.Title(list)
		pp.Reminders(byList[list]...)
	}
	return nil
}

// lookup resolves the ID field, accepting either a reminder id or a
// 1-based position within the selected list.
func (n *Show) lookup(ctx context.Context) (*reminder.Reminder, error) {
	if index, err := strconv.Atoi(n.ID); err == nil {
		return n.Store.Reminders.GetByIndex(ctx, n.List, index)
	}
	return n.Store.Reminders.Get(ctx, n.ID)
}

func (n *Show) print(all []*reminder.Reminder, title string) error {
	switch {
	case n.JSON:
		return printers.JSON(all)
	case n.Plain:
		printers.PlainReminders(all)
		return nil
	}
	pp := printers.PrettyPrint{ShowID: true}
	if title != "" {
		pp.Title(title)
	}
	pp.Reminders(all...)
	return nil
}
