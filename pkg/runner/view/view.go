// Package view provides the runner logic for the merged agenda views.
package view

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/temporal"
)

// View renders the merged agenda for a window. Days sets the window
// length in days when From/To don't spell it out: today is 1, week is 7.
type View struct {
	From string
	To   string
	Days int

	EventsOnly       bool
	RemindersOnly    bool
	Calendar         string
	List             string
	IncludeCompleted bool

	JSON  bool
	Plain bool

	Store *store.Store
	Now   time.Time
}

func (n *View) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not view, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	window, err := n.window(now)
	if err != nil {
		return err
	}

	days, err := n.days(ctx, window)
	if err != nil {
		return err
	}

	switch {
	case n.JSON:
		return printers.JSON(days)
	case n.Plain:
		printers.PlainDays(days)
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Agenda(days)
	return nil
}

func (n *View) window(now time.Time) (agenda.Window, error) {
	start := temporal.StartOfDay(now)
	if n.From != "" {
		t, err := temporal.ParseTimePoint(n.From, now)
		if err != nil {
			return agenda.Window{}, err
		}
		start = temporal.StartOfDay(t)
	}

	length := n.Days
	if length <= 0 {
		length = 1
	}
	end := start.AddDate(0, 0, length)
	if n.To != "" {
		t, err := temporal.ParseTimePoint(n.To, now)
		if err != nil {
			return agenda.Window{}, err
		}
		end = temporal.StartOfDay(t).AddDate(0, 0, 1)
	}
	if !end.After(start) {
		return agenda.Window{}, errors.New("window must end after it starts")
	}
	return agenda.Window{Start: start, End: end}, nil
}

func (n *View) days(ctx context.Context, window agenda.Window) ([]agenda.Day, error) {
	var events []*event.Event
	if !n.RemindersOnly {
		all, err := n.Store.Events.List(ctx, store.EventFilter{
			Calendar: n.Calendar,
			From:     window.Start,
			To:       window.End,
		})
		if err != nil {
			return nil, err
		}
		events = event.ExpandWindow(all, window.Start, window.End)
	}

	rs, err := n.Store.Reminders.List(ctx, store.ReminderFilter{
		List:             n.List,
		From:             window.Start,
		To:               window.End,
		IncludeCompleted: n.IncludeCompleted,
	})
	if err != nil {
		return nil, err
	}
	if n.EventsOnly {
		rs = nil
	}

	items := agenda.Merge(events, rs, window, agenda.Filters{
		EventsOnly:       n.EventsOnly,
		RemindersOnly:    n.RemindersOnly,
		Calendar:         n.Calendar,
		List:             n.List,
		IncludeCompleted: n.IncludeCompleted,
	})
	return agenda.GroupByDay(items), nil
}
