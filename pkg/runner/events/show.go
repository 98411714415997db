package events

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/temporal"
)

// Show lists events, or prints one event in detail when ID is set.
type Show struct {
	ID       string
	Calendar string
	Search   string
	From     string
	To       string

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
		e, err := n.Store.Events.Get(ctx, n.ID)
		if err != nil {
			return err
		}
		switch {
		case n.JSON:
			return printers.JSON(e)
		case n.Plain:
			printers.PlainEvents([]*event.Event{e})
			return nil
		}
		pp := printers.PrettyPrint{ShowID: true}
		pp.EventDetail(e)
		return nil
	}

	f := store.EventFilter{Calendar: n.Calendar, Search: n.Search}
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

	all, err := n.Store.Events.List(ctx, f)
	if err != nil {
		return err
	}

	switch {
	case n.JSON:
		return printers.JSON(all)
	case n.Plain:
		printers.PlainEvents(all)
		return nil
	}
	pp := printers.PrettyPrint{ShowID: true}
	if n.Calendar != "" {
		pp.Title(n.Calendar)
	}
	pp.Events(all...)
	return nil
}
