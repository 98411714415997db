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

// Copy duplicates an event under a new ID, optionally into another
// calendar or onto a new start time. The copy keeps the original's length.
type Copy struct {
	ID       string
	Calendar string
	Start    string

	JSON  bool
	Plain bool

	Store *store.Store
	Now   time.Time
}

func (n *Copy) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not copy, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	var newStart *time.Time
	if n.Start != "" {
		start, err := temporal.ParseTimePoint(n.Start, now)
		if err != nil {
			return err
		}
		newStart = &start
	}

	e, err := n.Store.Events.Copy(ctx, n.ID, n.Calendar, newStart)
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
