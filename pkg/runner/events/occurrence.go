package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/temporal"
)

// Skip excludes one date from a recurring series.
type Skip struct {
	ID   string
	Date string

	Store *store.Store
	Now   time.Time
}

func (n *Skip) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not skip, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	date, err := temporal.ParseTimePoint(n.Date, now)
	if err != nil {
		return err
	}
	if err := n.Store.Events.SkipOccurrence(ctx, n.ID, date); err != nil {
		return err
	}
	fmt.Printf("skipping %s\n", date.Format("2006-01-02"))
	return nil
}

// Modify overrides one occurrence of a recurring series without touching
// the rest.
type Modify struct {
	ID   string
	Date string

	Title    string
	SetTitle bool
	Notes    string
	SetNotes bool
	Start    string
	End      string

	JSON  bool
	Plain bool

	Store *store.Store
	Now   time.Time
}

func (n *Modify) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not modify, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	date, err := temporal.ParseTimePoint(n.Date, now)
	if err != nil {
		return err
	}

	patch := store.EventPatch{}
	if n.SetTitle {
		patch.Title = &n.Title
	}
	if n.SetNotes {
		patch.Notes = &n.Notes
	}
	if n.Start != "" {
		start, err := temporal.ParseTimePoint(n.Start, now)
		if err != nil {
			return err
		}
		patch.Start = &start
	}
	if n.End != "" {
		end, err := temporal.ParseTimePoint(n.End, now)
		if err != nil {
			return err
		}
		patch.End = &end
	}

	e, err := n.Store.Events.ModifyOccurrence(ctx, n.ID, date, patch)
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
