package events

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/temporal"
)

// Instances lists the concrete occurrences of a recurring event inside a
// window, skips excluded and overrides applied.
type Instances struct {
	ID    string
	From  string
	To    string
	Limit int

	JSON  bool
	Plain bool

	Store *store.Store
	Now   time.Time
}

func (n *Instances) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list instances, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	from := temporal.StartOfDay(now)
	if n.From != "" {
		t, err := temporal.ParseTimePoint(n.From, now)
		if err != nil {
			return err
		}
		from = temporal.StartOfDay(t)
	}
	to := from.AddDate(0, 3, 0)
	if n.To != "" {
		t, err := temporal.ParseTimePoint(n.To, now)
		if err != nil {
			return err
		}
		to = temporal.EndOfDay(t)
	}

	occs, err := n.Store.Events.ListOccurrences(ctx, n.ID, from, to, n.Limit)
	if err != nil {
		return err
	}

	switch {
	case n.JSON:
		return printers.JSON(occs)
	case n.Plain:
		printers.PlainOccurrences(occs)
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Occurrences(occs...)
	return nil
}
