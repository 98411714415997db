package view

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/temporal"
)

// Month renders a month grid with the busy days highlighted.
type Month struct {
	On string

	Calendar string
	List     string

	JSON  bool
	Plain bool

	Store *store.Store
	Now   time.Time
}

func (n *Month) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not view, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	on := now
	if n.On != "" {
		t, err := temporal.ParseTimePoint(n.On, now)
		if err != nil {
			return err
		}
		on = t
	}

	first := time.Date(on.Year(), on.Month(), 1, 0, 0, 0, 0, on.Location())
	v := &View{
		From:     first.Format("2006-01-02"),
		Days:     printers.DaysIn(on),
		Calendar: n.Calendar,
		List:     n.List,
		Store:    n.Store,
		Now:      now,
	}
	window, err := v.window(now)
	if err != nil {
		return err
	}
	days, err := v.days(ctx, window)
	if err != nil {
		return err
	}

	var items []agenda.Item
	for _, d := range days {
		items = append(items, d.Items...)
	}

	switch {
	case n.JSON:
		return printers.JSON(days)
	case n.Plain:
		printers.PlainDays(days)
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Month(on, items...)
	return nil
}
