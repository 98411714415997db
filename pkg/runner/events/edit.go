package events

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/runner/add"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/temporal"
)

// Edit patches an event. For a recurring event Span decides whether the
// change lands on the next occurrence only or on the whole series.
type Edit struct {
	ID   string
	Span string

	Title       string
	SetTitle    bool
	Location    string
	SetLocation bool
	Notes       string
	SetNotes    bool

	Start    string
	End      string
	Duration string
	Alarm    string

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

	span, err := store.ParseSpan(n.Span)
	if err != nil {
		return err
	}

	patch := store.EventPatch{}
	if n.SetTitle {
		patch.Title = &n.Title
	}
	if n.SetLocation {
		patch.Location = &n.Location
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
	switch {
	case n.End != "":
		end, err := temporal.ParseTimePoint(n.End, now)
		if err != nil {
			return err
		}
		patch.End = &end
	case n.Duration != "" && patch.Start != nil:
		d, err := temporal.ParseDuration(n.Duration)
		if err != nil {
			return err
		}
		end := patch.Start.Add(d.Span)
		patch.End = &end
	case n.Duration != "":
		current, err := n.Store.Events.Get(ctx, n.ID)
		if err != nil {
			return err
		}
		d, err := temporal.ParseDuration(n.Duration)
		if err != nil {
			return err
		}
		end := current.Start.Add(d.Span)
		patch.End = &end
	}
	if n.Alarm != "" {
		anchor := patch.Start
		if anchor == nil {
			current, err := n.Store.Events.Get(ctx, n.ID)
			if err != nil {
				return err
			}
			anchor = &current.Start.Time
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

	e, err := n.Store.Events.Update(ctx, n.ID, patch, span)
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
