// Package events provides the runner logic for calendar event commands.
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

// Create makes a new event from raw CLI input. End wins over Duration when
// both are given; an all-day event ignores both and spans the start's day.
type Create struct {
	Title    string
	Calendar string
	Location string
	Notes    string

	Start    string
	End      string
	Duration string
	AllDay   bool
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

func (n *Create) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not create, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	start, err := temporal.ParseTimePoint(n.Start, now)
	if err != nil {
		return err
	}

	var end time.Time
	switch {
	case n.AllDay:
		start = temporal.StartOfDay(start)
		end = temporal.EndOfDay(start)
	case n.End != "":
		end, err = temporal.ParseTimePoint(n.End, now)
		if err != nil {
			return err
		}
		if !end.After(start) {
			return errors.New("event must end after it starts")
		}
	case n.Duration != "":
		d, err := temporal.ParseDuration(n.Duration)
		if err != nil {
			return err
		}
		end = start.Add(d.Span)
	default:
		end = start.Add(time.Hour)
	}

	e := event.New(n.Calendar, n.Title, start, end)
	e.Location = n.Location
	e.Notes = n.Notes
	e.AllDay = n.AllDay

	if n.Alarm != "" {
		trigger, err := temporal.ParseAlarm(n.Alarm, &start, now)
		if err != nil {
			return err
		}
		e.Alarms = append(e.Alarms, trigger)
	}
	if n.Repeat != "" {
		rule, err := add.ParseRepeat(n.Repeat, n.Every, n.Until, n.Count, now)
		if err != nil {
			return err
		}
		e.Recurrence = rule
	}

	if err := n.Store.Events.Create(ctx, e); err != nil {
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
