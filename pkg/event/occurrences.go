package event

import (
	"fmt"
	"os"
	"time"

	"tableflip.dev/agenda/pkg/recurrence"
	"tableflip.dev/agenda/pkg/temporal"
)

// Occurrences materializes the event inside [from, to), applying skip
// dates and detached instances. A one-off event yields at most one
// occurrence.
func Occurrences(e *Event, from, to time.Time, limit int) ([]Occurrence, error) {
	skips := make([]time.Time, 0, len(e.SkipDates))
	for _, s := range e.SkipDates {
		skips = append(skips, s.Time)
	}
	starts, err := recurrence.Expand(e.Recurrence, e.Start.Time, from, to, skips, limit)
	if err != nil {
		return nil, err
	}

	span := e.Duration()
	out := make([]Occurrence, 0, len(starts))
	for _, start := range starts {
		occ := Occurrence{
			EventID: e.ID,
			Date:    temporal.Timestamp{Time: temporal.StartOfDay(start)},
			Start:   temporal.Timestamp{Time: start},
			End:     temporal.Timestamp{Time: start.Add(span)},
			Title:   e.Title,
		}
		if o, ok := e.OverrideFor(start); ok {
			occ.IsModified = true
			if o.Title != nil {
				occ.Title = *o.Title
			}
			if o.Start != nil {
				occ.Start = *o.Start
			}
			if o.End != nil {
				occ.End = *o.End
			}
		}
		out = append(out, occ)
	}
	return out, nil
}

// ExpandWindow projects a fetched event list into concrete per-occurrence
// events inside [from, to). Recurring events fan out into copies carrying
// the occurrence start and end; one-off events pass through when they
// intersect the window. Expansion failures skip the series rather than
// aborting the whole view.
func ExpandWindow(events []*Event, from, to time.Time) []*Event {
	out := make([]*Event, 0, len(events))
	for _, e := range events {
		if e.Recurrence == nil {
			if !e.Start.Before(from) && e.Start.Before(to) {
				out = append(out, e)
			}
			continue
		}
		occs, err := Occurrences(e, from, to, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", e.ID, err)
			continue
		}
		for _, occ := range occs {
			dup := *e
			dup.Title = occ.Title
			dup.Start = occ.Start
			dup.End = occ.End
			out = append(out, &dup)
		}
	}
	return out
}
