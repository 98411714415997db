// Package agenda merges independently fetched events and reminders into
// one chronologically ordered, day-grouped view. Everything here is a pure
// projection; the store is never touched.
package agenda

import (
	"sort"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/reminder"
	"tableflip.dev/agenda/pkg/temporal"
)

// Kind discriminates the source domain of a merged item.
type Kind int

const (
	KindEvent Kind = iota
	KindReminder
)

// MarshalJSON emits the kind name rather than its ordinal.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

func (k Kind) String() string {
	if k == KindEvent {
		return "event"
	}
	return "reminder"
}

// Item is the unified projection of one event or reminder for display.
// It exists only for the duration of one render and is never persisted.
type Item struct {
	Kind  Kind   `json:"kind"`
	ID    string `json:"id"`
	Title string `json:"title"`

	At    temporal.Timestamp  `json:"at"`
	Until *temporal.Timestamp `json:"until,omitempty"`

	AllDay      bool   `json:"allDay,omitempty"`
	Completed   *bool  `json:"completed,omitempty"`
	Source      string `json:"source"`
	HasAlarm    bool   `json:"hasAlarm,omitempty"`
	HasRepeat   bool   `json:"hasRepeat,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Unscheduled bool   `json:"unscheduled,omitempty"`
}

// Window is the half-open query interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Filters narrow the merged view before projection.
type Filters struct {
	EventsOnly       bool
	RemindersOnly    bool
	Calendar         string
	List             string
	IncludeCompleted bool
}

// Merge combines events and reminders into one sequence ordered by
// ascending time. Items sharing an instant keep events before reminders,
// and otherwise preserve their fetch order. Reminders with no date at all
// are always surfaced, after every scheduled item.
func Merge(events []*event.Event, reminders []*reminder.Reminder, window Window, f Filters) []Item {
	items := make([]Item, 0, len(events)+len(reminders))

	if !f.RemindersOnly {
		for _, e := range events {
			if f.Calendar != "" && e.Calendar != f.Calendar {
				continue
			}
			if !window.Contains(e.Start.Time) {
				continue
			}
			until := e.End
			items = append(items, Item{
				Kind:      KindEvent,
				ID:        e.ID,
				Title:     e.Title,
				At:        e.Start,
				Until:     &until,
				AllDay:    e.AllDay,
				Source:    e.Calendar,
				HasAlarm:  len(e.Alarms) > 0,
				HasRepeat: e.Recurrence != nil,
			})
		}
	}

	if !f.EventsOnly {
		for _, r := range reminders {
			if f.List != "" && r.List != f.List {
				continue
			}
			if !f.IncludeCompleted && r.Completed {
				continue
			}
			at, scheduled := r.When()
			if scheduled && !window.Contains(at) {
				continue
			}
			completed := r.Completed
			items = append(items, Item{
				Kind:        KindReminder,
				ID:          r.ID,
				Title:       r.Title,
				At:          temporal.Timestamp{Time: at},
				Completed:   &completed,
				Source:      r.List,
				HasAlarm:    len(r.Alarms) > 0,
				HasRepeat:   r.Recurrence != nil,
				Priority:    r.Priority,
				Unscheduled: !scheduled,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		left, right := items[i], items[j]
		if left.Unscheduled != right.Unscheduled {
			return right.Unscheduled
		}
		if left.Unscheduled {
			return false
		}
		if !left.At.Equal(right.At.Time) {
			return left.At.Before(right.At.Time)
		}
		return left.Kind < right.Kind
	})
	return items
}

// Day is one display bucket: all items sharing a calendar day, already in
// merge order. The zero Date bucket collects unscheduled reminders.
type Day struct {
	Date  time.Time `json:"date"`
	Items []Item    `json:"items"`
}

// GroupByDay partitions a merged sequence into day buckets using the
// local day boundary. Buckets come out in ascending date order with the
// unscheduled bucket, if any, last.
func GroupByDay(items []Item) []Day {
	var days []Day
	var unscheduled []Item

	for _, item := range items {
		if item.Unscheduled {
			unscheduled = append(unscheduled, item)
			continue
		}
		date := temporal.StartOfDay(item.At.Time)
		if n := len(days); n > 0 && days[n-1].Date.Equal(date) {
			days[n-1].Items = append(days[n-1].Items, item)
			continue
		}
		days = append(days, Day{Date: date, Items: []Item{item}})
	}

	if len(unscheduled) > 0 {
		days = append(days, Day{Items: unscheduled})
	}
	return days
}
