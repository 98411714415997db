// Package event defines the calendar event record and its recurring
// occurrence projection.
package event

import (
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/recurrence"
	"tableflip.dev/agenda/pkg/temporal"
)

// Event is one calendar event as persisted. A recurring event stores its
// rule plus the bookkeeping for individual occurrences that were skipped
// or detached from the series.
type Event struct {
	ID       string `json:"id"`
	Calendar string `json:"calendar"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`

	Start  temporal.Timestamp `json:"start"`
	End    temporal.Timestamp `json:"end"`
	AllDay bool               `json:"allDay,omitempty"`

	Alarms     []temporal.AlarmTrigger `json:"alarms,omitempty"`
	Recurrence *recurrence.Rule        `json:"recurrence,omitempty"`

	// SkipDates are occurrence dates removed from the series.
	SkipDates []temporal.Timestamp `json:"skipDates,omitempty"`
	// Overrides are detached occurrences with their own fields.
	Overrides []Override `json:"overrides,omitempty"`

	Created temporal.Timestamp `json:"created"`
}

// Override captures the fields of a detached instance. Nil fields fall
// back to the parent event.
type Override struct {
	Date  temporal.Timestamp  `json:"date"`
	Title *string             `json:"title,omitempty"`
	Start *temporal.Timestamp `json:"start,omitempty"`
	End   *temporal.Timestamp `json:"end,omitempty"`
	Notes *string             `json:"notes,omitempty"`
}

func New(calendar, title string, start, end time.Time) *Event {
	return &Event{
		Calendar: calendar,
		Title:    title,
		Start:    temporal.Timestamp{Time: start},
		End:      temporal.Timestamp{Time: end},
		Created:  temporal.Timestamp{Time: time.Now()},
	}
}

// Duration returns the span between start and end.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start.Time)
}

// OverrideFor returns the detached instance for an occurrence date, if one
// exists. Matching is day-precise.
func (e *Event) OverrideFor(date time.Time) (Override, bool) {
	for _, o := range e.Overrides {
		if o.Date.SameDay(date) {
			return o, true
		}
	}
	return Override{}, false
}

// Skipped reports whether the occurrence on date was removed.
func (e *Event) Skipped(date time.Time) bool {
	for _, s := range e.SkipDates {
		if s.SameDay(date) {
			return true
		}
	}
	return false
}

// Occurrence is one concrete instance of an event inside a query window,
// after recurrence expansion and override application.
type Occurrence struct {
	EventID    string             `json:"eventId"`
	Date       temporal.Timestamp `json:"date"`
	Start      temporal.Timestamp `json:"start"`
	End        temporal.Timestamp `json:"end"`
	Title      string             `json:"title"`
	IsModified bool               `json:"isModified"`
}

func (e *Event) String() string {
	return fmt.Sprintf("%s (%s)", e.Title, e.Start.Format("2006-01-02 15:04"))
}
