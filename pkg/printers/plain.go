package printers

import (
	"fmt"
	"os"
	"strings"
	"time"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/reminder"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/template"
)

// The plain mode writes one record per line, tab-separated, with RFC3339
// timestamps. It carries no ANSI decoration regardless of TERM.

func plainRow(fields ...string) {
	fmt.Fprintln(os.Stdout, strings.Join(fields, "\t"))
}

func plainTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// PlainDays emits merged agenda items, one per line.
func PlainDays(days []agenda.Day) {
	for _, day := range days {
		for _, item := range day.Items {
			completed := ""
			if item.Completed != nil {
				completed = fmt.Sprintf("%t", *item.Completed)
			}
			plainRow(item.Kind.String(), item.ID, plainTime(item.At.Time), item.Title, item.Source, completed)
		}
	}
}

// PlainEvents emits events, one per line.
func PlainEvents(events []*event.Event) {
	for _, e := range events {
		plainRow("event", e.ID, plainTime(e.Start.Time), plainTime(e.End.Time), e.Title, e.Calendar)
	}
}

// PlainReminders emits reminders, one per line.
func PlainReminders(reminders []*reminder.Reminder) {
	for _, r := range reminders {
		at := ""
		if when, ok := r.When(); ok {
			at = plainTime(when)
		}
		plainRow("reminder", r.ID, at, r.Title, r.List, fmt.Sprintf("%t", r.Completed))
	}
}

// PlainOccurrences emits series instances, one per line.
func PlainOccurrences(occs []event.Occurrence) {
	for _, o := range occs {
		plainRow(o.EventID, plainTime(o.Start.Time), plainTime(o.End.Time), o.Title, fmt.Sprintf("%t", o.IsModified))
	}
}

// PlainCalendars emits calendar names, one per line.
func PlainCalendars(cals []store.Calendar) {
	for _, c := range cals {
		plainRow(c.Name, fmt.Sprintf("%t", c.Protected))
	}
}

// PlainTemplates emits template summaries, one per line.
func PlainTemplates(ts []*template.Template) {
	for _, t := range ts {
		plainRow(t.Name, string(t.Kind), t.Title)
	}
}
