// Package printers renders agenda output in the three CLI modes: pretty
// (ANSI tables), JSON, and plain tab-separated text.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/glyph"
	"tableflip.dev/agenda/pkg/reminder"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/template"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69  "))
)

const (
	layoutDay   = "Monday, January 2"
	layoutClock = "15:04"
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Agenda prints day buckets the way a journal page reads: a dated
// heading, then one row per item.
func (pp *PrettyPrint) Agenda(days []agenda.Day) {
	if len(days) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing scheduled\n\n")
		return
	}
	for _, day := range days {
		if day.Date.IsZero() {
			pp.Title("Unscheduled")
		} else {
			pp.Title(day.Date.Format(layoutDay))
		}
		pp.Items(day.Items...)
	}
}

// Items prints merged agenda rows.
func (pp *PrettyPrint) Items(items ...agenda.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "
	for _, item := range items {
		tbl.AddRow(pp.itemRow(item)...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) itemRow(item agenda.Item) []interface{} {
	row := make([]interface{}, 0, 6)
	if pp.ShowID {
		row = append(row, color.New(color.FgHiYellow, color.Faint).Sprint(item.ID))
	}
	row = append(row, signifiers(item), bullet(item))

	switch {
	case item.Unscheduled:
		row = append(row, color.New(color.Faint).Sprint("--:--"))
	case item.AllDay:
		row = append(row, "all-day")
	default:
		clock := item.At.Format(layoutClock)
		if item.Kind == agenda.KindEvent && item.Until != nil {
			clock = fmt.Sprintf("%s-%s", clock, item.Until.Format(layoutClock))
		}
		row = append(row, clock)
	}

	title := item.Title
	if item.Completed != nil && *item.Completed {
		title = glyph.Strike(title)
	}
	row = append(row, title)
	row = append(row, color.New(color.Faint).Sprint(item.Source))
	return row
}

func bullet(item agenda.Item) string {
	switch {
	case item.Kind == agenda.KindReminder && item.Completed != nil && *item.Completed:
		return glyph.Completed.String()
	case item.Kind == agenda.KindReminder:
		return glyph.Reminder.String()
	default:
		return glyph.Event.String()
	}
}

func signifiers(item agenda.Item) string {
	switch {
	case item.Priority == reminder.PriorityHigh:
		return glyph.Priority.String()
	case item.HasAlarm:
		return glyph.Alarm.String()
	case item.HasRepeat:
		return glyph.Repeat.String()
	}
	return glyph.None.String()
}

// Events prints a raw event listing.
func (pp *PrettyPrint) Events(events ...*event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = " "
	for _, e := range events {
		row := make([]interface{}, 0, 6)
		if pp.ShowID {
			row = append(row, color.New(color.FgHiYellow, color.Faint).Sprint(e.ID))
		}
		when := e.Start.Format("2006-01-02 15:04")
		if e.AllDay {
			when = e.Start.Format("2006-01-02") + " all-day"
		}
		sig := glyph.None.String()
		if e.Recurrence != nil {
			sig = glyph.Repeat.String()
		}
		row = append(row, sig, glyph.Event.String(), when, e.Title,
			color.New(color.Faint).Sprint(e.Calendar))
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// EventDetail prints one event with all its fields.
func (pp *PrettyPrint) EventDetail(e *event.Event) {
	pp.Title(e.Title)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("id", e.ID)
	tbl.AddRow("calendar", e.Calendar)
	if e.AllDay {
		tbl.AddRow("date", e.Start.Format("2006-01-02"))
	} else {
		tbl.AddRow("start", e.Start.Format("2006-01-02 15:04"))
		tbl.AddRow("end", e.End.Format("2006-01-02 15:04"))
	}
	if e.Location != "" {
		tbl.AddRow("location", e.Location)
	}
	if e.Recurrence != nil {
		tbl.AddRow("repeats", e.Recurrence.Describe())
	}
	for _, a := range e.Alarms {
		tbl.AddRow("alarm", a.Describe())
	}
	if e.Notes != "" {
		tbl.AddRow("notes", e.Notes)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Reminders prints a raw reminder listing.
func (pp *PrettyPrint) Reminders(reminders ...*reminder.Reminder) {
	if len(reminders) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = " "
	for i, r := range reminders {
		row := make([]interface{}, 0, 7)
		if pp.ShowID {
			row = append(row, color.New(color.FgHiYellow, color.Faint).Sprint(r.ID))
		}
		sig := glyph.None.String()
		switch {
		case r.Priority == reminder.PriorityHigh:
			sig = glyph.Priority.String()
		case len(r.Alarms) > 0:
			sig = glyph.Alarm.String()
		case r.Recurrence != nil:
			sig = glyph.Repeat.String()
		}
		b := glyph.Reminder.String()
		title := r.Title
		if r.Completed {
			b = glyph.Completed.String()
			title = glyph.Strike(title)
		}
		when := ""
		if at, ok := r.When(); ok {
			when = at.Format("2006-01-02 15:04")
		}
		row = append(row, fmt.Sprintf("%d.", i+1), sig, b, when, title,
			color.New(color.Faint).Sprint(r.List))
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Occurrences prints the materialized instances of one series.
func (pp *PrettyPrint) Occurrences(occs ...event.Occurrence) {
	if len(occs) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = " "
	for _, o := range occs {
		mark := " "
		if o.IsModified {
			mark = glyph.Priority.String()
		}
		tbl.AddRow(mark, glyph.Event.String(),
			o.Start.Format("2006-01-02 15:04"),
			o.End.Format("15:04"),
			o.Title)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Calendars prints the calendar names with their protection flag.
func (pp *PrettyPrint) Calendars(cals ...store.Calendar) {
	tbl := uitable.New()
	tbl.Separator = " "
	for _, c := range cals {
		note := ""
		if c.Protected {
			note = color.New(color.Faint).Sprint("read-only")
		}
		tbl.AddRow(c.Name, note)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Templates prints saved template summaries.
func (pp *PrettyPrint) Templates(ts ...*template.Template) {
	if len(ts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = " "
	for _, t := range ts {
		tbl.AddRow(t.Name, string(t.Kind), t.Title)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// TemplateDetail prints one template with all its fields.
func (pp *PrettyPrint) TemplateDetail(t *template.Template) {
	pp.Title(t.Name)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("kind", string(t.Kind))
	tbl.AddRow("title", t.Title)
	rows := []struct{ label, value string }{
		{"calendar", t.Calendar},
		{"list", t.List},
		{"start", t.Start},
		{"due", t.Due},
		{"duration", t.Duration},
		{"alarm", t.Alarm},
		{"repeat", t.Repeat},
		{"until", t.Until},
		{"priority", t.Priority},
		{"notes", t.Notes},
	}
	for _, r := range rows {
		if r.value != "" {
			tbl.AddRow(r.label, r.value)
		}
	}
	if len(t.Variables) > 0 {
		tbl.AddRow("variables", strings.Join(t.Variables, ", "))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
