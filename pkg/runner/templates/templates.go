// Package templates provides the runner logic for saved item blueprints.
package templates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/runner/add"
	"tableflip.dev/agenda/pkg/runner/events"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/template"
)

// Save writes a template to the template directory.
type Save struct {
	Template *template.Template
	Force    bool

	Templates *template.Store
}

func (n *Save) Do(ctx context.Context) error {
	if n.Templates == nil {
		return errors.New("can not save, no template store")
	}
	if err := n.Templates.Save(n.Template, n.Force); err != nil {
		return err
	}
	fmt.Printf("saved template %q\n", n.Template.Name)
	return nil
}

// Use instantiates a template: placeholders are expanded against the
// current date plus any Variables, the temporal expressions re-resolved,
// and the resulting reminder or event created. Flag-level overrides win
// over template values.
type Use struct {
	Name      string
	Variables map[string]string

	// Overrides; empty means keep the template's value.
	Title string
	When  string

	JSON  bool
	Plain bool

	Templates *template.Store
	Store     *store.Store
	Now       time.Time
}

func (n *Use) Do(ctx context.Context) error {
	if n.Templates == nil {
		return errors.New("can not use, no template store")
	}
	if n.Store == nil {
		return errors.New("can not use, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	t, err := n.Templates.Load(n.Name)
	if err != nil {
		return err
	}

	ec := template.Context{ReferenceDate: now, Variables: n.Variables}
	title := template.Expand(t.Title, ec)
	if n.Title != "" {
		title = template.Expand(n.Title, ec)
	}
	notes := template.Expand(t.Notes, ec)

	switch t.Kind {
	case template.KindEvent:
		start := t.Start
		if n.When != "" {
			start = n.When
		}
		run := &events.Create{
			Title:    title,
			Calendar: t.Calendar,
			Notes:    notes,
			Start:    start,
			Duration: t.Duration,
			AllDay:   t.AllDay,
			Alarm:    t.Alarm,
			Repeat:   t.Repeat,
			Every:    t.Every,
			Until:    t.Until,
			Count:    t.Count,
			JSON:     n.JSON,
			Plain:    n.Plain,
			Store:    n.Store,
			Now:      now,
		}
		return run.Do(ctx)
	default:
		due := t.Due
		if n.When != "" {
			due = n.When
		}
		run := &add.Add{
			Title:    title,
			List:     t.List,
			Notes:    notes,
			Due:      due,
			Start:    t.Start,
			Alarm:    t.Alarm,
			Priority: t.Priority,
			Repeat:   t.Repeat,
			Every:    t.Every,
			Until:    t.Until,
			Count:    t.Count,
			JSON:     n.JSON,
			Plain:    n.Plain,
			Store:    n.Store,
			Now:      now,
		}
		return run.Do(ctx)
	}
}

// List prints the saved templates.
type List struct {
	JSON  bool
	Plain bool

	Templates *template.Store
}

func (n *List) Do(ctx context.Context) error {
	if n.Templates == nil {
		return errors.New("can not list, no template store")
	}
	all, err := n.Templates.List()
	if err != nil {
		return err
	}
	switch {
	case n.JSON:
		return printers.JSON(all)
	case n.Plain:
		printers.PlainTemplates(all)
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Templates(all...)
	return nil
}

// Show prints one template in detail.
type Show struct {
	Name string

	JSON  bool
	Plain bool

	Templates *template.Store
}

func (n *Show) Do(ctx context.Context) error {
	if n.Templates == nil {
		return errors.New("can not show, no template store")
	}
	t, err := n.Templates.Load(n.Name)
	if err != nil {
		return err
	}
	switch {
	case n.JSON:
		return printers.JSON(t)
	case n.Plain:
		printers.PlainTemplates([]*template.Template{t})
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.TemplateDetail(t)
	return nil
}

// Delete removes one template.
type Delete struct {
	Name string

	Templates *template.Store
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Templates == nil {
		return errors.New("can not delete, no template store")
	}
	if err := n.Templates.Delete(n.Name); err != nil {
		return err
	}
	fmt.Printf("deleted template %q\n", n.Name)
	return nil
}
