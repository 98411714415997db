// Package cal provides the runner logic for calendar name management.
package cal

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// List prints the known calendars and their protection state.
type List struct {
	JSON  bool
	Plain bool

	Store *store.Store
}

func (n *List) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list, no store")
	}
	cals, err := n.Store.Events.Calendars(ctx)
	if err != nil {
		return err
	}
	switch {
	case n.JSON:
		return printers.JSON(cals)
	case n.Plain:
		printers.PlainCalendars(cals)
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Calendars(cals...)
	return nil
}

// Add registers a calendar name.
type Add struct {
	Name string

	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	if err := n.Store.Events.EnsureCalendar(n.Name); err != nil {
		return err
	}
	fmt.Printf("calendar %q ready\n", n.Name)
	return nil
}

// Remove deletes an empty calendar.
type Remove struct {
	Name string

	Store *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}
	if err := n.Store.Events.RemoveCalendar(ctx, n.Name); err != nil {
		return err
	}
	fmt.Printf("removed calendar %q\n", n.Name)
	return nil
}

// Protect toggles the read-only bit on a calendar. Items in a protected
// calendar reject edits and deletes.
type Protect struct {
	Name string
	Off  bool

	Store *store.Store
}

func (n *Protect) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not protect, no store")
	}
	if err := n.Store.Events.SetProtected(n.Name, !n.Off); err != nil {
		return err
	}
	if n.Off {
		fmt.Printf("calendar %q is writable\n", n.Name)
	} else {
		fmt.Printf("calendar %q is protected\n", n.Name)
	}
	return nil
}
