// Package lists provides the runner logic for reminder list names.
package lists

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// Lists prints each reminder list name currently in use.
type Lists struct {
	JSON  bool
	Plain bool

	Store *store.Store
}

func (n *Lists) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list, no store")
	}
	names, err := n.Store.Reminders.Lists(ctx)
	if err != nil {
		return err
	}
	switch {
	case n.JSON:
		return printers.JSON(names)
	case n.Plain:
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}
	pp := printers.PrettyPrint{}
	for _, name := range names {
		pp.Title(name)
	}
	return nil
}
