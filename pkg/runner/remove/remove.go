// Package remove provides the runner logic for deleting reminders.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/store"
)

// Remove deletes one reminder by ID.
type Remove struct {
	ID string

	Store *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}
	title, err := n.Store.Reminders.Delete(ctx, n.ID)
	if err != nil {
		return err
	}
	fmt.Printf("deleted %q\n", title)
	return nil
}
