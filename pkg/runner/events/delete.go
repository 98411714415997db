package events

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/store"
)

// Delete removes an event, or one occurrence of a recurring event when
// Span says this-only.
type Delete struct {
	ID   string
	Span string

	Store *store.Store
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete, no store")
	}
	span, err := store.ParseSpan(n.Span)
	if err != nil {
		return err
	}
	e, err := n.Store.Events.Get(ctx, n.ID)
	if err != nil {
		return err
	}
	title, err := n.Store.Events.Delete(ctx, n.ID, span)
	if err != nil {
		return err
	}
	if span == store.SpanThisOnly && e.Recurrence != nil {
		fmt.Printf("removed next occurrence of %q\n", title)
	} else {
		fmt.Printf("deleted %q\n", title)
	}
	return nil
}
