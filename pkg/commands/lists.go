package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/lists"
	"tableflip.dev/agenda/pkg/store"
)

func addLists(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Show reminder list names",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := lists.Lists{JSON: oo.JSON, Plain: oo.Plain, Store: s}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}
