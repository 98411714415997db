package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/remove"
	"tableflip.dev/agenda/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a reminder",
		Example: `
agenda delete 171dff69
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a reminder id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := remove.Remove{
				ID:    args[0],
				Store: s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}
