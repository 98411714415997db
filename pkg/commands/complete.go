package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/complete"
	"tableflip.dev/agenda/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a reminder done",
		Example: `
agenda complete 171dff69
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
			run := complete.Complete{
				ID:    args[0],
				JSON:  oo.JSON,
				Plain: oo.Plain,
				Store: s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)

	undo := &cobra.Command{
		Use:   "uncomplete <id>",
		Short: "Reopen a completed reminder",
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
			run := complete.Complete{
				ID:    args[0],
				Undo:  true,
				JSON:  oo.JSON,
				Plain: oo.Plain,
				Store: s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	topLevel.AddCommand(undo)
}
