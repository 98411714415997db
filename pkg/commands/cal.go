package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/cal"
	"tableflip.dev/agenda/pkg/store"
)

func addCal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Manage calendars",
		Example: `
agenda cal list
agenda cal add work
agenda cal protect holidays
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List calendars",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := cal.List{JSON: oo.JSON, Plain: oo.Plain, Store: s}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	cmd.AddCommand(list)

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a calendar",
		Args:  requireName("calendar"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := cal.Add{Name: args[0], Store: s}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	cmd.AddCommand(add)

	remove := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an empty calendar",
		Args:  requireName("calendar"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := cal.Remove{Name: args[0], Store: s}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	cmd.AddCommand(remove)

	off := false
	protect := &cobra.Command{
		Use:   "protect <name>",
		Short: "Mark a calendar read-only",
		Args:  requireName("calendar"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := cal.Protect{Name: args[0], Off: off, Store: s}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	protect.Flags().BoolVar(&off, "off", false, "Make the calendar writable again.")
	cmd.AddCommand(protect)

	topLevel.AddCommand(cmd)
}

func requireName(kind string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if len(args) != 1 {
			return errors.New("requires a " + kind + " name")
		}
		return nil
	}
}
