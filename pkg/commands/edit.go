package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/edit"
	"tableflip.dev/agenda/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}
	wo := &options.WhenOptions{}
	ro := &options.RecurrenceOptions{}
	title := ""
	notes := ""
	priority := ""
	clearDue := false
	clearStart := false

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a reminder",
		Example: `
agenda edit 171dff69 --due "next monday"
agenda edit 171dff69 --title "new title" --clear-due
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
			run := edit.Edit{
				ID:         args[0],
				Title:      title,
				SetTitle:   cmd.Flags().Changed("title"),
				Notes:      notes,
				SetNotes:   cmd.Flags().Changed("notes"),
				List:       so.List,
				Due:        wo.Due,
				ClearDue:   clearDue,
				Start:      wo.Start,
				ClearStart: clearStart,
				Alarm:      wo.Alarm,
				Priority:   priority,
				SetPrio:    cmd.Flags().Changed("priority"),
				Repeat:     ro.Repeat,
				Every:      ro.Every,
				Until:      ro.Until,
				Count:      ro.Count,
				JSON:       oo.JSON,
				Plain:      oo.Plain,
				Store:      s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	options.AddListArg(cmd, so)
	options.AddDueArgs(cmd, wo)
	options.AddRecurrenceArgs(cmd, ro)
	cmd.Flags().StringVar(&title, "title", "", "New title.")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes.")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority: low, medium, or high.")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Drop the due date.")
	cmd.Flags().BoolVar(&clearStart, "clear-start", false, "Drop the start date.")

	topLevel.AddCommand(cmd)
}
