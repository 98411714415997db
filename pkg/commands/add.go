package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/add"
	"tableflip.dev/agenda/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}
	wo := &options.WhenOptions{}
	ro := &options.RecurrenceOptions{}
	notes := ""
	priority := ""
	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reminder",
		Example: `
agenda add buy milk --due tomorrow
agenda add "water plants" --due "next saturday" --repeat weekly
agenda add "pay rent" --due "2026-09-01 9:00" --alarm 1d --priority high
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := add.Add{
				Title:    title,
				List:     so.List,
				Notes:    notes,
				Due:      wo.Due,
				Start:    wo.Start,
				Alarm:    wo.Alarm,
				Priority: priority,
				Repeat:   ro.Repeat,
				Every:    ro.Every,
				Until:    ro.Until,
				Count:    ro.Count,
				JSON:     oo.JSON,
				Plain:    oo.Plain,
				Store:    s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	options.AddListArg(cmd, so)
	options.AddDueArgs(cmd, wo)
	options.AddRecurrenceArgs(cmd, ro)
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority: low, medium, or high.")

	topLevel.AddCommand(cmd)
}
