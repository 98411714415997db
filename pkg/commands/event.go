package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/events"
	"tableflip.dev/agenda/pkg/store"
)

func addEvent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
		Example: `
agenda event create standup --at "tomorrow 9:30am" --for 15m --repeat daily
agenda event show
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventCreate(cmd)
	addEventShow(cmd)
	addEventEdit(cmd)
	addEventDelete(cmd)
	addEventCopy(cmd)
	addEventSkip(cmd)
	addEventModify(cmd)
	addEventInstances(cmd)

	topLevel.AddCommand(cmd)
}

func addEventCreate(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}
	wo := &options.WhenOptions{}
	ro := &options.RecurrenceOptions{}
	location := ""
	notes := ""
	title := ""

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create an event",
		Example: `
agenda event create standup --at "tomorrow 9:30am" --for 15m
agenda event create "conference" --at 6/1 --all-day --calendar work
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
			if wo.Start == "" {
				return errors.New("requires --at")
			}
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := events.Create{
				Title:    title,
				Calendar: so.Calendar,
				Location: location,
				Notes:    notes,
				Start:    wo.Start,
				End:      wo.End,
				Duration: wo.Duration,
				AllDay:   wo.AllDay,
				Alarm:    wo.Alarm,
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

	options.AddCalendarArg(cmd, so)
	options.AddEventArgs(cmd, wo)
	options.AddRecurrenceArgs(cmd, ro)
	cmd.Flags().StringVar(&location, "location", "", "Where the event happens.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")

	topLevel.AddCommand(cmd)
}

func addEventShow(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show events",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := events.Show{
				Calendar: so.Calendar,
				Search:   so.Search,
				From:     so.From,
				To:       so.To,
				JSON:     oo.JSON,
				Plain:    oo.Plain,
				Store:    s,
			}
			if len(args) == 1 {
				run.ID = args[0]
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	options.AddCalendarArg(cmd, so)
	options.AddRangeArgs(cmd, so)
	options.AddSearchArg(cmd, so)

	topLevel.AddCommand(cmd)
}

func addEventEdit(topLevel *cobra.Command) {
	wo := &options.WhenOptions{}
	ro := &options.RecurrenceOptions{}
	po := &options.SpanOptions{}
	title := ""
	location := ""
	notes := ""

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an event",
		Example: `
agenda event edit 171dff69 --at "friday 10:00am"
agenda event edit 171dff69 --title "new title" --span future
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires an event id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := events.Edit{
				ID:          args[0],
				Span:        po.Span,
				Title:       title,
				SetTitle:    cmd.Flags().Changed("title"),
				Location:    location,
				SetLocation: cmd.Flags().Changed("location"),
				Notes:       notes,
				SetNotes:    cmd.Flags().Changed("notes"),
				Start:       wo.Start,
				End:         wo.End,
				Duration:    wo.Duration,
				Alarm:       wo.Alarm,
				Repeat:      ro.Repeat,
				Every:       ro.Every,
				Until:       ro.Until,
				Count:       ro.Count,
				JSON:        oo.JSON,
				Plain:       oo.Plain,
				Store:       s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	options.AddEventArgs(cmd, wo)
	options.AddRecurrenceArgs(cmd, ro)
	options.AddSpanArg(cmd, po)
	cmd.Flags().StringVar(&title, "title", "", "New title.")
	cmd.Flags().StringVar(&location, "location", "", "New location.")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes.")

	topLevel.AddCommand(cmd)
}

func addEventDelete(topLevel *cobra.Command) {
	po := &options.SpanOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an event",
		Example: `
agenda event delete 171dff69
agenda event delete 171dff69 --span this
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires an event id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			span := po.Span
			if !cmd.Flags().Changed("span") {
				// A bare delete removes the whole series.
				span = "future"
			}
			run := events.Delete{
				ID:    args[0],
				Span:  span,
				Store: s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	options.AddSpanArg(cmd, po)
	topLevel.AddCommand(cmd)
}

func addEventCopy(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}
	at := ""

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Duplicate an event",
		Example: `
agenda event copy 171dff69 --at "next tuesday 2:00pm"
agenda event copy 171dff69 --calendar personal
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires an event id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := events.Copy{
				ID:       args[0],
				Calendar: so.Calendar,
				Start:    at,
				JSON:     oo.JSON,
				Plain:    oo.Plain,
				Store:    s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	options.AddCalendarArg(cmd, so)
	cmd.Flags().StringVar(&at, "at", "", "Start time for the copy.")

	topLevel.AddCommand(cmd)
}

func addEventSkip(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "skip <id> <date>",
		Short: "Skip one occurrence of a recurring event",
		Example: `
agenda event skip 171dff69 "next monday"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires an event id and a date")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := events.Skip{
				ID:    args[0],
				Date:  strings.Join(args[1:], " "),
				Store: s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addEventModify(topLevel *cobra.Command) {
	title := ""
	notes := ""
	at := ""
	end := ""

	cmd := &cobra.Command{
		Use:   "modify <id> <date>",
		Short: "Override one occurrence of a recurring event",
		Example: `
agenda event modify 171dff69 "next monday" --at "next monday 10:00am"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires an event id and a date")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := events.Modify{
				ID:       args[0],
				Date:     strings.Join(args[1:], " "),
				Title:    title,
				SetTitle: cmd.Flags().Changed("title"),
				Notes:    notes,
				SetNotes: cmd.Flags().Changed("notes"),
				Start:    at,
				End:      end,
				JSON:     oo.JSON,
				Plain:    oo.Plain,
				Store:    s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title for this occurrence only.")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes for this occurrence only.")
	cmd.Flags().StringVar(&at, "at", "", "Start time for this occurrence only.")
	cmd.Flags().StringVar(&end, "end", "", "End time for this occurrence only.")

	topLevel.AddCommand(cmd)
}

func addEventInstances(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}
	limit := 0

	cmd := &cobra.Command{
		Use:   "instances <id>",
		Short: "List the occurrences of a recurring event",
		Example: `
agenda event instances 171dff69 --to "next month"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires an event id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := events.Instances{
				ID:    args[0],
				From:  so.From,
				To:    so.To,
				Limit: limit,
				JSON:  oo.JSON,
				Plain: oo.Plain,
				Store: s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	options.AddRangeArgs(cmd, so)
	cmd.Flags().IntVar(&limit, "limit", 0, "Cap the number of occurrences.")

	topLevel.AddCommand(cmd)
}
