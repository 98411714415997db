package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/view"
	"tableflip.dev/agenda/pkg/store"
)

func addViews(topLevel *cobra.Command) {
	addDayView(topLevel, "today", 1, "Show today's merged agenda")
	addDayView(topLevel, "week", 7, "Show the next seven days")
	addAgendaView(topLevel)
	addMonthView(topLevel)
}

func addDayView(topLevel *cobra.Command, use string, days int, short string) {
	so := &options.ScopeOptions{}
	eventsOnly := false
	remindersOnly := false

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := view.View{
				Days:             days,
				EventsOnly:       eventsOnly,
				RemindersOnly:    remindersOnly,
				Calendar:         so.Calendar,
				List:             so.List,
				IncludeCompleted: so.IncludeCompleted,
				JSON:             oo.JSON,
				Plain:            oo.Plain,
				Store:            s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	addViewFilterArgs(cmd, so, &eventsOnly, &remindersOnly)
	topLevel.AddCommand(cmd)
}

func addAgendaView(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}
	days := 7
	eventsOnly := false
	remindersOnly := false

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show the merged agenda for a window",
		Example: `
agenda agenda --from today --days 14
agenda agenda --from "next monday" --to "next friday"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := view.View{
				From:             so.From,
				To:               so.To,
				Days:             days,
				EventsOnly:       eventsOnly,
				RemindersOnly:    remindersOnly,
				Calendar:         so.Calendar,
				List:             so.List,
				IncludeCompleted: so.IncludeCompleted,
				JSON:             oo.JSON,
				Plain:            oo.Plain,
				Store:            s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	options.AddRangeArgs(cmd, so)
	cmd.Flags().IntVar(&days, "days", 7, "Window length in days when --to is not set.")
	addViewFilterArgs(cmd, so, &eventsOnly, &remindersOnly)

	topLevel.AddCommand(cmd)
}

func addMonthView(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}
	on := ""

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show a month grid with busy days marked",
		Example: `
agenda month
agenda month --on "next month"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := view.Month{
				On:       on,
				Calendar: so.Calendar,
				List:     so.List,
				JSON:     oo.JSON,
				Plain:    oo.Plain,
				Store:    s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Any date inside the month to show.")
	options.AddCalendarArg(cmd, so)
	options.AddListArg(cmd, so)

	topLevel.AddCommand(cmd)
}

func addViewFilterArgs(cmd *cobra.Command, so *options.ScopeOptions, eventsOnly, remindersOnly *bool) {
	options.AddCalendarArg(cmd, so)
	options.AddListArg(cmd, so)
	options.AddCompletedArg(cmd, so)
	cmd.Flags().BoolVar(eventsOnly, "events", false, "Show events only.")
	cmd.Flags().BoolVar(remindersOnly, "reminders", false, "Show reminders only.")
}
