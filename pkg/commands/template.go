package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/templates"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/template"
)

func addTemplate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage item templates",
		Example: `
agenda template save weekly-report --kind reminder --title "report {week}" --due "next friday" --repeat weekly
agenda template use weekly-report
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTemplateSave(cmd)
	addTemplateUse(cmd)
	addTemplateList(cmd)
	addTemplateShow(cmd)
	addTemplateDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addTemplateSave(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}
	wo := &options.WhenOptions{}
	ro := &options.RecurrenceOptions{}
	t := &template.Template{}
	variables := []string{}
	force := false

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a template",
		Args:  requireName("template"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ts, err := templateStore()
			if err != nil {
				return err
			}
			t.Name = args[0]
			t.Calendar = so.Calendar
			t.List = so.List
			t.Start = wo.Start
			t.Due = wo.Due
			t.Duration = wo.Duration
			t.Alarm = wo.Alarm
			t.AllDay = wo.AllDay
			t.Repeat = ro.Repeat
			t.Every = ro.Every
			t.Until = ro.Until
			t.Count = ro.Count
			t.Variables = variables
			run := templates.Save{Template: t, Force: force, Templates: ts}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	options.AddCalendarArg(cmd, so)
	options.AddListArg(cmd, so)
	options.AddRecurrenceArgs(cmd, ro)
	cmd.Flags().StringVar((*string)(&t.Kind), "kind", "reminder", "Template kind: reminder or event.")
	cmd.Flags().StringVar(&t.Title, "title", "", "Title, may contain {placeholders}.")
	cmd.Flags().StringVar(&t.Notes, "notes", "", "Notes, may contain {placeholders}.")
	cmd.Flags().StringVar(&wo.Due, "due", "", "Due expression, resolved at use time.")
	cmd.Flags().StringVar(&wo.Start, "at", "", "Start expression, resolved at use time.")
	cmd.Flags().StringVar(&wo.Duration, "for", "", "Event length, example: 1h30m.")
	cmd.Flags().StringVar(&wo.Alarm, "alarm", "", "Alarm expression.")
	cmd.Flags().BoolVar(&wo.AllDay, "all-day", false, "All-day event.")
	cmd.Flags().StringVar(&t.Priority, "priority", "", "Priority: low, medium, or high.")
	cmd.Flags().StringSliceVar(&variables, "var", nil, "Custom placeholder name, repeatable.")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing template.")

	topLevel.AddCommand(cmd)
}

func addTemplateUse(topLevel *cobra.Command) {
	title := ""
	when := ""
	vars := []string{}

	cmd := &cobra.Command{
		Use:   "use <name>",
		Short: "Create an item from a template",
		Example: `
agenda template use weekly-report
agenda template use standup --when "tomorrow 9:00am" --var project=atlas
`,
		Args: requireName("template"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ts, err := templateStore()
			if err != nil {
				return err
			}
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			variables := map[string]string{}
			for _, v := range vars {
				name, value, ok := strings.Cut(v, "=")
				if !ok {
					return fmt.Errorf("bad --var %q, want name=value", v)
				}
				variables[name] = value
			}
			run := templates.Use{
				Name:      args[0],
				Variables: variables,
				Title:     title,
				When:      when,
				JSON:      oo.JSON,
				Plain:     oo.Plain,
				Templates: ts,
				Store:     s,
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Override the template title.")
	cmd.Flags().StringVar(&when, "when", "", "Override the template due/start expression.")
	cmd.Flags().StringSliceVar(&vars, "var", nil, "Placeholder value as name=value, repeatable.")

	topLevel.AddCommand(cmd)
}

func addTemplateList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ts, err := templateStore()
			if err != nil {
				return err
			}
			run := templates.List{JSON: oo.JSON, Plain: oo.Plain, Templates: ts}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addTemplateShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one template",
		Args:  requireName("template"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ts, err := templateStore()
			if err != nil {
				return err
			}
			run := templates.Show{Name: args[0], JSON: oo.JSON, Plain: oo.Plain, Templates: ts}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addTemplateDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a template",
		Args:    requireName("template"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ts, err := templateStore()
			if err != nil {
				return err
			}
			run := templates.Delete{Name: args[0], Templates: ts}
			return oo.HandleError(run.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}
