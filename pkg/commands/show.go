package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/show"
	"tableflip.dev/agenda/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show reminders",
		Example: `
agenda show
agenda show --list chores
agenda show 171dff69
agenda show --from today --to "next friday"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			run := show.Show{
				List:             so.List,
				Search:           so.Search,
				From:             so.From,
				To:               so.To,
				IncludeCompleted: so.IncludeCompleted,
				JSON:             oo.JSON,
				Plain:            oo.Plain,
				Store:            s,
			}
			if len(args) == 1 {
				run.ID = args[0]
			}
			return oo.HandleError(run.Do(context.Background()))
		},
	}

	options.AddListArg(cmd, so)
	options.AddRangeArgs(cmd, so)
	options.AddSearchArg(cmd, so)
	options.AddCompletedArg(cmd, so)

	topLevel.AddCommand(cmd)
}
