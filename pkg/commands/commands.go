// Package commands wires the CLI surface to the runner packages.
package commands

import (
	"os"

	"github.com/fatih/color"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/template"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {
	// Dumb terminals get no ANSI in pretty mode.
	if term := os.Getenv("TERM"); term == "" || term == "dumb" {
		color.NoColor = true
	}

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: base.Wrap80("Reminders and calendar events with free-text dates, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArgs(cmd, oo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addShow(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addComplete(topLevel)
	addEvent(topLevel)
	addCal(topLevel)
	addLists(topLevel)
	addTemplate(topLevel)
	addViews(topLevel)
	addVersion(topLevel)
}

func templateStore() (*template.Store, error) {
	dir, err := template.DefaultDir()
	if err != nil {
		return nil, err
	}
	return template.NewStore(dir)
}
