package options

import (
	"github.com/spf13/cobra"
)

// WhenOptions collects the free-text temporal flags. The values stay
// unparsed here; runners resolve them against the current clock.
type WhenOptions struct {
	Due      string
	Start    string
	End      string
	Duration string
	Alarm    string
	AllDay   bool
}

func AddDueArgs(cmd *cobra.Command, o *WhenOptions) {
	cmd.Flags().StringVar(&o.Due, "due", "",
		`When the reminder is due, example: --due="next friday".`)
	cmd.Flags().StringVar(&o.Start, "start", "",
		`When work can start, example: --start="in 2 days".`)
	AddAlarmArg(cmd, o)
}

func AddEventArgs(cmd *cobra.Command, o *WhenOptions) {
	cmd.Flags().StringVar(&o.Start, "at", "",
		`When the event starts, example: --at="tomorrow 9:00am".`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`When the event ends; wins over --for.`)
	cmd.Flags().StringVar(&o.Duration, "for", "",
		`How long the event runs, example: --for=1h30m.`)
	cmd.Flags().BoolVar(&o.AllDay, "all-day", false,
		"Make an all-day event.")
	AddAlarmArg(cmd, o)
}

func AddAlarmArg(cmd *cobra.Command, o *WhenOptions) {
	cmd.Flags().StringVar(&o.Alarm, "alarm", "",
		`Alarm expression, example: --alarm=10m or --alarm="1d 9:00".`)
}
