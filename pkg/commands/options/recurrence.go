package options

import (
	"github.com/spf13/cobra"
)

// RecurrenceOptions collects the repeat rule flags.
type RecurrenceOptions struct {
	Repeat string
	Every  int
	Until  string
	Count  int
}

func AddRecurrenceArgs(cmd *cobra.Command, o *RecurrenceOptions) {
	cmd.Flags().StringVar(&o.Repeat, "repeat", "",
		"Repeat frequency: daily, weekly, monthly, or yearly.")
	cmd.Flags().IntVar(&o.Every, "every", 1,
		"Interval between repeats, in units of the frequency.")
	cmd.Flags().StringVar(&o.Until, "until", "",
		"Stop repeating after this date; wins over --count.")
	cmd.Flags().IntVar(&o.Count, "count", 0,
		"Stop repeating after this many occurrences.")
}
