package options

import (
	"github.com/spf13/cobra"
)

// ScopeOptions narrow which items a command touches or shows.
type ScopeOptions struct {
	Calendar         string
	List             string
	Search           string
	From             string
	To               string
	IncludeCompleted bool
}

func AddListArg(cmd *cobra.Command, o *ScopeOptions) {
	cmd.Flags().StringVarP(&o.List, "list", "l", "",
		"Specify the reminder list.")
}

func AddCalendarArg(cmd *cobra.Command, o *ScopeOptions) {
	cmd.Flags().StringVarP(&o.Calendar, "calendar", "c", "",
		"Specify the calendar.")
}

func AddRangeArgs(cmd *cobra.Command, o *ScopeOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		"Start of the date range, free-text.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"End of the date range, free-text, inclusive of that day.")
}

func AddSearchArg(cmd *cobra.Command, o *ScopeOptions) {
	cmd.Flags().StringVar(&o.Search, "search", "",
		"Keep only items whose title or notes contain this text.")
}

func AddCompletedArg(cmd *cobra.Command, o *ScopeOptions) {
	cmd.Flags().BoolVar(&o.IncludeCompleted, "completed", false,
		"Include completed reminders.")
}

// SpanOptions selects how far a recurring-event mutation reaches.
type SpanOptions struct {
	Span string
}

func AddSpanArg(cmd *cobra.Command, o *SpanOptions) {
	cmd.Flags().StringVar(&o.Span, "span", "this",
		`Reach of the change on a recurring event: "this" or "future".`)
}
