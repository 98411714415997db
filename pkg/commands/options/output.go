// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions selects one of the three render modes. The zero value is
// the pretty ANSI table view.
type OutputOptions struct {
	JSON  bool
	Plain bool
}

func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&o.JSON, "json", false,
		"Output as JSON.")
	cmd.PersistentFlags().BoolVar(&o.Plain, "plain", false,
		"Output as plain tab-separated text.")
}

// HandleError keeps errors machine-readable when --json is set.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
