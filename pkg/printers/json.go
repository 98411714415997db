package printers

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
)

// JSON emits v pretty-printed with object keys sorted; timestamps are
// RFC3339 via the domain types' marshalers. Structs are round-tripped
// through maps because encoding/json only sorts map keys.
func JSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := json.Unmarshal(b, &generic); err != nil {
		return err
	}
	b, err = json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
