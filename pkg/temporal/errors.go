package temporal

import (
	"errors"
	"fmt"
)

// ParseError reports malformed temporal text. It always carries the exact
// offending input so the message can be surfaced to the user verbatim.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// IsParseError reports whether err is a temporal parse failure. Callers in
// update contexts treat this as "no value supplied" rather than fatal.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
