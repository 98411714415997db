// Package template manages reusable reminder/event templates: placeholder
// expansion in text fields and one-file-per-name YAML persistence.
package template

import (
	"fmt"
	"regexp"
	"time"
)

// Context supplies the values available during one expansion. It is built
// fresh per template use and read-only during the pass.
type Context struct {
	ReferenceDate time.Time
	Variables     map[string]string
}

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9_-]*)\}`)

// Expand substitutes {placeholder} tokens in text. Built-in names derive
// from the context's reference date and always win over custom variables
// of the same name. Unknown placeholders are left verbatim, and substituted
// text is never re-expanded.
func Expand(text string, ctx Context) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := token[1 : len(token)-1]
		if value, ok := builtin(name, ctx.ReferenceDate); ok {
			return value
		}
		if value, ok := ctx.Variables[name]; ok {
			return value
		}
		return token
	})
}

func builtin(name string, ref time.Time) (string, bool) {
	switch name {
	case "date":
		return ref.Format("2006-01-02"), true
	case "week":
		_, week := ref.ISOWeek()
		return fmt.Sprintf("W%02d", week), true
	case "month":
		return ref.Month().String(), true
	case "year":
		return fmt.Sprintf("%04d", ref.Year()), true
	case "weekday":
		return ref.Weekday().String(), true
	}
	return "", false
}
