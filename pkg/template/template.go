package template

import (
	"errors"
	"strings"
)

// Kind says which domain a template creates items in.
type Kind string

const (
	KindReminder Kind = "reminder"
	KindEvent    Kind = "event"
)

// Template is a saved item blueprint. The temporal fields hold unparsed
// expressions ("next friday", "1d 9:00") so they are re-resolved against
// the current clock each time the template is used. Text fields may
// contain {placeholder} tokens.
type Template struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`

	Title string `yaml:"title"`
	Notes string `yaml:"notes,omitempty"`

	// Calendar for events, List for reminders.
	Calendar string `yaml:"calendar,omitempty"`
	List     string `yaml:"list,omitempty"`

	// When expressions, resolved at use time.
	Start    string `yaml:"start,omitempty"`
	Due      string `yaml:"due,omitempty"`
	Duration string `yaml:"duration,omitempty"`
	Alarm    string `yaml:"alarm,omitempty"`
	AllDay   bool   `yaml:"all_day,omitempty"`

	Priority string `yaml:"priority,omitempty"`

	// Recurrence inputs, same shape as the CLI flags.
	Repeat string `yaml:"repeat,omitempty"`
	Every  int    `yaml:"every,omitempty"`
	Until  string `yaml:"until,omitempty"`
	Count  int    `yaml:"count,omitempty"`

	// Variables names the custom placeholders a use invocation may supply.
	Variables []string `yaml:"variables,omitempty"`
}

// Validate checks the fields that must hold for any saved template.
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("template: name required")
	}
	switch t.Kind {
	case KindReminder, KindEvent:
	case "":
		return errors.New("template: kind required")
	default:
		return errors.New("template: kind must be reminder or event")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("template: title required")
	}
	return nil
}
