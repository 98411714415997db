// Package recurrence models repeat rules for events and reminders and
// expands them into concrete occurrence dates. The rule itself carries no
// knowledge of its instances; expansion is a separate, bounded operation.
package recurrence

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/agenda/pkg/temporal"
)

type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Monthly
	Yearly
)

var frequencyNames = map[Frequency]string{
	Daily:   "daily",
	Weekly:  "weekly",
	Monthly: "monthly",
	Yearly:  "yearly",
}

func (f Frequency) String() string {
	if name, ok := frequencyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("frequency(%d)", int(f))
}

// ParseFrequency maps user text onto a frequency. Both the adjective and
// the unit noun are accepted ("weekly", "week").
func ParseFrequency(text string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	}
	return 0, &temporal.ParseError{Input: text, Reason: "unknown frequency"}
}

// Rule is a frequency plus interval with at most one terminator: an end
// date or an occurrence count. A nil Until and zero Count means the rule
// repeats forever.
type Rule struct {
	Frequency Frequency           `json:"frequency" yaml:"frequency"`
	Interval  int                 `json:"interval" yaml:"interval"`
	Until     *temporal.Timestamp `json:"until,omitempty" yaml:"until,omitempty"`
	Count     int                 `json:"count,omitempty" yaml:"count,omitempty"`
}

// New builds a rule from parsed CLI or template input. A zero interval
// defaults to 1. When both an end date and a count are supplied the end
// date wins; this is the documented tie-break, not an error.
func New(frequencyText string, interval int, until *time.Time, count int) (*Rule, error) {
	freq, err := ParseFrequency(frequencyText)
	if err != nil {
		return nil, err
	}
	if interval == 0 {
		interval = 1
	}
	if interval < 0 {
		return nil, &temporal.ParseError{
			Input:  fmt.Sprintf("%d", interval),
			Reason: "interval must be a positive integer",
		}
	}
	if count < 0 {
		return nil, &temporal.ParseError{
			Input:  fmt.Sprintf("%d", count),
			Reason: "count must be a positive integer",
		}
	}

	r := &Rule{Frequency: freq, Interval: interval}
	switch {
	case until != nil:
		r.Until = &temporal.Timestamp{Time: *until}
	case count > 0:
		r.Count = count
	}
	return r, nil
}

// Describe renders the rule for display, e.g. "every 2 weeks until
// 2024-06-01" or "daily, 10 times".
func (r *Rule) Describe() string {
	var b strings.Builder
	if r.Interval <= 1 {
		b.WriteString(r.Frequency.String())
	} else {
		unit := map[Frequency]string{
			Daily:   "days",
			Weekly:  "weeks",
			Monthly: "months",
			Yearly:  "years",
		}[r.Frequency]
		fmt.Fprintf(&b, "every %d %s", r.Interval, unit)
	}
	switch {
	case r.Until != nil:
		fmt.Fprintf(&b, " until %s", r.Until.Format("2006-01-02"))
	case r.Count > 0:
		fmt.Fprintf(&b, ", %d times", r.Count)
	}
	return b.String()
}
