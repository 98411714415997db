package temporal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// AlarmTrigger is either a relative offset from an anchor instant (negative
// means before the anchor) or an absolute trigger moment. Exactly one
// variant is populated; construct values through RelativeTrigger or
// AbsoluteTrigger.
type AlarmTrigger struct {
	absolute bool
	offset   time.Duration
	at       time.Time
}

// RelativeTrigger builds a trigger that fires offset from its anchor.
func RelativeTrigger(offset time.Duration) AlarmTrigger {
	return AlarmTrigger{offset: offset}
}

// AbsoluteTrigger builds a trigger that fires at a fixed instant.
func AbsoluteTrigger(at time.Time) AlarmTrigger {
	return AlarmTrigger{absolute: true, at: at}
}

// Relative returns the offset variant, if populated.
func (a AlarmTrigger) Relative() (time.Duration, bool) {
	return a.offset, !a.absolute
}

// Absolute returns the fixed-instant variant, if populated.
func (a AlarmTrigger) Absolute() (time.Time, bool) {
	return a.at, a.absolute
}

// Resolve returns the instant the alarm fires when attached to anchor.
func (a AlarmTrigger) Resolve(anchor time.Time) time.Time {
	if a.absolute {
		return a.at
	}
	return anchor.Add(a.offset)
}

// Describe renders the trigger for display. Relative triggers use the
// duration grammar so the description parses back to the same trigger.
func (a AlarmTrigger) Describe() string {
	if a.absolute {
		return a.at.Format("2006-01-02 15:04")
	}
	d := Duration{Span: a.offset}
	if a.offset < 0 {
		d.Span = -a.offset
		return d.Describe() + " before"
	}
	return d.Describe() + " after"
}

type alarmJSON struct {
	OffsetSeconds *int64  `json:"offsetSeconds,omitempty"`
	At            *string `json:"at,omitempty"`
}

func (a AlarmTrigger) MarshalJSON() ([]byte, error) {
	var aj alarmJSON
	if a.absolute {
		at := a.at.Format(time.RFC3339)
		aj.At = &at
	} else {
		s := int64(a.offset / time.Second)
		aj.OffsetSeconds = &s
	}
	return json.Marshal(aj)
}

func (a *AlarmTrigger) UnmarshalJSON(b []byte) error {
	var aj alarmJSON
	if err := json.Unmarshal(b, &aj); err != nil {
		return err
	}
	switch {
	case aj.At != nil:
		t, err := time.Parse(time.RFC3339, *aj.At)
		if err != nil {
			return err
		}
		*a = AbsoluteTrigger(t)
	case aj.OffsetSeconds != nil:
		*a = RelativeTrigger(time.Duration(*aj.OffsetSeconds) * time.Second)
	default:
		return fmt.Errorf("alarm trigger has neither offset nor instant")
	}
	return nil
}

// ParseAlarm resolves an alarm token. A bare duration becomes a relative
// offset before the anchor. The compound "<Nd> <H:MM>" form means N days
// before the anchor at the given clock time; without an anchor it degrades
// to a plain day offset and the clock component is dropped. Anything else
// is handed to ParseTimePoint and becomes an absolute trigger.
func ParseAlarm(text string, anchor *time.Time, now time.Time) (AlarmTrigger, error) {
	token := strings.TrimSpace(text)
	if token == "" {
		return AlarmTrigger{}, &ParseError{Input: text, Reason: "empty alarm"}
	}

	if d, err := ParseDuration(token); err == nil {
		return RelativeTrigger(-d.Span), nil
	}

	if trigger, ok := parseCompoundAlarm(token, anchor); ok {
		return trigger, nil
	}

	at, err := ParseTimePoint(token, now)
	if err != nil {
		return AlarmTrigger{}, &ParseError{Input: text, Reason: "unrecognized alarm"}
	}
	return AbsoluteTrigger(at), nil
}

// parseCompoundAlarm handles "<duration> <clock>" tokens such as "1d 9:00".
// The duration part must be a whole day or week count.
func parseCompoundAlarm(token string, anchor *time.Time) (AlarmTrigger, bool) {
	i := strings.IndexByte(token, ' ')
	if i < 0 {
		return AlarmTrigger{}, false
	}
	d, err := ParseDuration(token[:i])
	if err != nil || (d.Unit != UnitDay && d.Unit != UnitWeek) {
		return AlarmTrigger{}, false
	}
	hour, minute, ok := parseClock(strings.ToLower(strings.TrimSpace(token[i+1:])))
	if !ok {
		return AlarmTrigger{}, false
	}

	days := int(d.Span / (24 * time.Hour))
	if anchor == nil {
		return RelativeTrigger(-time.Duration(days) * 24 * time.Hour), true
	}
	day := StartOfDay(*anchor).AddDate(0, 0, -days)
	at := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return AbsoluteTrigger(at), true
}
