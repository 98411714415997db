package temporal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Weekday numbering used by the date grammar: Sunday=1 through Saturday=7.
var weekdayNumbers = map[string]int{
	"sunday":    1,
	"monday":    2,
	"tuesday":   3,
	"wednesday": 4,
	"thursday":  5,
	"friday":    6,
	"saturday":  7,
}

// relativeUnits are the units accepted by the "in N <unit>" form, in the
// order they are prefix-matched. "m" matches minute before month.
var relativeUnits = []string{"minute", "hour", "day", "week", "month"}

var (
	inPattern    = regexp.MustCompile(`^in\s+(\d+)\s+([a-z]+)$`)
	nextPattern  = regexp.MustCompile(`^next\s+([a-z]+)$`)
	clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
)

// fixedLayouts are tried in order after ISO-8601. The month/day layouts
// without a year default to the reference year.
var fixedLayouts = []struct {
	layout   string
	needYear bool
}{
	{"2006-1-2 15:04", false},
	{"2006-1-2", false},
	{"1/2/2006 15:04", false},
	{"1/2/2006", false},
	{"1/2 15:04", true},
	{"1/2", true},
}

// ParseTimePoint resolves a free-text date/time expression into an absolute
// instant, evaluated against now and its location. The grammar is tried in
// a fixed order and the first match wins:
//
//  1. now, today, tomorrow, yesterday
//  2. in N {minute,hour,day,week,month}
//  3. next {week,month,<weekday>}
//  4. clock time (H:MM, Ham/pm, H:MMam/pm)
//  5. ISO-8601
//  6. fixed date layouts (yyyy-MM-dd [HH:mm], MM/dd[/yyyy] [HH:mm])
func ParseTimePoint(text string, now time.Time) (time.Time, error) {
	token := strings.ToLower(strings.TrimSpace(text))
	if token == "" {
		return time.Time{}, &ParseError{Input: text, Reason: "empty date"}
	}

	switch token {
	case "now":
		return now, nil
	case "today":
		return StartOfDay(now), nil
	case "tomorrow":
		return StartOfDay(now).AddDate(0, 0, 1), nil
	case "yesterday":
		return StartOfDay(now).AddDate(0, 0, -1), nil
	}

	if m := inPattern.FindStringSubmatch(token); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, &ParseError{Input: text, Reason: "bad count"}
		}
		unit, ok := matchRelativeUnit(m[2])
		if !ok {
			return time.Time{}, &ParseError{Input: text, Reason: fmt.Sprintf("unknown unit %q", m[2])}
		}
		switch unit {
		case "minute":
			return now.Add(time.Duration(n) * time.Minute), nil
		case "hour":
			return now.Add(time.Duration(n) * time.Hour), nil
		case "day":
			return now.AddDate(0, 0, n), nil
		case "week":
			return now.AddDate(0, 0, 7*n), nil
		case "month":
			return now.AddDate(0, n, 0), nil
		}
	}

	if m := nextPattern.FindStringSubmatch(token); m != nil {
		switch m[1] {
		case "week":
			return now.AddDate(0, 0, 7), nil
		case "month":
			return now.AddDate(0, 1, 0), nil
		}
		if target, ok := weekdayNumbers[m[1]]; ok {
			return nextWeekday(now, target), nil
		}
		return time.Time{}, &ParseError{Input: text, Reason: fmt.Sprintf("unknown period %q", m[1])}
	}

	if hour, minute, ok := parseClock(token); ok {
		day := StartOfDay(now)
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", text, now.Location()); err == nil {
		return t, nil
	}

	for _, f := range fixedLayouts {
		t, err := time.ParseInLocation(f.layout, strings.TrimSpace(text), now.Location())
		if err != nil {
			continue
		}
		if f.needYear {
			t = time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
		}
		return t, nil
	}

	return time.Time{}, &ParseError{Input: text, Reason: "unrecognized date"}
}

// parseClock parses a bare clock-time token. Hours 1-12 without minutes
// require an am/pm suffix; an hour:minute pair without a suffix is read as
// 24-hour time, and a lone 13-23 hour is unambiguous so it parses as
// 24-hour too. 12am maps to hour 0, 12pm stays 12.
func parseClock(token string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	suffix := m[3]

	if suffix == "" {
		// A lone 1-12 hour is ambiguous without am/pm.
		if m[2] == "" && hour <= 12 {
			return 0, 0, false
		}
		if hour > 23 || minute > 59 {
			return 0, 0, false
		}
		return hour, minute, true
	}

	if hour < 1 || hour > 12 || minute > 59 {
		return 0, 0, false
	}
	if suffix == "am" && hour == 12 {
		hour = 0
	}
	if suffix == "pm" && hour != 12 {
		hour += 12
	}
	return hour, minute, true
}

func matchRelativeUnit(token string) (string, bool) {
	token = strings.TrimSuffix(token, "s")
	for _, unit := range relativeUnits {
		if strings.HasPrefix(unit, token) {
			return unit, true
		}
	}
	return "", false
}

// nextWeekday returns the next occurrence of the target weekday
// (Sunday=1..Saturday=7) strictly after now. When now already falls on the
// target weekday the result is a full week out, never today.
func nextWeekday(now time.Time, target int) time.Time {
	current := int(now.Weekday()) + 1
	delta := (target - current + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return StartOfDay(now).AddDate(0, 0, delta)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the first instant of the following day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}
