// Package temporal converts compact human-readable date, time, duration,
// and alarm expressions into absolute or relative time values. Every parse
// takes an explicit reference time, so results are deterministic and the
// package holds no global state.
package temporal

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit records which unit a duration was written in. It only affects how
// the duration is described back to the user; the underlying value is
// always exact seconds.
type Unit int

const (
	UnitMinute Unit = iota
	UnitHour
	UnitDay
	UnitWeek
)

// Duration is a span of time tagged with the unit it was derived from.
type Duration struct {
	Span time.Duration
	Unit Unit
}

// Seconds returns the span as whole seconds.
func (d Duration) Seconds() int64 {
	return int64(d.Span / time.Second)
}

var (
	singlePattern   = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([a-z]+)$`)
	compoundPattern = regexp.MustCompile(`^(\d+)h(\d+)m$`)

	durationUnits = map[string]Unit{
		"m":       UnitMinute,
		"min":     UnitMinute,
		"mins":    UnitMinute,
		"minute":  UnitMinute,
		"minutes": UnitMinute,
		"h":       UnitHour,
		"hr":      UnitHour,
		"hrs":     UnitHour,
		"hour":    UnitHour,
		"hours":   UnitHour,
		"d":       UnitDay,
		"day":     UnitDay,
		"days":    UnitDay,
		"w":       UnitWeek,
		"wk":      UnitWeek,
		"wks":     UnitWeek,
		"week":    UnitWeek,
		"weeks":   UnitWeek,
	}

	unitSpans = map[Unit]time.Duration{
		UnitMinute: time.Minute,
		UnitHour:   time.Hour,
		UnitDay:    24 * time.Hour,
		UnitWeek:   7 * 24 * time.Hour,
	}
)

// ParseDuration parses a compact duration token such as "10m", "1.5h",
// "2wk", or the compound hour-minute form "1h30m". Fractional magnitudes
// are allowed for minutes and hours; fractional days and weeks truncate to
// whole seconds.
func ParseDuration(text string) (Duration, error) {
	token := strings.ToLower(strings.TrimSpace(text))
	if token == "" {
		return Duration{}, &ParseError{Input: text, Reason: "empty duration"}
	}

	if m := compoundPattern.FindStringSubmatch(token); m != nil {
		hours, _ := strconv.ParseInt(m[1], 10, 64)
		minutes, _ := strconv.ParseInt(m[2], 10, 64)
		span := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
		if span == 0 {
			return Duration{}, &ParseError{Input: text, Reason: "zero duration"}
		}
		return Duration{Span: span, Unit: UnitHour}, nil
	}

	m := singlePattern.FindStringSubmatch(token)
	if m == nil {
		return Duration{}, &ParseError{Input: text, Reason: "unrecognized duration"}
	}
	unit, ok := durationUnits[m[2]]
	if !ok {
		return Duration{}, &ParseError{Input: text, Reason: fmt.Sprintf("unknown unit %q", m[2])}
	}

	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Duration{}, &ParseError{Input: text, Reason: "bad magnitude"}
	}

	seconds := magnitude * unitSpans[unit].Seconds()
	switch unit {
	case UnitDay, UnitWeek:
		seconds = math.Trunc(seconds)
	default:
		seconds = math.Round(seconds)
	}
	if seconds <= 0 {
		return Duration{}, &ParseError{Input: text, Reason: "zero duration"}
	}

	return Duration{Span: time.Duration(seconds) * time.Second, Unit: unit}, nil
}

// Describe renders a duration back into a token the parser accepts. The
// rendering prefers the largest unit that divides the span evenly.
func (d Duration) Describe() string {
	s := d.Seconds()
	const (
		minute = 60
		hour   = 60 * minute
		day    = 24 * hour
		week   = 7 * day
	)
	switch {
	case s <= 0:
		return "0m"
	case s%week == 0:
		return fmt.Sprintf("%dw", s/week)
	case s%day == 0:
		return fmt.Sprintf("%dd", s/day)
	case s%hour == 0:
		return fmt.Sprintf("%dh", s/hour)
	case s%minute == 0:
		if s > hour {
			return fmt.Sprintf("%dh%dm", s/hour, (s%hour)/minute)
		}
		return fmt.Sprintf("%dm", s/minute)
	default:
		return strconv.FormatFloat(float64(s)/minute, 'f', -1, 64) + "m"
	}
}
