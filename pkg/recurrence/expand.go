package recurrence

import (
	"errors"
	"time"

	"github.com/teambition/rrule-go"
)

// defaultMaxOccurrences caps expansion of unterminated rules so a window
// query can never run away.
const defaultMaxOccurrences = 1000

var frequencyToRRule = map[Frequency]rrule.Frequency{
	Daily:   rrule.DAILY,
	Weekly:  rrule.WEEKLY,
	Monthly: rrule.MONTHLY,
	Yearly:  rrule.YEARLY,
}

// Expand materializes the rule into concrete start instants inside
// [from, to), beginning the series at start. Skip dates are excluded with
// day precision. The result is bounded by the rule's terminator and by
// limit (defaultMaxOccurrences when limit is zero).
func Expand(r *Rule, start time.Time, from, to time.Time, skip []time.Time, limit int) ([]time.Time, error) {
	if r == nil {
		if (start.Equal(from) || start.After(from)) && start.Before(to) {
			return []time.Time{start}, nil
		}
		return nil, nil
	}
	if to.Before(from) {
		return nil, errors.New("expand: window end precedes start")
	}
	if limit <= 0 {
		limit = defaultMaxOccurrences
	}

	opt := rrule.ROption{
		Freq:     frequencyToRRule[r.Frequency],
		Interval: r.Interval,
		Dtstart:  start,
	}
	if r.Until != nil {
		opt.Until = r.Until.Time
	} else if r.Count > 0 {
		opt.Count = r.Count
	}
	rr, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, err
	}

	var set rrule.Set
	set.RRule(rr)
	set.DTStart(start)
	for _, s := range skip {
		set.ExDate(time.Date(s.Year(), s.Month(), s.Day(),
			start.Hour(), start.Minute(), start.Second(), 0, start.Location()))
	}

	// Between is inclusive on both ends; the window is half-open.
	times := set.Between(from, to, true)
	out := times[:0]
	for _, t := range times {
		if t.Before(to) {
			out = append(out, t)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Next returns the first instant in the series strictly after ref, or the
// zero time when the rule is exhausted. Used to advance a recurring
// reminder's due date on completion.
func Next(r *Rule, start time.Time, ref time.Time) (time.Time, error) {
	opt := rrule.ROption{
		Freq:     frequencyToRRule[r.Frequency],
		Interval: r.Interval,
		Dtstart:  start,
	}
	if r.Until != nil {
		opt.Until = r.Until.Time
	} else if r.Count > 0 {
		opt.Count = r.Count
	}
	rr, err := rrule.NewRRule(opt)
	if err != nil {
		return time.Time{}, err
	}
	return rr.After(ref, false), nil
}
