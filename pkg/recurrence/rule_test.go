package recurrence

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	r, err := New("weekly", 0, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Frequency != Weekly {
		t.Fatalf("expected weekly, got %v", r.Frequency)
	}
	if r.Interval != 1 {
		t.Fatalf("expected interval 1, got %d", r.Interval)
	}
	if r.Until != nil || r.Count != 0 {
		t.Fatalf("expected no terminator: %+v", r)
	}
}

func TestNewFrequencyAliases(t *testing.T) {
	cases := map[string]Frequency{
		"daily":   Daily,
		"day":     Daily,
		"WEEK":    Weekly,
		"monthly": Monthly,
		"Year":    Yearly,
	}
	for in, want := range cases {
		r, err := New(in, 1, nil, 0)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if r.Frequency != want {
			t.Fatalf("%q: expected %v, got %v", in, want, r.Frequency)
		}
	}
}

func TestNewUnknownFrequency(t *testing.T) {
	if _, err := New("fortnightly", 1, nil, 0); err == nil {
		t.Fatalf("expected error")
	}
}

// When both terminators are supplied the end date wins.
func TestNewEndDateWins(t *testing.T) {
	until := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	r, err := New("daily", 1, &until, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Until == nil || !r.Until.Equal(until) {
		t.Fatalf("expected until terminator, got %+v", r)
	}
	if r.Count != 0 {
		t.Fatalf("count should be dropped when until is set")
	}
}

func TestNewNegativeInterval(t *testing.T) {
	if _, err := New("daily", -2, nil, 0); err == nil {
		t.Fatalf("expected error")
	}
}

func TestDescribe(t *testing.T) {
	r, _ := New("weekly", 2, nil, 0)
	if got := r.Describe(); got != "every 2 weeks" {
		t.Fatalf("got %q", got)
	}
	r, _ = New("daily", 1, nil, 10)
	if got := r.Describe(); got != "daily, 10 times" {
		t.Fatalf("got %q", got)
	}
}
