package temporal

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"10m", 10 * time.Minute},
		{"10 min", 10 * time.Minute},
		{"90 minutes", 90 * time.Minute},
		{"1h", time.Hour},
		{"2hr", 2 * time.Hour},
		{"1.5h", 90 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"2h15m", 2*time.Hour + 15*time.Minute},
		{"1d", 24 * time.Hour},
		{"3 days", 72 * time.Hour},
		{"2wk", 14 * 24 * time.Hour},
		{"1 week", 7 * 24 * time.Hour},
		{"1.5d", 36 * time.Hour},
	}
	for _, c := range cases {
		d, err := ParseDuration(c.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.in, err)
		}
		if d.Span != c.want {
			t.Fatalf("%q: expected %v, got %v", c.in, c.want, d.Span)
		}
	}
}

func TestParseDurationSeconds(t *testing.T) {
	d, err := ParseDuration("1h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Seconds() != 5400 {
		t.Fatalf("expected 5400 seconds, got %d", d.Seconds())
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "10", "10x", "-5m", "h30m"} {
		if _, err := ParseDuration(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestParseDurationCase(t *testing.T) {
	d, err := ParseDuration("2WK")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Span != 14*24*time.Hour {
		t.Fatalf("expected two weeks, got %v", d.Span)
	}
}

func TestDescribeRoundTrip(t *testing.T) {
	for _, in := range []string{"10m", "90m", "1h", "1h30m", "1.5h", "1d", "2w", "3d"} {
		d, err := ParseDuration(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		back, err := ParseDuration(d.Describe())
		if err != nil {
			t.Fatalf("%q: describe %q does not parse: %v", in, d.Describe(), err)
		}
		if back.Span != d.Span {
			t.Fatalf("%q: round trip through %q gave %v, want %v", in, d.Describe(), back.Span, d.Span)
		}
	}
}
