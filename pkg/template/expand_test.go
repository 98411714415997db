package template

import (
	"testing"
	"time"
)

var ref = time.Date(2024, 2, 5, 15, 30, 0, 0, time.Local)

func TestExpandBuiltins(t *testing.T) {
	ctx := Context{ReferenceDate: ref}
	cases := map[string]string{
		"{date}":    "2024-02-05",
		"{week}":    "W06",
		"{month}":   "February",
		"{year}":    "2024",
		"{weekday}": "Monday",
	}
	for in, want := range cases {
		if got := Expand(in, ctx); got != want {
			t.Fatalf("%q: got %q, want %q", in, got, want)
		}
	}
}

func TestExpandCustomVariables(t *testing.T) {
	ctx := Context{
		ReferenceDate: ref,
		Variables:     map[string]string{"project": "atlas"},
	}
	got := Expand("Review {project} notes for {date}", ctx)
	want := "Review atlas notes for 2024-02-05"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// A custom variable named after a built-in is shadowed by the built-in.
func TestExpandBuiltinPrecedence(t *testing.T) {
	ctx := Context{
		ReferenceDate: ref,
		Variables:     map[string]string{"date": "never"},
	}
	if got := Expand("{date}", ctx); got != "2024-02-05" {
		t.Fatalf("built-in not preferred: %q", got)
	}
}

func TestExpandUnknownLeftVerbatim(t *testing.T) {
	ctx := Context{ReferenceDate: ref}
	in := "keep {mystery} as-is"
	if got := Expand(in, ctx); got != in {
		t.Fatalf("got %q", got)
	}
}

// Substituted text must not be re-expanded.
func TestExpandNoInjection(t *testing.T) {
	ctx := Context{
		ReferenceDate: ref,
		Variables: map[string]string{
			"a": "{b}",
			"b": "boom",
		},
	}
	if got := Expand("{a}", ctx); got != "{b}" {
		t.Fatalf("placeholder injection: %q", got)
	}
}

func TestExpandIdempotentWithoutPlaceholders(t *testing.T) {
	ctx := Context{ReferenceDate: ref}
	in := "plain text, no tokens"
	if got := Expand(in, ctx); got != in {
		t.Fatalf("got %q", got)
	}
}
