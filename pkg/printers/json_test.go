package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestJSONSortsKeys(t *testing.T) {
	var buf bytes.Buffer
	saved := color.Output
	color.Output = &buf
	defer func() { color.Output = saved }()

	v := struct {
		Zebra string `json:"zebra"`
		Alpha string `json:"alpha"`
		Mid   string `json:"mid"`
	}{Zebra: "z", Alpha: "a", Mid: "m"}
	if err := JSON(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	alpha := strings.Index(out, `"alpha"`)
	mid := strings.Index(out, `"mid"`)
	zebra := strings.Index(out, `"zebra"`)
	if alpha < 0 || mid < 0 || zebra < 0 {
		t.Fatalf("missing keys in output: %s", out)
	}
	if !(alpha < mid && mid < zebra) {
		t.Fatalf("keys not sorted: %s", out)
	}
}
