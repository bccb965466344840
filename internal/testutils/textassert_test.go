package testutils

import (
	"strings"
	"testing"
)

func TestTextAsserter_DefaultOptions(t *testing.T) {
	opts := NewTextAsserter(t).Options()

	if !opts.IgnoreTrailingWhitespace {
		t.Error("IgnoreTrailingWhitespace should default to true")
	}
	if opts.IgnoreEmptyLines {
		t.Error("IgnoreEmptyLines should default to false")
	}
	if !opts.TrimSpace {
		t.Error("TrimSpace should default to true")
	}
	if opts.EnableColors {
		t.Error("EnableColors should default to false")
	}
}

func TestTextAsserter_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		opts     []TextOption
		actual   string
		expected string
		match    bool
	}{
		{"identical", nil, "a\nb", "a\nb", true},
		{"trailing whitespace", nil, "a  \nb\t", "a\nb", true},
		{"trailing whitespace kept", []TextOption{WithIgnoreTrailingWhitespace(false), WithTrimSpace(false)}, "a  \nb", "a\nb", false},
		{"surrounding space", nil, "\n\na\nb\n", "a\nb", true},
		{"empty lines", nil, "a\n\nb", "a\nb", false},
		{"empty lines ignored", []TextOption{WithIgnoreEmptyLines(true)}, "a\n\nb", "a\nb", true},
		{"different", nil, "a\nc", "a\nb", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewTextAsserter(t).WithOptions(tt.opts...).Diff(tt.actual, tt.expected)
			if tt.match && d != "" {
				t.Errorf("expected match, got diff:\n%s", d)
			}
			if !tt.match && d == "" {
				t.Error("expected a diff")
			}
		})
	}
}

func TestTextAsserter_UnifiedDiff(t *testing.T) {
	rec := &recordingT{}
	ok := NewTextAsserterWithInterface(rec).Assert("NAME RSSI\nHR -40", "NAME RSSI\nHR -45")

	if ok {
		t.Fatal("Assert should return false on mismatch")
	}
	if len(rec.errors) != 1 {
		t.Fatalf("expected one failure, got %d", len(rec.errors))
	}
	out := rec.errors[0]
	for _, want := range []string{"--- expected", "+++ actual", "-HR -45", "+HR -40"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff should contain %q:\n%s", want, out)
		}
	}
}

func TestTextAsserter_ColoredDiff(t *testing.T) {
	d := NewTextAsserter(t).WithOptions(WithEnableColors(true)).Diff("a b", "a c")
	if !strings.Contains(d, "\x1b[") {
		t.Errorf("colored diff should contain ANSI escapes: %q", d)
	}
	if !strings.Contains(d, "a·b") {
		t.Errorf("colored diff should show spaces: %q", d)
	}
}
