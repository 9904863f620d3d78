package utils

import (
	"math"
	"testing"
)

func TestParseCellFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain number", "12.3", 12.3},
		{"padded number", "  12.3 ", 12.3},
		{"scientific", "1.5e3", 1500},
		{"negative", "-0.05", -0.05},
		{"empty", "", math.NaN()},
		{"blank", "   ", math.NaN()},
		{"word", "null", math.NaN()},
		{"limit marker", ">16.2", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCellFloat(tt.input)

			if math.IsNaN(tt.want) {
				if !math.IsNaN(got) {
					t.Errorf("ParseCellFloat(%q) = %v, want NaN", tt.input, got)
				}

				return
			}

			if got != tt.want {
				t.Errorf("ParseCellFloat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(12.3) || !IsFinite(0) {
		t.Error("finite value reported as non-finite")
	}

	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("non-finite value reported as finite")
	}
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`'blue'`, "blue"},
		{`"red"`, "red"},
		{` 'pg' `, "pg"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripQuotes(tt.input); got != tt.want {
			t.Errorf("StripQuotes(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitWideColumns(t *testing.T) {
	got := SplitWideColumns("  2430000.5   Oct. 2, 1950   12.3  0.10   B ")

	want := []string{"2430000.5", "Oct. 2, 1950", "12.3", "0.10", "B"}
	if len(got) != len(want) {
		t.Fatalf("SplitWideColumns = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	if got := NormalizeWhitespace("  a \t b\n c "); got != "a b c" {
		t.Errorf("NormalizeWhitespace = %q, want %q", got, "a b c")
	}
}
