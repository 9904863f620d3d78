package utils

import (
	"regexp"
	"strings"
)

var wideColumnPattern = regexp.MustCompile(`\s{2,}`)

// StripQuotes removes one layer of surrounding single or double quotes
// after trimming whitespace.
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `'`)
	s = strings.Trim(s, `"`)

	return s
}

// SplitWideColumns splits a whitespace-aligned line on runs of two or more
// spaces, trimming each resulting field.
func SplitWideColumns(line string) []string {
	parts := wideColumnPattern.Split(strings.TrimSpace(line), -1)

	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, strings.TrimSpace(p))
	}

	return fields
}

// NormalizeWhitespace replaces runs of whitespace with single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
