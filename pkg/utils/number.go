// Package utils provides common cell-coercion and string utility functions.
package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseCellFloat parses a table cell as a float64. Anything that is not a
// plain finite or infinite number, including the empty string, degrades to
// NaN rather than an error.
func ParseCellFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}

	return v
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
