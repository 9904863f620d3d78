package snana

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// requiredHeaderKeys must all be present in a well-formed file.
var requiredHeaderKeys = []string{
	"SURVEY", "SNID", "RA", "DEC", "MWEBV", "REDSHIFT_HELIO", "FILTERS", "NOBS", "NVAR", "VARLIST",
}

// ValidationError describes one problem found in a light-curve file.
type ValidationError struct {
	Line    int
	Message string
}

// ValidationResult aggregates validation findings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
	IsValid  bool
}

// Validate checks a light-curve file for structural problems: missing
// header keys, OBS rows with the wrong field count, and an NOBS count
// that disagrees with the actual rows.
func Validate(r io.Reader) (*ValidationResult, error) {
	result := &ValidationResult{IsValid: true}

	seenKeys := make(map[string]bool)
	declaredObs := -1
	obsCount := 0
	lineNo := 0

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line == "END:" {
			continue
		}

		if strings.HasPrefix(line, "OBS:") {
			obsCount++

			if parts := strings.Fields(line); len(parts) != numVars+1 {
				result.addError(lineNo, fmt.Sprintf("OBS row has %d fields, want %d", len(parts)-1, numVars))
			}

			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			result.addError(lineNo, "header line without key separator")

			continue
		}

		key = strings.TrimSpace(key)
		seenKeys[key] = true

		if key == "NOBS" {
			if _, err := fmt.Sscanf(strings.TrimSpace(value), "%d", &declaredObs); err != nil {
				result.addError(lineNo, "NOBS is not an integer")
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, key := range requiredHeaderKeys {
		if !seenKeys[key] {
			result.addError(0, fmt.Sprintf("missing required header key %s", key))
		}
	}

	if declaredObs >= 0 && declaredObs != obsCount {
		result.addError(0, fmt.Sprintf("NOBS declares %d rows, file has %d", declaredObs, obsCount))
	}

	if obsCount == 0 {
		result.Warnings = append(result.Warnings, "file contains no observations")
	}

	return result, nil
}

func (r *ValidationResult) addError(line int, msg string) {
	r.Errors = append(r.Errors, ValidationError{Line: line, Message: msg})
	r.IsValid = false
}
