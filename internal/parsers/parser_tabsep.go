package parsers

import (
	"errors"
	"fmt"
	"strings"

	"snpipe/internal/models"
)

// ErrRaggedRow indicates a data row whose field count does not match the header.
var ErrRaggedRow = errors.New("row field count does not match header")

// tabSepRequiredTokens is the fixed header token set that fingerprints the
// long-form tab-separated exports.
var tabSepRequiredTokens = []string{
	"Julian Date",
	"Gregorian Day",
	"Magnitude",
	"Indmag and Band",
}

// TabSepParser handles tab-separated exports with the long-form
// "Julian Date / Gregorian Day / Magnitude / Indmag and Band" header.
type TabSepParser struct {
	aliases map[string]string
}

// NewTabSepParser creates a new tab-separated parser.
func NewTabSepParser() *TabSepParser {
	return &TabSepParser{
		aliases: map[string]string{
			"Julian Date":     ColTime,
			"Magnitude":       ColMag,
			"Indmag and Band": ColBand,
			"Uncertainty":     ColMagErr,
			"Reference Text":  ColReference,
		},
	}
}

// Name identifies the parser.
func (p *TabSepParser) Name() string {
	return "tabsep"
}

// Aliases maps source column names to canonical column names.
func (p *TabSepParser) Aliases() map[string]string {
	return p.aliases
}

// Fingerprint requires every token of the fixed header set on the first line.
func (p *TabSepParser) Fingerprint(f *models.RawFile) bool {
	header := firstLine(f.Data)

	for _, token := range tabSepRequiredTokens {
		if !strings.Contains(header, token) {
			return false
		}
	}

	return true
}

// Parse splits the file on tabs. Rows with a field count different from
// the header are treated as malformed input.
func (p *TabSepParser) Parse(f *models.RawFile) (*models.Table, error) {
	lines := splitLines(f.Data)
	if len(lines) < 2 {
		return nil, ErrNoDataRows
	}

	header := strings.Split(lines[0], "\t")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	tbl := &models.Table{
		Columns: header,
		Rows:    make([][]string, 0, len(lines)-1),
	}

	for n, line := range lines[1:] {
		fields := strings.Split(line, "\t")
		if len(fields) != len(header) {
			return nil, fmt.Errorf("%w: line %d", ErrRaggedRow, n+2)
		}

		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		tbl.Rows = append(tbl.Rows, fields)
	}

	return tbl, nil
}
