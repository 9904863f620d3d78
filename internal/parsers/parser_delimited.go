package parsers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"

	"snpipe/internal/models"
	"snpipe/pkg/utils"
)

// Delimited parser errors.
var (
	ErrNoHeader    = errors.New("no header line")
	ErrNoDataRows  = errors.New("no data rows")
	ErrShortHeader = errors.New("header has fewer than two columns")
)

// DelimitedParser handles comma-delimited tables with a header row, the
// hand-converted "JD/Mag/Band/Reference" style exports. Column naming is
// loose, so it recognizes a set of aliases for each canonical column.
type DelimitedParser struct {
	aliases map[string]string
}

// NewDelimitedParser creates a new delimited-text parser.
func NewDelimitedParser() *DelimitedParser {
	return &DelimitedParser{
		aliases: map[string]string{
			"Julian Date":    ColTime,
			"JD":             ColTime,
			"jd":             ColTime,
			"Gregorian Day":  "day",
			"Magnitude":      ColMag,
			"Mag":            ColMag,
			"Magerr":         ColMagErr,
			"MagErr":         ColMagErr,
			"Uncertainty":    ColMagErr,
			"Band":           ColBand,
			"Ref":            ColReference,
			"Reference":      ColReference,
			"Reference Text": ColReference,
		},
	}
}

// Name identifies the parser.
func (p *DelimitedParser) Name() string {
	return "delimited"
}

// Aliases maps source column names to canonical column names.
func (p *DelimitedParser) Aliases() map[string]string {
	return p.aliases
}

// Fingerprint requires a comma-delimited header whose aliased column set
// covers both time and magnitude, so that tables shaped for the other
// parsers are not silently accepted here.
func (p *DelimitedParser) Fingerprint(f *models.RawFile) bool {
	header := firstLine(f.Data)
	if !strings.Contains(header, ",") {
		return false
	}

	cols, err := csv.NewReader(strings.NewReader(header)).Read()
	if err != nil {
		return false
	}

	hasTime, hasMag := false, false

	for _, col := range cols {
		canonical := strings.TrimSpace(col)
		if mapped, ok := p.aliases[canonical]; ok {
			canonical = mapped
		}

		switch canonical {
		case ColTime:
			hasTime = true
		case ColMag:
			hasMag = true
		}
	}

	return hasTime && hasMag
}

// Parse reads the full delimited table. Band cells are stripped of
// whitespace and one layer of surrounding quotes.
func (p *DelimitedParser) Parse(f *models.RawFile) (*models.Table, error) {
	r := csv.NewReader(bytes.NewReader(f.Data))
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	if len(records) < 2 {
		return nil, ErrNoDataRows
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	if len(header) < 2 {
		return nil, ErrShortHeader
	}

	bandIdx := -1

	for i, col := range header {
		if col == "Band" || col == ColBand {
			bandIdx = i
		}
	}

	tbl := &models.Table{
		Columns: header,
		Rows:    make([][]string, 0, len(records)-1),
	}

	for _, rec := range records[1:] {
		row := make([]string, len(rec))
		copy(row, rec)

		if bandIdx >= 0 && bandIdx < len(row) {
			row[bandIdx] = utils.StripQuotes(row[bandIdx])
		}

		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}
