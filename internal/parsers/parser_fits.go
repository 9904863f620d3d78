package parsers

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/astrogo/fitsio"

	"snpipe/internal/models"
)

// fitsMagic is the mandatory first header card of a FITS file.
var fitsMagic = []byte("SIMPLE  =")

// FITS parser errors.
var (
	ErrNoTableExtension = errors.New("no table extension with data")
	ErrNoBandColumn     = errors.New("band column missing")
)

// FITSParser handles binary tabular extensions, the VizieR-style FITS
// exports. Data lives in the first extension HDU; rows whose band label
// contains a parenthesis are color indices rather than single-passband
// magnitudes and are excluded at parse time.
type FITSParser struct {
	aliases map[string]string
}

// NewFITSParser creates a new FITS table parser.
func NewFITSParser() *FITSParser {
	return &FITSParser{
		aliases: map[string]string{
			"JD": ColTime,
			"m":  ColMag,
		},
	}
}

// Name identifies the parser.
func (p *FITSParser) Name() string {
	return "fits"
}

// Aliases maps source column names to canonical column names.
func (p *FITSParser) Aliases() map[string]string {
	return p.aliases
}

// Fingerprint checks the FITS magic card.
func (p *FITSParser) Fingerprint(f *models.RawFile) bool {
	return bytes.HasPrefix(f.Data, fitsMagic)
}

// Parse reads the first extension HDU as a table and flattens it to
// string cells for sanitization.
func (p *FITSParser) Parse(f *models.RawFile) (*models.Table, error) {
	fit, err := fitsio.Open(bytes.NewReader(f.Data))
	if err != nil {
		return nil, err
	}
	defer fit.Close()

	if len(fit.HDUs()) < 2 {
		return nil, ErrNoTableExtension
	}

	table, ok := fit.HDU(1).(*fitsio.Table)
	if !ok {
		return nil, ErrNoTableExtension
	}

	cols := table.Cols()
	names := make([]string, len(cols))
	bandIdx := -1

	for i, col := range cols {
		names[i] = col.Name
		if col.Name == ColBand {
			bandIdx = i
		}
	}

	if bandIdx < 0 {
		return nil, ErrNoBandColumn
	}

	rows, err := table.Read(0, table.NumRows())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tbl := &models.Table{
		Columns: names,
		Rows:    make([][]string, 0, int(table.NumRows())),
	}

	for rows.Next() {
		cells := make(map[string]interface{}, len(names))
		if err := rows.Scan(&cells); err != nil {
			return nil, err
		}

		band := strings.TrimSpace(formatFITSValue(cells[ColBand]))
		if strings.Contains(band, "(") {
			continue
		}

		row := make([]string, len(names))
		for i, name := range names {
			row[i] = strings.TrimSpace(formatFITSValue(cells[name]))
		}

		row[bandIdx] = band

		tbl.Rows = append(tbl.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tbl, nil
}

// formatFITSValue renders a typed FITS cell as a text cell without
// precision loss.
func formatFITSValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
