package snana

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"snpipe/internal/models"
)

// Reader errors.
var (
	ErrMalformedHeader = errors.New("malformed header line")
	ErrMalformedObs    = errors.New("malformed OBS row")
)

// Read parses a light-curve file back into a document. Unknown header
// keys are ignored so the reader stays tolerant of future header fields.
func Read(r io.Reader) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line == "END:" {
			continue
		}

		if strings.HasPrefix(line, "OBS:") {
			row, err := parseObsRow(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d", err, lineNo)
			}

			doc.Rows = append(doc.Rows, row)

			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedHeader, lineNo)
		}

		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "SURVEY":
			doc.Survey = value
		case "SNID":
			doc.SNID = value
		case "RA":
			doc.RA = parseHeaderFloat(value)
		case "DEC":
			doc.Dec = parseHeaderFloat(value)
		case "MWEBV":
			doc.MWEBV = parseHeaderFloat(value)
		case "REDSHIFT_HELIO":
			doc.RedshiftHelio = parseHeaderFloat(value)
		case "FILTERS":
			if value != "" {
				doc.Filters = strings.Fields(value)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return doc, nil
}

// ReadFile parses the light-curve file at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

func parseObsRow(line string) (models.FluxObservation, error) {
	parts := strings.Fields(line)
	if len(parts) != numVars+1 {
		return models.FluxObservation{}, ErrMalformedObs
	}

	vals := make([]float64, 0, 6)

	for _, idx := range []int{1, 3, 4, 5, 6, 7} {
		v, err := strconv.ParseFloat(parts[idx], 64)
		if err != nil {
			return models.FluxObservation{}, ErrMalformedObs
		}

		vals = append(vals, v)
	}

	return models.FluxObservation{
		Observation: models.Observation{
			Time:   vals[0],
			Mag:    vals[3],
			MagErr: vals[4],
			Band:   parts[2],
		},
		Flux:    vals[1],
		FluxErr: vals[2],
		ZP:      vals[5],
		ZPSys:   parts[8],
	}, nil
}

func parseHeaderFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}
