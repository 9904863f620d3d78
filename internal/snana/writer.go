// Package snana reads, writes and validates the SNANA-style light-curve
// files that the pipeline emits as its canonical per-object output.
package snana

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"snpipe/internal/models"
)

// VarList is the fixed per-observation column layout of an OBS row.
const VarList = "MJD FLT FLUXCAL FLUXCALERR MAG MAGERR ZPT MAGSYS"

// numVars is the number of VARLIST columns.
const numVars = 8

// magErrSentinel replaces a missing magnitude error on output.
const magErrSentinel = -999.0

// Document is one canonical light-curve file: the metadata header plus
// one row per flux observation.
type Document struct {
	Survey        string
	SNID          string
	RA            float64
	Dec           float64
	MWEBV         float64
	RedshiftHelio float64
	Filters       []string
	Rows          []models.FluxObservation
}

// Write renders the document.
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "SURVEY: %s\n", doc.Survey)
	fmt.Fprintf(bw, "SNID: %s\n", doc.SNID)
	fmt.Fprintf(bw, "RA: %.8f\n", doc.RA)
	fmt.Fprintf(bw, "DEC: %.8f\n", doc.Dec)
	fmt.Fprintf(bw, "MWEBV: %.4f\n", doc.MWEBV)
	fmt.Fprintf(bw, "REDSHIFT_HELIO: %.6f\n", doc.RedshiftHelio)
	fmt.Fprintf(bw, "FILTERS: %s\n", strings.Join(doc.Filters, " "))
	fmt.Fprintf(bw, "NOBS: %d\n", len(doc.Rows))
	fmt.Fprintf(bw, "NVAR: %d\n", numVars)
	fmt.Fprintf(bw, "VARLIST: %s\n", VarList)

	for _, row := range doc.Rows {
		magErr := magErrSentinel
		if row.HasMagErr() {
			magErr = row.MagErr
		}

		fmt.Fprintf(bw, "OBS: %.4f %s %.6e %.6e %.4f %.4f %.2f %s\n",
			row.Time, row.Band, row.Flux, row.FluxErr, row.Mag, magErr, row.ZP, row.ZPSys)
	}

	fmt.Fprintln(bw, "END:")

	return bw.Flush()
}

// WriteFile writes the document to path, creating parent directories.
func WriteFile(path string, doc *Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Write(f, doc); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// NewDocument assembles a document from resolved metadata and converted
// rows.
func NewDocument(survey, snid string, meta *models.ObjectMeta, set *models.ObservationSet, rows []models.FluxObservation) *Document {
	return &Document{
		Survey:        survey,
		SNID:          snid,
		RA:            meta.RA,
		Dec:           meta.Dec,
		MWEBV:         meta.MWEBV,
		RedshiftHelio: meta.Redshift,
		Filters:       set.Bands(),
		Rows:          rows,
	}
}
