// Package parsers implements the ordered fallback chain of photometry
// file parsers. Each parser first inspects a structural fingerprint and
// only then commits to a full parse; every failure degrades to "not
// applicable" so that no single file can abort the chain.
package parsers

import (
	"os"
	"path/filepath"
	"strings"

	"snpipe/internal/logger"
	"snpipe/internal/models"
)

// Canonical column names produced by sanitization.
const (
	ColTime      = "time"
	ColMag       = "mag"
	ColMagErr    = "magerr"
	ColBand      = "band"
	ColReference = "reference"
)

// Parser recognizes and parses one photometry file format.
type Parser interface {
	// Name identifies the parser in logs and results.
	Name() string
	// Fingerprint reports whether the file is structurally applicable.
	Fingerprint(f *models.RawFile) bool
	// Parse produces a loosely-typed table. A nil table or an error both
	// mean the file did not match after all.
	Parse(f *models.RawFile) (*models.Table, error)
	// Aliases maps source column names to canonical column names.
	Aliases() map[string]string
}

// Result reports which parser accepted a file and the sanitized rows.
type Result struct {
	ParserName   string
	Observations []models.Observation
}

// Chain tries each parser in declaration order and returns the first
// result with at least one row surviving sanitization.
type Chain struct {
	parsers []Parser
	log     *logger.Logger
}

// NewChain creates the default parser chain. Priority is fixed: delimited
// text, tab-separated text, whitespace-aligned notes, FITS tables.
func NewChain(log *logger.Logger) *Chain {
	return NewChainWithParsers(log,
		NewDelimitedParser(),
		NewTabSepParser(),
		NewNotesParser(),
		NewFITSParser(),
	)
}

// NewChainWithParsers creates a chain over an explicit parser list.
func NewChainWithParsers(log *logger.Logger, parsers ...Parser) *Chain {
	return &Chain{
		parsers: parsers,
		log:     log,
	}
}

// TryParse runs the file through the chain. It returns nil when every
// parser was exhausted without producing a usable row; it never panics on
// malformed input.
func (c *Chain) TryParse(f *models.RawFile) *Result {
	for _, p := range c.parsers {
		if !p.Fingerprint(f) {
			continue
		}

		tbl, err := p.Parse(f)
		if err != nil {
			c.log.Debug("parse attempt failed", "parser", p.Name(), "file", f.Path, "error", err)

			continue
		}

		if tbl == nil {
			continue
		}

		obs := Sanitize(tbl, p.Aliases())
		if len(obs) == 0 {
			c.log.Debug("no rows survived sanitization", "parser", p.Name(), "file", f.Path)

			continue
		}

		return &Result{
			ParserName:   p.Name(),
			Observations: obs,
		}
	}

	return nil
}

// ReadRawFile loads a photometry file fully into memory. The returned
// copy is never written back to disk.
func ReadRawFile(path string) (*models.RawFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &models.RawFile{
		Path: path,
		Ext:  strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")),
		Data: data,
	}, nil
}

// splitLines splits file content into lines, tolerating CRLF endings and
// dropping a trailing empty line.
func splitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// firstLine returns the first line of the file content.
func firstLine(data []byte) string {
	text := string(data)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}

	return strings.TrimRight(text, "\r")
}
