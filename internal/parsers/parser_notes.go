package parsers

import (
	"fmt"
	"strings"

	"snpipe/internal/models"
	"snpipe/pkg/utils"
)

// notesColumns is the fixed column layout of the whitespace-aligned notes
// format. The header line in the file is ignored in favor of this layout.
var notesColumns = []string{ColTime, "gregorian", ColMag, ColMagErr, ColBand, ColReference, "notes"}

// notesMissingTokens are the literal magnitude-error spellings that mean
// "no uncertainty recorded".
var notesMissingTokens = map[string]bool{
	"null": true,
	"nul":  true,
}

// NotesParser handles the hand-typed, whitespace-aligned notes format:
// comment lines start with '#', rows annotated with inequality markers
// are upper/lower limits rather than measurements and are skipped, and
// columns are separated by runs of two or more spaces.
type NotesParser struct{}

// NewNotesParser creates a new notes-format parser.
func NewNotesParser() *NotesParser {
	return &NotesParser{}
}

// Name identifies the parser.
func (p *NotesParser) Name() string {
	return "notes"
}

// Aliases maps source column names to canonical column names. The notes
// layout is already canonical.
func (p *NotesParser) Aliases() map[string]string {
	return map[string]string{}
}

// Fingerprint requires at least one data line after stripping comments
// and limits, no tab and comma delimiters, and the fixed column count.
func (p *NotesParser) Fingerprint(f *models.RawFile) bool {
	lines := usableNotesLines(f.Data)
	if len(lines) < 2 {
		return false
	}

	first := lines[1]
	if strings.ContainsAny(first, "\t,") {
		return false
	}

	return len(utils.SplitWideColumns(first)) == len(notesColumns)
}

// Parse strips comments and limit annotations and splits the remaining
// rows on runs of two or more spaces into the fixed column layout.
func (p *NotesParser) Parse(f *models.RawFile) (*models.Table, error) {
	lines := usableNotesLines(f.Data)
	if len(lines) < 2 {
		return nil, ErrNoDataRows
	}

	// lines[0] is the header row of the file; the layout is fixed so it
	// is only consumed, not interpreted.
	tbl := &models.Table{
		Columns: append([]string(nil), notesColumns...),
		Rows:    make([][]string, 0, len(lines)-1),
	}

	for n, line := range lines[1:] {
		fields := utils.SplitWideColumns(line)
		if len(fields) != len(notesColumns) {
			return nil, fmt.Errorf("%w: line %d", ErrRaggedRow, n+2)
		}

		if notesMissingTokens[strings.ToLower(fields[3])] {
			fields[3] = ""
		}

		tbl.Rows = append(tbl.Rows, fields)
	}

	return tbl, nil
}

// usableNotesLines drops comment lines and rows carrying inequality
// markers (upper/lower limit annotations).
func usableNotesLines(data []byte) []string {
	var lines []string

	for _, line := range splitLines(data) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.ContainsAny(line, "<>") {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}
