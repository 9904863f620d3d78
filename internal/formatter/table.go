// Package formatter renders aligned plain-text tables and per-filter
// light-curve summaries for pipeline reports.
package formatter

import (
	"math"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"snpipe/internal/snana"
)

// RenderTable renders headers and rows as an aligned plain-text table,
// padding by display width so wide runes line up.
func RenderTable(headers []string, rows [][]string) string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	widths := make([]int, colCount)

	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	measure(headers)

	for _, row := range rows {
		measure(row)
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		for j := 0; j < colCount; j++ {
			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(content)

			if j < colCount-1 {
				if padding := widths[j] - runewidth.StringWidth(content); padding > 0 {
					sb.WriteString(strings.Repeat(" ", padding))
				}

				sb.WriteString("  ")
			}
		}

		sb.WriteString("\n")
	}

	writeRow(headers)

	for j := 0; j < colCount; j++ {
		sb.WriteString(strings.Repeat("-", widths[j]))

		if j < colCount-1 {
			sb.WriteString("  ")
		}
	}

	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}

// CurveSummary describes one object's light curve in one filter.
type CurveSummary struct {
	SNID     string
	Filter   string
	Points   int
	PeakMag  float64
	PeakTime float64
	SpanDays float64
}

// Summarize computes per-filter summaries for a light-curve document.
// Rows carrying the missing-magnitude sentinel are ignored. Summaries are
// sorted by filter name for stable output.
func Summarize(doc *snana.Document) []CurveSummary {
	byFilter := make(map[string]*CurveSummary)

	var (
		minTime = make(map[string]float64)
		maxTime = make(map[string]float64)
	)

	for _, row := range doc.Rows {
		if row.Mag == -999 {
			continue
		}

		s, ok := byFilter[row.Band]
		if !ok {
			s = &CurveSummary{
				SNID:     doc.SNID,
				Filter:   row.Band,
				PeakMag:  math.Inf(1),
				PeakTime: 0,
			}
			byFilter[row.Band] = s
			minTime[row.Band] = row.Time
			maxTime[row.Band] = row.Time
		}

		s.Points++

		// Brightest point is the numerically smallest magnitude.
		if row.Mag < s.PeakMag {
			s.PeakMag = row.Mag
			s.PeakTime = row.Time
		}

		if row.Time < minTime[row.Band] {
			minTime[row.Band] = row.Time
		}

		if row.Time > maxTime[row.Band] {
			maxTime[row.Band] = row.Time
		}
	}

	summaries := make([]CurveSummary, 0, len(byFilter))

	for band, s := range byFilter {
		s.SpanDays = maxTime[band] - minTime[band]
		summaries = append(summaries, *s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Filter < summaries[j].Filter
	})

	return summaries
}
