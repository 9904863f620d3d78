// Package main provides the inspect tool: run a single photometry file
// through the parser chain and print the sanitized rows.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"snpipe/internal/formatter"
	"snpipe/internal/logger"
	"snpipe/internal/parsers"
)

func main() {
	filePath := flag.String("file", "", "Photometry file to inspect")
	maxRows := flag.Int("rows", 10, "Maximum number of rows to print (0 = all)")
	verbose := flag.Bool("verbose", false, "Enable debug logging of parser attempts")

	flag.Parse()

	if *filePath == "" {
		fmt.Println("Usage: inspect -file <path> [-rows N] [-verbose]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := "info"
	if *verbose {
		level = "debug"
	}

	logg := logger.NewLogger(level)

	raw, err := parsers.ReadRawFile(*filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read file: %v\n", err)
	}

	fmt.Printf("🔍 Inspecting: %s (%d bytes, ext hint %q)\n\n", raw.Path, len(raw.Data), raw.Ext)

	chain := parsers.NewChain(logg)

	result := chain.TryParse(raw)
	if result == nil {
		fmt.Println("❌ Unparsable: no parser accepted this file")
		os.Exit(1)
	}

	fmt.Printf("✅ Parsed with: %s (%d rows survived sanitization)\n\n", result.ParserName, len(result.Observations))

	rows := result.Observations
	if *maxRows > 0 && len(rows) > *maxRows {
		rows = rows[:*maxRows]
	}

	table := make([][]string, 0, len(rows))

	for _, obs := range rows {
		magErr := "missing"
		if !math.IsNaN(obs.MagErr) {
			magErr = strconv.FormatFloat(obs.MagErr, 'g', -1, 64)
		}

		table = append(table, []string{
			strconv.FormatFloat(obs.Time, 'f', 4, 64),
			strconv.FormatFloat(obs.Mag, 'f', 3, 64),
			magErr,
			obs.Band,
			obs.Reference,
		})
	}

	fmt.Print(formatter.RenderTable([]string{"time", "mag", "magerr", "band", "reference"}, table))

	if len(rows) < len(result.Observations) {
		fmt.Printf("\n… %d more rows\n", len(result.Observations)-len(rows))
	}
}
