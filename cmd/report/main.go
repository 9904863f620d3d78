// Package main provides the report tool: read emitted light-curve files
// and print per-filter summary tables.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"snpipe/internal/formatter"
	"snpipe/internal/snana"
)

func main() {
	basePath := flag.String("base", "snana_virgo_data", "Base directory of emitted light-curve files")
	filterName := flag.String("filter", "", "Restrict the report to one filter, e.g. bessellb")
	validate := flag.Bool("validate", false, "Validate each file and report problems")

	flag.Parse()

	pattern := filepath.Join(*basePath, "*", "*", "*.snana.dat")

	paths, err := filepath.Glob(pattern)
	if err != nil {
		log.Fatalf("❌ Bad glob pattern: %v\n", err)
	}

	if len(paths) == 0 {
		fmt.Printf("⚠️  No light-curve files found under %s\n", *basePath)
		os.Exit(1)
	}

	var rows [][]string

	problems := 0

	for _, path := range paths {
		if *validate {
			problems += validateFile(path)
		}

		doc, err := snana.ReadFile(path)
		if err != nil {
			fmt.Printf("⚠️  Skipping %s: %v\n", path, err)

			continue
		}

		for _, s := range formatter.Summarize(doc) {
			if *filterName != "" && s.Filter != *filterName {
				continue
			}

			rows = append(rows, []string{
				s.SNID,
				s.Filter,
				strconv.Itoa(s.Points),
				strconv.FormatFloat(s.PeakMag, 'f', 2, 64),
				strconv.FormatFloat(s.PeakTime, 'f', 1, 64),
				strconv.FormatFloat(s.SpanDays, 'f', 1, 64),
			})
		}
	}

	if len(rows) == 0 {
		fmt.Println("⚠️  Nothing to report")
		os.Exit(1)
	}

	fmt.Printf("📊 Light-curve report (%d files)\n\n", len(paths))
	fmt.Print(formatter.RenderTable(
		[]string{"object", "filter", "points", "peak mag", "peak time", "span (days)"},
		rows,
	))

	if *validate {
		if problems > 0 {
			fmt.Printf("\n❌ Validation found %d problem(s)\n", problems)
			os.Exit(1)
		}

		fmt.Println("\n✅ All files validated cleanly")
	}
}

func validateFile(path string) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("⚠️  Cannot open %s: %v\n", path, err)

		return 1
	}
	defer f.Close()

	result, err := snana.Validate(f)
	if err != nil {
		fmt.Printf("⚠️  Cannot validate %s: %v\n", path, err)

		return 1
	}

	for _, e := range result.Errors {
		fmt.Printf("❌ %s:%d %s\n", path, e.Line, e.Message)
	}

	return len(result.Errors)
}
