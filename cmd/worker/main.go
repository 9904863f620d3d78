// Package main provides the photometry worker that processes every
// registered object: parse, normalize, look up metadata, convert to flux
// and emit canonical light-curve files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"snpipe/internal/config"
	"snpipe/internal/logger"
	"snpipe/internal/lookup"
	"snpipe/internal/normalizer"
	"snpipe/internal/pipeline"
)

func main() {
	configFile := flag.String("config", "configs/pipeline.yaml", "Path to YAML configuration file")
	objectID := flag.String("object", "", "Process only this object id (default: all)")
	logLevel := flag.String("log-level", "", "Log level override (debug, info, warn, error)")

	flag.Parse()

	fmt.Printf("⚙️  Loading configuration from: %s\n", *configFile)

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v\n", err)
	}

	fmt.Printf("✅ Configuration loaded: %s\n\n", cfg)

	level := cfg.Pipeline.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}

	logg := logger.NewLogger(level)

	if *objectID != "" {
		obj := cfg.Object(*objectID)
		if obj == nil {
			log.Fatalf("❌ Object %s is not registered\n", *objectID)
		}

		cfg.Objects = []config.ObjectConfig{*obj}
	}

	// The vocabulary is loaded once here and read-only afterwards.
	vocab := normalizer.NewVocabulary()

	var norm *normalizer.Processor
	if cfg.Pipeline.Features.StrictBands {
		norm = normalizer.NewStrictProcessor(vocab)
	} else {
		norm = normalizer.NewProcessor(vocab)
	}

	resolver := lookup.NewClient(cfg.Pipeline.Lookup, logg)
	proc := pipeline.New(cfg, norm, resolver, logg)

	fmt.Printf("🚀 Processing %d object(s)\n\n", len(cfg.Objects))

	results := proc.Run()

	emitted, skipped, failed := 0, 0, 0

	for _, res := range results {
		switch res.State {
		case pipeline.StateEmitted:
			emitted++

			fmt.Printf("✅ %s: %d observations → %s\n", res.ObjectID, res.Observations, res.OutputPath)
		case pipeline.StateSkippedEmpty:
			skipped++

			fmt.Printf("⚠️  %s: skipped, no usable data\n", res.ObjectID)
		case pipeline.StateFailed:
			failed++

			fmt.Printf("❌ %s: %v\n", res.ObjectID, res.Err)
		}
	}

	fmt.Printf("\n📊 Done: %d emitted, %d skipped, %d failed\n", emitted, skipped, failed)

	if emitted == 0 {
		os.Exit(1)
	}
}
