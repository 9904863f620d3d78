// Package pipeline orchestrates per-object photometry processing: file
// iteration, the parser chain, band normalization, metadata lookup, flux
// conversion and canonical output.
package pipeline

import (
	"fmt"
	"os"

	"snpipe/internal/config"
	"snpipe/internal/flux"
	"snpipe/internal/logger"
	"snpipe/internal/models"
	"snpipe/internal/normalizer"
	"snpipe/internal/parsers"
	"snpipe/internal/snana"
)

// State is the terminal per-object processing state.
type State string

// Terminal object states.
const (
	StateEmitted      State = "emitted"
	StateSkippedEmpty State = "skipped_empty"
	StateFailed       State = "failed"
)

// Result summarizes the processing of one object.
type Result struct {
	ObjectID     string
	State        State
	ParsedFiles  int
	SkippedFiles []string
	Observations int
	OutputPath   string
	Diagnostics  models.Diagnostics
	Err          error
}

// MetadataResolver resolves astrometric metadata for an object.
type MetadataResolver interface {
	ObjectMeta(id string) (*models.ObjectMeta, error)
}

// Processor runs the ingestion-and-normalization pipeline. It holds no
// per-object state: each ProcessObject call owns its observation set for
// the duration of that call only.
type Processor struct {
	cfg      *config.Config
	chain    *parsers.Chain
	norm     *normalizer.Processor
	resolver MetadataResolver
	log      *logger.Logger
}

// New creates a processor. The vocabulary inside norm must already be
// loaded; it is never mutated here.
func New(cfg *config.Config, norm *normalizer.Processor, resolver MetadataResolver, log *logger.Logger) *Processor {
	return &Processor{
		cfg:      cfg,
		chain:    parsers.NewChain(log),
		norm:     norm,
		resolver: resolver,
		log:      log,
	}
}

// Run processes every registered object in declaration order. No single
// object failure aborts the batch.
func (p *Processor) Run() []Result {
	results := make([]Result, 0, len(p.cfg.Objects))

	for _, obj := range p.cfg.Objects {
		res := p.ProcessObject(obj)

		switch res.State {
		case StateEmitted:
			p.log.Info("object emitted", "object", obj.ID, "observations", res.Observations, "output", res.OutputPath)
		case StateSkippedEmpty:
			p.log.Warn("object skipped, no usable data", "object", obj.ID)
		case StateFailed:
			p.log.Error("object failed", "object", obj.ID, "error", res.Err)
		}

		results = append(results, res)
	}

	return results
}

// ProcessObject runs the full pipeline for one object.
func (p *Processor) ProcessObject(obj config.ObjectConfig) Result {
	res := Result{ObjectID: obj.ID, State: StateSkippedEmpty}

	var tables [][]models.Observation

	for _, name := range obj.Files {
		path := p.cfg.PhotometryPath(obj.ID, name)

		if _, err := os.Stat(path); err != nil {
			p.log.Warn("file absent, skipping", "object", obj.ID, "file", name)
			res.SkippedFiles = append(res.SkippedFiles, name)

			continue
		}

		raw, err := parsers.ReadRawFile(path)
		if err != nil {
			p.log.Warn("failed to read file, skipping", "object", obj.ID, "file", name, "error", err)
			res.SkippedFiles = append(res.SkippedFiles, name)

			continue
		}

		parsed := p.chain.TryParse(raw)
		if parsed == nil {
			p.log.Warn("could not parse file with any available parser", "object", obj.ID, "file", name)
			res.SkippedFiles = append(res.SkippedFiles, name)

			continue
		}

		p.log.Info("file parsed", "object", obj.ID, "file", name, "parser", parsed.ParserName, "rows", len(parsed.Observations))
		res.ParsedFiles++

		tables = append(tables, parsed.Observations)
	}

	if len(tables) == 0 {
		return res
	}

	set, err := p.norm.Normalize(tables)
	if err != nil {
		res.State = StateFailed
		res.Err = fmt.Errorf("normalization failed: %w", err)

		return res
	}

	res.Diagnostics = set.Diagnostics

	p.log.Debug("bands before mapping", "object", obj.ID, "bands", set.Diagnostics.BandsSeen)

	if len(set.Diagnostics.UnmappedBands) > 0 {
		p.log.Warn("unmapped bands", "object", obj.ID, "bands", set.Diagnostics.UnmappedBands)
	}

	if len(set.Observations) == 0 {
		p.log.Warn("no usable data remains after band mapping", "object", obj.ID)

		return res
	}

	res.Observations = len(set.Observations)

	meta, err := p.resolver.ObjectMeta(obj.ID)
	if err != nil {
		res.State = StateFailed
		res.Err = fmt.Errorf("metadata lookup failed: %w", err)

		return res
	}

	rows, err := flux.Convert(set, obj.MagSystem)
	if err != nil {
		res.State = StateFailed
		res.Err = fmt.Errorf("flux conversion failed: %w", err)

		return res
	}

	doc := snana.NewDocument(p.cfg.Pipeline.Output.Survey, obj.ID, meta, set, rows)

	outPath := p.cfg.OutputPath(obj.ID)
	if err := snana.WriteFile(outPath, doc); err != nil {
		res.State = StateFailed
		res.Err = fmt.Errorf("failed to write light curve: %w", err)

		return res
	}

	res.State = StateEmitted
	res.OutputPath = outPath

	return res
}
