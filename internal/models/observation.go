// Package models defines the data types shared across the photometry pipeline.
package models

import (
	"math"
	"sort"
)

// Canonical field defaults.
const (
	DefaultBand      = "UNKNOWN"
	DefaultReference = "N/A"
)

// RawFile is an immutable in-memory copy of one photometry source file.
// Parsers read it and never write back; Ext is a lower-cased hint only,
// applicability is decided by content fingerprinting.
type RawFile struct {
	Path string
	Ext  string
	Data []byte
}

// Observation is one validated photometric point. Time and Mag are always
// finite; MagErr is NaN when the source carried no usable uncertainty.
type Observation struct {
	Time      float64
	Mag       float64
	MagErr    float64
	Band      string
	Reference string
}

// HasMagErr reports whether the observation carries a finite uncertainty.
func (o Observation) HasMagErr() bool {
	return !math.IsNaN(o.MagErr) && !math.IsInf(o.MagErr, 0)
}

// Diagnostics records band-label bookkeeping collected during
// normalization. It is reporting output, never an error.
type Diagnostics struct {
	// BandsSeen holds the unique band labels present before alias mapping,
	// in first-seen order.
	BandsSeen []string
	// UnmappedBands holds the labels that had no entry in the alias table.
	UnmappedBands []string
}

// ObservationSet is the per-object union of observations across all source
// files, deduplicated on the (time, mag) pair with first occurrence winning.
type ObservationSet struct {
	Observations []Observation
	Diagnostics  Diagnostics
}

// Bands returns the sorted unique band labels present in the set.
func (s *ObservationSet) Bands() []string {
	seen := make(map[string]struct{})

	var bands []string

	for _, obs := range s.Observations {
		if _, ok := seen[obs.Band]; ok {
			continue
		}

		seen[obs.Band] = struct{}{}
		bands = append(bands, obs.Band)
	}

	sort.Strings(bands)

	return bands
}

// FluxObservation extends an observation with its linear-flux conversion.
type FluxObservation struct {
	Observation

	Flux    float64
	FluxErr float64
	// ZP is the fixed instrumental zero point carried on every output row,
	// distinct from the physical zero point used in the conversion.
	ZP float64
	// ZPSys is the lower-cased name of the magnitude system used.
	ZPSys string
}

// ObjectMeta holds the astrometric metadata resolved for one object.
type ObjectMeta struct {
	RA       float64
	Dec      float64
	Redshift float64
	MWEBV    float64
}
