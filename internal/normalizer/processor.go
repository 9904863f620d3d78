package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"snpipe/internal/models"
)

// ErrUnmappedBands is returned in strict mode when labels without an alias
// entry would be silently dropped.
var ErrUnmappedBands = errors.New("unmapped passband labels present")

// Processor merges per-file tables into one deduplicated observation set
// with canonical passband labels.
type Processor struct {
	vocab  *Vocabulary
	strict bool
}

// NewProcessor creates a processor with the default lenient policy:
// labels outside the closed vocabulary are dropped silently and surfaced
// only through diagnostics.
func NewProcessor(vocab *Vocabulary) *Processor {
	return &Processor{vocab: vocab}
}

// NewStrictProcessor creates a processor that fails an object when a
// label that has no alias entry would otherwise be dropped.
func NewStrictProcessor(vocab *Vocabulary) *Processor {
	return &Processor{vocab: vocab, strict: true}
}

// Normalize concatenates the per-file tables in file order, trims band
// labels, drops composite color-index labels, deduplicates on the exact
// (time, mag) pair with first occurrence winning, maps labels through the
// alias table and retains only rows whose band is in the closed
// vocabulary. Labels seen before mapping and labels without an alias
// entry are reported on the result's diagnostics.
func (p *Processor) Normalize(tables [][]models.Observation) (*models.ObservationSet, error) {
	var all []models.Observation

	for _, tbl := range tables {
		all = append(all, tbl...)
	}

	type pair struct {
		t, m float64
	}

	seen := make(map[pair]struct{}, len(all))
	bandSeen := make(map[string]struct{})

	var (
		merged   []models.Observation
		diag     models.Diagnostics
		unmapped []string
		dropped  []string
	)

	for _, obs := range all {
		obs.Band = strings.TrimSpace(obs.Band)
		if strings.Contains(obs.Band, "(") {
			continue
		}

		key := pair{t: obs.Time, m: obs.Mag}
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}

		if _, ok := bandSeen[obs.Band]; !ok {
			bandSeen[obs.Band] = struct{}{}
			diag.BandsSeen = append(diag.BandsSeen, obs.Band)
		}

		canonical, aliased := p.vocab.Canonical(obs.Band)
		if !aliased {
			unmapped = appendUnique(unmapped, obs.Band)
		}

		if !p.vocab.IsKnown(canonical) {
			if !aliased {
				dropped = appendUnique(dropped, obs.Band)
			}

			continue
		}

		obs.Band = canonical
		merged = append(merged, obs)
	}

	diag.UnmappedBands = unmapped

	if p.strict && len(dropped) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnmappedBands, strings.Join(dropped, ", "))
	}

	return &models.ObservationSet{
		Observations: merged,
		Diagnostics:  diag,
	}, nil
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}

	return append(list, s)
}
