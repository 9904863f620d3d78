package flux

import (
	"math"
	"strings"

	"snpipe/internal/models"
)

const (
	// InstrumentalZeroPoint is the fixed zero point carried on every
	// output row, independent of the physical zero point used in the
	// conversion.
	InstrumentalZeroPoint = 25.0
	// MissingSentinel marks a flux or magnitude error that could not be
	// propagated because the source uncertainty was missing.
	MissingSentinel = -999.0
)

// Convert turns an observation set into flux observations:
//
//	flux    = zeroPointFlux(system, band) * 10^(-0.4 * mag)
//	fluxerr = flux * 0.4 * ln(10) * magerr   (when magerr is finite)
//
// Conversion is pure: identical inputs always yield bit-identical output.
// An unknown (system, band) combination is a configuration gap and fails
// the whole set.
func Convert(set *models.ObservationSet, system string) ([]models.FluxObservation, error) {
	zpsys := strings.ToLower(system)
	out := make([]models.FluxObservation, 0, len(set.Observations))

	for _, obs := range set.Observations {
		zp, err := ZeroPointFlux(zpsys, obs.Band)
		if err != nil {
			return nil, err
		}

		f := zp * math.Pow(10, -0.4*obs.Mag)

		fluxErr := MissingSentinel
		if obs.HasMagErr() {
			fluxErr = f * 0.4 * math.Ln10 * obs.MagErr
		}

		out = append(out, models.FluxObservation{
			Observation: obs,
			Flux:        f,
			FluxErr:     fluxErr,
			ZP:          InstrumentalZeroPoint,
			ZPSys:       zpsys,
		})
	}

	return out, nil
}
