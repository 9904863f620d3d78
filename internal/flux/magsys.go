// Package flux converts validated magnitude rows into linear flux units
// using a magnitude-system- and band-dependent zero point.
package flux

import (
	"errors"
	"fmt"
	"strings"
)

// Zero point lookup errors.
var (
	ErrUnknownMagSystem = errors.New("unknown magnitude system")
	ErrUnknownBand      = errors.New("no zero point for band in system")
)

// vegaZeroPointFlux holds the reference flux at magnitude zero, in
// photons s^-1 cm^-2, for the Vega system. Fixed configuration data: the
// values must never change between runs of the same build.
var vegaZeroPointFlux = map[string]float64{
	"bessellux":   4.2266e5,
	"bessellb":    1.3614e6,
	"bessellv":    9.8850e5,
	"bessellr":    1.0915e6,
	"besselli":    9.4380e5,
	"standard::u": 4.1268e5,
	"standard::b": 1.3450e6,
	"standard::v": 9.8210e5,
	"standard::r": 1.0840e6,
	"standard::i": 9.3920e5,
}

// abZeroPointFlux holds the AB-system zero point fluxes for the same
// bands, photons s^-1 cm^-2.
var abZeroPointFlux = map[string]float64{
	"bessellux":   7.3462e5,
	"bessellb":    1.4368e6,
	"bessellv":    9.9110e5,
	"bessellr":    1.0400e6,
	"besselli":    8.4974e5,
	"standard::u": 7.1725e5,
	"standard::b": 1.4203e6,
	"standard::v": 9.8470e5,
	"standard::r": 1.0329e6,
	"standard::i": 8.4560e5,
}

var zeroPointSystems = map[string]map[string]float64{
	"vega": vegaZeroPointFlux,
	"ab":   abZeroPointFlux,
}

// ZeroPointFlux returns the reference flux at magnitude zero for the given
// magnitude system and canonical band. System names are case-insensitive.
func ZeroPointFlux(system, band string) (float64, error) {
	table, ok := zeroPointSystems[strings.ToLower(system)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownMagSystem, system)
	}

	zp, ok := table[band]
	if !ok {
		return 0, fmt.Errorf("%w: %s (%s)", ErrUnknownBand, band, strings.ToLower(system))
	}

	return zp, nil
}
