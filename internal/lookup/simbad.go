// Package lookup resolves per-object astrometric metadata from remote
// catalog services: coordinates and redshift from a Simbad-style TAP
// endpoint, Galactic extinction from a dust service.
package lookup

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"snpipe/internal/config"
	"snpipe/internal/logger"
	"snpipe/internal/models"
)

const userAgent = "snpipe-worker/1.0"

// Lookup errors.
var (
	ErrObjectNotFound = errors.New("object not found in catalog")
	ErrBadResponse    = errors.New("unexpected catalog response")
)

// Client queries the catalog services. It performs exactly one lookup per
// object and never retries; retry policy belongs to the caller's batch
// schedule, not here.
type Client struct {
	rest      *resty.Client
	simbadURL string
	dustURL   string
	log       *logger.Logger
}

// NewClient creates a catalog client from lookup configuration.
func NewClient(cfg config.LookupConfig, log *logger.Logger) *Client {
	rest := resty.New().
		SetTimeout(cfg.GetTimeout()).
		SetHeader("User-Agent", userAgent)

	return &Client{
		rest:      rest,
		simbadURL: cfg.SimbadURL,
		dustURL:   cfg.DustURL,
		log:       log,
	}
}

// tapResponse is the JSON shape of a TAP sync query result.
type tapResponse struct {
	Data [][]any `json:"data"`
}

// dustResponse is the JSON shape of the extinction service result.
type dustResponse struct {
	EBV float64 `json:"ebv"`
}

// ObjectMeta resolves (ra, dec, redshift, extinction) for one object.
// A masked or absent redshift defaults to 0.0; an extinction lookup
// failure defaults to 0.0; a failed coordinate lookup fails the call.
func (c *Client) ObjectMeta(id string) (*models.ObjectMeta, error) {
	var tap tapResponse

	query := fmt.Sprintf(
		"SELECT basic.ra, basic.dec, basic.rvz_redshift FROM basic WHERE main_id = '%s'", id)

	resp, err := c.rest.R().
		SetQueryParams(map[string]string{
			"request": "doQuery",
			"lang":    "adql",
			"format":  "json",
			"query":   query,
		}).
		SetResult(&tap).
		Get(c.simbadURL)
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode())
	}

	if len(tap.Data) == 0 || len(tap.Data[0]) < 3 {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, id)
	}

	row := tap.Data[0]

	ra, raOK := asFloat(row[0])
	dec, decOK := asFloat(row[1])

	if !raOK || !decOK {
		return nil, fmt.Errorf("%w: non-numeric coordinates for %s", ErrBadResponse, id)
	}

	// Redshift may be masked (null) for historical objects.
	redshift, ok := asFloat(row[2])
	if !ok {
		redshift = 0.0
	}

	meta := &models.ObjectMeta{
		RA:       ra,
		Dec:      dec,
		Redshift: redshift,
		MWEBV:    c.extinction(id, ra, dec),
	}

	return meta, nil
}

// extinction queries E(B-V) at the given coordinates. Any failure
// degrades to 0.0: extinction is enrichment, not a gate.
func (c *Client) extinction(id string, ra, dec float64) float64 {
	var dust dustResponse

	resp, err := c.rest.R().
		SetQueryParams(map[string]string{
			"locstr":  fmt.Sprintf("%.6f %.6f equ j2000", ra, dec),
			"regSize": "2.0",
			"format":  "json",
		}).
		SetResult(&dust).
		Get(c.dustURL)

	if err != nil || resp.IsError() {
		c.log.Debug("extinction lookup failed, defaulting to 0.0", "object", id)

		return 0.0
	}

	return dust.EBV
}

// asFloat unwraps a TAP cell into a float64. JSON null and string cells
// report false.
func asFloat(v any) (float64, bool) {
	f, ok := v.(float64)

	return f, ok
}
