package parsers

import (
	"math"
	"sort"
	"strings"

	"snpipe/internal/models"
	"snpipe/pkg/utils"
)

// Sanitize renames aliased columns to their canonical names, coerces the
// numeric fields, drops rows without a finite time and magnitude, and
// fills categorical defaults. It returns nil when no row survives, and it
// never fails: per-cell coercion errors degrade to the NaN sentinel.
func Sanitize(tbl *models.Table, aliases map[string]string) []models.Observation {
	if tbl == nil {
		return nil
	}

	// Apply aliases in sorted key order so that two aliases for the same
	// canonical column resolve deterministically.
	keys := make([]string, 0, len(aliases))
	for from := range aliases {
		keys = append(keys, from)
	}

	sort.Strings(keys)

	for _, from := range keys {
		tbl.Rename(from, aliases[from])
	}

	ti := tbl.Index(ColTime)
	mi := tbl.Index(ColMag)

	if ti < 0 || mi < 0 {
		return nil
	}

	ei := tbl.Index(ColMagErr)
	bi := tbl.Index(ColBand)
	ri := tbl.Index(ColReference)

	var out []models.Observation

	for _, row := range tbl.Rows {
		t := utils.ParseCellFloat(tbl.Cell(row, ti))
		m := utils.ParseCellFloat(tbl.Cell(row, mi))

		if !utils.IsFinite(t) || !utils.IsFinite(m) {
			continue
		}

		obs := models.Observation{
			Time:      t,
			Mag:       m,
			MagErr:    math.NaN(),
			Band:      models.DefaultBand,
			Reference: models.DefaultReference,
		}

		if ei >= 0 {
			obs.MagErr = utils.ParseCellFloat(tbl.Cell(row, ei))
		}

		if bi >= 0 {
			if band := strings.TrimSpace(tbl.Cell(row, bi)); band != "" {
				obs.Band = band
			}
		}

		if ri >= 0 {
			obs.Reference = tbl.Cell(row, ri)
		}

		out = append(out, obs)
	}

	return out
}
