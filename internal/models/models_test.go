package models

import (
	"math"
	"testing"
)

func TestHasMagErr(t *testing.T) {
	if !(Observation{MagErr: 0.10}).HasMagErr() {
		t.Error("finite magerr reported as missing")
	}

	if (Observation{MagErr: math.NaN()}).HasMagErr() {
		t.Error("NaN magerr reported as present")
	}

	if (Observation{MagErr: math.Inf(1)}).HasMagErr() {
		t.Error("infinite magerr reported as present")
	}
}

func TestObservationSetBands(t *testing.T) {
	set := &ObservationSet{
		Observations: []Observation{
			{Band: "bessellv"},
			{Band: "bessellb"},
			{Band: "bessellv"},
		},
	}

	bands := set.Bands()

	if len(bands) != 2 || bands[0] != "bessellb" || bands[1] != "bessellv" {
		t.Errorf("Bands = %v, want [bessellb bessellv]", bands)
	}
}

func TestTableRename(t *testing.T) {
	tbl := &Table{Columns: []string{"Julian Date", "mag", "Magnitude"}}

	// The target already exists, so the alias must not clobber it.
	tbl.Rename("Magnitude", "mag")

	if tbl.Columns[2] != "Magnitude" {
		t.Errorf("Columns = %v, existing canonical column was clobbered", tbl.Columns)
	}

	tbl.Rename("Julian Date", "time")

	if tbl.Columns[0] != "time" {
		t.Errorf("Columns = %v, want time at index 0", tbl.Columns)
	}

	// Renaming an absent column is a no-op.
	tbl.Rename("ghost", "band")

	if tbl.Index("band") != -1 {
		t.Errorf("Columns = %v, rename of absent column created one", tbl.Columns)
	}
}

func TestTableCell(t *testing.T) {
	tbl := &Table{Columns: []string{"a", "b", "c"}}
	row := []string{"1", "2"}

	if got := tbl.Cell(row, 1); got != "2" {
		t.Errorf("Cell = %q, want 2", got)
	}

	if got := tbl.Cell(row, 2); got != "" {
		t.Errorf("Cell past row end = %q, want empty", got)
	}

	if got := tbl.Cell(row, -1); got != "" {
		t.Errorf("Cell at -1 = %q, want empty", got)
	}
}
