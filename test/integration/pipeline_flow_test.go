package integration

import (
	"os"
	"path/filepath"
	"testing"

	"snpipe/internal/config"
	"snpipe/internal/logger"
	"snpipe/internal/models"
	"snpipe/internal/normalizer"
	"snpipe/internal/pipeline"
	"snpipe/internal/snana"
)

type fixedResolver struct{}

func (fixedResolver) ObjectMeta(id string) (*models.ObjectMeta, error) {
	return &models.ObjectMeta{RA: 184.73958333, Dec: 47.53111111, Redshift: 0.001544, MWEBV: 0.0173}, nil
}

func copyFixture(t *testing.T, name, dest string) {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "fixtures", name))
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		t.Fatalf("Failed to create input tree: %v", err)
	}

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		t.Fatalf("Failed to stage fixture: %v", err)
	}
}

func TestPipelineFlow_MixedFormats(t *testing.T) {
	obj := config.ObjectConfig{
		ID:        "SN1950B",
		Files:     []string{"delimited.csv", "tabsep.txt", "notes.txt"},
		MagSystem: "Vega",
	}

	cfg := &config.Config{Objects: []config.ObjectConfig{obj}}
	cfg.Pipeline.Input.BasePath = filepath.Join(t.TempDir(), "sne_data")
	cfg.Pipeline.Input.PhotometryDir = "Photometry"
	cfg.Pipeline.Output.BasePath = filepath.Join(t.TempDir(), "snana_virgo_data")
	cfg.Pipeline.Output.Survey = "VIRGO_PROJECT"

	// 1. Stage one object with all three source formats.
	for _, name := range obj.Files {
		copyFixture(t, name, cfg.PhotometryPath(obj.ID, name))
	}

	// 2. Run the full pipeline for the object.
	norm := normalizer.NewProcessor(normalizer.NewVocabulary())
	proc := pipeline.New(cfg, norm, fixedResolver{}, logger.NewNop())

	res := proc.ProcessObject(obj)

	if res.State != pipeline.StateEmitted {
		t.Fatalf("State = %s (err %v), want emitted", res.State, res.Err)
	}

	if res.ParsedFiles != 3 {
		t.Errorf("ParsedFiles = %d, want 3", res.ParsedFiles)
	}

	// delimited.csv loses its unparsable-magnitude row, notes.txt loses
	// its upper-limit row, everything else survives.
	if res.Observations != 8 {
		t.Errorf("Observations = %d, want 8", res.Observations)
	}

	// 3. Verify the emitted light curve.
	doc, err := snana.ReadFile(res.OutputPath)
	if err != nil {
		t.Fatalf("Failed to read emitted file: %v", err)
	}

	if doc.Survey != "VIRGO_PROJECT" || doc.SNID != "SN1950B" {
		t.Errorf("header identity = %q %q", doc.Survey, doc.SNID)
	}

	if doc.RedshiftHelio != 0.001544 {
		t.Errorf("RedshiftHelio = %v, want 0.001544", doc.RedshiftHelio)
	}

	wantFilters := []string{"bessellb", "bessellv", "standard::b", "standard::v"}
	if len(doc.Filters) != len(wantFilters) {
		t.Fatalf("Filters = %v, want %v", doc.Filters, wantFilters)
	}

	for i, want := range wantFilters {
		if doc.Filters[i] != want {
			t.Errorf("Filters[%d] = %q, want %q", i, doc.Filters[i], want)
		}
	}

	if len(doc.Rows) != 8 {
		t.Fatalf("got %d rows, want 8", len(doc.Rows))
	}

	// Count rows per filter: B, 'blue' and the notes B rows all map to
	// bessellb; pg rows to standard::b; pv to standard::v; V to bessellv.
	counts := make(map[string]int)
	for _, row := range doc.Rows {
		counts[row.Band]++

		if row.Flux <= 0 {
			t.Errorf("non-positive flux %v in band %s", row.Flux, row.Band)
		}

		if row.ZP != 25.0 || row.ZPSys != "vega" {
			t.Errorf("row zero point = (%v, %q), want (25, vega)", row.ZP, row.ZPSys)
		}
	}

	if counts["bessellb"] != 4 || counts["standard::b"] != 2 || counts["standard::v"] != 1 || counts["bessellv"] != 1 {
		t.Errorf("per-filter counts = %v", counts)
	}

	// Rows without a usable uncertainty carry the sentinel.
	sentinels := 0
	for _, row := range doc.Rows {
		if row.MagErr == -999.0 {
			sentinels++
		}
	}

	// Three tabsep rows have no uncertainty column, one notes row has a
	// null uncertainty cell.
	if sentinels != 4 {
		t.Errorf("sentinel magerr rows = %d, want 4", sentinels)
	}

	// 4. The emitted file passes its own validator.
	f, err := os.Open(res.OutputPath)
	if err != nil {
		t.Fatalf("Failed to reopen output: %v", err)
	}
	defer f.Close()

	result, err := snana.Validate(f)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if !result.IsValid {
		t.Errorf("emitted file failed validation: %+v", result.Errors)
	}
}
