package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	return path
}

const minimalConfig = `
pipeline:
  input:
    base_path: sne_data
  output:
    base_path: snana_virgo_data
objects:
  - id: SN1950B
    files:
      - SN1950B_photometry.csv
`

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Pipeline.Input.PhotometryDir != DefaultPhotometryDir {
		t.Errorf("PhotometryDir = %q, want %q", cfg.Pipeline.Input.PhotometryDir, DefaultPhotometryDir)
	}

	if cfg.Pipeline.Output.Survey != DefaultSurvey {
		t.Errorf("Survey = %q, want %q", cfg.Pipeline.Output.Survey, DefaultSurvey)
	}

	if cfg.Pipeline.Lookup.SimbadURL != DefaultSimbadURL {
		t.Errorf("SimbadURL = %q, want default", cfg.Pipeline.Lookup.SimbadURL)
	}

	if cfg.Pipeline.Lookup.TimeoutSec != DefaultTimeoutSec {
		t.Errorf("TimeoutSec = %d, want %d", cfg.Pipeline.Lookup.TimeoutSec, DefaultTimeoutSec)
	}

	if cfg.Pipeline.Logging.Level != DefaultLogLevel {
		t.Errorf("Level = %q, want %q", cfg.Pipeline.Logging.Level, DefaultLogLevel)
	}

	if cfg.Objects[0].MagSystem != DefaultMagSystem {
		t.Errorf("MagSystem = %q, want %q", cfg.Objects[0].MagSystem, DefaultMagSystem)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "pipeline: [not a mapping"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{
			Objects: []ObjectConfig{
				{ID: "SN1950B", Files: []string{"a.csv"}, MagSystem: "Vega"},
			},
		}
		cfg.Pipeline.Input.BasePath = "sne_data"
		cfg.Pipeline.Output.BasePath = "snana_virgo_data"
		cfg.Pipeline.Lookup.SimbadURL = DefaultSimbadURL
		cfg.Pipeline.Lookup.TimeoutSec = 30
		cfg.Pipeline.Logging.Level = "info"

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing input path",
			mutate:  func(c *Config) { c.Pipeline.Input.BasePath = "" },
			wantErr: ErrMissingInputPath,
		},
		{
			name:    "missing output path",
			mutate:  func(c *Config) { c.Pipeline.Output.BasePath = "" },
			wantErr: ErrMissingOutputPath,
		},
		{
			name:    "missing lookup url",
			mutate:  func(c *Config) { c.Pipeline.Lookup.SimbadURL = "" },
			wantErr: ErrMissingLookupURL,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Pipeline.Lookup.TimeoutSec = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Pipeline.Logging.Level = "verbose" },
			wantErr: ErrInvalidLogLevel,
		},
		{
			name:    "no objects",
			mutate:  func(c *Config) { c.Objects = nil },
			wantErr: ErrNoObjects,
		},
		{
			name:    "object without id",
			mutate:  func(c *Config) { c.Objects[0].ID = "" },
			wantErr: ErrObjectMissingID,
		},
		{
			name:    "object without files",
			mutate:  func(c *Config) { c.Objects[0].Files = nil },
			wantErr: ErrObjectNoFiles,
		},
		{
			name: "duplicate object id",
			mutate: func(c *Config) {
				c.Objects = append(c.Objects, ObjectConfig{ID: "SN1950B", Files: []string{"b.csv"}})
			},
			wantErr: ErrDuplicateObjectID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate returned error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestObjectLookup(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if obj := cfg.Object("SN1950B"); obj == nil || obj.ID != "SN1950B" {
		t.Errorf("Object(SN1950B) = %+v", obj)
	}

	if obj := cfg.Object("SN9999Z"); obj != nil {
		t.Errorf("Object(SN9999Z) = %+v, want nil", obj)
	}
}

func TestPaths(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	want := filepath.Join("sne_data", "SN1950B", "Photometry", "SN1950B_photometry.csv")
	if got := cfg.PhotometryPath("SN1950B", "SN1950B_photometry.csv"); got != want {
		t.Errorf("PhotometryPath = %q, want %q", got, want)
	}

	want = filepath.Join("snana_virgo_data", "SN1950B", "Photometry", "SN1950B.photometry.snana.dat")
	if got := cfg.OutputPath("SN1950B"); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestGetTimeout(t *testing.T) {
	lc := LookupConfig{TimeoutSec: 45}
	if got := lc.GetTimeout(); got != 45*time.Second {
		t.Errorf("GetTimeout = %v, want 45s", got)
	}
}
