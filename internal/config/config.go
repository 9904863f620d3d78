// Package config provides configuration management for the photometry worker.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied to absent configuration values.
const (
	DefaultMagSystem     = "Vega"
	DefaultPhotometryDir = "Photometry"
	DefaultSurvey        = "VIRGO_PROJECT"
	DefaultSimbadURL     = "https://simbad.cds.unistra.fr/simbad/sim-tap/sync"
	DefaultDustURL       = "https://irsa.ipac.caltech.edu/cgi-bin/DUST/nph-dust"
	DefaultTimeoutSec    = 30
	DefaultLogLevel      = "info"
)

// Configuration validation errors.
var (
	ErrNoObjects         = errors.New("at least one object is required")
	ErrObjectMissingID   = errors.New("object id is required")
	ErrObjectNoFiles     = errors.New("at least one file is required per object")
	ErrDuplicateObjectID = errors.New("duplicate object id")
	ErrMissingInputPath  = errors.New("input.base_path is required")
	ErrMissingOutputPath = errors.New("output.base_path is required")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidTimeout    = errors.New("lookup.timeout_sec must be at least 1")
	ErrMissingLookupURL  = errors.New("lookup.simbad_url is required")
)

// Config represents the complete worker configuration: the pipeline
// settings plus the static object registry.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Objects  []ObjectConfig `yaml:"objects"`
}

// PipelineConfig contains pipeline-wide settings.
type PipelineConfig struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Lookup   LookupConfig   `yaml:"lookup"`
	Logging  LoggingConfig  `yaml:"logging"`
	Features FeaturesConfig `yaml:"features"`
}

// InputConfig locates the raw photometry tree.
type InputConfig struct {
	BasePath      string `yaml:"base_path"`
	PhotometryDir string `yaml:"photometry_dir"`
}

// OutputConfig locates the canonical output tree.
type OutputConfig struct {
	BasePath string `yaml:"base_path"`
	Survey   string `yaml:"survey"`
}

// LookupConfig configures the catalog metadata lookup collaborator.
type LookupConfig struct {
	SimbadURL  string `yaml:"simbad_url"`
	DustURL    string `yaml:"dust_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// GetTimeout returns the lookup timeout duration.
func (lc *LookupConfig) GetTimeout() time.Duration {
	return time.Duration(lc.TimeoutSec) * time.Second
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	// StrictBands turns band labels missing from the alias table into a
	// per-object error instead of a silently dropped row.
	StrictBands bool `yaml:"strict_bands"`
}

// ObjectConfig declares one object: its ordered source files and the
// magnitude system its measurements were taken in.
type ObjectConfig struct {
	ID        string   `yaml:"id"`
	Files     []string `yaml:"files"`
	MagSystem string   `yaml:"mag_system"`
}

// LoadConfig loads and validates configuration from a YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Pipeline.Input.PhotometryDir == "" {
		c.Pipeline.Input.PhotometryDir = DefaultPhotometryDir
	}

	if c.Pipeline.Output.Survey == "" {
		c.Pipeline.Output.Survey = DefaultSurvey
	}

	if c.Pipeline.Lookup.SimbadURL == "" {
		c.Pipeline.Lookup.SimbadURL = DefaultSimbadURL
	}

	if c.Pipeline.Lookup.DustURL == "" {
		c.Pipeline.Lookup.DustURL = DefaultDustURL
	}

	if c.Pipeline.Lookup.TimeoutSec == 0 {
		c.Pipeline.Lookup.TimeoutSec = DefaultTimeoutSec
	}

	if c.Pipeline.Logging.Level == "" {
		c.Pipeline.Logging.Level = DefaultLogLevel
	}

	for i := range c.Objects {
		if c.Objects[i].MagSystem == "" {
			c.Objects[i].MagSystem = DefaultMagSystem
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.Input.BasePath == "" {
		return ErrMissingInputPath
	}

	if c.Pipeline.Output.BasePath == "" {
		return ErrMissingOutputPath
	}

	if c.Pipeline.Lookup.SimbadURL == "" {
		return ErrMissingLookupURL
	}

	if c.Pipeline.Lookup.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Pipeline.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if len(c.Objects) == 0 {
		return ErrNoObjects
	}

	seen := make(map[string]bool)

	for i, obj := range c.Objects {
		if obj.ID == "" {
			return fmt.Errorf("%w: objects[%d]", ErrObjectMissingID, i)
		}

		if seen[obj.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateObjectID, obj.ID)
		}

		seen[obj.ID] = true

		if len(obj.Files) == 0 {
			return fmt.Errorf("%w: %s", ErrObjectNoFiles, obj.ID)
		}
	}

	return nil
}

// Object returns the registry entry for the given id, or nil.
func (c *Config) Object(id string) *ObjectConfig {
	for i := range c.Objects {
		if c.Objects[i].ID == id {
			return &c.Objects[i]
		}
	}

	return nil
}

// PhotometryPath follows structure: {input.base_path}/{id}/{photometry_dir}/{file}.
func (c *Config) PhotometryPath(objectID, fileName string) string {
	return filepath.Join(c.Pipeline.Input.BasePath, objectID, c.Pipeline.Input.PhotometryDir, fileName)
}

// OutputPath follows structure: {output.base_path}/{id}/{photometry_dir}/{id}.photometry.snana.dat.
func (c *Config) OutputPath(objectID string) string {
	return filepath.Join(
		c.Pipeline.Output.BasePath,
		objectID,
		c.Pipeline.Input.PhotometryDir,
		objectID+".photometry.snana.dat",
	)
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Objects: %d, Input: %s, Output: %s}",
		len(c.Objects),
		c.Pipeline.Input.BasePath,
		c.Pipeline.Output.BasePath,
	)
}
