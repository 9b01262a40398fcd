// Package config defines the processing configuration shared by a
// conversion run and validates it up front, before any work is queued.
package config

import (
	"fmt"
	"image/png"

	"shiroink/internal/pipeline"
)

// ValidationError reports a configuration field that failed validation.
// Configuration errors are terminal: a run with an invalid configuration
// never starts and is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Message)
}

// Config holds every knob of a conversion run. Built once, validated
// once, then shared read-only across workers.
type Config struct {
	SourceDir  string              `mapstructure:"source_dir"`
	DestDir    string              `mapstructure:"dest_dir"`
	Resolution pipeline.Resolution `mapstructure:"resolution"`

	// RightToLeft orders split spread pages for right-to-left reading.
	RightToLeft bool `mapstructure:"rtl"`

	// Quality is the 1-9 output compression level.
	Quality int `mapstructure:"quality"`

	Workers int `mapstructure:"workers"`

	// Preset names a pipeline preset. Mutually exclusive with Custom.
	Preset string `mapstructure:"preset"`

	// Custom is an explicitly assembled pipeline that takes precedence
	// over Preset. Not round-tripped through profiles.
	Custom *pipeline.Pipeline `mapstructure:"-"`

	ContinueOnError bool `mapstructure:"continue_on_error"`
	MaxRetries      int  `mapstructure:"max_retries"`
	DryRun          bool `mapstructure:"dry_run"`
	Debug           bool `mapstructure:"debug"`
}

// Default returns a configuration with the documented defaults; source
// and destination still need to be filled in.
func Default() Config {
	return Config{
		Resolution: pipeline.Resolution{Width: 1264, Height: 1680},
		Quality:    8,
		Workers:    4,
		Preset:     "scanned_manga",
		MaxRetries: 2,
	}
}

// Validate checks every field and returns the first violation found.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return &ValidationError{Field: "source_dir", Message: "must not be empty"}
	}
	if c.DestDir == "" {
		return &ValidationError{Field: "dest_dir", Message: "must not be empty"}
	}
	if c.Resolution.Width <= 0 || c.Resolution.Height <= 0 {
		return &ValidationError{
			Field:   "resolution",
			Message: fmt.Sprintf("must be positive, got %s", c.Resolution),
		}
	}
	if c.Quality < 1 || c.Quality > 9 {
		return &ValidationError{
			Field:   "quality",
			Message: fmt.Sprintf("must be between 1 and 9, got %d", c.Quality),
		}
	}
	if c.Workers < 1 {
		return &ValidationError{
			Field:   "workers",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Workers),
		}
	}
	if c.MaxRetries < 0 {
		return &ValidationError{
			Field:   "max_retries",
			Message: fmt.Sprintf("must not be negative, got %d", c.MaxRetries),
		}
	}
	if c.Custom == nil && c.Preset != "" {
		if _, err := pipeline.Preset(c.Preset); err != nil {
			return &ValidationError{Field: "preset", Message: err.Error()}
		}
	}
	return nil
}

// Pipeline resolves the run's pipeline: the custom one when set,
// otherwise the named preset, with the resize step placed for the
// configured resolution.
func (c *Config) Pipeline() (*pipeline.Pipeline, error) {
	p := c.Custom
	if p == nil {
		var err error
		p, err = pipeline.Preset(c.Preset)
		if err != nil {
			return nil, err
		}
	}
	return p.WithResize(c.Resolution), nil
}

// Compression maps the 1-9 quality level onto PNG compression: low
// levels favor speed, high levels favor size.
func (c *Config) Compression() png.CompressionLevel {
	switch {
	case c.Quality <= 3:
		return png.BestSpeed
	case c.Quality <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
