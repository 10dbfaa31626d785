// Package config loads posefig settings from a JSON file and overlays
// command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"posefig/internal/figure"
	"posefig/internal/raster"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths, relative ones resolved against BaseDir.
	BaseDir   string `json:"base_dir"`
	Catalog   string `json:"catalog"`
	OutputDir string `json:"output_dir"`
	FontFile  string `json:"font_file"`

	// Render settings
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	Scale       string `json:"scale"`
	Format      string `json:"format"`
	Workers     int    `json:"workers"`
}

// Load reads a JSON config file and returns Config. Fields not set in the
// file keep their zero values; BaseDir defaults to the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	} else if !filepath.IsAbs(cfg.BaseDir) {
		cfg.BaseDir = filepath.Join(filepath.Dir(path), cfg.BaseDir)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting alone.
type Flags struct {
	Catalog     string
	OutputDir   string
	FontFile    string
	Width       int
	Height      int
	Supersample int
	Scale       string
	Format      string
	Workers     int
}

// Resolve applies flags, resolves relative paths and fills in defaults.
// Paths given as flags are taken relative to the working directory.
func (c *Config) Resolve(flags Flags) {
	c.Catalog = c.path(c.Catalog)
	c.OutputDir = c.path(c.OutputDir)
	c.FontFile = c.path(c.FontFile)

	// CLI flags override config file
	if flags.Catalog != "" {
		c.Catalog = flags.Catalog
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.FontFile != "" {
		c.FontFile = flags.FontFile
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Scale != "" {
		c.Scale = flags.Scale
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = c.path("renders")
	}
	if c.Width <= 0 {
		c.Width = figure.DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = figure.DefaultHeight
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Scale == "" {
		c.Scale = figure.ScaleClip.String()
	}
	if c.Format == "" {
		c.Format = string(raster.FormatWebP)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func (c *Config) path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// Validate reports every setting Resolve could not make usable.
func (c Config) Validate() error {
	var errs []error
	if _, err := figure.ParseScaleMode(c.Scale); err != nil {
		errs = append(errs, err)
	}
	if _, err := raster.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Supersample > 8 {
		errs = append(errs, fmt.Errorf("config: supersample %d exceeds 8", c.Supersample))
	}
	if c.FontFile != "" {
		if _, err := os.Stat(c.FontFile); err != nil {
			errs = append(errs, fmt.Errorf("config: font: %w", err))
		}
	}
	return errors.Join(errs...)
}

// ScaleMode returns the parsed scale mode; call after Validate.
func (c Config) ScaleMode() figure.ScaleMode {
	m, _ := figure.ParseScaleMode(c.Scale)
	return m
}

// RasterFormat returns the parsed output format; call after Validate.
func (c Config) RasterFormat() raster.Format {
	f, _ := raster.ParseFormat(c.Format)
	return f
}
