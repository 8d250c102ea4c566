// Package config holds the settings shared by the palette and annotate commands.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/boxtint/internal/colour"
	"github.com/jmylchreest/boxtint/internal/util"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvPalette     = "BOXTINT_PALETTE"
	EnvImages      = "BOXTINT_IMAGES"
	EnvLabels      = "BOXTINT_LABELS"
	EnvOutput      = "BOXTINT_OUTPUT"
	EnvMinDistance = "BOXTINT_MIN_DISTANCE"
)

// Config represents the tool configuration.
type Config struct {
	PaletteFile string  `yaml:"palette_file" json:"palette_file"`
	Count       int     `yaml:"count" json:"count"`
	MinDistance float64 `yaml:"min_distance" json:"min_distance"`
	Retries     int     `yaml:"retries" json:"retries"`
	Metric      string  `yaml:"metric" json:"metric"`
	GridFile    string  `yaml:"grid_file" json:"grid_file"`
	ImageDir    string  `yaml:"image_dir" json:"image_dir"`
	LabelDir    string  `yaml:"label_dir" json:"label_dir"`
	OutputDir   string  `yaml:"output_dir" json:"output_dir"`
	KeepGoing   bool    `yaml:"keep_going" json:"keep_going"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PaletteFile: filepath.Join("config", "colors.yaml"),
		Count:       100,
		MinDistance: 200,
		Retries:     1,
		Metric:      string(colour.MetricRGB),
		GridFile:    "colors_map.png",
		ImageDir:    filepath.Join("tmp", "image"),
		LabelDir:    filepath.Join("tmp", "label"),
		OutputDir:   filepath.Join("tmp", "output"),
	}
}

// LoadFile overlays the settings in a YAML or JSON file onto c.
// Keys absent from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	path = util.ExpandHome(path)

	data, err := os.ReadFile(path) // #nosec G304 - User-specified config file, intended to be read
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Unknown keys are rejected so a misspelt setting is not silently ignored.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	return nil
}

// ApplyEnv overlays values from BOXTINT_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvPalette); v != "" {
		c.PaletteFile = v
	}
	if v := os.Getenv(EnvImages); v != "" {
		c.ImageDir = v
	}
	if v := os.Getenv(EnvLabels); v != "" {
		c.LabelDir = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvMinDistance); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMinDistance, err)
		}
		c.MinDistance = d
	}
	return nil
}

// Validate checks the numeric settings and the metric name.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.Count)
	}
	if c.MinDistance < 0 {
		return fmt.Errorf("minimum distance must not be negative, got %g", c.MinDistance)
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", c.Retries)
	}
	if _, err := colour.ParseMetric(c.Metric); err != nil {
		return err
	}
	return nil
}
