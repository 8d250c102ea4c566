package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		body string
	}{
		{name: "yaml", file: "boxtint.yaml", body: "count: 12\nmin_distance: 80\nimage_dir: imgs\n"},
		{name: "json", file: "boxtint.json", body: `{"count": 12, "min_distance": 80, "image_dir": "imgs"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatal(err)
			}

			c := Default()
			if err := c.LoadFile(path); err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if c.Count != 12 || c.MinDistance != 80 || c.ImageDir != "imgs" {
				t.Errorf("LoadFile() = %+v", c)
			}
			if c.LabelDir != Default().LabelDir {
				t.Errorf("LoadFile() reset LabelDir to %q", c.LabelDir)
			}
		})
	}

	if err := Default().LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) expected error")
	}
}

func TestLoadFileUnknownKey(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		body string
	}{
		{name: "yaml", file: "typo.yaml", body: "count: 12\nmin_distnace: 80\n"},
		{name: "json", file: "typo.json", body: `{"count": 12, "min_distnace": 80}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatal(err)
			}

			err := Default().LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), "min_distnace") {
				t.Errorf("LoadFile() error = %v, want unknown key min_distnace", err)
			}
		})
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	c := Default()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile(empty) error = %v", err)
	}
	if *c != *Default() {
		t.Errorf("LoadFile(empty) changed config to %+v", c)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPalette, "p.json")
	t.Setenv(EnvImages, "i")
	t.Setenv(EnvLabels, "l")
	t.Setenv(EnvOutput, "o")
	t.Setenv(EnvMinDistance, "42.5")

	c := Default()
	if err := c.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if c.PaletteFile != "p.json" || c.ImageDir != "i" || c.LabelDir != "l" || c.OutputDir != "o" || c.MinDistance != 42.5 {
		t.Errorf("ApplyEnv() = %+v", c)
	}

	t.Setenv(EnvMinDistance, "far")
	if err := Default().ApplyEnv(); err == nil {
		t.Error("ApplyEnv() with bad distance expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero count", mutate: func(c *Config) { c.Count = 0 }},
		{name: "negative distance", mutate: func(c *Config) { c.MinDistance = -1 }},
		{name: "negative retries", mutate: func(c *Config) { c.Retries = -1 }},
		{name: "unknown metric", mutate: func(c *Config) { c.Metric = "hsv" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Validate() expected error")
			}
		})
	}
}
