package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/boxtint/internal/colour"
	"github.com/jmylchreest/boxtint/internal/util"
)

// fileRecord is the on-disk shape: a single top-level "colors" list.
type fileRecord struct {
	Colors []entryRecord `yaml:"colors" json:"colors"`
}

type entryRecord struct {
	ID  int    `yaml:"id" json:"id"`
	Hex string `yaml:"hex" json:"hex"`
	RGB []int  `yaml:"rgb,flow" json:"rgb"`
}

// looseFile mirrors fileRecord with pointers so missing keys can be told apart from zero values.
type looseFile struct {
	Colors *[]looseEntry `yaml:"colors" json:"colors"`
}

type looseEntry struct {
	ID  *int    `yaml:"id" json:"id"`
	Hex *string `yaml:"hex" json:"hex"`
	RGB []int   `yaml:"rgb" json:"rgb"`
}

// Marshal encodes p as JSON when ext is ".json" and as YAML otherwise.
func Marshal(p *Palette, ext string) ([]byte, error) {
	rec := fileRecord{Colors: make([]entryRecord, len(p.Entries))}
	for i, e := range p.Entries {
		rec.Colors[i] = entryRecord{ID: e.ID, Hex: e.Hex, RGB: e.RGB.Triple()}
	}

	if isJSON(ext) {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode palette as JSON: %w", err)
		}
		return append(data, '\n'), nil
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette as YAML: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a palette document. ext picks the format; an unknown
// extension tries YAML first, then JSON.
func Unmarshal(data []byte, ext string) (*Palette, error) {
	var raw looseFile

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPalette, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPalette, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			if jsonErr := json.Unmarshal(data, &raw); jsonErr != nil {
				return nil, fmt.Errorf("%w: not YAML or JSON: %v", ErrMalformedPalette, err)
			}
		}
	}

	if raw.Colors == nil {
		return nil, fmt.Errorf("%w: missing \"colors\" key", ErrMalformedPalette)
	}

	p := &Palette{Entries: make([]Entry, 0, len(*raw.Colors))}
	for i, e := range *raw.Colors {
		switch {
		case e.ID == nil:
			return nil, fmt.Errorf("%w: entry %d missing \"id\"", ErrMalformedPalette, i)
		case e.Hex == nil:
			return nil, fmt.Errorf("%w: entry %d missing \"hex\"", ErrMalformedPalette, i)
		case e.RGB == nil:
			return nil, fmt.Errorf("%w: entry %d missing \"rgb\"", ErrMalformedPalette, i)
		}

		rgb, err := colour.FromTriple(e.RGB)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformedPalette, i, err)
		}

		p.Entries = append(p.Entries, Entry{ID: *e.ID, Hex: *e.Hex, RGB: rgb})
	}

	return p, nil
}

// Save writes p to path, creating parent directories as needed.
func Save(path string, p *Palette) error {
	data, err := Marshal(p, filepath.Ext(path))
	if err != nil {
		return err
	}

	if err := util.EnsureParent(path); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - Palette files are meant to be shared
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	return nil
}

// Load reads a palette file. A missing file wraps util.ErrNotFound; anything
// unreadable or structurally wrong wraps ErrMalformedPalette.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified palette file, intended to be read
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("palette file %s: %w", path, util.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrMalformedPalette, path, err)
	}

	p, err := Unmarshal(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("palette file %s: %w", path, err)
	}
	return p, nil
}

// Exists reports whether a palette file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isJSON(ext string) bool {
	return strings.EqualFold(ext, ".json")
}
