// Package seed derives the random seed used for palette generation.
// A fixed seed makes a palette reproducible from its command line alone.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"time"
)

// Mode determines how the seed is obtained.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (varies each run).
	ModeRandom Mode = "random"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeFilepath hashes the absolute palette path, so a given path always yields the same palette.
	ModeFilepath Mode = "filepath"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// path is the palette file being generated (required for ModeFilepath).
func Calculate(path string, config Config) (int64, error) {
	switch config.Mode {
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeFilepath:
		if path == "" {
			return 0, fmt.Errorf("palette path is required for filepath-based seed mode")
		}
		return FilepathSeed(path), nil
	case ModeRandom, "":
		return RandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// FilepathSeed generates a deterministic seed from the absolute form of path.
func FilepathSeed(path string) int64 {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	hash := sha256.Sum256([]byte(absPath))
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// RandomSeed generates a non-deterministic seed.
func RandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() ^ rand.Int64()
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeManual, ModeFilepath}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, manual, filepath)", s)
}
