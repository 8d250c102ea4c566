// Package colour provides colour types, conversions and distance metrics.
package colour

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"

	"github.com/jmylchreest/boxtint/internal/util"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// Triple returns the channels as an ordered slice, the layout used in palette files.
func (rgb RGB) Triple() []int {
	return []int{int(rgb.R), int(rgb.G), int(rgb.B)}
}

// RGBA returns the colour as a fully opaque color.RGBA.
func (rgb RGB) RGBA() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ParseHex parses a "#RRGGBB" string (either case) into RGB.
func ParseHex(hex string) (RGB, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGB{}, fmt.Errorf("invalid hex colour %q: must be #RRGGBB", hex)
	}

	v, err := strconv.ParseUint(util.StripHash(hex), 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// FromTriple builds an RGB from three channel values, each in [0, 255].
func FromTriple(v []int) (RGB, error) {
	if len(v) != 3 {
		return RGB{}, fmt.Errorf("rgb must have 3 channels, got %d", len(v))
	}
	for i, c := range v {
		if c < 0 || c > 255 {
			return RGB{}, fmt.Errorf("rgb channel %d out of range: %d", i, c)
		}
	}
	return RGB{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}, nil
}

// Random draws a colour with each channel independently uniform over [0, 255].
func Random(r *rand.Rand) RGB {
	return RGB{
		R: uint8(r.IntN(256)),
		G: uint8(r.IntN(256)),
		B: uint8(r.IntN(256)),
	}
}
