// Package palette generates, stores and visualises class colour palettes.
package palette

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/boxtint/internal/colour"
)

var (
	// ErrMalformedPalette reports a palette file that is unreadable or lacks required keys.
	ErrMalformedPalette = errors.New("malformed palette")

	// ErrClassOutOfRange reports a class id with no palette entry.
	ErrClassOutOfRange = errors.New("class id out of range")
)

// Entry is one palette colour. IDs are 1-based and sequential.
type Entry struct {
	ID  int
	Hex string
	RGB colour.RGB
}

// NewEntry builds an entry whose hex is derived from rgb.
func NewEntry(id int, rgb colour.RGB) Entry {
	return Entry{ID: id, Hex: rgb.Hex(), RGB: rgb}
}

// Palette is an ordered list of entries. Position is the class id.
type Palette struct {
	Entries []Entry
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.Entries)
}

// Lookup returns the entry for a zero-based class id.
func (p *Palette) Lookup(classID int) (Entry, error) {
	if classID < 0 || classID >= len(p.Entries) {
		return Entry{}, fmt.Errorf("%w: %d (palette has %d colours)", ErrClassOutOfRange, classID, len(p.Entries))
	}
	return p.Entries[classID], nil
}

// Colours returns the RGB value of every entry in order.
func (p *Palette) Colours() []colour.RGB {
	out := make([]colour.RGB, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.RGB
	}
	return out
}

// All returns an iterator over class id and entry pairs.
func (p *Palette) All() func(func(int, Entry) bool) {
	return func(yield func(int, Entry) bool) {
		for i, e := range p.Entries {
			if !yield(i, e) {
				return
			}
		}
	}
}
