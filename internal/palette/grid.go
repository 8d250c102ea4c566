package palette

import (
	"image"

	"github.com/jmylchreest/boxtint/internal/colour"
	imgutil "github.com/jmylchreest/boxtint/internal/image"
)

const (
	// GridColumns is the fixed number of cells per row in a palette grid.
	GridColumns = 10

	// DefaultCellSize is the default edge length of a grid cell in pixels.
	DefaultCellSize = 64
)

// GridOptions controls palette grid rendering.
type GridOptions struct {
	CellSize int        // Edge length of a cell in pixels
	Border   colour.RGB // Outline drawn around every cell
}

// DefaultGridOptions returns the default grid layout.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		CellSize: DefaultCellSize,
		Border:   colour.Black,
	}
}

// GridPosition maps a zero-based entry index to its row and column.
func GridPosition(i int) (row, col int) {
	return i / GridColumns, i % GridColumns
}

// GridRows returns how many rows n entries occupy. There is always at least one.
func GridRows(n int) int {
	return max((n+GridColumns-1)/GridColumns, 1)
}

// RenderGrid draws one square per entry, filled with the entry colour,
// outlined, and labelled with its hex code. The image grows downward with
// the entry count; it is never paged.
func RenderGrid(p *Palette, opts GridOptions) *image.RGBA {
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultCellSize
	}
	cell := opts.CellSize

	img := image.NewRGBA(image.Rect(0, 0, GridColumns*cell, GridRows(p.Len())*cell))
	imgutil.FillRect(img, img.Bounds(), colour.White.RGBA())

	for i, e := range p.All() {
		row, col := GridPosition(i)
		r := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)

		imgutil.FillRect(img, r, e.RGB.RGBA())
		imgutil.StrokeRect(img, r, 1, opts.Border.RGBA())

		// Centre the label; long labels start at the left edge and are clipped to the cell.
		face := imgutil.LabelFace.Metrics()
		x := r.Min.X + max((cell-imgutil.TextWidth(e.Hex))/2, 2)
		y := r.Min.Y + (cell+face.Ascent.Ceil()-face.Descent.Ceil())/2
		inner := img.SubImage(r.Inset(1)).(*image.RGBA)
		imgutil.DrawText(inner, image.Pt(x, y), e.Hex, colour.ContrastingText(e.RGB).RGBA(), false)
	}

	return img
}
