package image

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FillRect paints r with c. Drawing is clipped to dst.
func FillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// StrokeRect draws the outline of r with the given thickness, centred on the
// edges of r the way OpenCV strokes rectangles. A thickness of 1 stays inside r.
func StrokeRect(dst draw.Image, r image.Rectangle, thickness int, c color.Color) {
	if thickness < 1 {
		thickness = 1
	}

	half := thickness / 2
	outer := r.Inset(-half)
	if outer.Dx() <= 2*thickness || outer.Dy() <= 2*thickness {
		FillRect(dst, outer, c)
		return
	}
	inner := outer.Inset(thickness)

	FillRect(dst, image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y), c) // top
	FillRect(dst, image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y), c) // bottom
	FillRect(dst, image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y), c) // left
	FillRect(dst, image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y), c) // right
}

// LabelFace is the fixed bitmap face used for all text.
var LabelFace font.Face = basicfont.Face7x13

// DrawText draws text with its baseline starting at pt. When bold is set the
// glyphs are drawn twice, one pixel apart.
func DrawText(dst draw.Image, pt image.Point, text string, c color.Color, bold bool) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: LabelFace,
		Dot:  fixed.P(pt.X, pt.Y),
	}
	d.DrawString(text)

	if bold {
		d.Dot = fixed.P(pt.X+1, pt.Y)
		d.DrawString(text)
	}
}

// TextWidth returns the advance width of text in pixels.
func TextWidth(text string) int {
	return font.MeasureString(LabelFace, text).Round()
}
