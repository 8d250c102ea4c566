// Package annotation parses normalized bounding-box label files and draws
// them onto images.
package annotation

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedAnnotation reports a label line that cannot be parsed.
var ErrMalformedAnnotation = errors.New("malformed annotation")

// fieldCount is the number of whitespace-separated fields on a label line.
const fieldCount = 5

// Annotation is one detection: a class id and a box whose centre and size
// are fractions of the image width and height.
type Annotation struct {
	ClassID int
	XCenter float64
	YCenter float64
	Width   float64
	Height  float64
}

// ParseLine parses "class_id x_center y_center width height".
func ParseLine(line string) (Annotation, error) {
	fields := strings.Fields(line)
	if len(fields) != fieldCount {
		return Annotation{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedAnnotation, fieldCount, len(fields))
	}

	classID, err := strconv.Atoi(fields[0])
	if err != nil {
		return Annotation{}, fmt.Errorf("%w: class id %q is not an integer", ErrMalformedAnnotation, fields[0])
	}
	if classID < 0 {
		return Annotation{}, fmt.Errorf("%w: class id %d is negative", ErrMalformedAnnotation, classID)
	}

	names := [...]string{"x_center", "y_center", "width", "height"}
	var vals [4]float64
	for i, name := range names {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Annotation{}, fmt.Errorf("%w: %s %q is not a number", ErrMalformedAnnotation, name, fields[i+1])
		}
		vals[i] = v
	}

	return Annotation{
		ClassID: classID,
		XCenter: vals[0],
		YCenter: vals[1],
		Width:   vals[2],
		Height:  vals[3],
	}, nil
}

// Parse reads one annotation per line. Blank lines are skipped; any other
// bad line fails the whole file with its line number.
func Parse(r io.Reader) ([]Annotation, error) {
	var out []Annotation

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		a, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}

	return out, nil
}

// Corners converts the box to pixel corners for a width x height image.
// Coordinates are truncated toward zero, not rounded.
func (a Annotation) Corners(width, height int) (xMin, yMin, xMax, yMax int) {
	xc := float64(a.XCenter * float64(width))
	yc := float64(a.YCenter * float64(height))
	halfW := float64(a.Width*float64(width)) / 2
	halfH := float64(a.Height*float64(height)) / 2

	return int(xc - halfW), int(yc - halfH), int(xc + halfW), int(yc + halfH)
}

// Box returns the pixel rectangle covering both corners, so Max is one past
// the bottom-right corner.
func (a Annotation) Box(width, height int) image.Rectangle {
	x0, y0, x1, y1 := a.Corners(width, height)
	return image.Rect(x0, y0, x1+1, y1+1)
}
