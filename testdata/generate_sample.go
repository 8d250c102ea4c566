//go:build ignore

// Sample dataset generator for trying out the annotate command.
//
// Writes testdata/sample/image/*.png with coloured rectangles and a matching
// YOLO label file per image under testdata/sample/label.
//
//	go run testdata/generate_sample.go
//	go run ./cmd/boxtint annotate -i testdata/sample/image -l testdata/sample/label -o testdata/sample/output
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/boxtint/internal/annotation"
	imgutil "github.com/jmylchreest/boxtint/internal/image"
)

type sample struct {
	name  string
	w, h  int
	boxes []annotation.Annotation
}

func main() {
	root := filepath.Join("testdata", "sample")
	imageDir := filepath.Join(root, "image")
	labelDir := filepath.Join(root, "label")

	samples := []sample{
		{
			name: "street.png", w: 640, h: 480,
			boxes: []annotation.Annotation{
				{ClassID: 0, XCenter: 0.25, YCenter: 0.6, Width: 0.2, Height: 0.5},
				{ClassID: 2, XCenter: 0.7, YCenter: 0.7, Width: 0.4, Height: 0.3},
				{ClassID: 9, XCenter: 0.5, YCenter: 0.15, Width: 0.05, Height: 0.1},
			},
		},
		{
			name: "shelf.png", w: 320, h: 320,
			boxes: []annotation.Annotation{
				{ClassID: 39, XCenter: 0.2, YCenter: 0.3, Width: 0.1, Height: 0.25},
				{ClassID: 41, XCenter: 0.5, YCenter: 0.3, Width: 0.12, Height: 0.15},
				{ClassID: 45, XCenter: 0.8, YCenter: 0.75, Width: 0.3, Height: 0.2},
			},
		},
		{
			// No label file: annotate reports it and --keep-going skips it.
			name: "unlabelled.png", w: 200, h: 100,
		},
	}

	for _, s := range samples {
		if err := write(imageDir, labelDir, s); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", s.name, err)
			os.Exit(1)
		}
		fmt.Printf("Sample image created: %s\n", filepath.Join(imageDir, s.name))
	}
}

func write(imageDir, labelDir string, s sample) error {
	img := image.NewRGBA(image.Rect(0, 0, s.w, s.h))
	imgutil.FillRect(img, img.Bounds(), color.RGBA{R: 200, G: 200, B: 200, A: 255})

	var labels strings.Builder
	for i, a := range s.boxes {
		shade := uint8(60 + 40*i)
		imgutil.FillRect(img, a.Box(s.w, s.h), color.RGBA{R: shade, G: shade, B: shade, A: 255})
		fmt.Fprintf(&labels, "%d %g %g %g %g\n", a.ClassID, a.XCenter, a.YCenter, a.Width, a.Height)
	}

	if err := imgutil.Save(filepath.Join(imageDir, s.name), img); err != nil {
		return err
	}
	if len(s.boxes) == 0 {
		return nil
	}

	labelPath := filepath.Join(labelDir, strings.TrimSuffix(s.name, filepath.Ext(s.name))+".txt")
	if err := os.MkdirAll(labelDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(labelPath, []byte(labels.String()), 0o644) // #nosec G306 - Sample data is meant to be shared
}
