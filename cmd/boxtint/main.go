// boxtint - class colour palettes and bounding-box previews
//
// boxtint generates palettes of visually distinct colours and draws YOLO
// object-detection labels onto images in those colours for inspection.
package main

import "github.com/jmylchreest/boxtint/internal/cli"

func main() {
	cli.Execute()
}
