package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/boxtint/internal/annotation"
	"github.com/jmylchreest/boxtint/internal/palette"
)

func newAnnotateCmd(a *app) *cobra.Command {
	var (
		imageDir  string
		labelDir  string
		outputDir string
		keepGoing bool
	)

	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Draw YOLO bounding boxes onto images in palette colours",
		Long: `Render every image in the image folder with its YOLO labels drawn on top.

For each .jpg, .jpeg, .png or .bmp file the label file with the same stem and
a .txt extension is read from the label folder. Each line holds
"class x_center y_center width height" with coordinates normalised to [0, 1].
Boxes are outlined in the palette colour of their class and tagged with the
class id. Results are written under the same file name in the output folder.

By default the first failing image stops the run. With --keep-going failures
are reported and the remaining images are still rendered.

Examples:
  boxtint annotate
  boxtint annotate -i data/images -l data/labels -o preview -p config/colors.yaml
  boxtint annotate --keep-going`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("images") {
				a.cfg.ImageDir = imageDir
			}
			if flags.Changed("labels") {
				a.cfg.LabelDir = labelDir
			}
			if flags.Changed("output") {
				a.cfg.OutputDir = outputDir
			}
			if flags.Changed("keep-going") {
				a.cfg.KeepGoing = keepGoing
			}
			if p, _ := flags.GetString("palette"); p != "" {
				a.cfg.PaletteFile = p
			}

			p, err := palette.Load(a.cfg.PaletteFile)
			if err != nil {
				return err
			}
			a.logger.Debug("loaded palette", "path", a.cfg.PaletteFile, "colours", p.Len())

			policy := annotation.Strict
			if a.cfg.KeepGoing {
				policy = annotation.ContinueOnError
			}

			renderer := annotation.NewRenderer(p,
				annotation.WithFailurePolicy(policy),
				annotation.WithLogger(a.logger.Named("annotate")),
			)

			summary, err := renderer.RenderAll(cmd.Context(), a.cfg.ImageDir, a.cfg.LabelDir, a.cfg.OutputDir)
			if summary != nil && !a.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "rendered %d image(s), %d box(es), %d failed\n",
					len(summary.Rendered), summary.Boxes, len(summary.Failed))
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&imageDir, "images", "i", "", "image folder (default from config: tmp/image)")
	cmd.Flags().StringVarP(&labelDir, "labels", "l", "", "label folder (default from config: tmp/label)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output folder (default from config: tmp/output)")
	cmd.Flags().StringP("palette", "p", "", "palette file (default from config: config/colors.yaml)")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "continue past images that fail to render")

	return cmd
}
