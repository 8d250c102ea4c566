package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/boxtint/internal/colour"
	"github.com/jmylchreest/boxtint/internal/config"
	imgutil "github.com/jmylchreest/boxtint/internal/image"
	"github.com/jmylchreest/boxtint/internal/palette"
	"github.com/jmylchreest/boxtint/internal/seed"
)

// generateFlags are the palette generation flags shared by generate and ensure.
type generateFlags struct {
	count       int
	minDistance float64
	retries     int
	metric      string
	seedMode    string
	seedValue   int64
}

func (f *generateFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.count, "count", "n", 100, "number of colours to generate")
	fs.Float64VarP(&f.minDistance, "min-distance", "d", palette.DefaultMinDistance, "minimum distance between colours")
	fs.IntVar(&f.retries, "retries", palette.DefaultRetries, "replacement draws for a colour that is too close")
	fs.StringVarP(&f.metric, "metric", "m", string(colour.MetricRGB), "distance metric (rgb, cie76, ciede2000)")
	fs.StringVar(&f.seedMode, "seed-mode", string(seed.ModeRandom), "seed mode (random, manual, filepath)")
	fs.Int64Var(&f.seedValue, "seed", 0, "seed value (implies --seed-mode manual)")
}

// apply copies explicitly set flags over cfg.
func (f *generateFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("count") {
		cfg.Count = f.count
	}
	if fs.Changed("min-distance") {
		cfg.MinDistance = f.minDistance
	}
	if fs.Changed("retries") {
		cfg.Retries = f.retries
	}
	if fs.Changed("metric") {
		cfg.Metric = f.metric
	}
}

func (f *generateFlags) seedConfig(fs *pflag.FlagSet) (seed.Config, error) {
	mode, err := seed.ParseMode(f.seedMode)
	if err != nil {
		return seed.Config{}, err
	}

	var cfg seed.Config
	cfg.Mode = mode
	if fs.Changed("seed") {
		cfg.Value = &f.seedValue
		if !fs.Changed("seed-mode") {
			cfg.Mode = seed.ModeManual
		}
	}
	return cfg, nil
}

func newPaletteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate, render and inspect colour palettes",
		Long: `Work with class colour palettes.

A palette is an ordered list of colours; the colour at position i is used for
class id i. Each new colour is drawn at random and redrawn (once by default)
if it is closer than --min-distance to a colour already in the palette. The
last draw is kept either way, so the distance is a target, not a guarantee.`,
	}

	cmd.PersistentFlags().StringP("palette", "p", "", "palette file (default from config: config/colors.yaml)")

	cmd.AddCommand(newPaletteGenerateCmd(a))
	cmd.AddCommand(newPaletteRenderCmd(a))
	cmd.AddCommand(newPaletteShowCmd(a))
	cmd.AddCommand(newPaletteEnsureCmd(a))

	return cmd
}

// palettePath resolves the palette file from --palette or config.
func (a *app) palettePath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("palette"); p != "" {
		return p
	}
	return a.cfg.PaletteFile
}

func newPaletteGenerateCmd(a *app) *cobra.Command {
	var (
		flags generateFlags
		force bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette file",
		Long: `Generate a palette of visually distinct colours and write it to a file.

The format follows the file extension: .json writes JSON, anything else YAML.

Examples:
  # 100 colours at least 200 apart in RGB (best effort)
  boxtint palette generate

  # Reproducible palette of 20 colours
  boxtint palette generate -n 20 --seed 42 -p config/colors.yaml

  # Perceptual distance with a stronger retry budget
  boxtint palette generate -m ciede2000 -d 25 --retries 10 --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.palettePath(cmd)
			if palette.Exists(path) && !force {
				return fmt.Errorf("palette file %s already exists (use --force to overwrite)", path)
			}
			_, err := a.generatePalette(cmd, &flags, path)
			return err
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing palette file")

	return cmd
}

// generatePalette builds a palette from config and flags and saves it to path.
func (a *app) generatePalette(cmd *cobra.Command, flags *generateFlags, path string) (*palette.Palette, error) {
	flags.apply(cmd.Flags(), a.cfg)
	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	seedCfg, err := flags.seedConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}
	seedValue, err := seed.Calculate(path, seedCfg)
	if err != nil {
		return nil, err
	}

	metric, err := colour.ParseMetric(a.cfg.Metric)
	if err != nil {
		return nil, err
	}

	gen := palette.NewGenerator(
		palette.WithMinDistance(a.cfg.MinDistance),
		palette.WithMetric(metric),
		palette.WithRetries(a.cfg.Retries),
		palette.WithSeed(seedValue),
		palette.WithLogger(a.logger.Named("generator")),
	)

	p, stats, err := gen.Generate(a.cfg.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to generate palette: %w", err)
	}
	if stats.Violations > 0 {
		a.logger.Warn("some colours are closer than the minimum distance",
			"count", stats.Violations, "min_distance", a.cfg.MinDistance, "metric", metric)
	}

	if err := palette.Save(path, p); err != nil {
		return nil, err
	}
	a.logger.Info("palette saved", "path", path, "colours", p.Len(), "seed", seedValue, "retried", stats.Retried)

	return p, nil
}

func newPaletteRenderCmd(a *app) *cobra.Command {
	var (
		output   string
		cellSize int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a palette as a labelled colour grid image",
		Long: `Render a palette file as a grid image with ten cells per row.

Each cell is filled with its colour and labelled with its hex code. The image
grows by one row per ten colours. The output format follows the extension
(.png, .jpg, .bmp).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := palette.Load(a.palettePath(cmd))
			if err != nil {
				return err
			}
			return a.renderGrid(cmd, p, output, cellSize)
		},
	}

	registerGridFlags(cmd, &output, &cellSize)

	return cmd
}

func registerGridFlags(cmd *cobra.Command, output *string, cellSize *int) {
	cmd.Flags().StringVarP(output, "output", "o", "", "grid image file (default from config: colors_map.png)")
	cmd.Flags().IntVar(cellSize, "cell-size", palette.DefaultCellSize, "grid cell size in pixels")
}

// renderGrid draws p as a grid and saves it to output, or the configured grid file.
func (a *app) renderGrid(cmd *cobra.Command, p *palette.Palette, output string, cellSize int) error {
	if output == "" {
		output = a.cfg.GridFile
	}
	if cellSize < 1 {
		return fmt.Errorf("cell size must be at least 1, got %d", cellSize)
	}

	opts := palette.DefaultGridOptions()
	opts.CellSize = cellSize

	img := palette.RenderGrid(p, opts)
	if err := imgutil.Save(output, img); err != nil {
		return fmt.Errorf("failed to save palette grid: %w", err)
	}

	a.logger.Info("palette grid saved", "path", output, "colours", p.Len(), "rows", palette.GridRows(p.Len()))
	return nil
}

func newPaletteShowCmd(a *app) *cobra.Command {
	var colourMode string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a palette as a table",
		Long: `Print every palette entry with its class id, hex code and RGB value.

On a terminal a colour swatch is shown next to each entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := palette.Load(a.palettePath(cmd))
			if err != nil {
				return err
			}

			var swatches bool
			switch colourMode {
			case "auto":
				swatches = isTerminal(cmd.OutOrStdout())
			case "always":
				swatches = true
			case "never":
			default:
				return fmt.Errorf("invalid colour mode: %s (valid: auto, always, never)", colourMode)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatPaletteTable(p, swatches))
			return nil
		},
	}

	cmd.Flags().StringVar(&colourMode, "colour", "auto", "show colour swatches (auto, always, never)")

	return cmd
}

// formatPaletteTable lists entries with their class id (zero-based) and palette id.
func formatPaletteTable(p *palette.Palette, swatches bool) string {
	headers := []string{"CLASS", "ID", "HEX", "RGB"}
	if swatches {
		headers = append(headers, "SWATCH")
	}

	table := NewTable(headers)
	for i, e := range p.All() {
		row := []string{strconv.Itoa(i), strconv.Itoa(e.ID), e.Hex, e.RGB.String()}
		if swatches {
			row = append(row, colour.ColourPreviewWithText(e.RGB, strconv.Itoa(i), 8))
		}
		table.AddRow(row)
	}

	return table.Render()
}

func newPaletteEnsureCmd(a *app) *cobra.Command {
	var (
		flags    generateFlags
		output   string
		cellSize int
	)

	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Generate the palette if it is missing, then render its grid",
		Long: `Make sure a palette exists and refresh its grid image.

If the palette file is absent it is generated with the generation flags;
an existing palette is loaded unchanged. The grid image is always rendered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.palettePath(cmd)

			var (
				p   *palette.Palette
				err error
			)
			if palette.Exists(path) {
				a.logger.Info("palette file exists, loading", "path", path)
				p, err = palette.Load(path)
			} else {
				a.logger.Info("palette file not found, generating", "path", path)
				p, err = a.generatePalette(cmd, &flags, path)
			}
			if err != nil {
				return err
			}

			return a.renderGrid(cmd, p, output, cellSize)
		},
	}

	flags.register(cmd.Flags())
	registerGridFlags(cmd, &output, &cellSize)

	return cmd
}
