package annotation

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/draw"

	imgutil "github.com/jmylchreest/boxtint/internal/image"
	"github.com/jmylchreest/boxtint/internal/palette"
	"github.com/jmylchreest/boxtint/internal/util"
)

const (
	// StrokeWidth is the box outline thickness in pixels.
	StrokeWidth = 2

	// LabelOffsetX and LabelOffsetY place the class label baseline relative
	// to the top-left corner of the box.
	LabelOffsetX = 5
	LabelOffsetY = 20
)

// FailurePolicy decides what RenderAll does when one image fails.
type FailurePolicy int

const (
	// Strict stops at the first failing image and returns its error.
	Strict FailurePolicy = iota
	// ContinueOnError records the failure and moves on to the next image.
	ContinueOnError
)

// Failure records one image that could not be rendered.
type Failure struct {
	Image string
	Err   error
}

// Summary reports the outcome of RenderAll.
type Summary struct {
	Rendered []string
	Failed   []Failure
	Boxes    int
}

// Renderer draws annotations in palette colours.
type Renderer struct {
	palette *palette.Palette
	loader  imgutil.Loader
	policy  FailurePolicy
	exts    []string
	logger  hclog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithFailurePolicy sets how RenderAll reacts to a failing image.
func WithFailurePolicy(p FailurePolicy) RendererOption {
	return func(r *Renderer) { r.policy = p }
}

// WithLoader replaces the image loader.
func WithLoader(l imgutil.Loader) RendererOption {
	return func(r *Renderer) { r.loader = l }
}

// WithExtensions replaces the image extension allow-list.
func WithExtensions(exts []string) RendererOption {
	return func(r *Renderer) { r.exts = exts }
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) RendererOption {
	return func(r *Renderer) { r.logger = l }
}

// NewRenderer creates a Renderer for the given palette.
func NewRenderer(p *palette.Palette, opts ...RendererOption) *Renderer {
	r := &Renderer{
		palette: p,
		loader:  imgutil.NewFileLoader(),
		policy:  Strict,
		exts:    imgutil.AnnotatableExtensions(),
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DrawAnnotation outlines the box in its class colour and writes the class id
// just inside the top-left corner. Nothing is drawn if the class id has no colour.
func (r *Renderer) DrawAnnotation(dst draw.Image, a Annotation) error {
	entry, err := r.palette.Lookup(a.ClassID)
	if err != nil {
		return err
	}

	b := dst.Bounds()
	box := a.Box(b.Dx(), b.Dy()).Add(b.Min)
	c := entry.RGB.RGBA()

	imgutil.StrokeRect(dst, box, StrokeWidth, c)
	imgutil.DrawText(dst, box.Min.Add(image.Pt(LabelOffsetX, LabelOffsetY)), strconv.Itoa(a.ClassID), c, true)
	return nil
}

// RenderImage draws every box from labelPath onto a copy of the image at
// imagePath and writes it to outputPath in the format of its extension.
// It returns the number of boxes drawn.
func (r *Renderer) RenderImage(imagePath, labelPath, outputPath string) (int, error) {
	if err := util.MustExist(labelPath); err != nil {
		return 0, fmt.Errorf("label file: %w", err)
	}

	src, err := r.loader.Load(imagePath)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(labelPath) // #nosec G304 - Label path is derived from the user's label folder
	if err != nil {
		return 0, fmt.Errorf("failed to open label file: %w", err)
	}
	annotations, err := Parse(f)
	f.Close()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", labelPath, err)
	}

	canvas := imgutil.ToRGBA(src)
	for _, a := range annotations {
		if err := r.DrawAnnotation(canvas, a); err != nil {
			return 0, fmt.Errorf("%s: %w", labelPath, err)
		}
	}

	if err := imgutil.Save(outputPath, canvas); err != nil {
		return 0, err
	}
	return len(annotations), nil
}

// RenderAll renders every allow-listed image in imageDir using the label file
// of the same stem in labelDir, writing results under the same name in
// outputDir. Images are processed one at a time in name order.
func (r *Renderer) RenderAll(ctx context.Context, imageDir, labelDir, outputDir string) (*Summary, error) {
	if err := util.MustExist(labelDir); err != nil {
		return nil, fmt.Errorf("label directory: %w", err)
	}
	if util.SameDir(imageDir, outputDir) {
		return nil, fmt.Errorf("output directory %s must differ from the image directory", outputDir)
	}

	names, err := imgutil.ListImages(imageDir, r.exts)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		r.logger.Warn("no images found", "dir", imageDir, "extensions", r.exts)
	}

	if err := util.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		imagePath := filepath.Join(imageDir, name)
		labelPath := filepath.Join(labelDir, util.ReplaceExt(name, ".txt"))
		outputPath := filepath.Join(outputDir, name)

		boxes, err := r.RenderImage(imagePath, labelPath, outputPath)
		if err != nil {
			err = fmt.Errorf("%s: %w", name, err)
			if r.policy == Strict {
				return summary, err
			}
			r.logger.Error("failed to render image", "image", name, "error", err)
			summary.Failed = append(summary.Failed, Failure{Image: name, Err: err})
			continue
		}

		summary.Rendered = append(summary.Rendered, name)
		summary.Boxes += boxes
		r.logger.Info("processed and saved", "path", outputPath, "boxes", boxes)
	}

	return summary, summary.Err()
}

// Err joins the errors of every failed image, or returns nil.
func (s *Summary) Err() error {
	errs := make([]error, len(s.Failed))
	for i, f := range s.Failed {
		errs[i] = f.Err
	}
	return errors.Join(errs...)
}
