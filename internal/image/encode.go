package image

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/jmylchreest/boxtint/internal/util"
)

// JPEGQuality is the quality used when re-encoding JPEG output.
const JPEGQuality = 95

// CanEncode reports whether Encode supports ext.
func CanEncode(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".bmp":
		return true
	}
	return false
}

// Encode writes img to w in the format implied by ext (".png", ".jpg", ".jpeg", ".bmp").
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported output format: %q", ext)
	}
}

// Save encodes img to path, choosing the format from the file extension.
// Parent directories are created as needed.
func Save(path string, img image.Image) error {
	ext := filepath.Ext(path)
	if !CanEncode(ext) {
		return fmt.Errorf("unsupported output format: %q", ext)
	}

	if err := util.EnsureParent(path); err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304 - Output path is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, img, ext); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

// ToRGBA copies img into a new RGBA buffer whose bounds start at the origin.
// The source image is left untouched.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
