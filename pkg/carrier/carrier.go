// Package carrier generates cover images to hide into: solid or random-color
// PNG and BMP files of a requested size. Plain synthetic covers are poor
// camouflage but convenient for testing capacity and round-trips.
package carrier

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Config holds parameters for carrier generation.
type Config struct {
	Width  int    // Pixel width (default: 1280)
	Height int    // Pixel height (default: 720)
	Color  string // Hex "#rrggbb" or "random"
}

// Generate creates a cover image file. The format is inferred from the file
// extension: ".png" or ".bmp".
func Generate(output string, cfg Config) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(output))
	if err := GenerateToWriter(f, ext, cfg); err != nil {
		return fmt.Errorf("%s: %w", output, err)
	}
	return nil
}

// GenerateToWriter writes a cover image to w in the format named by ext
// (".png" or ".bmp").
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	img, err := resolveImage(cfg)
	if err != nil {
		return err
	}

	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format %q: use .png or .bmp", ext)
	}
}

// resolveImage builds the solid-color image from config.
func resolveImage(cfg Config) (image.Image, error) {
	w := cfg.Width
	if w <= 0 {
		w = 1280
	}
	h := cfg.Height
	if h <= 0 {
		h = 720
	}

	r, g, b, err := ParseColor(cfg.Color)
	if err != nil {
		return nil, err
	}

	return NewSolidImage(w, h, toRGBA(r, g, b)), nil
}
