// Package imgio decodes carrier and hidden images into pixel buffers and
// encodes transform output back to disk. All filename and format policy
// lives here so the codec in pkg/steg stays a pure buffer-to-buffer
// transform.
package imgio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/mgeist/pixelveil/pkg/steg"
)

// Errors reported for filename policy violations. Decode and file-system
// failures are wrapped with %w and surface the underlying error.
var (
	// ErrBadExtension means the filename does not end in an accepted image
	// extension.
	ErrBadExtension = errors.New("unsupported image extension")

	// ErrLossyOutput means an encoded carrier was directed at a format that
	// cannot preserve the low-order channel bits. Only PNG qualifies.
	ErrLossyOutput = errors.New("encoded output must be .png")
)

// validExtensions is the accepted input surface: the stdlib formats plus BMP
// via golang.org/x/image. "wpng" is a PNG alias kept for compatibility with
// files named by the original tool.
var validExtensions = map[string]bool{
	"bmp":  true,
	"gif":  true,
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"wpng": true,
}

// Ext returns the lowercased filename extension without the leading dot.
func Ext(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// ValidExtension reports whether name ends in an accepted image extension.
func ValidExtension(name string) bool {
	return validExtensions[Ext(name)]
}

// Load decodes the image at path into a pixel buffer.
func Load(path string) (*steg.Buffer, error) {
	if !ValidExtension(path) {
		return nil, fmt.Errorf("%s: %w", path, ErrBadExtension)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

// Decode reads one image from r into a pixel buffer. PNG, GIF, JPEG and BMP
// are recognized by content sniffing.
func Decode(r io.Reader) (*steg.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return steg.FromImage(img), nil
}

// SaveEncoded writes an embed result to path. The format must be PNG: any
// lossy or palette re-quantizing encoder would destroy the hidden bits.
func SaveEncoded(path string, buf *steg.Buffer) error {
	if ext := Ext(path); ext != "png" {
		return fmt.Errorf("%s: %w", path, ErrLossyOutput)
	}
	return Save(path, buf)
}

// Save writes buf to path in the format named by the extension. Unlike
// SaveEncoded this accepts every extension in the input surface; it is meant
// for revealed grayscale output, which has no bit-exactness requirement.
func Save(path string, buf *steg.Buffer) error {
	if !ValidExtension(path) {
		return fmt.Errorf("%s: %w", path, ErrBadExtension)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, Ext(path), buf); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// Encode writes buf to w in the format named by ext (no leading dot).
func Encode(w io.Writer, ext string, buf *steg.Buffer) error {
	img := buf.Image()
	switch ext {
	case "png", "wpng":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "gif":
		return gif.Encode(w, img, nil)
	case "jpeg", "jpg":
		return jpeg.Encode(w, img, nil)
	default:
		return fmt.Errorf("%q: %w", ext, ErrBadExtension)
	}
}
