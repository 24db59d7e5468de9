// Package prep contains optional pre-processing applied to the hidden image
// before embedding: scaling it to the carrier's extent and reducing it to
// grayscale. The codec quantizes luminance regardless; these steps only make
// the concealed picture cover the carrier and look the way it will come back.
package prep

import (
	"image"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"

	"github.com/mgeist/pixelveil/pkg/steg"
)

// FitTo scales buf to width×height so the hidden image covers the whole
// carrier. Aspect ratio is not preserved; the embed extent rule would
// otherwise crop. No-op when the dimensions already match.
func FitTo(buf *steg.Buffer, width, height int) *steg.Buffer {
	if buf.Width() == width && buf.Height() == height {
		return buf
	}
	scaled := resize.Resize(uint(width), uint(height), buf.Image(), resize.Lanczos3)
	return steg.FromImage(scaled)
}

// Grayscale reduces buf to its grayscale rendition.
func Grayscale(buf *steg.Buffer) *steg.Buffer {
	g := gift.New(gift.Grayscale())
	dst := image.NewNRGBA(g.Bounds(image.Rect(0, 0, buf.Width(), buf.Height())))
	g.Draw(dst, buf.Image())
	return steg.FromImage(dst)
}
