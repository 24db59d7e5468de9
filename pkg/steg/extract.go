// extract.go — Recover a hidden grayscale image from an encoded carrier.
package steg

// ExtractOptions selects the channel pairing used when reading fields back.
type ExtractOptions struct {
	// LegacyChannelOrder reads the green field from the blue channel and the
	// blue field from the green channel, matching images produced by the
	// original ImageHider tool, whose extractor swapped the two. The default
	// (false) pairs channels symmetrically with Embed, so
	// Extract(Embed(c, h)) reproduces h's luminance exactly.
	LegacyChannelOrder bool
}

// Extract reads the 2-bit remainder of every channel and reassembles the
// hidden luminance. The output has the input's dimensions — the full extent
// is processed whether or not a hidden image covered it — and holds opaque
// grayscale pixels (R = G = B = luminance). The input is not mutated.
func Extract(encoded *Buffer, opts ExtractOptions) *Buffer {
	out := NewBuffer(encoded.Width(), encoded.Height())
	for y := 0; y < encoded.Height(); y++ {
		for x := 0; x < encoded.Width(); x++ {
			p := encoded.At(x, y)
			g2, b2 := p.G&3, p.B&3
			if opts.LegacyChannelOrder {
				g2, b2 = b2, g2
			}
			l := joinLuminance(p.A&3, p.R&3, g2, b2)
			out.Set(x, y, Pixel{A: 255, R: l, G: l, B: l})
		}
	}
	return out
}
