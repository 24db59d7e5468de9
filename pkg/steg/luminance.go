// luminance.go — BT.709 luminance and its 2-bit field layout.
package steg

// Luminance returns the perceptual brightness of p in [0,255] using the
// ITU-R BT.709 coefficients (0.2126, 0.7152, 0.0722), truncated to an
// integer. Computed in fixed point: the float64 sum lands a hair under the
// true value for some inputs (pure white comes out 254.999…), which would
// truncate wrong. Alpha is ignored.
func Luminance(p Pixel) uint8 {
	return uint8((2126*uint32(p.R) + 7152*uint32(p.G) + 722*uint32(p.B)) / 10000)
}

// splitLuminance slices an 8-bit luminance into four 2-bit fields,
// most-significant pair first: bits [7:6], [5:4], [3:2], [1:0].
func splitLuminance(l uint8) (a2, r2, g2, b2 uint8) {
	return l >> 6 & 3, l >> 4 & 3, l >> 2 & 3, l & 3
}

// joinLuminance reassembles an 8-bit luminance from four 2-bit fields.
func joinLuminance(a2, r2, g2, b2 uint8) uint8 {
	return a2<<6 | r2<<4 | g2<<2 | b2
}
