// Package steg hides a grayscale image inside a carrier image and recovers
// it again, by substituting the two least-significant bits of each carrier
// channel with one quarter of the hidden pixel's 8-bit luminance.
//
// Both transforms are pure: they take pixel buffers, allocate a fresh output
// buffer, and touch no shared state. Decoding and encoding image files is the
// caller's job (see pkg/imgio).
package steg

// roundToModulo returns the largest value ≤ v with value mod factor == rem,
// except that v < factor yields rem directly (which may round up: 2 with
// rem 3 becomes 3). Requires 0 <= rem < factor.
func roundToModulo(v, factor, rem int) int {
	if v < factor {
		return rem
	}
	return v - (v-rem)%factor
}

// embedChannel rounds one 8-bit channel so its remainder mod 4 is the given
// 2-bit field, leaving the upper six bits as close to the original as the
// rounding allows.
func embedChannel(channel, field uint8) uint8 {
	return uint8(roundToModulo(int(channel), 4, int(field)))
}

// Embed conceals hidden's luminance in carrier's color channels. The output
// always has carrier's dimensions. For every coordinate covered by both
// images, the hidden pixel's luminance is split into four 2-bit fields and
// each carrier channel is rounded down so its value mod 4 equals the
// corresponding field (alpha carries bits [7:6], then red, green, blue in
// descending order). Carrier pixels outside hidden's extent pass through
// unchanged. Neither input is mutated.
//
// The result is recoverable with Extract as long as it is stored losslessly.
func Embed(carrier, hidden *Buffer) *Buffer {
	out := NewBuffer(carrier.Width(), carrier.Height())
	for y := 0; y < carrier.Height(); y++ {
		for x := 0; x < carrier.Width(); x++ {
			p := carrier.At(x, y)
			if x < hidden.Width() && y < hidden.Height() {
				a2, r2, g2, b2 := splitLuminance(Luminance(hidden.At(x, y)))
				p = Pixel{
					A: embedChannel(p.A, a2),
					R: embedChannel(p.R, r2),
					G: embedChannel(p.G, g2),
					B: embedChannel(p.B, b2),
				}
			}
			out.Set(x, y, p)
		}
	}
	return out
}
