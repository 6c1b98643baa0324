// Package blend implements the byte-level alpha math behind canvas
// compositing.
//
// Colors here are non-premultiplied, 0-255 per channel, which is how
// ARGB8888 canvases store them.
package blend

// MulDiv255 returns round(a * b / 255) without a division.
//
// Formula: t = a*b + 128; (t + (t >> 8)) >> 8
//
// This is exact for all byte inputs.
func MulDiv255(a, b byte) byte {
	t := uint16(a)*uint16(b) + 128
	return byte((t + (t >> 8)) >> 8)
}

// Inv255 computes 255 - x (inverse alpha).
func Inv255(x byte) byte {
	return 255 - x
}

// ScaleAlpha multiplies alpha by a factor in [0, 1], rounding half up.
// Factors outside the range are clamped.
func ScaleAlpha(alpha byte, factor float32) byte {
	if factor <= 0 {
		return 0
	}
	if factor >= 1 {
		return alpha
	}
	return byte(float32(alpha)*factor + 0.5)
}

// Coverage converts a coverage fraction in [0, 1] to an 8-bit alpha,
// rounding half up.
func Coverage(c float32) byte {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return byte(c*255 + 0.5)
}
