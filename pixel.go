package canvas

// loadPixel decodes one pixel of the given format.
// The boolean is false for formats without a decoder.
func loadPixel(t ColorType, p []byte) (Color, bool) {
	switch t {
	case ColorARGB8888:
		return Color{B: p[0], G: p[1], R: p[2], A: p[3]}, true
	case ColorRGB888:
		return Color{B: p[0], G: p[1], R: p[2], A: 255}, true
	case ColorGray8:
		return Color{R: p[0], G: p[0], B: p[0], A: 255}, true
	case ColorIndex8, ColorRGB323, ColorARGB2222, ColorRGB555, ColorRGB565:
		return Transparent, false
	default:
		return Transparent, false
	}
}

// storePixel encodes one pixel of the given format.
// The boolean is false for formats without an encoder.
func storePixel(t ColorType, p []byte, c Color) bool {
	switch t {
	case ColorARGB8888:
		p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A
		return true
	case ColorRGB888:
		p[0], p[1], p[2] = c.B, c.G, c.R
		return true
	case ColorGray8:
		// Standard luminance: 0.299*R + 0.587*G + 0.114*B
		p[0] = byte((int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000)
		return true
	case ColorIndex8, ColorRGB323, ColorARGB2222, ColorRGB555, ColorRGB565:
		return false
	default:
		return false
	}
}
