package canvas

// ColorType identifies the pixel storage format of a canvas.
//
// Every declared format has a storage size so canvases of any type can be
// allocated and resampled with the nearest-neighbor byte-copy path, but
// only ColorARGB8888 is composited.
type ColorType uint8

const (
	// ColorIndex8 is an 8-bit palette index.
	ColorIndex8 ColorType = iota

	// ColorGray8 is 8-bit grayscale.
	ColorGray8

	// ColorRGB323 packs 3-2-3 bit RGB into one byte.
	ColorRGB323

	// ColorARGB2222 packs 2 bits per channel into one byte.
	ColorARGB2222

	// ColorRGB555 packs 5 bits per channel into two bytes.
	ColorRGB555

	// ColorRGB565 packs 5-6-5 bit RGB into two bytes.
	ColorRGB565

	// ColorRGB888 is 24-bit RGB stored as B, G, R.
	ColorRGB888

	// ColorARGB8888 is 32-bit ARGB stored as B, G, R, A.
	// This is the default and the only format that composites.
	ColorARGB8888

	colorTypeCount
)

// ColorARGB is an alias for the default 32-bit format.
const ColorARGB = ColorARGB8888

var bytesPerPixelTable = [colorTypeCount]int{
	ColorIndex8:   1,
	ColorGray8:    1,
	ColorRGB323:   1,
	ColorARGB2222: 1,
	ColorRGB555:   2,
	ColorRGB565:   2,
	ColorRGB888:   3,
	ColorARGB8888: 4,
}

var colorTypeNames = [colorTypeCount]string{
	ColorIndex8:   "Index8",
	ColorGray8:    "Gray8",
	ColorRGB323:   "RGB323",
	ColorARGB2222: "ARGB2222",
	ColorRGB555:   "RGB555",
	ColorRGB565:   "RGB565",
	ColorRGB888:   "RGB888",
	ColorARGB8888: "ARGB8888",
}

// IsValid reports whether t is a declared color type.
func (t ColorType) IsValid() bool {
	return t < colorTypeCount
}

// BytesPerPixel returns the storage size of one pixel, or 0 for an
// unknown type.
func (t ColorType) BytesPerPixel() int {
	if !t.IsValid() {
		return 0
	}
	return bytesPerPixelTable[t]
}

// RowBytes returns the bytes needed for a row of width pixels.
func (t ColorType) RowBytes(width int) int {
	return width * t.BytesPerPixel()
}

// HasAlpha reports whether the format stores an alpha channel.
func (t ColorType) HasAlpha() bool {
	return t == ColorARGB8888 || t == ColorARGB2222
}

// String returns the format name.
func (t ColorType) String() string {
	if !t.IsValid() {
		return "Unknown"
	}
	return colorTypeNames[t]
}
