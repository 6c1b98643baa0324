package canvas

import (
	"math"
	"sync/atomic"
)

// MaxDimension is the largest width or height Create accepts.
const MaxDimension = 10000

// MaxBytes is the largest pixel buffer Create allocates.
const MaxBytes = 1 << 30

// Canvas owns a contiguous pixel buffer.
//
// Rows are stored top to bottom, Stride bytes apart, with no padding:
// Stride == BytesPerPixel * Width. The opacity is applied when the canvas
// is composited onto another one (see Blend and Replace).
//
// A Canvas is not safe for concurrent Create or Free. Concurrent painting
// through views is safe when the target regions do not overlap.
type Canvas struct {
	data      []byte
	width     int
	height    int
	stride    int
	colorType ColorType
	opacity   float32

	// gen is bumped on every Create and Free so that views taken before
	// can detect that they no longer describe this buffer.
	gen atomic.Uint64
}

// New creates a canvas of the given size.
// The default color type is ColorARGB8888 and the default opacity is 1.
func New(width, height int, opts ...Option) (*Canvas, error) {
	c := newEmpty(opts...)
	if err := c.Create(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// newEmpty returns an unallocated canvas with the options applied.
func newEmpty(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{colorType: o.colorType, opacity: clampOpacity(o.opacity)}
}

// Create (re)allocates the buffer for width x height pixels and zero-fills
// it. An existing allocation that is large enough is reused.
//
// Sizes of zero or less return ErrInvalidSize; sizes above MaxDimension
// return ErrTooLarge. Views taken before Create become stale.
func (c *Canvas) Create(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	if width > MaxDimension || height > MaxDimension {
		return ErrTooLarge
	}
	bpp := c.colorType.BytesPerPixel()
	if bpp == 0 {
		return ErrUnsupportedColorType
	}
	stride := bpp * width
	if height > math.MaxInt/stride || stride*height > MaxBytes {
		return ErrAllocation
	}
	size := stride * height

	if cap(c.data) >= size {
		c.data = c.data[:size]
		clear(c.data)
	} else {
		c.data = make([]byte, size)
	}
	c.width = width
	c.height = height
	c.stride = stride
	c.gen.Add(1)
	return nil
}

// Free releases the buffer and resets the size to zero.
// It is a no-op on an empty canvas.
func (c *Canvas) Free() {
	if c.data == nil {
		return
	}
	c.data = nil
	c.width = 0
	c.height = 0
	c.stride = 0
	c.gen.Add(1)
}

// IsValid reports whether the canvas holds an allocated buffer.
func (c *Canvas) IsValid() bool {
	return c != nil && c.data != nil && c.width > 0 && c.height > 0
}

// Width returns the width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height in pixels.
func (c *Canvas) Height() int { return c.height }

// Stride returns the number of bytes per row.
func (c *Canvas) Stride() int { return c.stride }

// BytesPerPixel returns the storage size of one pixel.
func (c *Canvas) BytesPerPixel() int { return c.colorType.BytesPerPixel() }

// ColorType returns the pixel format.
func (c *Canvas) ColorType() ColorType { return c.colorType }

// Bounds returns the canvas rectangle anchored at the origin.
func (c *Canvas) Bounds() Rect {
	return Rect{Width: c.width, Height: c.height}
}

// Bytes returns the raw pixel buffer. For ColorARGB8888 each pixel is
// stored as B, G, R, A.
func (c *Canvas) Bytes() []byte { return c.data }

// Opacity returns the opacity applied when compositing this canvas.
func (c *Canvas) Opacity() float32 { return c.opacity }

// SetOpacity sets the compositing opacity, clamped to [0, 1].
func (c *Canvas) SetOpacity(opacity float32) {
	c.opacity = clampOpacity(opacity)
}

func (c *Canvas) generation() uint64 { return c.gen.Load() }

// Pixel returns the color at (x, y), or Transparent when the coordinates
// are out of bounds or the format cannot be decoded.
func (c *Canvas) Pixel(x, y int) Color {
	if !c.IsValid() || x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Transparent
	}
	bpp := c.BytesPerPixel()
	off := y*c.stride + x*bpp
	col, _ := loadPixel(c.colorType, c.data[off:off+bpp])
	return col
}

// SetPixel sets the color at (x, y).
func (c *Canvas) SetPixel(x, y int, col Color) error {
	if !c.IsValid() || x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ErrOutOfBounds
	}
	bpp := c.BytesPerPixel()
	off := y*c.stride + x*bpp
	if !storePixel(c.colorType, c.data[off:off+bpp], col) {
		return ErrUnsupportedColorType
	}
	return nil
}

// Clone returns a deep copy of the canvas, including its opacity.
func (c *Canvas) Clone() *Canvas {
	out := &Canvas{
		width:     c.width,
		height:    c.height,
		stride:    c.stride,
		colorType: c.colorType,
		opacity:   c.opacity,
	}
	if c.data != nil {
		out.data = make([]byte, len(c.data))
		copy(out.data, c.data)
	}
	return out
}

// View returns a writable view of the whole canvas.
func (c *Canvas) View() *View {
	return c.Quote(nil)
}

// Quote returns a writable view of r, clipped to the canvas. A nil r
// quotes the whole canvas. The view never owns memory and must not be
// used after the canvas is freed or recreated.
func (c *Canvas) Quote(r *Rect) *View {
	return quote(c, c.generation(), c.Bounds(), r, true)
}

// QuoteReadOnly is like Quote but the view rejects mutation.
func (c *Canvas) QuoteReadOnly(r *Rect) *View {
	return quote(c, c.generation(), c.Bounds(), r, false)
}

func clampOpacity(o float32) float32 {
	if o < 0 || o != o {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}
