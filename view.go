package canvas

import (
	"image"
	"image/color"
)

// View is a rectangular, non-owning window onto a Canvas.
//
// A view records the canvas it borrows from, the absolute rectangle it
// covers in that canvas and whether it may be written through. Quoting a
// view composes offsets, so a view of a view is a single flattened
// offset plus clip into the original buffer.
//
// A view whose rectangle clipped to nothing is valid to use: every
// operation on it is a successful no-op. A view taken before its canvas
// was freed or recreated is stale and operations on it return
// ErrStaleView instead of touching the buffer.
type View struct {
	canvas   *Canvas
	gen      uint64
	rect     Rect
	writable bool
}

// quote resolves r, relative to parent (an absolute rectangle of c),
// against the parent's extent.
func quote(c *Canvas, gen uint64, parent Rect, r *Rect, writable bool) *View {
	v := &View{canvas: c, gen: gen, writable: writable}
	if c == nil || parent.IsEmpty() {
		return v
	}
	local := Rect{Width: parent.Width, Height: parent.Height}
	if r != nil {
		local = *r
	}
	local = ClipToBounds(local, parent.Width, parent.Height)
	if local.IsEmpty() {
		return v
	}
	v.rect = local.Translate(parent.X, parent.Y)
	return v
}

// Quote returns a sub-view of r, given in this view's coordinates and
// clipped to its extent. A nil r quotes the whole view. The sub-view is
// writable only if this view is.
func (v *View) Quote(r *Rect) *View {
	return quote(v.canvas, v.gen, v.rect, r, v.writable)
}

// QuoteReadOnly is like Quote but the sub-view always rejects mutation.
func (v *View) QuoteReadOnly(r *Rect) *View {
	return quote(v.canvas, v.gen, v.rect, r, false)
}

// Canvas returns the canvas the view borrows from.
func (v *View) Canvas() *Canvas { return v.canvas }

// Rect returns the absolute rectangle covered in the source canvas.
func (v *View) Rect() Rect { return v.rect }

// Left returns the horizontal offset into the source canvas.
func (v *View) Left() int { return v.rect.X }

// Top returns the vertical offset into the source canvas.
func (v *View) Top() int { return v.rect.Y }

// Width returns the view width in pixels.
func (v *View) Width() int { return v.rect.Width }

// Height returns the view height in pixels.
func (v *View) Height() int { return v.rect.Height }

// Writable reports whether the view accepts mutation.
func (v *View) Writable() bool { return v.writable }

// Stale reports whether the canvas was freed or recreated after the view
// was taken.
func (v *View) Stale() bool {
	return v.canvas != nil && v.canvas.generation() != v.gen
}

// Valid reports whether the view covers at least one live pixel.
func (v *View) Valid() bool {
	return v.canvas.IsValid() && !v.rect.IsEmpty() && !v.Stale()
}

// ColorType returns the pixel format of the source canvas.
func (v *View) ColorType() ColorType {
	if v.canvas == nil {
		return ColorARGB8888
	}
	return v.canvas.colorType
}

// BytesPerPixel returns the storage size of one pixel.
func (v *View) BytesPerPixel() int { return v.ColorType().BytesPerPixel() }

// Stride returns the byte distance between rows of the source canvas.
func (v *View) Stride() int {
	if v.canvas == nil {
		return 0
	}
	return v.canvas.stride
}

// Opacity returns the compositing opacity of the source canvas.
func (v *View) Opacity() float32 {
	if v.canvas == nil {
		return 1
	}
	return v.canvas.opacity
}

// check reports whether the view has pixels to operate on. A stale view
// yields ErrStaleView; with write set, a read-only view yields
// ErrReadOnly. An empty view yields (false, nil).
func (v *View) check(write bool) (bool, error) {
	if v == nil || v.canvas == nil {
		return false, nil
	}
	if v.Stale() {
		return false, ErrStaleView
	}
	if write && !v.writable {
		return false, ErrReadOnly
	}
	if v.rect.IsEmpty() || !v.canvas.IsValid() {
		return false, nil
	}
	return true, nil
}

// Row returns the bytes of row y of the view, or nil when y is out of
// range or the view is not valid.
func (v *View) Row(y int) []byte {
	if !v.Valid() || y < 0 || y >= v.rect.Height {
		return nil
	}
	bpp := v.BytesPerPixel()
	start := (v.rect.Y+y)*v.canvas.stride + v.rect.X*bpp
	return v.canvas.data[start : start+v.rect.Width*bpp]
}

// Pixel returns the color at (x, y) in view coordinates, or Transparent
// when out of range.
func (v *View) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= v.rect.Width || y >= v.rect.Height || !v.Valid() {
		return Transparent
	}
	return v.canvas.Pixel(v.rect.X+x, v.rect.Y+y)
}

// SetPixel sets the color at (x, y) in view coordinates.
func (v *View) SetPixel(x, y int, c Color) error {
	ok, err := v.check(true)
	if err != nil {
		return err
	}
	if !ok || x < 0 || y < 0 || x >= v.rect.Width || y >= v.rect.Height {
		return ErrOutOfBounds
	}
	return v.canvas.SetPixel(v.rect.X+x, v.rect.Y+y, c)
}

// ColorModel implements image.Image.
func (v *View) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image. The bounds are in view coordinates.
func (v *View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.rect.Width, v.rect.Height)
}

// At implements image.Image.
func (v *View) At(x, y int) color.Color {
	return v.Pixel(x, y)
}

// Set implements draw.Image. Writes through a read-only or stale view are
// dropped.
func (v *View) Set(x, y int, c color.Color) {
	_ = v.SetPixel(x, y, FromColor(c))
}
