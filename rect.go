package canvas

import "image"

// Rect is an integer rectangle: top-left corner plus size.
//
// A rectangle with Width <= 0 or Height <= 0 is empty. Producers in this
// package normalize empty results to the zero Rect.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns the rectangle at (x, y) with the given size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromImage converts an image.Rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Right returns the exclusive right edge. It wraps when X+Width exceeds
// the int range; the clipping functions below never compute it.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge. It wraps like Right.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether r covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether inner lies entirely within r.
// An empty inner is contained in every rectangle.
func (r Rect) Contains(inner Rect) bool {
	if inner.IsEmpty() {
		return true
	}
	got, ok := Overlap(r, inner)
	return ok && got == inner
}

// ContainsPoint reports whether the pixel (x, y) lies in r.
func (r Rect) ContainsPoint(x, y int) bool {
	if r.IsEmpty() {
		return false
	}
	return x >= r.X && uint(x)-uint(r.X) < uint(r.Width) &&
		y >= r.Y && uint(y)-uint(r.Y) < uint(r.Height)
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset shrinks r by the given amounts on each side. Negative amounts grow
// it. The result is normalized to empty when it collapses.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	out := Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
	return out.normalize()
}

// Expand grows r by n on every side.
func (r Rect) Expand(n int) Rect {
	return r.Inset(-n, -n, -n, -n)
}

func (r Rect) normalize() Rect {
	if r.Width <= 0 || r.Height <= 0 {
		return Rect{}
	}
	return r
}

// span intersects [x, x+w) with [bx, bx+bw) for positive widths. Offsets
// are measured in uint so that no edge is ever computed as x+w.
func span(x, w, bx, bw int) (int, int, bool) {
	start := max(x, bx)
	da, db := uint(start)-uint(x), uint(start)-uint(bx)
	if da >= uint(w) || db >= uint(bw) {
		return 0, 0, false
	}
	return start, min(w-int(da), bw-int(db)), true
}

// Overlap returns the intersection of a and b. The boolean is false, and
// the rectangle empty, when they do not overlap. Rectangles with a zero
// width or height never overlap anything.
func Overlap(a, b Rect) (Rect, bool) {
	if a.IsEmpty() || b.IsEmpty() {
		return Rect{}, false
	}
	x, w, okX := span(a.X, a.Width, b.X, b.Width)
	y, h, okY := span(a.Y, a.Height, b.Y, b.Height)
	if !okX || !okY {
		return Rect{}, false
	}
	return Rect{X: x, Y: y, Width: w, Height: h}, true
}

// ClipToBounds clamps r so that it lies within a width x height buffer
// anchored at the origin. A rectangle fully outside collapses to empty.
func ClipToBounds(r Rect, width, height int) Rect {
	out, _ := Overlap(r, Rect{Width: width, Height: height})
	return out
}

// CutArea returns the part of placement that is visible when it is placed
// into a destWidth x destHeight destination. The result is expressed in
// placement's own coordinates, with (0, 0) at placement's top-left.
func CutArea(destWidth, destHeight int, placement Rect) Rect {
	vis, ok := Overlap(placement, Rect{Width: destWidth, Height: destHeight})
	if !ok {
		return Rect{}
	}
	// vis lies inside placement, so the offsets fit in an int.
	return Rect{
		X:      int(uint(vis.X) - uint(placement.X)),
		Y:      int(uint(vis.Y) - uint(placement.Y)),
		Width:  vis.Width,
		Height: vis.Height,
	}
}

// Split partitions r into disjoint tiles of at most tileWidth x tileHeight,
// in row-major order. Non-positive tile sizes yield r as a single tile.
func (r Rect) Split(tileWidth, tileHeight int) []Rect {
	if r.IsEmpty() {
		return nil
	}
	if tileWidth <= 0 {
		tileWidth = r.Width
	}
	if tileHeight <= 0 {
		tileHeight = r.Height
	}
	var n int
	if cols, rows := tileCount(r.Width, tileWidth), tileCount(r.Height, tileHeight); cols <= maxSplitHint/rows {
		n = cols * rows
	}
	tiles := make([]Rect, 0, n)
	for oy := 0; oy < r.Height; oy += tileHeight {
		h := min(tileHeight, r.Height-oy)
		for ox := 0; ox < r.Width; ox += tileWidth {
			w := min(tileWidth, r.Width-ox)
			tiles = append(tiles, Rect{X: r.X + ox, Y: r.Y + oy, Width: w, Height: h})
			if w < tileWidth {
				break
			}
		}
		if h < tileHeight {
			break
		}
	}
	return tiles
}

const maxSplitHint = 1 << 20

func tileCount(n, tile int) int {
	c := n / tile
	if n%tile != 0 {
		c++
	}
	return c
}
