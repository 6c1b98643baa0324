// Package rounded holds the corner geometry shared by the border and
// box-shadow rasterizers.
//
// All four corners are rasterized by the same code. A Corner value selects
// which axes are mirrored so that, in corner-local coordinates, the outer
// corner of the box always sits at the origin and the arc center at
// (r, r).
package rounded

import "github.com/chewxy/math32"

// Corner identifies one corner of a box. Bit 0 mirrors the x axis and bit
// 1 mirrors the y axis.
type Corner uint8

const (
	TopLeft     Corner = 0
	TopRight    Corner = 1
	BottomLeft  Corner = 2
	BottomRight Corner = 3
)

// Corners lists every corner in paint order.
var Corners = [4]Corner{TopLeft, TopRight, BottomLeft, BottomRight}

// FlipX reports whether the corner lies on the right edge.
func (c Corner) FlipX() bool { return c&1 != 0 }

// FlipY reports whether the corner lies on the bottom edge.
func (c Corner) FlipY() bool { return c&2 != 0 }

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "invalid"
	}
}

// Place returns the top-left position of a cw x ch corner box inside a
// box of size w x h whose top-left corner is at (x, y).
func (c Corner) Place(x, y, w, h, cw, ch int) (int, int) {
	if c.FlipX() {
		x += w - cw
	}
	if c.FlipY() {
		y += h - ch
	}
	return x, y
}

// Local maps pixel (px, py) of a cw x ch corner box to mirrored
// coordinates in which the outer corner is at the origin.
func (c Corner) Local(px, py, cw, ch int) (int, int) {
	if c.FlipX() {
		px = cw - 1 - px
	}
	if c.FlipY() {
		py = ch - 1 - py
	}
	return px, py
}

// Arc is a rounded corner of outer radius R bordered by lines XW wide
// (the vertical edge) and YW wide (the horizontal edge). The inner
// boundary is the quarter ellipse with radii R-XW and R-YW.
type Arc struct {
	R      float32
	XW, YW float32
}

// NewArc returns the arc for radius r and line widths xw, yw.
func NewArc(r, xw, yw int) Arc {
	return Arc{R: float32(max(r, 0)), XW: float32(max(xw, 0)), YW: float32(max(yw, 0))}
}

// Size returns the corner box size covering both the arc and the line
// ends: max(R, XW) x max(R, YW).
func (a Arc) Size() (int, int) {
	return int(math32.Ceil(math32.Max(a.R, a.XW))), int(math32.Ceil(math32.Max(a.R, a.YW)))
}

// Distance returns the distance from the center of mirrored pixel
// (lx, ly) to the arc center, and whether the pixel lies in the arc
// quadrant. Pixels outside the quadrant are beyond the straight part of
// the edges.
func (a Arc) Distance(lx, ly int) (float32, bool) {
	fx, fy := float32(lx)+0.5, float32(ly)+0.5
	if fx >= a.R || fy >= a.R {
		return 0, false
	}
	return math32.Hypot(a.R-fx, a.R-fy), true
}

// Outer returns the coverage of mirrored pixel (lx, ly) by the outer
// circle. The anti-aliased band is the last pixel inside the radius.
func (a Arc) Outer(lx, ly int) float32 {
	d, ok := a.Distance(lx, ly)
	if !ok {
		return 1
	}
	return Clamp01(a.R - d)
}

// Inner returns how much of mirrored pixel (lx, ly) belongs to the line
// rather than the content. It is 1 on the line, 0 inside the content
// ellipse and fractional in the one-pixel band just inside the ellipse.
func (a Arc) Inner(lx, ly int) float32 {
	fx, fy := float32(lx)+0.5, float32(ly)+0.5
	if fx < a.XW || fy < a.YW {
		return 1
	}
	rx, ry := a.R-a.XW, a.R-a.YW
	if rx <= 0 || ry <= 0 || fx >= a.R || fy >= a.R {
		return 0
	}
	dx, dy := a.R-fx, a.R-fy
	e := math32.Hypot(dx/rx, dy/ry)
	if e <= 0 {
		return 0
	}
	// Signed distance to the ellipse, scaled along the center ray.
	s := math32.Hypot(dx, dy) * (1 - 1/e)
	return Clamp01(s + 1)
}

// Horizontal reports whether mirrored pixel (lx, ly) takes the color of
// the horizontal edge. The split is the diagonal through the outer corner
// and the point (XW, YW).
func (a Arc) Horizontal(lx, ly int) bool {
	fx, fy := float32(lx)+0.5, float32(ly)+0.5
	return fy*a.XW < fx*a.YW
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}

// ClampRadius limits r so two adjacent corners never overlap in a
// w x h box.
func ClampRadius(r, w, h int) int {
	return max(0, min(r, min(w, h)/2))
}
