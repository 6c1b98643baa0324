// Package shadow rasterizes blurred box shadows.
//
// A shadow is built on a scratch canvas the size of the visible part of
// the shadow: the shadow box is filled, its edges and corners are faded
// along a quadratic falloff curve, the content area is cut out, and the
// result is composited onto the destination in a single pass.
package shadow

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/rounded"
)

// BoxShadow describes the shadow of a box.
type BoxShadow struct {
	X, Y   int // offset
	Blur   int
	Spread int
	Color  canvas.Color

	// Corner radii, usually inherited from the box border.
	TopLeftRadius     int
	TopRightRadius    int
	BottomLeftRadius  int
	BottomRightRadius int
}

// HasShadow reports whether the shadow is visible at all. A shadow with
// no blur, no spread and no offset is hidden by the box it belongs to.
func (s BoxShadow) HasShadow() bool {
	if s.Color.A == 0 {
		return false
	}
	return s.Blur > 0 || s.Spread != 0 || s.X != 0 || s.Y != 0
}

// Radius returns the radius of corner c.
func (s BoxShadow) Radius(c rounded.Corner) int {
	switch c {
	case rounded.TopLeft:
		return s.TopLeftRadius
	case rounded.TopRight:
		return s.TopRightRadius
	case rounded.BottomLeft:
		return s.BottomLeftRadius
	case rounded.BottomRight:
		return s.BottomRightRadius
	default:
		return 0
	}
}

// Geometry is the derived layout of a shadow around a content box.
type Geometry struct {
	// Content is the box casting the shadow.
	Content canvas.Rect

	// Body is Content offset by (X, Y) and grown by Spread. It is fully
	// shadowed except at rounded corners.
	Body canvas.Rect

	// Outer is Body grown by Blur; nothing outside it is shadowed.
	Outer canvas.Rect

	// Blur is the width of the falloff band.
	Blur int

	// BodyRadii are the corner radii of Body, and ContentRadii those of
	// Content, in rounded.Corners order.
	BodyRadii    [4]int
	ContentRadii [4]int
}

// Geometry lays out s around content.
func (s BoxShadow) Geometry(content canvas.Rect) Geometry {
	blur := max(s.Blur, 0)
	body := content.Translate(s.X, s.Y).Expand(s.Spread)
	g := Geometry{
		Content: content,
		Body:    body,
		Blur:    blur,
	}
	if !body.IsEmpty() {
		g.Outer = body.Expand(blur)
	}
	for i, c := range rounded.Corners {
		r := s.Radius(c)
		g.ContentRadii[i] = rounded.ClampRadius(r, content.Width, content.Height)
		if r > 0 {
			g.BodyRadii[i] = rounded.ClampRadius(r+s.Spread, body.Width, body.Height)
		}
	}
	return g
}

// Bounds returns the area s touches around content.
func (s BoxShadow) Bounds(content canvas.Rect) canvas.Rect {
	if !s.HasShadow() {
		return canvas.Rect{}
	}
	return s.Geometry(content).Outer
}

// falloff is the quadratic deceleration curve over a band of the given
// width: 255 at the body edge, 0 at the outer edge, steep at first and
// flattening out.
type falloff struct {
	width float32
	v, a  float32
}

func newFalloff(width int) falloff {
	w := float32(width)
	if w <= 0 {
		return falloff{}
	}
	v := 512 / w
	return falloff{width: w, v: v, a: 2 * (v*w - 255) / (w * w)}
}

// at returns the curve value, 0 to 255, at distance t from the body edge.
func (f falloff) at(t float32) float32 {
	if t <= 0 {
		return 255
	}
	if t >= f.width {
		return 0
	}
	return math32.Min(math32.Max(255-(f.v*t-f.a*t*t/2), 0), 255)
}

// alpha scales the color alpha ca by the curve at t.
func (f falloff) alpha(ca byte, t float32) byte {
	return byte(float32(ca)*f.at(t)/255 + 0.5)
}
