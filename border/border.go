// Package border rasterizes box borders with anti-aliased rounded
// corners, and masks box content to the rounded interior.
//
// Geometry is in device pixels and already resolved: four line
// descriptors and four corner radii. A border is painted through a
// canvas.PaintContext, so only the part of the box the context covers is
// touched, and painting a box tile by tile gives the same pixels as
// painting it at once.
package border

import (
	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/rounded"
)

// Line describes one edge of a border.
type Line struct {
	Width int
	Color canvas.Color
}

// Visible reports whether the line paints anything.
func (l Line) Visible() bool {
	return l.Width > 0 && l.Color.A > 0
}

// Border describes the four edges and corner radii of a box.
type Border struct {
	Top, Right, Bottom, Left Line

	TopLeftRadius     int
	TopRightRadius    int
	BottomLeftRadius  int
	BottomRightRadius int
}

// Uniform returns a border with the same line on every edge and the same
// radius on every corner.
func Uniform(width int, c canvas.Color, radius int) Border {
	l := Line{Width: width, Color: c}
	return Border{
		Top: l, Right: l, Bottom: l, Left: l,
		TopLeftRadius: radius, TopRightRadius: radius,
		BottomLeftRadius: radius, BottomRightRadius: radius,
	}
}

// IsZero reports whether the border neither paints lines nor rounds
// corners.
func (b Border) IsZero() bool {
	return b.Top.Width <= 0 && b.Right.Width <= 0 && b.Bottom.Width <= 0 && b.Left.Width <= 0 &&
		!b.HasRadius()
}

// HasRadius reports whether any corner is rounded.
func (b Border) HasRadius() bool {
	return b.TopLeftRadius > 0 || b.TopRightRadius > 0 ||
		b.BottomLeftRadius > 0 || b.BottomRightRadius > 0
}

// Radius returns the radius of corner c.
func (b Border) Radius(c rounded.Corner) int {
	switch c {
	case rounded.TopLeft:
		return b.TopLeftRadius
	case rounded.TopRight:
		return b.TopRightRadius
	case rounded.BottomLeft:
		return b.BottomLeftRadius
	case rounded.BottomRight:
		return b.BottomRightRadius
	default:
		return 0
	}
}

// ContentRect returns box shrunk by the line widths.
func (b Border) ContentRect(box canvas.Rect) canvas.Rect {
	return box.Inset(max(b.Top.Width, 0), max(b.Right.Width, 0), max(b.Bottom.Width, 0), max(b.Left.Width, 0))
}

// normalize clamps b for a w x h box: negative widths become zero,
// opposite lines never exceed the box together and radii never exceed
// half the shorter side.
func (b Border) normalize(w, h int) Border {
	b.Left.Width = min(max(b.Left.Width, 0), w)
	b.Right.Width = min(max(b.Right.Width, 0), w-b.Left.Width)
	b.Top.Width = min(max(b.Top.Width, 0), h)
	b.Bottom.Width = min(max(b.Bottom.Width, 0), h-b.Top.Width)
	b.TopLeftRadius = rounded.ClampRadius(b.TopLeftRadius, w, h)
	b.TopRightRadius = rounded.ClampRadius(b.TopRightRadius, w, h)
	b.BottomLeftRadius = rounded.ClampRadius(b.BottomLeftRadius, w, h)
	b.BottomRightRadius = rounded.ClampRadius(b.BottomRightRadius, w, h)
	return b
}

// lines returns the edges adjacent to corner c: the vertical one first.
func (b Border) lines(c rounded.Corner) (vertical, horizontal Line) {
	vertical, horizontal = b.Left, b.Top
	if c.FlipX() {
		vertical = b.Right
	}
	if c.FlipY() {
		horizontal = b.Bottom
	}
	return vertical, horizontal
}

// corner is the resolved geometry of one corner of a box.
type corner struct {
	which    rounded.Corner
	arc      rounded.Arc
	rect     canvas.Rect // in box coordinates
	vertical Line
	horiz    Line
}

// corners resolves the four corner boxes of box.
func (b Border) corners(box canvas.Rect) [4]corner {
	var out [4]corner
	for i, c := range rounded.Corners {
		v, h := b.lines(c)
		arc := rounded.NewArc(b.Radius(c), v.Width, h.Width)
		cw, ch := arc.Size()
		x, y := c.Place(box.X, box.Y, box.Width, box.Height, cw, ch)
		out[i] = corner{
			which:    c,
			arc:      arc,
			rect:     canvas.Rect{X: x, Y: y, Width: cw, Height: ch},
			vertical: v,
			horiz:    h,
		}
	}
	return out
}

type edge struct {
	rect canvas.Rect
	line Line
}

// edges returns the straight parts of the four lines between the corner
// boxes, in box coordinates, paired with their lines.
func (b Border) edges(box canvas.Rect, cs [4]corner) [4]edge {
	tl, tr, bl, br := cs[0].rect, cs[1].rect, cs[2].rect, cs[3].rect
	return [4]edge{
		{canvas.Rect{X: tl.Right(), Y: box.Y, Width: tr.X - tl.Right(), Height: b.Top.Width}, b.Top},
		{canvas.Rect{X: box.Right() - b.Right.Width, Y: tr.Bottom(), Width: b.Right.Width, Height: br.Y - tr.Bottom()}, b.Right},
		{canvas.Rect{X: bl.Right(), Y: box.Bottom() - b.Bottom.Width, Width: br.X - bl.Right(), Height: b.Bottom.Width}, b.Bottom},
		{canvas.Rect{X: box.X, Y: tl.Bottom(), Width: b.Left.Width, Height: bl.Y - tl.Bottom()}, b.Left},
	}
}
