package border

import (
	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/blend"
)

// Paint draws b along the edges of box, given in the box coordinates of
// ctx. Straight edges are solid fills. In each corner box:
//
//   - pixels outside the outer arc are cleared to transparent;
//   - pixels on the line get the color of the nearer edge, split by the
//     diagonal proportional to the two line widths;
//   - the outer and inner arcs are anti-aliased over one pixel;
//   - content pixels are left untouched.
//
// Only ColorARGB8888 destinations are supported.
func Paint(b Border, box canvas.Rect, ctx *canvas.PaintContext) error {
	if ctx == nil || ctx.Canvas == nil || box.IsEmpty() || b.IsZero() {
		return nil
	}
	if ctx.Canvas.ColorType() != canvas.ColorARGB8888 {
		return canvas.ErrUnsupportedColorType
	}
	if nb := b.normalize(box.Width, box.Height); nb != b {
		canvas.Logger().Debug("border: clamped to box", "w", box.Width, "h", box.Height)
		b = nb
	}
	cs := b.corners(box)

	for _, e := range b.edges(box, cs) {
		if !e.line.Visible() {
			continue
		}
		v, _, ok := ctx.Quote(e.rect)
		if !ok {
			continue
		}
		if err := canvas.FillBlend(v, e.line.Color); err != nil {
			return err
		}
	}
	for i := range cs {
		if err := paintCorner(&cs[i], ctx); err != nil {
			return err
		}
	}
	return nil
}

// CropContent clears everything in box outside the content area of b:
// the straight line strips and, in each corner box, everything outside
// the inner ellipse. The band just inside the ellipse is faded so that
// Paint drawn on top blends without a seam.
//
// Only ColorARGB8888 destinations are supported.
func CropContent(b Border, box canvas.Rect, ctx *canvas.PaintContext) error {
	if ctx == nil || ctx.Canvas == nil || box.IsEmpty() || b.IsZero() {
		return nil
	}
	if ctx.Canvas.ColorType() != canvas.ColorARGB8888 {
		return canvas.ErrUnsupportedColorType
	}
	b = b.normalize(box.Width, box.Height)
	cs := b.corners(box)

	for _, e := range b.edges(box, cs) {
		v, _, ok := ctx.Quote(e.rect)
		if !ok {
			continue
		}
		if err := canvas.Clear(v); err != nil {
			return err
		}
	}
	for i := range cs {
		if err := cropCorner(&cs[i], ctx); err != nil {
			return err
		}
	}
	return nil
}

// quoteCorner returns the writable part of corner c covered by ctx.
func quoteCorner(c *corner, ctx *canvas.PaintContext) (*canvas.View, canvas.Rect, bool, error) {
	v, part, ok := ctx.Quote(c.rect)
	if !ok {
		return nil, canvas.Rect{}, false, nil
	}
	if v.Stale() {
		return nil, canvas.Rect{}, false, canvas.ErrStaleView
	}
	if !v.Writable() {
		return nil, canvas.Rect{}, false, canvas.ErrReadOnly
	}
	return v, part, true, nil
}

func bgra(c canvas.Color) [4]byte {
	return [4]byte{c.B, c.G, c.R, c.A}
}

func paintCorner(c *corner, ctx *canvas.PaintContext) error {
	v, part, ok, err := quoteCorner(c, ctx)
	if err != nil || !ok {
		return err
	}
	vcol, hcol := bgra(c.vertical.Color), bgra(c.horiz.Color)

	for j := range part.Height {
		row := v.Row(j)
		py := part.Y + j - c.rect.Y
		for i := range part.Width {
			lx, ly := c.which.Local(part.X+i-c.rect.X, py, c.rect.Width, c.rect.Height)
			p := row[i*4 : i*4+4]

			outer := c.arc.Outer(lx, ly)
			if outer <= 0 {
				clear(p)
				continue
			}
			if inner := c.arc.Inner(lx, ly); inner > 0 {
				line, col := c.vertical, vcol
				if c.arc.Horizontal(lx, ly) {
					line, col = c.horiz, hcol
				}
				if line.Visible() {
					blend.OverBGRA(p, col[:], blend.MulDiv255(line.Color.A, blend.Coverage(inner)))
				}
			}
			if outer < 1 {
				p[3] = blend.MulDiv255(p[3], blend.Coverage(outer))
			}
		}
	}
	return nil
}

func cropCorner(c *corner, ctx *canvas.PaintContext) error {
	v, part, ok, err := quoteCorner(c, ctx)
	if err != nil || !ok {
		return err
	}
	for j := range part.Height {
		row := v.Row(j)
		py := part.Y + j - c.rect.Y
		for i := range part.Width {
			lx, ly := c.which.Local(part.X+i-c.rect.X, py, c.rect.Width, c.rect.Height)
			p := row[i*4 : i*4+4]

			inner := c.arc.Inner(lx, ly)
			switch {
			case inner >= 1:
				clear(p)
			case inner > 0:
				p[3] = blend.MulDiv255(p[3], blend.Coverage(1-inner))
			}
		}
	}
	return nil
}
