package shadow

import (
	"fmt"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/rounded"
)

// Painter paints shadows using scratch canvases from Pool. A nil Pool
// allocates a scratch canvas per call.
type Painter struct {
	Pool *canvas.Pool
}

// Paint paints s for content on a one-off scratch canvas.
func Paint(s BoxShadow, content canvas.Rect, ctx *canvas.PaintContext) error {
	return (&Painter{}).Paint(s, content, ctx)
}

// Paint composites the shadow s of the box content, given in the box
// coordinates of ctx, onto ctx.Canvas. The content area itself is never
// shadowed. A hidden shadow or one outside ctx is a no-op.
func (p *Painter) Paint(s BoxShadow, content canvas.Rect, ctx *canvas.PaintContext) error {
	if ctx == nil || ctx.Canvas == nil || !s.HasShadow() {
		return nil
	}
	if ctx.Canvas.ColorType() != canvas.ColorARGB8888 {
		return canvas.ErrUnsupportedColorType
	}
	g := s.Geometry(content)
	if g.Outer.IsEmpty() {
		canvas.Logger().Debug("shadow: empty geometry", "content", content, "spread", s.Spread)
		return nil
	}
	visible, ok := canvas.Overlap(g.Outer, ctx.Rect)
	if !ok {
		return nil
	}

	scratch, err := p.Pool.Get(visible.Width, visible.Height, canvas.ColorARGB8888)
	if err != nil {
		return fmt.Errorf("shadow scratch %dx%d: %w", visible.Width, visible.Height, err)
	}
	defer p.Pool.Put(scratch)

	sctx := &canvas.PaintContext{Rect: visible, Canvas: scratch.View(), WithAlpha: true}
	if err := rasterize(s.Color, g, sctx); err != nil {
		return err
	}
	x, y := ctx.ToLocal(visible.X, visible.Y)
	return canvas.Blend(ctx.Canvas, scratch.View(), x, y)
}

// rasterize draws the shadow of g into the scratch context.
func rasterize(col canvas.Color, g Geometry, sctx *canvas.PaintContext) error {
	if v, _, ok := sctx.Quote(g.Outer); ok {
		if err := canvas.Fill(v, col, true); err != nil {
			return err
		}
	}
	f := newFalloff(g.Blur)
	corners := bodyCorners(g)
	fadeEdges(col.A, g, corners, f, sctx)
	for i := range corners {
		fadeCorner(col.A, &corners[i], f, sctx)
	}
	subtractContent(g, sctx)
	return nil
}

// shadowCorner is one corner square of the outer box. The falloff arc is
// centered Blur+Radius in from the outer corner.
type shadowCorner struct {
	which  rounded.Corner
	rect   canvas.Rect
	radius int
	arc    rounded.Arc
}

func bodyCorners(g Geometry) [4]shadowCorner {
	var out [4]shadowCorner
	for i, c := range rounded.Corners {
		r := g.BodyRadii[i]
		size := g.Blur + r
		x, y := c.Place(g.Outer.X, g.Outer.Y, g.Outer.Width, g.Outer.Height, size, size)
		out[i] = shadowCorner{
			which:  c,
			rect:   canvas.Rect{X: x, Y: y, Width: size, Height: size},
			radius: r,
			arc:    rounded.NewArc(size, 0, 0),
		}
	}
	return out
}

// eachPixel calls fn with the box coordinates and BGRA bytes of every
// pixel of r covered by sctx.
func eachPixel(sctx *canvas.PaintContext, r canvas.Rect, fn func(x, y int, p []byte)) {
	v, part, ok := sctx.Quote(r)
	if !ok {
		return
	}
	for j := range part.Height {
		row := v.Row(j)
		for i := range part.Width {
			fn(part.X+i, part.Y+j, row[i*4:i*4+4])
		}
	}
}

// fadeEdges applies the falloff to the four straight bands between Body
// and Outer.
func fadeEdges(ca byte, g Geometry, cs [4]shadowCorner, f falloff, sctx *canvas.PaintContext) {
	if g.Blur == 0 {
		return
	}
	o, b := g.Outer, g.Body
	tl, tr, bl, br := cs[0].rect, cs[1].rect, cs[2].rect, cs[3].rect

	top := canvas.Rect{X: tl.Right(), Y: o.Y, Width: tr.X - tl.Right(), Height: g.Blur}
	eachPixel(sctx, top, func(_, y int, p []byte) {
		p[3] = f.alpha(ca, float32(b.Y)-(float32(y)+0.5))
	})
	bottom := canvas.Rect{X: bl.Right(), Y: b.Bottom(), Width: br.X - bl.Right(), Height: g.Blur}
	eachPixel(sctx, bottom, func(_, y int, p []byte) {
		p[3] = f.alpha(ca, float32(y)+0.5-float32(b.Bottom()))
	})
	left := canvas.Rect{X: o.X, Y: tl.Bottom(), Width: g.Blur, Height: bl.Y - tl.Bottom()}
	eachPixel(sctx, left, func(x, _ int, p []byte) {
		p[3] = f.alpha(ca, float32(b.X)-(float32(x)+0.5))
	})
	right := canvas.Rect{X: b.Right(), Y: tr.Bottom(), Width: g.Blur, Height: br.Y - tr.Bottom()}
	eachPixel(sctx, right, func(x, _ int, p []byte) {
		p[3] = f.alpha(ca, float32(x)+0.5-float32(b.Right()))
	})
}

// fadeCorner applies the radial falloff to one corner square. Pixels
// within the body radius keep the full shadow alpha. Without blur the
// corner is a hard quarter circle with a one-pixel anti-aliased edge.
//
// The falloff is taken at d-r, where d is the distance from the arc
// center. On the row or column shared with an edge band that is the band's
// own distance to within a fraction of a pixel, so corner and edge meet
// without a seam and a square corner (r = 0) needs no separate zone.
func fadeCorner(ca byte, c *shadowCorner, f falloff, sctx *canvas.PaintContext) {
	if c.rect.IsEmpty() {
		return
	}
	r := float32(c.radius)
	hard := f.width == 0
	eachPixel(sctx, c.rect, func(x, y int, p []byte) {
		lx, ly := c.which.Local(x-c.rect.X, y-c.rect.Y, c.rect.Width, c.rect.Height)
		if hard {
			p[3] = blend.MulDiv255(ca, blend.Coverage(c.arc.Outer(lx, ly)))
			return
		}
		d, _ := c.arc.Distance(lx, ly)
		p[3] = f.alpha(ca, d-r)
	})
}

// subtractContent clears the content box, including its own rounded
// corners, so the shadow never shows through the box.
func subtractContent(g Geometry, sctx *canvas.PaintContext) {
	content := g.Content
	var arcs [4]rounded.Arc
	for i, r := range g.ContentRadii {
		arcs[i] = rounded.NewArc(r, 0, 0)
	}
	eachPixel(sctx, content, func(x, y int, p []byte) {
		x -= content.X
		y -= content.Y
		for i, c := range rounded.Corners {
			r := g.ContentRadii[i]
			if r == 0 {
				continue
			}
			cx, cy := c.Place(0, 0, content.Width, content.Height, r, r)
			if x < cx || y < cy || x >= cx+r || y >= cy+r {
				continue
			}
			lx, ly := c.Local(x-cx, y-cy, r, r)
			cov := arcs[i].Outer(lx, ly)
			if cov < 1 {
				p[3] = blend.MulDiv255(p[3], blend.Coverage(1-cov))
				return
			}
			break
		}
		clear(p)
	})
}
