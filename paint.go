package canvas

// PaintContext describes one paint call: a destination view and the
// rectangle, in the painted box's coordinates, that the view covers.
//
// Widget layers hand rasterizers a PaintContext whose Rect is the dirty
// region of a box and whose Canvas is a writable view of exactly that
// region in the frame buffer.
type PaintContext struct {
	// Rect is the covered region in box coordinates. Its size matches the
	// Canvas view.
	Rect Rect

	// Canvas is the destination view.
	Canvas *View

	// WithAlpha reports whether the destination keeps an alpha channel
	// that later passes composite, rather than being presented directly.
	WithAlpha bool
}

// NewPaintContext returns a context covering the whole of v, with v's
// top-left corner at box coordinate (0, 0).
func NewPaintContext(v *View) *PaintContext {
	return &PaintContext{
		Rect:      Rect{Width: v.Width(), Height: v.Height()},
		Canvas:    v,
		WithAlpha: true,
	}
}

// Quote returns a writable view of the part of box-space rectangle r that
// this context covers, together with that part in box coordinates. The
// boolean is false when r lies outside the context.
func (p *PaintContext) Quote(r Rect) (*View, Rect, bool) {
	part, ok := Overlap(r, p.Rect)
	if !ok {
		return nil, Rect{}, false
	}
	local := part.Translate(-p.Rect.X, -p.Rect.Y)
	v := p.Canvas.Quote(&local)
	if v.Width() == 0 {
		return nil, Rect{}, false
	}
	return v, part, true
}

// ToLocal converts box coordinates to destination view coordinates.
func (p *PaintContext) ToLocal(x, y int) (int, int) {
	return x - p.Rect.X, y - p.Rect.Y
}
