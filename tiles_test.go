package canvas

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestPaintTilesCoversEveryPixel(t *testing.T) {
	c, err := New(50, 33)
	if err != nil {
		t.Fatal(err)
	}
	var calls atomic.Int32
	err = PaintTiles(c.View(), 16, 16, func(ctx *PaintContext) error {
		calls.Add(1)
		if ctx.Canvas.Width() != ctx.Rect.Width || ctx.Canvas.Height() != ctx.Rect.Height {
			t.Errorf("tile view %v does not match rect %v", ctx.Canvas.Rect(), ctx.Rect)
		}
		// Each tile adds one to the blue channel; overlap would show as 2.
		for y := range ctx.Canvas.Height() {
			row := ctx.Canvas.Row(y)
			for i := 0; i < len(row); i += 4 {
				row[i]++
				row[i+3] = 255
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := calls.Load(); got != 4*3 {
		t.Errorf("calls = %d, want 12", got)
	}
	for y := range 33 {
		for x := range 50 {
			if got := c.Pixel(x, y); got != ARGB(255, 0, 0, 1) {
				t.Fatalf("pixel (%d,%d) = %v, want painted once", x, y, got)
			}
		}
	}
}

func TestTilePainterErrors(t *testing.T) {
	tp := NewTilePainter(2)
	defer tp.Close()
	if tp.Workers() != 2 {
		t.Errorf("Workers() = %d, want 2", tp.Workers())
	}

	c, err := New(20, 10)
	if err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	err = tp.Paint(c.View(), 10, 10, func(ctx *PaintContext) error {
		if ctx.Rect.X == 10 {
			return boom
		}
		return Fill(ctx.Canvas, Green, true)
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Paint error = %v, want boom", err)
	}
	if c.Pixel(0, 0) != Green {
		t.Error("successful tile was not painted")
	}
	if c.Pixel(15, 5) != Transparent {
		t.Error("failed tile painted")
	}
}

func TestPaintTilesReadOnly(t *testing.T) {
	c, err := New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	err = PaintTiles(c.QuoteReadOnly(nil), 2, 2, func(*PaintContext) error { return nil })
	if !errors.Is(err, ErrReadOnly) {
		t.Errorf("PaintTiles on read-only view = %v", err)
	}
}

func TestPaintDirtyOnlyTouchesMarkedTiles(t *testing.T) {
	c, err := New(40, 30)
	if err != nil {
		t.Fatal(err)
	}
	tp := NewTilePainter(3)
	defer tp.Close()

	dirty := NewDirtyTiles(40, 30, 16, 16)
	dirty.MarkRect(35, 20, 2, 2) // last column and row, clipped to 8x14
	dirty.Mark(0, 0)

	var calls atomic.Int32
	err = tp.PaintDirty(c.View(), dirty, func(ctx *PaintContext) error {
		calls.Add(1)
		return Fill(ctx.Canvas, Red, true)
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
	if dirty.Count() != 0 {
		t.Error("PaintDirty did not clear the dirty set")
	}
	checks := []struct {
		x, y int
		want Color
	}{
		{0, 0, Red},
		{15, 15, Red},
		{16, 0, Transparent},
		{32, 16, Red},
		{39, 29, Red},
		{31, 29, Transparent},
	}
	for _, tc := range checks {
		if got := c.Pixel(tc.x, tc.y); got != tc.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}

	// Nothing marked: no calls.
	calls.Store(0)
	if err := tp.PaintDirty(c.View(), dirty, func(*PaintContext) error { calls.Add(1); return nil }); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 0 {
		t.Error("clean tracker still painted")
	}
}
