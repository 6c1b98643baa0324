package resample

import (
	"errors"
	"testing"

	"github.com/gogpu/canvas"
)

func gradient(t *testing.T, w, h int, opts ...canvas.Option) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New(w, h, opts...)
	if err != nil {
		t.Fatal(err)
	}
	bpp := c.BytesPerPixel()
	for y := range h {
		row := c.Bytes()[y*c.Stride():]
		for x := range w {
			for k := range bpp {
				row[x*bpp+k] = byte(x*10 + y + k)
			}
			if bpp == 4 {
				row[x*4+3] = 255
			}
		}
	}
	return c
}

func TestExactSize(t *testing.T) {
	src := gradient(t, 40, 30)
	for _, mode := range []Mode{Nearest, Bilinear, CatmullRom} {
		for _, size := range [][2]int{{80, 60}, {13, 7}, {40, 30}, {1, 1}, {100, 5}} {
			dst, err := Zoom(src.View(), size[0], size[1], false, mode)
			if err != nil {
				t.Fatalf("%v %v: %v", mode, size, err)
			}
			if dst.Width() != size[0] || dst.Height() != size[1] {
				t.Errorf("%v: got %dx%d, want %dx%d", mode, dst.Width(), dst.Height(), size[0], size[1])
			}
		}
	}
}

func TestKeepAspect(t *testing.T) {
	tests := []struct {
		srcW, srcH, w, h int
		wantW, wantH     int
	}{
		{200, 100, 100, 100, 100, 50},
		{100, 200, 100, 100, 50, 100},
		{100, 100, 50, 80, 50, 50},
		{30, 10, 300, 300, 300, 100},
		{1000, 1, 10, 10, 10, 1},
	}
	for _, tt := range tests {
		w, h, sx, sy := Size(tt.srcW, tt.srcH, tt.w, tt.h, true)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("Size(%d, %d, %d, %d) = %dx%d, want %dx%d",
				tt.srcW, tt.srcH, tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
		if sx != sy {
			t.Errorf("keepAspect scales differ: %v, %v", sx, sy)
		}
	}

	src := gradient(t, 200, 100)
	dst, err := ZoomBilinear(src.View(), 100, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	if dst.Width() != 100 || dst.Height() != 50 {
		t.Errorf("ZoomBilinear keepAspect = %dx%d, want 100x50", dst.Width(), dst.Height())
	}
}

func TestNearestSamples(t *testing.T) {
	src := gradient(t, 4, 4)
	dst, err := ZoomNearest(src.View(), 8, 8, false)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 8 {
		for x := range 8 {
			if got, want := dst.Pixel(x, y), src.Pixel(x/2, y/2); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBilinearInterpolates(t *testing.T) {
	src, err := canvas.New(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	_ = src.SetPixel(0, 0, canvas.RGB(0, 0, 0))
	_ = src.SetPixel(1, 0, canvas.RGB(200, 100, 50))

	dst, err := ZoomBilinear(src.View(), 4, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	// Scale 0.5: samples at 0, 0.5, 1 and 1.5 (clamped to the last pixel).
	want := []canvas.Color{
		canvas.RGB(0, 0, 0),
		canvas.RGB(100, 50, 25),
		canvas.RGB(200, 100, 50),
		canvas.RGB(200, 100, 50),
	}
	for x, w := range want {
		if got := dst.Pixel(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestUniformStaysUniform(t *testing.T) {
	src, err := canvas.New(17, 9)
	if err != nil {
		t.Fatal(err)
	}
	col := canvas.ARGB(200, 30, 60, 90)
	if err := canvas.Fill(src.View(), col, true); err != nil {
		t.Fatal(err)
	}
	for _, mode := range []Mode{Nearest, Bilinear} {
		dst, err := Zoom(src.View(), 33, 5, false, mode)
		if err != nil {
			t.Fatal(err)
		}
		for y := range dst.Height() {
			for x := range dst.Width() {
				if got := dst.Pixel(x, y); got != col {
					t.Fatalf("%v pixel (%d,%d) = %v, want %v", mode, x, y, got, col)
				}
			}
		}
	}
}

func TestQuotedSource(t *testing.T) {
	src := gradient(t, 20, 20)
	sub := src.QuoteReadOnly(&canvas.Rect{X: 5, Y: 5, Width: 4, Height: 4})
	dst, err := ZoomNearest(sub, 4, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dst.Pixel(0, 0), src.Pixel(5, 5); got != want {
		t.Errorf("origin = %v, want %v", got, want)
	}
	if got, want := dst.Pixel(3, 3), src.Pixel(8, 8); got != want {
		t.Errorf("corner = %v, want %v", got, want)
	}
}

func TestFallbackToNearest(t *testing.T) {
	src := gradient(t, 6, 3, canvas.WithColorType(canvas.ColorRGB888))
	got, err := ZoomBilinear(src.View(), 12, 6, false)
	if err != nil {
		t.Fatal(err)
	}
	want, err := ZoomNearest(src.View(), 12, 6, false)
	if err != nil {
		t.Fatal(err)
	}
	if got.ColorType() != canvas.ColorRGB888 {
		t.Errorf("ColorType() = %v, want RGB888", got.ColorType())
	}
	if string(got.Bytes()) != string(want.Bytes()) {
		t.Error("bilinear fallback differs from nearest")
	}
}

func TestZoomErrors(t *testing.T) {
	src := gradient(t, 4, 4)
	if _, err := ZoomNearest(src.View(), 0, 4, false); !errors.Is(err, canvas.ErrInvalidSize) {
		t.Errorf("zero width = %v", err)
	}
	empty := src.Quote(&canvas.Rect{X: 10, Y: 10, Width: 2, Height: 2})
	if _, err := ZoomBilinear(empty, 4, 4, false); !errors.Is(err, canvas.ErrInvalidSize) {
		t.Errorf("empty source = %v", err)
	}
	stale := src.View()
	_ = src.Create(4, 4)
	if _, err := ZoomNearest(stale, 4, 4, false); !errors.Is(err, canvas.ErrStaleView) {
		t.Errorf("stale source = %v", err)
	}
	if _, err := Zoom(src.View(), 4, 4, false, Mode(9)); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Nearest, Bilinear, CatmullRom} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("Lanczos"); ok {
		t.Error("ParseMode accepted an unknown name")
	}
}
