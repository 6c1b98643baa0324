// Package resample scales canvas views into new canvases.
package resample

import (
	"fmt"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/canvas"
)

// Mode selects the sampling filter.
type Mode uint8

const (
	// Nearest picks the source pixel containing each sample point.
	// It works for every color type.
	Nearest Mode = iota

	// Bilinear blends the four neighboring source pixels.
	Bilinear

	// CatmullRom uses a 4x4 cubic kernel. Best for downscaling photos.
	CatmullRom
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Nearest:
		return "Nearest"
	case Bilinear:
		return "Bilinear"
	case CatmullRom:
		return "CatmullRom"
	default:
		return "Unknown"
	}
}

// ParseMode returns the mode named s, as printed by String. Unknown names
// return Bilinear and false.
func ParseMode(s string) (Mode, bool) {
	for _, m := range []Mode{Nearest, Bilinear, CatmullRom} {
		if m.String() == s {
			return m, true
		}
	}
	return Bilinear, false
}

// Size returns the output size and scale factors for scaling a
// srcW x srcH image to width x height. With keepAspect the larger scale
// factor applies to both axes, so one side may come out shorter than
// requested.
func Size(srcW, srcH, width, height int, keepAspect bool) (w, h int, scaleX, scaleY float64) {
	scaleX = float64(srcW) / float64(width)
	scaleY = float64(srcH) / float64(height)
	if !keepAspect {
		return width, height, scaleX, scaleY
	}
	scale := max(scaleX, scaleY)
	w = min(max(int(float64(srcW)/scale+0.5), 1), width)
	h = min(max(int(float64(srcH)/scale+0.5), 1), height)
	return w, h, scale, scale
}

// prepare validates the source and allocates the destination.
func prepare(src *canvas.View, width, height int, keepAspect bool) (*canvas.Canvas, float64, float64, error) {
	if src.Stale() {
		return nil, 0, 0, canvas.ErrStaleView
	}
	if !src.Valid() || width <= 0 || height <= 0 {
		return nil, 0, 0, canvas.ErrInvalidSize
	}
	w, h, sx, sy := Size(src.Width(), src.Height(), width, height, keepAspect)
	dst, err := canvas.New(w, h, canvas.WithColorType(src.ColorType()), canvas.WithOpacity(src.Opacity()))
	if err != nil {
		return nil, 0, 0, err
	}
	return dst, sx, sy, nil
}

// ZoomNearest scales src with nearest-neighbor sampling. Destination
// pixel (x, y) copies source pixel (floor(x*scaleX), floor(y*scaleY)).
func ZoomNearest(src *canvas.View, width, height int, keepAspect bool) (*canvas.Canvas, error) {
	dst, sx, sy, err := prepare(src, width, height, keepAspect)
	if err != nil {
		return nil, err
	}
	bpp := src.BytesPerPixel()
	dv := dst.View()
	for y := range dst.Height() {
		srow := src.Row(min(int(float64(y)*sy), src.Height()-1))
		drow := dv.Row(y)
		for x := range dst.Width() {
			si := min(int(float64(x)*sx), src.Width()-1) * bpp
			copy(drow[x*bpp:(x+1)*bpp], srow[si:si+bpp])
		}
	}
	return dst, nil
}

// ZoomBilinear scales src with bilinear interpolation. Sources that are
// not ColorARGB8888 fall back to ZoomNearest.
func ZoomBilinear(src *canvas.View, width, height int, keepAspect bool) (*canvas.Canvas, error) {
	if src.ColorType() != canvas.ColorARGB8888 {
		canvas.Logger().Debug("resample: bilinear falls back to nearest", "colorType", src.ColorType())
		return ZoomNearest(src, width, height, keepAspect)
	}
	dst, sx, sy, err := prepare(src, width, height, keepAspect)
	if err != nil {
		return nil, err
	}
	sw, sh := src.Width(), src.Height()
	dv := dst.View()
	for i := range dst.Height() {
		fy := sy * float64(i)
		y0 := min(int(fy), sh-1)
		y1 := min(y0+1, sh-1)
		dy := fy - float64(int(fy))
		r0, r1 := src.Row(y0), src.Row(y1)
		drow := dv.Row(i)

		for j := range dst.Width() {
			fx := sx * float64(j)
			x0 := min(int(fx), sw-1)
			x1 := min(x0+1, sw-1)
			dx := fx - float64(int(fx))

			wa := (1 - dx) * (1 - dy)
			wb := dx * (1 - dy)
			wc := dy * (1 - dx)
			wd := dx * dy
			a, b := r0[x0*4:x0*4+4], r0[x1*4:x1*4+4]
			c, d := r1[x0*4:x0*4+4], r1[x1*4:x1*4+4]
			out := drow[j*4 : j*4+4]
			for k := range 4 {
				v := float64(a[k])*wa + float64(b[k])*wb + float64(c[k])*wc + float64(d[k])*wd + 0.5
				out[k] = byte(min(max(v, 0), 255))
			}
		}
	}
	return dst, nil
}

// zoomCatmullRom scales src with the Catmull-Rom kernel from
// golang.org/x/image/draw.
func zoomCatmullRom(src *canvas.View, width, height int, keepAspect bool) (*canvas.Canvas, error) {
	if src.ColorType() != canvas.ColorARGB8888 {
		canvas.Logger().Debug("resample: catmull-rom falls back to nearest", "colorType", src.ColorType())
		return ZoomNearest(src, width, height, keepAspect)
	}
	dst, _, _, err := prepare(src, width, height, keepAspect)
	if err != nil {
		return nil, err
	}
	dv := dst.View()
	xdraw.CatmullRom.Scale(dv, dv.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Zoom scales src with the given mode.
func Zoom(src *canvas.View, width, height int, keepAspect bool, mode Mode) (*canvas.Canvas, error) {
	switch mode {
	case Nearest:
		return ZoomNearest(src, width, height, keepAspect)
	case Bilinear:
		return ZoomBilinear(src, width, height, keepAspect)
	case CatmullRom:
		return zoomCatmullRom(src, width, height, keepAspect)
	default:
		return nil, fmt.Errorf("resample: unknown mode %d", mode)
	}
}
