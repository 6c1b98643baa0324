package canvas

import (
	"image"

	"github.com/gogpu/canvas/internal/blend"
)

// opaqueEpsilon is how close to 1 an opacity must be for Replace to take
// the raw byte copy path.
const opaqueEpsilon = 1.0 / 512

// Over composites src, with effective alpha alpha, over dst using the
// Porter-Duff "source over" operator on non-premultiplied colors. The
// color channels of src are used; src.A is ignored in favour of alpha.
//
// An alpha of 0 returns dst bit-for-bit; an alpha of 255 returns src at
// full opacity.
func Over(dst, src Color, alpha uint8) Color {
	r, g, b, a := blend.Over(dst.R, dst.G, dst.B, dst.A, src.R, src.G, src.B, alpha)
	return Color{R: r, G: g, B: b, A: a}
}

// placement resolves where src lands when placed at (x, y) in dst.
// It returns the visible part in src coordinates and in dst coordinates.
func placement(dst, src *View, x, y int) (srcPart, dstPart Rect, ok bool) {
	cut := CutArea(dst.Width(), dst.Height(), Rect{X: x, Y: y, Width: src.Width(), Height: src.Height()})
	if cut.IsEmpty() {
		return Rect{}, Rect{}, false
	}
	return cut, cut.Translate(x, y), true
}

// checkPair validates a (dst, src) pair for compositing.
func checkPair(dst, src *View) (bool, error) {
	ok, err := dst.check(true)
	if err != nil || !ok {
		return false, err
	}
	ok, err = src.check(false)
	if err != nil || !ok {
		return false, err
	}
	return true, nil
}

// Blend composites src over dst with its top-left corner at (x, y) in dst
// coordinates. The source canvas opacity scales every source alpha; at
// opacity 1 the scaling multiply is skipped.
//
// Only ColorARGB8888 views can be blended. Parts of src outside dst are
// ignored; nothing visible is a successful no-op.
func Blend(dst, src *View, x, y int) error {
	ok, err := checkPair(dst, src)
	if err != nil || !ok {
		return err
	}
	if dst.ColorType() != ColorARGB8888 || src.ColorType() != ColorARGB8888 {
		return ErrUnsupportedColorType
	}
	sp, dp, ok := placement(dst, src, x, y)
	if !ok {
		return nil
	}

	opacity := src.Opacity()
	for j := range sp.Height {
		srow := src.Row(sp.Y + j)[sp.X*4 : sp.Right()*4]
		drow := dst.Row(dp.Y + j)[dp.X*4 : dp.Right()*4]
		if opacity >= 1 {
			blend.OverRow(drow, srow)
		} else {
			blend.OverRowOpacity(drow, srow, opacity)
		}
	}
	return nil
}

// Replace copies src into dst with its top-left corner at (x, y),
// discarding the destination's previous pixels. At opacity 1 this is a
// raw row copy and works for any matching color type; otherwise color
// channels are copied and alpha is scaled by the source opacity, which
// requires ColorARGB8888.
func Replace(dst, src *View, x, y int) error {
	ok, err := checkPair(dst, src)
	if err != nil || !ok {
		return err
	}
	if dst.ColorType() != src.ColorType() {
		return ErrUnsupportedColorType
	}
	opacity := src.Opacity()
	opaque := opacity >= 1-opaqueEpsilon
	if !opaque && src.ColorType() != ColorARGB8888 {
		return ErrUnsupportedColorType
	}
	sp, dp, ok := placement(dst, src, x, y)
	if !ok {
		return nil
	}

	bpp := src.BytesPerPixel()
	for j := range sp.Height {
		srow := src.Row(sp.Y + j)[sp.X*bpp : sp.Right()*bpp]
		drow := dst.Row(dp.Y + j)[dp.X*bpp : dp.Right()*bpp]
		if opaque {
			copy(drow, srow)
			continue
		}
		for i := 0; i < len(srow); i += 4 {
			drow[i] = srow[i]
			drow[i+1] = srow[i+1]
			drow[i+2] = srow[i+2]
			drow[i+3] = blend.ScaleAlpha(srow[i+3], opacity)
		}
	}
	return nil
}

// Fill sets every pixel of dst to c. When withAlpha is false only the
// color channels are written and each pixel keeps its alpha.
//
// ColorRGB888 views are filled with the color channels only.
func Fill(dst *View, c Color, withAlpha bool) error {
	ok, err := dst.check(true)
	if err != nil || !ok {
		return err
	}
	switch dst.ColorType() {
	case ColorARGB8888:
		for y := range dst.Height() {
			blend.FillRow(dst.Row(y), c.R, c.G, c.B, c.A, withAlpha)
		}
		return nil
	case ColorRGB888:
		for y := range dst.Height() {
			row := dst.Row(y)
			for i := 0; i < len(row); i += 3 {
				row[i], row[i+1], row[i+2] = c.B, c.G, c.R
			}
		}
		return nil
	case ColorIndex8, ColorGray8, ColorRGB323, ColorARGB2222, ColorRGB555, ColorRGB565:
		return ErrUnsupportedColorType
	default:
		return ErrUnsupportedColorType
	}
}

// FillBlend composites the solid color c over every pixel of dst.
func FillBlend(dst *View, c Color) error {
	ok, err := dst.check(true)
	if err != nil || !ok {
		return err
	}
	if dst.ColorType() != ColorARGB8888 {
		return ErrUnsupportedColorType
	}
	if c.A == 0 {
		return nil
	}
	src := [4]byte{c.B, c.G, c.R, c.A}
	for y := range dst.Height() {
		row := dst.Row(y)
		for i := 0; i < len(row); i += 4 {
			blend.OverBGRA(row[i:i+4], src[:], c.A)
		}
	}
	return nil
}

// Clear zeroes every byte of dst, leaving transparent black for
// ColorARGB8888.
func Clear(dst *View) error {
	ok, err := dst.check(true)
	if err != nil || !ok {
		return err
	}
	for y := range dst.Height() {
		clear(dst.Row(y))
	}
	return nil
}

// BlendMask stamps color c through an 8-bit coverage mask (such as a
// rasterized glyph) into dst. The mask's top-left pixel lands at (x, y)
// in dst coordinates; each pixel is blended with alpha c.A * coverage.
func BlendMask(dst *View, mask *image.Alpha, x, y int, c Color) error {
	ok, err := dst.check(true)
	if err != nil || !ok || mask == nil {
		return err
	}
	if dst.ColorType() != ColorARGB8888 {
		return ErrUnsupportedColorType
	}
	mb := mask.Bounds()
	cut := CutArea(dst.Width(), dst.Height(), Rect{X: x, Y: y, Width: mb.Dx(), Height: mb.Dy()})
	if cut.IsEmpty() {
		return nil
	}

	src := [4]byte{c.B, c.G, c.R, c.A}
	for j := range cut.Height {
		my := mb.Min.Y + cut.Y + j
		mrow := mask.Pix[mask.PixOffset(mb.Min.X+cut.X, my):]
		drow := dst.Row(y + cut.Y + j)[(x+cut.X)*4:]
		for i := range cut.Width {
			cov := mrow[i]
			if cov == 0 {
				continue
			}
			blend.OverBGRA(drow[i*4:i*4+4], src[:], blend.MulDiv255(c.A, cov))
		}
	}
	return nil
}
