// Package glyph rasterizes text into 8-bit coverage masks and stamps them
// into canvas views.
//
// Text shaping is out of scope: a string is laid out left to right with
// the face's advances and kerning, which is what font.Drawer does.
package glyph

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
)

// ErrNoFace is returned when a face name is not registered.
var ErrNoFace = errors.New("glyph: face not registered")

// Mask is a rasterized line of text.
type Mask struct {
	// Alpha holds the coverage, with its top-left pixel at the top of
	// the line box.
	Alpha *image.Alpha

	// Baseline is the distance from the top of the mask to the baseline.
	Baseline int

	// Advance is the horizontal pen advance in pixels.
	Advance int
}

// Bounds returns the mask size anchored at the origin.
func (m *Mask) Bounds() canvas.Rect {
	if m == nil || m.Alpha == nil {
		return canvas.Rect{}
	}
	return canvas.RectFromImage(m.Alpha.Bounds())
}

// Rasterize draws s with face into a new mask one line box tall and one
// advance wide. An empty string yields an empty mask.
func Rasterize(face font.Face, s string) *Mask {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	advance := font.MeasureString(face, s).Ceil()

	mask := &Mask{Baseline: ascent, Advance: advance}
	if advance <= 0 || height <= 0 {
		mask.Alpha = image.NewAlpha(image.Rectangle{})
		return mask
	}
	mask.Alpha = image.NewAlpha(image.Rect(0, 0, advance, height))
	d := &font.Drawer{
		Dst:  mask.Alpha,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)
	return mask
}

// Draw stamps m through color c into dst with the mask's top-left pixel
// at (x, y) in dst coordinates.
func Draw(dst *canvas.View, m *Mask, x, y int, c canvas.Color) error {
	if m == nil {
		return nil
	}
	return canvas.BlendMask(dst, m.Alpha, x, y, c)
}

// DefaultFace returns the built-in 7x13 bitmap face. It is safe for
// concurrent use.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// NewFace returns the Go Regular TrueType font at the given pixel size.
// The face is not safe for concurrent use; register it with a Library to
// share it.
func NewFace(size float64) (font.Face, error) {
	return ParseFace(goregular.TTF, size)
}

// ParseFace parses TrueType or OpenType data and returns a face of the
// given pixel size.
func ParseFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: new face: %w", err)
	}
	return face, nil
}
