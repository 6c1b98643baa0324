package scene

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/resample"
)

type imageKey struct {
	path          string
	width, height int
	mode          resample.Mode
	keepAspect    bool
}

var readFile = os.ReadFile

// image returns the image of img zoomed to width x height, from the cache
// when possible. An empty content area yields nil.
func (r *Renderer) image(s *Scene, img *Image, width, height int) (*canvas.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, nil
	}
	mode := resample.Bilinear
	if img.Mode != "" {
		mode, _ = resample.ParseMode(img.Mode)
	}
	key := imageKey{
		path:       s.path(img.Path),
		width:      width,
		height:     height,
		mode:       mode,
		keepAspect: img.KeepAspect,
	}
	if c, ok := r.images.Get(key); ok {
		return c, nil
	}

	src, err := DecodeImage(key.path)
	if err != nil {
		return nil, err
	}
	zoomed, err := resample.Zoom(src.QuoteReadOnly(nil), width, height, img.KeepAspect, mode)
	if err != nil {
		return nil, fmt.Errorf("scene: zoom %s: %w", key.path, err)
	}
	r.images.Put(key, zoomed)
	return zoomed, nil
}

// DecodeImage reads a PNG or BMP file into a new canvas.
func DecodeImage(path string) (*canvas.Canvas, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("scene: decode %s: %w", path, err)
	}
	b := img.Bounds()
	c, err := canvas.New(b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	v := c.View()
	xdraw.Draw(v, v.Bounds(), img, b.Min, xdraw.Src)
	canvas.Logger().Debug("scene: image decoded", "path", path, "format", format, "w", b.Dx(), "h", b.Dy())
	return c, nil
}
