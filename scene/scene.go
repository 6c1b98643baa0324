// Package scene describes a frame of styled boxes in YAML and renders it
// with the canvas rasterizers.
//
// A scene is a background color and an ordered list of boxes. Each box
// may have a background fill, an image zoomed into its content area, a
// line of text, a border with rounded corners and a box shadow. Boxes
// paint in list order, each one on its own scratch layer that is then
// composited onto the frame.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/border"
	"github.com/gogpu/canvas/glyph"
	"github.com/gogpu/canvas/resample"
	"github.com/gogpu/canvas/shadow"
)

// Scene is the YAML description of a frame.
type Scene struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
	Fonts      []Font `yaml:"fonts"`
	Boxes      []Box  `yaml:"boxes"`

	// Dir resolves relative font and image paths. Load sets it to the
	// directory of the scene file.
	Dir string `yaml:"-"`
}

// Font registers a face under Name. An empty Path selects Go Regular.
type Font struct {
	Name string  `yaml:"name"`
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// Rect is a box rectangle in frame pixels.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Canvas converts r to a canvas.Rect.
func (r Rect) Canvas() canvas.Rect {
	return canvas.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Box is one styled rectangle.
type Box struct {
	Name       string  `yaml:"name"`
	Rect       Rect    `yaml:"rect"`
	Background string  `yaml:"background"`
	Border     *Border `yaml:"border"`
	Shadow     *Shadow `yaml:"shadow"`
	Text       *Text   `yaml:"text"`
	Image      *Image  `yaml:"image"`
}

// Line is a single border edge.
type Line struct {
	Width int    `yaml:"width"`
	Color string `yaml:"color"`
}

// Border is a box border. Width, Color and Radius apply to every edge and
// corner; per-edge lines and Radii override them.
type Border struct {
	Width  int    `yaml:"width"`
	Color  string `yaml:"color"`
	Radius int    `yaml:"radius"`

	Top    *Line `yaml:"top"`
	Right  *Line `yaml:"right"`
	Bottom *Line `yaml:"bottom"`
	Left   *Line `yaml:"left"`

	// Radii are top-left, top-right, bottom-left and bottom-right.
	Radii []int `yaml:"radii"`
}

// DefaultShadowColor is the shadow color when none is given.
var DefaultShadowColor = canvas.Black.WithAlpha(128)

// Shadow is a box shadow. Its corners follow the border radii.
type Shadow struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Blur   int    `yaml:"blur"`
	Spread int    `yaml:"spread"`
	Color  string `yaml:"color"`
}

// Text is a line of text drawn at (X, Y) inside the content area, black
// unless Color says otherwise.
type Text struct {
	Value string `yaml:"value"`
	Font  string `yaml:"font"`
	Color string `yaml:"color"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
}

// Image is a PNG or BMP file zoomed into the content area and centered.
type Image struct {
	Path       string `yaml:"path"`
	Mode       string `yaml:"mode"`
	KeepAspect bool   `yaml:"keep_aspect"`
}

// Defaults returns an empty white 640x480 scene.
func Defaults() Scene {
	return Scene{Width: 640, Height: 480, Background: "#ffffff"}
}

// Parse decodes YAML scene data over Defaults and validates it.
func Parse(data []byte) (*Scene, error) {
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// Validate reports every problem in s, joined.
func (s *Scene) Validate() error {
	var errs []error
	add := func(field string, err error) {
		errs = append(errs, fmt.Errorf("%s: %w", field, err))
	}

	if s.Width <= 0 || s.Height <= 0 {
		add("size", fmt.Errorf("%dx%d: %w", s.Width, s.Height, canvas.ErrInvalidSize))
	} else if s.Width > canvas.MaxDimension || s.Height > canvas.MaxDimension {
		add("size", fmt.Errorf("%dx%d: %w", s.Width, s.Height, canvas.ErrTooLarge))
	}
	if _, err := parseColor(s.Background); err != nil {
		add("background", err)
	}

	fonts := map[string]bool{"": true, glyph.DefaultName: true}
	for i, f := range s.Fonts {
		field := fmt.Sprintf("fonts[%d]", i)
		switch {
		case strings.TrimSpace(f.Name) == "":
			add(field, errors.New("missing name"))
		case fonts[f.Name]:
			add(field, fmt.Errorf("duplicate font %q", f.Name))
		case f.Size <= 0:
			add(field, fmt.Errorf("font %q: size must be positive", f.Name))
		}
		fonts[f.Name] = true
	}

	for i := range s.Boxes {
		b := &s.Boxes[i]
		field := fmt.Sprintf("boxes[%d]", i)
		if b.Name != "" {
			field = fmt.Sprintf("boxes[%d] (%s)", i, b.Name)
		}
		for _, err := range b.validate(fonts) {
			add(field, err)
		}
	}
	return errors.Join(errs...)
}

var edgeNames = [4]string{"top", "right", "bottom", "left"}

func (b *Box) validate(fonts map[string]bool) []error {
	var errs []error
	colorField := func(name, value string) {
		if _, err := parseColor(value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if b.Rect.Width < 0 || b.Rect.Height < 0 {
		errs = append(errs, fmt.Errorf("rect %dx%d: %w", b.Rect.Width, b.Rect.Height, canvas.ErrInvalidSize))
	}
	colorField("background", b.Background)
	if bd := b.Border; bd != nil {
		colorField("border.color", bd.Color)
		for i, l := range []*Line{bd.Top, bd.Right, bd.Bottom, bd.Left} {
			if l != nil {
				colorField("border."+edgeNames[i]+".color", l.Color)
			}
		}
		if n := len(bd.Radii); n != 0 && n != 4 {
			errs = append(errs, fmt.Errorf("border.radii: want 4 values, got %d", n))
		}
	}
	if sh := b.Shadow; sh != nil {
		colorField("shadow.color", sh.Color)
		if sh.Blur < 0 {
			errs = append(errs, fmt.Errorf("shadow.blur: negative blur %d", sh.Blur))
		}
	}
	if t := b.Text; t != nil {
		colorField("text.color", t.Color)
		if !fonts[t.Font] {
			errs = append(errs, fmt.Errorf("text.font: unknown font %q", t.Font))
		}
	}
	if img := b.Image; img != nil {
		if img.Path == "" {
			errs = append(errs, errors.New("image.path: missing"))
		}
		if img.Mode != "" {
			if _, ok := resample.ParseMode(img.Mode); !ok {
				errs = append(errs, fmt.Errorf("image.mode: unknown mode %q", img.Mode))
			}
		}
	}
	return errs
}

// Bounds returns the frame area b paints, shadow included.
func (b *Box) Bounds() canvas.Rect {
	r := b.Rect.Canvas()
	if b.Shadow == nil {
		return r
	}
	s := b.boxShadow(b.border())
	sb := s.Bounds(r)
	if sb.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return sb
	}
	x0, y0 := min(r.X, sb.X), min(r.Y, sb.Y)
	x1, y1 := max(r.Right(), sb.Right()), max(r.Bottom(), sb.Bottom())
	return canvas.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// path resolves p against the scene directory.
func (s *Scene) path(p string) string {
	if filepath.IsAbs(p) || s.Dir == "" {
		return p
	}
	return filepath.Join(s.Dir, p)
}

// parseColor parses a hex color. An empty string is transparent.
func parseColor(s string) (canvas.Color, error) {
	if strings.TrimSpace(s) == "" {
		return canvas.Transparent, nil
	}
	return canvas.ParseHex(strings.TrimSpace(s))
}

// mustColor parses a color already checked by Validate.
func mustColor(s string) canvas.Color {
	c, _ := parseColor(s)
	return c
}

func (b *Box) border() border.Border {
	bd := b.Border
	if bd == nil {
		return border.Border{}
	}
	out := border.Uniform(bd.Width, mustColor(bd.Color), bd.Radius)
	for _, o := range []struct {
		src *Line
		dst *border.Line
	}{
		{bd.Top, &out.Top},
		{bd.Right, &out.Right},
		{bd.Bottom, &out.Bottom},
		{bd.Left, &out.Left},
	} {
		if o.src != nil {
			*o.dst = border.Line{Width: o.src.Width, Color: mustColor(o.src.Color)}
		}
	}
	if len(bd.Radii) == 4 {
		out.TopLeftRadius = bd.Radii[0]
		out.TopRightRadius = bd.Radii[1]
		out.BottomLeftRadius = bd.Radii[2]
		out.BottomRightRadius = bd.Radii[3]
	}
	return out
}

func (b *Box) boxShadow(bd border.Border) shadow.BoxShadow {
	sh := b.Shadow
	if sh == nil {
		return shadow.BoxShadow{}
	}
	col := DefaultShadowColor
	if sh.Color != "" {
		col = mustColor(sh.Color)
	}
	return shadow.BoxShadow{
		X:                 sh.X,
		Y:                 sh.Y,
		Blur:              sh.Blur,
		Spread:            sh.Spread,
		Color:             col,
		TopLeftRadius:     bd.TopLeftRadius,
		TopRightRadius:    bd.TopRightRadius,
		BottomLeftRadius:  bd.BottomLeftRadius,
		BottomRightRadius: bd.BottomRightRadius,
	}
}
