package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/canvas"
)

const sampleYAML = `
width: 120
height: 80
background: "#202020"
fonts:
  - name: body
    size: 14
boxes:
  - name: card
    rect: {x: 10, y: 10, width: 60, height: 40}
    background: "#ffffff"
    border:
      width: 2
      color: "#3366ff"
      radius: 8
      left: {width: 4, color: "#ff0000"}
    shadow: {x: 2, y: 3, blur: 6}
    text: {value: "hello", font: body, x: 4, y: 4}
  - rect: {x: 80, y: 20, width: 30, height: 30}
    image: {path: photo.png, mode: Nearest, keep_aspect: true}
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 120, s.Width)
	assert.Equal(t, 80, s.Height)
	require.Len(t, s.Boxes, 2)

	card := &s.Boxes[0]
	assert.Equal(t, canvas.Rect{X: 10, Y: 10, Width: 60, Height: 40}, card.Rect.Canvas())

	b := card.border()
	assert.Equal(t, 4, b.Left.Width)
	assert.Equal(t, canvas.Red, b.Left.Color)
	assert.Equal(t, 2, b.Top.Width)
	assert.Equal(t, canvas.RGB(0x33, 0x66, 0xff), b.Top.Color)
	assert.Equal(t, 8, b.BottomRightRadius)

	sh := card.boxShadow(b)
	assert.Equal(t, DefaultShadowColor, sh.Color)
	assert.Equal(t, 8, sh.TopLeftRadius)
	assert.True(t, sh.HasShadow())

	assert.True(t, s.Boxes[1].Image.KeepAspect)
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte("boxes: []\n"))
	require.NoError(t, err)
	d := Defaults()
	assert.Equal(t, d.Width, s.Width)
	assert.Equal(t, d.Height, s.Height)
	assert.Equal(t, d.Background, s.Background)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir)
	assert.Equal(t, filepath.Join(dir, "photo.png"), s.path("photo.png"))
	assert.Equal(t, "/abs/photo.png", s.path("/abs/photo.png"))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero width", "width: 0\n", "invalid size"},
		{"too large", "width: 20000\n", "maximum dimension"},
		{"bad background", "background: nope\n", "background"},
		{"bad box color", "boxes: [{rect: {width: 5, height: 5}, background: '#12'}]\n", "boxes[0]: background"},
		{"negative rect", "boxes: [{rect: {width: -5, height: 5}}]\n", "rect -5x5"},
		{"radii count", "boxes: [{border: {radii: [1, 2]}}]\n", "want 4 values"},
		{"bad edge color", "boxes: [{name: a, border: {top: {width: 1, color: x}}}]\n", "boxes[0] (a): border.top.color"},
		{"negative blur", "boxes: [{shadow: {blur: -1}}]\n", "negative blur"},
		{"unknown font", "boxes: [{text: {value: hi, font: fancy}}]\n", `unknown font "fancy"`},
		{"duplicate font", "fonts: [{name: a, size: 10}, {name: a, size: 12}]\n", `duplicate font "a"`},
		{"font size", "fonts: [{name: a}]\n", "size must be positive"},
		{"image path", "boxes: [{image: {mode: Nearest}}]\n", "image.path"},
		{"image mode", "boxes: [{image: {path: a.png, mode: Sinc}}]\n", `unknown mode "Sinc"`},
		{"yaml syntax", "width: [\n", "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Parse([]byte("width: -1\n"))
	assert.ErrorIs(t, err, canvas.ErrInvalidSize)
}

func TestBoxBounds(t *testing.T) {
	b := Box{Rect: Rect{X: 10, Y: 10, Width: 20, Height: 20}}
	assert.Equal(t, canvas.Rect{X: 10, Y: 10, Width: 20, Height: 20}, b.Bounds())

	b.Shadow = &Shadow{X: 2, Blur: 5}
	assert.Equal(t, canvas.Rect{X: 7, Y: 5, Width: 30, Height: 30}, b.Bounds())

	// A shadow that is hidden behind the box adds nothing.
	b.Shadow = &Shadow{}
	assert.Equal(t, canvas.Rect{X: 10, Y: 10, Width: 20, Height: 20}, b.Bounds())
}
