package scene

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/border"
	"github.com/gogpu/canvas/glyph"
	"github.com/gogpu/canvas/internal/cache"
	"github.com/gogpu/canvas/shadow"
)

// DefaultTileSize is the edge length of a render tile in pixels.
const DefaultTileSize = 64

// Renderer paints scenes into a frame canvas tile by tile on a worker
// pool.
//
// The renderer supports:
//   - Full scene rendering (all tiles)
//   - Incremental rendering (dirty tiles only)
//   - A cache of decoded and zoomed images
//   - Performance statistics collection
//
// Render and RenderDirty must not be called concurrently with each other;
// Invalidate and Stats are safe from any goroutine.
type Renderer struct {
	width    int
	height   int
	tileSize int
	workers  int

	painter *canvas.TilePainter
	dirty   *canvas.DirtyTiles
	pool    *canvas.Pool
	shadows *shadow.Painter

	fonts     *glyph.Library
	ownFonts  bool
	loadedMu  sync.Mutex
	loaded    map[string]Font
	images    *cache.LRU[imageKey, *canvas.Canvas]
	imageSize int

	stats   RenderStats
	statsMu sync.RWMutex
}

// RenderStats contains statistics for the last render.
type RenderStats struct {
	TilesTotal    int
	TilesRendered int
	Boxes         int

	TimePrepare time.Duration
	TimePaint   time.Duration
	TimeTotal   time.Duration
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithWorkers sets the number of worker goroutines for parallel rendering.
// If n <= 0, GOMAXPROCS is used.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) {
		r.workers = n
	}
}

// WithTileSize sets the tile edge length. Sizes below 1 keep the default.
func WithTileSize(size int) RendererOption {
	return func(r *Renderer) {
		if size > 0 {
			r.tileSize = size
		}
	}
}

// WithFonts renders text with lib instead of a private library. The
// renderer registers scene fonts into it but does not close it.
func WithFonts(lib *glyph.Library) RendererOption {
	return func(r *Renderer) {
		r.fonts = lib
	}
}

// WithPool draws scratch layers from p.
func WithPool(p *canvas.Pool) RendererOption {
	return func(r *Renderer) {
		r.pool = p
	}
}

// WithImageCache sets how many zoomed images stay cached. Default is 32.
func WithImageCache(n int) RendererOption {
	return func(r *Renderer) {
		r.imageSize = n
	}
}

// NewRenderer creates a renderer for width x height frames. It returns nil
// for non-positive sizes.
func NewRenderer(width, height int, opts ...RendererOption) *Renderer {
	if width <= 0 || height <= 0 {
		return nil
	}
	r := &Renderer{
		width:     width,
		height:    height,
		tileSize:  DefaultTileSize,
		imageSize: 32,
		loaded:    make(map[string]Font),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fonts == nil {
		r.fonts = glyph.NewLibrary(256)
		r.ownFonts = true
	}
	if r.pool == nil {
		r.pool = canvas.NewPool(4)
	}
	r.images = cache.New[imageKey, *canvas.Canvas](r.imageSize)
	r.shadows = &shadow.Painter{Pool: r.pool}
	r.painter = canvas.NewTilePainter(r.workers)
	r.dirty = canvas.NewDirtyTiles(width, height, r.tileSize, r.tileSize)
	r.dirty.MarkAll()
	return r
}

// Width returns the frame width.
func (r *Renderer) Width() int { return r.width }

// Height returns the frame height.
func (r *Renderer) Height() int { return r.height }

// TileCount returns the number of tiles in a frame.
func (r *Renderer) TileCount() int {
	cols, rows := r.dirty.Grid()
	return cols * rows
}

// NewFrame allocates a frame canvas of the renderer's size.
func (r *Renderer) NewFrame() (*canvas.Canvas, error) {
	return canvas.New(r.width, r.height)
}

// Invalidate marks the tiles under rect, in frame pixels, for the next
// RenderDirty.
func (r *Renderer) Invalidate(rect canvas.Rect) {
	r.dirty.MarkRect(rect.X, rect.Y, rect.Width, rect.Height)
}

// InvalidateBox marks everything b paints, shadow included.
func (r *Renderer) InvalidateBox(b *Box) {
	r.Invalidate(b.Bounds())
}

// Render paints the whole scene into target.
//
// The context can be used to cancel long renders. When canceled, the
// function returns ctx.Err() and target may contain partial results.
func (r *Renderer) Render(ctx context.Context, target *canvas.Canvas, s *Scene) error {
	r.dirty.MarkAll()
	return r.RenderDirty(ctx, target, s)
}

// RenderDirty repaints the tiles marked since the last render. A new
// renderer starts with every tile marked. s is validated first, so scenes
// built in code get the same errors as loaded ones.
func (r *Renderer) RenderDirty(ctx context.Context, target *canvas.Canvas, s *Scene) error {
	if target == nil || s == nil {
		return nil
	}
	if target.Width() != r.width || target.Height() != r.height {
		return fmt.Errorf("scene: target %dx%d, renderer %dx%d: %w",
			target.Width(), target.Height(), r.width, r.height, canvas.ErrInvalidSize)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	startTotal := time.Now()
	f, err := r.prepare(s)
	if err != nil {
		return err
	}
	prepareTime := time.Since(startTotal)

	var rendered int
	var mu sync.Mutex
	startPaint := time.Now()
	err = r.painter.PaintDirty(target.View(), r.dirty, func(pc *canvas.PaintContext) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		mu.Lock()
		rendered++
		mu.Unlock()
		return r.paintTile(f, pc)
	})
	paintTime := time.Since(startPaint)
	if ctxErr := ctx.Err(); ctxErr != nil {
		// Tiles were taken but may not have been painted.
		r.dirty.MarkAll()
		return ctxErr
	}

	r.statsMu.Lock()
	r.stats = RenderStats{
		TilesTotal:    r.TileCount(),
		TilesRendered: rendered,
		Boxes:         len(f.items),
		TimePrepare:   prepareTime,
		TimePaint:     paintTime,
		TimeTotal:     time.Since(startTotal),
	}
	r.statsMu.Unlock()
	canvas.Logger().Debug("scene: rendered", "tiles", rendered, "boxes", len(f.items), "took", time.Since(startTotal))
	return err
}

// Stats returns statistics for the last render.
func (r *Renderer) Stats() RenderStats {
	r.statsMu.RLock()
	defer r.statsMu.RUnlock()
	return r.stats
}

// Close stops the workers and releases the private font library.
func (r *Renderer) Close() error {
	r.painter.Close()
	r.images.Clear()
	if r.ownFonts {
		return r.fonts.Close()
	}
	return nil
}

// frame is a scene resolved into paintable items.
type frame struct {
	background canvas.Color
	items      []item
}

type item struct {
	rect       canvas.Rect
	background canvas.Color
	border     border.Border
	shadow     shadow.BoxShadow
	text       *Text
	textColor  canvas.Color
	image      *canvas.Canvas
}

// prepare resolves colors, loads fonts and decodes images.
func (r *Renderer) prepare(s *Scene) (*frame, error) {
	if err := r.loadFonts(s); err != nil {
		return nil, err
	}
	f := &frame{
		background: mustColor(s.Background),
		items:      make([]item, 0, len(s.Boxes)),
	}
	var errs []error
	for i := range s.Boxes {
		b := &s.Boxes[i]
		it := item{
			rect:       b.Rect.Canvas(),
			background: mustColor(b.Background),
			border:     b.border(),
			text:       b.Text,
		}
		it.shadow = b.boxShadow(it.border)
		if b.Text != nil {
			it.textColor = canvas.Black
			if b.Text.Color != "" {
				it.textColor = mustColor(b.Text.Color)
			}
		}
		if b.Image != nil {
			content := it.border.ContentRect(canvas.Rect{Width: it.rect.Width, Height: it.rect.Height})
			img, err := r.image(s, b.Image, content.Width, content.Height)
			if err != nil {
				errs = append(errs, fmt.Errorf("boxes[%d]: %w", i, err))
			}
			it.image = img
		}
		f.items = append(f.items, it)
	}
	return f, errors.Join(errs...)
}

// loadFonts registers scene fonts not registered yet.
func (r *Renderer) loadFonts(s *Scene) error {
	r.loadedMu.Lock()
	defer r.loadedMu.Unlock()
	for _, font := range s.Fonts {
		if prev, ok := r.loaded[font.Name]; ok && prev == font {
			continue
		}
		if err := r.loadFont(s, font); err != nil {
			return fmt.Errorf("scene: font %q: %w", font.Name, err)
		}
		r.loaded[font.Name] = font
	}
	return nil
}

func (r *Renderer) loadFont(s *Scene, font Font) error {
	if font.Path == "" {
		face, err := glyph.NewFace(font.Size)
		if err != nil {
			return err
		}
		r.fonts.Register(font.Name, face)
		return nil
	}
	data, err := readFile(s.path(font.Path))
	if err != nil {
		return err
	}
	return r.fonts.LoadFont(font.Name, data, font.Size)
}

// paintTile paints the frame background, then each box with its shadow.
func (r *Renderer) paintTile(f *frame, pc *canvas.PaintContext) error {
	if err := canvas.Fill(pc.Canvas, f.background, true); err != nil {
		return err
	}
	for i := range f.items {
		it := &f.items[i]
		if err := r.shadows.Paint(it.shadow, it.rect, pc); err != nil {
			return fmt.Errorf("box %d shadow: %w", i, err)
		}
		if err := r.paintBox(it, pc); err != nil {
			return fmt.Errorf("box %d: %w", i, err)
		}
	}
	return nil
}

// paintBox renders the visible part of a box on a scratch layer and
// blends it onto the tile.
func (r *Renderer) paintBox(it *item, pc *canvas.PaintContext) error {
	visible, ok := canvas.Overlap(it.rect, pc.Rect)
	if !ok {
		return nil
	}
	layer, err := r.pool.Get(visible.Width, visible.Height, canvas.ColorARGB8888)
	if err != nil {
		return err
	}
	defer r.pool.Put(layer)

	lv := layer.View()
	box := canvas.Rect{Width: it.rect.Width, Height: it.rect.Height}
	lctx := &canvas.PaintContext{
		Rect:      visible.Translate(-it.rect.X, -it.rect.Y),
		Canvas:    lv,
		WithAlpha: true,
	}
	content := it.border.ContentRect(box)

	if it.background.A > 0 {
		if err := canvas.Fill(lv, it.background, true); err != nil {
			return err
		}
	}
	if it.image != nil {
		x := content.X + (content.Width-it.image.Width())/2
		y := content.Y + (content.Height-it.image.Height())/2
		x, y = lctx.ToLocal(x, y)
		if err := canvas.Blend(lv, it.image.QuoteReadOnly(nil), x, y); err != nil {
			return err
		}
	}
	if t := it.text; t != nil && t.Value != "" {
		x, y := lctx.ToLocal(content.X+t.X, content.Y+t.Y)
		if err := r.fonts.Draw(lv, t.Font, t.Value, x, y, it.textColor); err != nil {
			return err
		}
	}
	if !it.border.IsZero() {
		if err := border.CropContent(it.border, box, lctx); err != nil {
			return err
		}
		if err := border.Paint(it.border, box, lctx); err != nil {
			return err
		}
	}

	x, y := pc.ToLocal(visible.X, visible.Y)
	return canvas.Blend(pc.Canvas, layer.QuoteReadOnly(nil), x, y)
}
