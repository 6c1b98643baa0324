package canvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/canvas/internal/parallel"
)

// TilePainter runs a paint function over disjoint tiles of a destination
// view on a pool of worker goroutines.
//
// Every tile is a separate writable quote of the destination, and tiles
// never overlap, which is the one condition under which concurrent
// painting into a canvas is safe. The paint function must only write
// through the view it is given.
type TilePainter struct {
	pool *parallel.WorkerPool
}

// NewTilePainter starts a painter with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewTilePainter(workers int) *TilePainter {
	return &TilePainter{pool: parallel.NewWorkerPool(workers)}
}

// Workers returns the number of worker goroutines.
func (tp *TilePainter) Workers() int {
	return tp.pool.Workers()
}

// Close stops the workers.
func (tp *TilePainter) Close() {
	tp.pool.Close()
}

// Paint splits dst into tiles of at most tileWidth x tileHeight and calls
// fn once per tile, concurrently. Each PaintContext's Rect is the tile in
// dst coordinates. Errors from all tiles are joined.
func (tp *TilePainter) Paint(dst *View, tileWidth, tileHeight int, fn func(*PaintContext) error) error {
	ok, err := dst.check(true)
	if err != nil || !ok {
		return err
	}
	tiles := Rect{Width: dst.Width(), Height: dst.Height()}.Split(tileWidth, tileHeight)
	return tp.run(dst, tiles, fn)
}

// DirtyTiles is a concurrent set of tiles awaiting repaint.
type DirtyTiles = parallel.DirtyTiles

// NewDirtyTiles returns a clean set for a width x height area split into
// tileWidth x tileHeight tiles, or nil for non-positive sizes.
func NewDirtyTiles(width, height, tileWidth, tileHeight int) *DirtyTiles {
	return parallel.NewDirtyTiles(width, height, tileWidth, tileHeight)
}

// PaintDirty is Paint restricted to the tiles marked in dirty, which is
// cleared. The tile size comes from dirty; tiles outside dst are skipped.
func (tp *TilePainter) PaintDirty(dst *View, dirty *DirtyTiles, fn func(*PaintContext) error) error {
	ok, err := dst.check(true)
	if err != nil || !ok || dirty == nil {
		return err
	}
	tw, th := dirty.TileSize()
	bounds := Rect{Width: dst.Width(), Height: dst.Height()}
	var tiles []Rect
	for _, t := range dirty.Take() {
		r, ok := Overlap(Rect{X: t[0] * tw, Y: t[1] * th, Width: tw, Height: th}, bounds)
		if ok {
			tiles = append(tiles, r)
		}
	}
	return tp.run(dst, tiles, fn)
}

func (tp *TilePainter) run(dst *View, tiles []Rect, fn func(*PaintContext) error) error {
	errs := make([]error, len(tiles))
	jobs := make([]func(), len(tiles))
	for i, tile := range tiles {
		jobs[i] = func() {
			ctx := &PaintContext{Rect: tile, Canvas: dst.Quote(&tile), WithAlpha: true}
			if err := fn(ctx); err != nil {
				Logger().Warn("canvas: tile paint failed", "tile", tile, "err", err)
				errs[i] = fmt.Errorf("tile %v: %w", tile, err)
			}
		}
	}
	tp.pool.ExecuteAll(jobs)
	return errors.Join(errs...)
}

// PaintTiles is a one-shot TilePainter.Paint on a temporary pool.
func PaintTiles(dst *View, tileWidth, tileHeight int, fn func(*PaintContext) error) error {
	tp := NewTilePainter(0)
	defer tp.Close()
	return tp.Paint(dst, tileWidth, tileHeight, fn)
}
