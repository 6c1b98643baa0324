package parallel

import (
	"math/bits"
	"sync/atomic"
)

// DirtyTiles tracks which tiles of a pixel grid need repainting, one bit
// per tile in an atomic bitmap.
//
// Bit index = ty*cols + tx, 64 tiles per word. All methods are safe for
// concurrent use without external locking.
type DirtyTiles struct {
	words      []atomic.Uint64
	tileWidth  int
	tileHeight int
	cols       int
	rows       int
}

// NewDirtyTiles creates a clean tracker for a width x height pixel area
// split into tiles of tileWidth x tileHeight. It returns nil for
// non-positive sizes.
func NewDirtyTiles(width, height, tileWidth, tileHeight int) *DirtyTiles {
	if width <= 0 || height <= 0 || tileWidth <= 0 || tileHeight <= 0 {
		return nil
	}
	cols := (width + tileWidth - 1) / tileWidth
	rows := (height + tileHeight - 1) / tileHeight
	return &DirtyTiles{
		words:      make([]atomic.Uint64, (cols*rows+63)/64),
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		cols:       cols,
		rows:       rows,
	}
}

// Mark marks tile (tx, ty). Out-of-range tiles are ignored.
func (d *DirtyTiles) Mark(tx, ty int) {
	if tx < 0 || tx >= d.cols || ty < 0 || ty >= d.rows {
		return
	}
	idx := ty*d.cols + tx
	d.words[idx/64].Or(1 << (idx & 63))
}

// MarkRect marks every tile touched by the pixel rectangle at (x, y) of
// size w x h. Parts outside the grid are ignored.
func (d *DirtyTiles) MarkRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := max(x, 0)/d.tileWidth, max(y, 0)/d.tileHeight
	x1 := min((x+w-1)/d.tileWidth, d.cols-1)
	y1 := min((y+h-1)/d.tileHeight, d.rows-1)
	if x+w <= 0 || y+h <= 0 {
		return
	}
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			d.Mark(tx, ty)
		}
	}
}

// MarkAll marks every tile.
func (d *DirtyTiles) MarkAll() {
	n := d.cols * d.rows
	for i := range d.words {
		if left := n - i*64; left < 64 {
			d.words[i].Store(uint64(1)<<left - 1)
		} else {
			d.words[i].Store(^uint64(0))
		}
	}
}

// IsDirty reports whether tile (tx, ty) is marked.
func (d *DirtyTiles) IsDirty(tx, ty int) bool {
	if tx < 0 || tx >= d.cols || ty < 0 || ty >= d.rows {
		return false
	}
	idx := ty*d.cols + tx
	return d.words[idx/64].Load()&(1<<(idx&63)) != 0
}

// Count returns the number of marked tiles.
func (d *DirtyTiles) Count() int {
	n := 0
	for i := range d.words {
		n += bits.OnesCount64(d.words[i].Load())
	}
	return n
}

// Take returns the marked tiles as [tx, ty] pairs in row-major order and
// clears them atomically, word by word.
func (d *DirtyTiles) Take() [][2]int {
	var out [][2]int
	for wi := range d.words {
		word := d.words[wi].Swap(0)
		for word != 0 {
			b := bits.TrailingZeros64(word)
			idx := wi*64 + b
			out = append(out, [2]int{idx % d.cols, idx / d.cols})
			word &^= 1 << b
		}
	}
	return out
}

// TileSize returns the tile size in pixels.
func (d *DirtyTiles) TileSize() (int, int) {
	return d.tileWidth, d.tileHeight
}

// Grid returns the number of tile columns and rows.
func (d *DirtyTiles) Grid() (int, int) {
	return d.cols, d.rows
}
