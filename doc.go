// Package canvas is a 2-D raster compositing engine.
//
// # Overview
//
// The package provides pixel buffers ([Canvas]), zero-copy rectangular
// views into them ([View]), integer rectangle algebra ([Rect], [Overlap],
// [ClipToBounds], [CutArea]) and the compositing primitives every paint
// operation is built from ([Blend], [Replace], [Fill], [FillBlend],
// [Clear], [BlendMask]).
//
// Sub-packages build on these:
//   - resample: nearest, bilinear and Catmull-Rom scaling
//   - border: anti-aliased rounded-rectangle borders and content cropping
//   - shadow: blurred box shadows
//   - glyph: stamping rasterized text through a color
//   - scene: YAML scenes of styled boxes rendered tile by tile
//
// # Quick Start
//
//	c, err := canvas.New(200, 100)
//	if err != nil {
//	    return err
//	}
//	v := c.View()
//	_ = canvas.Fill(v, canvas.White, true)
//
//	// Paint a red square through a sub-view.
//	sq := v.Quote(&canvas.Rect{X: 10, Y: 10, Width: 30, Height: 30})
//	_ = canvas.Fill(sq, canvas.Red, true)
//
// # Pixel Layout
//
// ColorARGB8888 canvases store each pixel as the bytes B, G, R, A, rows
// top to bottom with no padding. Colors are not premultiplied.
//
// # Views
//
// A view never owns memory. Views carry the generation of the canvas they
// were taken from; after the canvas is freed or recreated they report
// [ErrStaleView] instead of reading reallocated memory. Read-only views may
// be composited from but never written through.
//
// # Concurrency
//
// Canvases and views hold no locks. Concurrent calls are safe if and only if the
// bytes they write do not overlap; [TilePainter] partitions a view into
// disjoint tiles to make that easy.
//
// # Empty Regions
//
// Any operation whose rectangle is empty after clipping succeeds without
// drawing anything.
package canvas
