package canvas

import "sync"

// Pool reuses scratch canvases between paint calls.
//
// Pool groups canvases by size and color type. A canvas taken from the
// pool is recreated, so it is zero-filled, has opacity 1 and any view
// taken before it was returned is stale.
//
// Thread safety: all methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Canvas
	maxSize int // max canvases per bucket
}

type poolKey struct {
	width     int
	height    int
	colorType ColorType
}

// NewPool creates a pool retaining at most maxPerBucket canvases of each
// size. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Canvas),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed canvas of the given size and type, reusing a
// pooled one when available. A nil pool always allocates.
func (p *Pool) Get(width, height int, t ColorType) (*Canvas, error) {
	if p != nil {
		key := poolKey{width: width, height: height, colorType: t}
		p.mu.Lock()
		bucket := p.buckets[key]
		if n := len(bucket); n > 0 {
			c := bucket[n-1]
			p.buckets[key] = bucket[:n-1]
			p.mu.Unlock()

			c.opacity = 1
			if err := c.Create(width, height); err != nil {
				return nil, err
			}
			Logger().Debug("canvas: pooled scratch reused", "w", width, "h", height)
			return c, nil
		}
		p.mu.Unlock()
	}
	return New(width, height, WithColorType(t))
}

// Put returns a canvas to the pool. Invalid canvases and canvases beyond
// the bucket limit are dropped. A nil pool drops everything.
func (p *Pool) Put(c *Canvas) {
	if p == nil || !c.IsValid() {
		return
	}
	key := poolKey{width: c.width, height: c.height, colorType: c.colorType}

	p.mu.Lock()
	defer p.mu.Unlock()
	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, c)
}

// Len returns the number of pooled canvases.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
