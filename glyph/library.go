package glyph

import (
	"errors"
	"sync"

	"golang.org/x/image/font"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/cache"
)

// DefaultName is the name under which every Library registers
// DefaultFace.
const DefaultName = "default"

type maskKey struct {
	face string
	text string
}

// Library is a registry of named faces with a cache of rasterized masks.
//
// Create one with NewLibrary, pass it to whatever draws text and Close it
// when done. All methods are safe for concurrent use; rasterization is
// serialized because font faces are not.
type Library struct {
	mu    sync.Mutex
	faces map[string]font.Face
	masks *cache.LRU[maskKey, *Mask]
}

// NewLibrary creates a library caching up to maskCacheSize masks.
func NewLibrary(maskCacheSize int) *Library {
	return &Library{
		faces: map[string]font.Face{DefaultName: DefaultFace()},
		masks: cache.New[maskKey, *Mask](maskCacheSize),
	}
}

// Register adds or replaces the face called name and drops every cached
// mask.
func (l *Library) Register(name string, face font.Face) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.faces[name] = face
	l.masks.Clear()
}

// LoadFont parses TrueType data and registers it as name at size pixels.
func (l *Library) LoadFont(name string, data []byte, size float64) error {
	face, err := ParseFace(data, size)
	if err != nil {
		return err
	}
	l.Register(name, face)
	canvas.Logger().Debug("glyph: font registered", "name", name, "size", size)
	return nil
}

// Face returns the face called name.
func (l *Library) Face(name string) (font.Face, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, ok := l.faces[name]
	return f, ok
}

// Mask returns s rasterized with the face called name, from the cache
// when possible. An empty name selects the default face.
func (l *Library) Mask(name, s string) (*Mask, error) {
	if name == "" {
		name = DefaultName
	}
	key := maskKey{face: name, text: s}
	if m, ok := l.masks.Get(key); ok {
		return m, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	face, ok := l.faces[name]
	if !ok {
		return nil, ErrNoFace
	}
	// Stored under mu: a mask never outlives a Register of its face.
	m := Rasterize(face, s)
	l.masks.Put(key, m)
	return m, nil
}

// Draw rasterizes s with the face called name and stamps it into dst at
// (x, y).
func (l *Library) Draw(dst *canvas.View, name, s string, x, y int, c canvas.Color) error {
	m, err := l.Mask(name, s)
	if err != nil {
		return err
	}
	return Draw(dst, m, x, y, c)
}

// CachedMasks returns the number of cached masks.
func (l *Library) CachedMasks() int {
	return l.masks.Len()
}

// Close releases every registered face and the mask cache.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var errs []error
	for name, f := range l.faces {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(l.faces, name)
	}
	l.masks.Clear()
	return errors.Join(errs...)
}
