package canvas

import (
	"sync"
	"testing"
)

func TestPoolReuse(t *testing.T) {
	p := NewPool(2)
	c, err := p.Get(16, 8, ColorARGB8888)
	if err != nil {
		t.Fatal(err)
	}
	_ = c.SetPixel(1, 1, Red)
	c.SetOpacity(0.3)
	v := c.View()
	p.Put(c)
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}

	got, err := p.Get(16, 8, ColorARGB8888)
	if err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Error("Get did not reuse the pooled canvas")
	}
	if got.Pixel(1, 1) != Transparent || got.Opacity() != 1 {
		t.Error("reused canvas was not reset")
	}
	if !v.Stale() {
		t.Error("view taken before Put is not stale")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d after Get, want 0", p.Len())
	}
}

func TestPoolBuckets(t *testing.T) {
	p := NewPool(1)
	a, _ := New(4, 4)
	b, _ := New(4, 4)
	other, _ := New(4, 4, WithColorType(ColorRGB888))
	p.Put(a)
	p.Put(b) // over the bucket limit
	p.Put(other)
	p.Put(&Canvas{})
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	got, err := p.Get(4, 4, ColorRGB888)
	if err != nil {
		t.Fatal(err)
	}
	if got != other {
		t.Error("Get ignored the color type")
	}
}

func TestNilPool(t *testing.T) {
	var p *Pool
	c, err := p.Get(3, 3, ColorARGB8888)
	if err != nil || !c.IsValid() {
		t.Fatalf("nil pool Get = %v, %v", c, err)
	}
	p.Put(c)
	if p.Len() != 0 {
		t.Error("nil pool retained a canvas")
	}
	if _, err := p.Get(0, 3, ColorARGB8888); err == nil {
		t.Error("nil pool Get(0, 3) succeeded")
	}
}

func TestPoolConcurrent(t *testing.T) {
	p := NewPool(0)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				c, err := p.Get(8, 8, ColorARGB8888)
				if err != nil {
					t.Error(err)
					return
				}
				p.Put(c)
			}
		}()
	}
	wg.Wait()
	if p.Len() == 0 || p.Len() > 8 {
		t.Errorf("Len() = %d, want 1..8", p.Len())
	}
}
