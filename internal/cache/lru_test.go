package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestLRUEvictsOldest(t *testing.T) {
	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	if _, ok := c.Get("a"); !ok { // a is now most recent
		t.Fatal("a missing")
	}
	c.Put("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v", v, ok)
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) = %d, %v", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLRUUpdateAndDelete(t *testing.T) {
	c := New[int, string](0)
	c.Put(1, "x")
	c.Put(1, "y")
	if v, _ := c.Get(1); v != "y" {
		t.Errorf("Get(1) = %q, want y", v)
	}
	if !c.Delete(1) || c.Delete(1) {
		t.Error("Delete reported wrong presence")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Delete", c.Len())
	}
}

func TestLRUOnEvict(t *testing.T) {
	c := New[int, int](1)
	var evicted []int
	c.OnEvict(func(k, _ int) { evicted = append(evicted, k) })
	c.Put(1, 1)
	c.Put(2, 2)
	c.Put(3, 3)
	c.Clear()
	want := []int{1, 2, 3}
	if len(evicted) != len(want) {
		t.Fatalf("evicted = %v, want %v", evicted, want)
	}
	for i := range want {
		if evicted[i] != want[i] {
			t.Fatalf("evicted = %v, want %v", evicted, want)
		}
	}
}

func TestLRUConcurrent(t *testing.T) {
	c := New[string, int](64)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				k := strconv.Itoa((g*31 + i) % 100)
				c.Put(k, i)
				c.Get(k)
			}
		}()
	}
	wg.Wait()
	if c.Len() > 64 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

func BenchmarkLRUGet(b *testing.B) {
	c := New[string, int](1000)
	for i := range 100 {
		c.Put(strconv.Itoa(i), i)
	}
	b.ResetTimer()
	for range b.N {
		c.Get("50")
	}
}
