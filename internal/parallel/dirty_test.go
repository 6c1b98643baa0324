package parallel

import (
	"sync"
	"testing"
)

func TestNewDirtyTiles(t *testing.T) {
	d := NewDirtyTiles(100, 50, 32, 32)
	if d == nil {
		t.Fatal("NewDirtyTiles returned nil")
	}
	if cols, rows := d.Grid(); cols != 4 || rows != 2 {
		t.Errorf("Grid() = %d, %d, want 4, 2", cols, rows)
	}
	if d.Count() != 0 {
		t.Error("new tracker is dirty")
	}
	for _, size := range [][4]int{{0, 10, 8, 8}, {10, 0, 8, 8}, {10, 10, 0, 8}, {10, 10, 8, -1}} {
		if NewDirtyTiles(size[0], size[1], size[2], size[3]) != nil {
			t.Errorf("NewDirtyTiles(%v) should be nil", size)
		}
	}
}

func TestDirtyTilesMarkRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       [][2]int
	}{
		{"single tile", 1, 1, 5, 5, [][2]int{{0, 0}}},
		{"straddles", 30, 30, 4, 4, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{"clipped left", -10, 40, 15, 5, [][2]int{{0, 1}}},
		{"clipped right", 90, 0, 100, 1, [][2]int{{2, 0}, {3, 0}}},
		{"outside", -20, -20, 5, 5, nil},
		{"empty", 10, 10, 0, 5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirtyTiles(100, 50, 32, 32)
			d.MarkRect(tt.x, tt.y, tt.w, tt.h)
			got := d.Take()
			if len(got) != len(tt.want) {
				t.Fatalf("Take() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Take() = %v, want %v", got, tt.want)
				}
			}
			if d.Count() != 0 {
				t.Error("Take did not clear")
			}
		})
	}
}

func TestDirtyTilesMarkAll(t *testing.T) {
	// 9x9 tiles spans two words.
	d := NewDirtyTiles(90, 90, 10, 10)
	d.MarkAll()
	if d.Count() != 81 {
		t.Errorf("Count() = %d, want 81", d.Count())
	}
	if !d.IsDirty(8, 8) || d.IsDirty(9, 0) || d.IsDirty(-1, 0) {
		t.Error("IsDirty wrong after MarkAll")
	}
	if len(d.Take()) != 81 {
		t.Error("Take did not return every tile")
	}
}

func TestDirtyTilesConcurrentMark(t *testing.T) {
	d := NewDirtyTiles(640, 640, 8, 8)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tx := range 80 {
				d.Mark(tx, g*10)
			}
		}()
	}
	wg.Wait()
	if d.Count() != 8*80 {
		t.Errorf("Count() = %d, want %d", d.Count(), 8*80)
	}
}
