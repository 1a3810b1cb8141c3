package renderer

import "testing"

func TestNewTileGrid_CoversEverySampleOnce(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, tileSize int
		wantTiles               int
	}{
		{"exact fit", 64, 64, 32, 4},
		{"clipped edges", 70, 33, 32, 6},
		{"tile larger than image", 10, 10, 32, 1},
		{"single row", 5, 1, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.wantTiles {
				t.Errorf("expected %d tiles, got %d", tt.wantTiles, len(tiles))
			}

			covered := make([][]int, tt.height)
			for y := range covered {
				covered[y] = make([]int, tt.width)
			}
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("tile %d has ID %d", i, tile.ID)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y][x]++
					}
				}
			}

			for y := range covered {
				for x, n := range covered[y] {
					if n != 1 {
						t.Fatalf("sample (%d,%d) covered %d times", x, y, n)
					}
				}
			}
		})
	}
}
