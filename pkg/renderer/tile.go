package renderer

import "image"

// Tile is a rectangular region of the sample grid rendered by one worker
type Tile struct {
	ID     int             // Position in row-major tile order
	Bounds image.Rectangle // Sample bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering a width x height sample grid
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Edge tiles are clipped to the grid
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}
