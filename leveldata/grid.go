// Package leveldata provides the tile collision grid and TMX level parsing.
// It has no dependencies on the ECS or simulation packages — pure data only.
package leveldata

import (
	"fmt"

	"github.com/automoto/cliffside/gamemath"
)

// Default tile dimensions in world units. TMX maps override these with their
// own tile size.
const (
	TileWidth  = 40.0
	TileHeight = 32.0
)

// TileCollision classifies how a tile interacts with character movement.
// The set is closed: every consumer switches exhaustively over these three.
type TileCollision uint8

const (
	// Passable tiles do not hinder motion at all.
	Passable TileCollision = iota

	// Impassable tiles are completely solid on all sides.
	Impassable

	// Platform tiles are solid only to downward motion from above. A
	// character can jump up through one and walk past it sideways, but
	// cannot fall down through its top.
	Platform
)

func (c TileCollision) String() string {
	switch c {
	case Passable:
		return "passable"
	case Impassable:
		return "impassable"
	case Platform:
		return "platform"
	default:
		return fmt.Sprintf("TileCollision(%d)", uint8(c))
	}
}

// Grid is a rectangular array of tile collision classifications. Created
// once at level load and read-only afterwards; lookups are O(1) and
// allocation-free.
type Grid struct {
	width  int
	height int
	tileW  float64
	tileH  float64
	tiles  []TileCollision
}

// NewGrid returns a Grid of the given dimensions in tiles, all Passable,
// using the default tile size.
func NewGrid(width, height int) *Grid {
	return newGridSized(width, height, TileWidth, TileHeight)
}

func newGridSized(width, height int, tileW, tileH float64) *Grid {
	return &Grid{
		width:  width,
		height: height,
		tileW:  tileW,
		tileH:  tileH,
		tiles:  make([]TileCollision, width*height),
	}
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// TileSize returns the tile dimensions in world units.
func (g *Grid) TileSize() (w, h float64) { return g.tileW, g.tileH }

// Set stores a classification at valid tile coordinates. It is used only
// during level construction; the grid is immutable once the level is live.
func (g *Grid) Set(x, y int, c TileCollision) {
	g.tiles[y*g.width+x] = c
}

// Classify returns the collision classification of the tile at (x, y).
// Coordinates above or below the grid are Passable so that jumping over the
// top or falling out of the bottom never collides; coordinates past the left
// or right edge are Impassable so that the world edges block movement.
func (g *Grid) Classify(x, y int) TileCollision {
	if y < 0 || y >= g.height {
		return Passable
	}
	if x < 0 || x >= g.width {
		return Impassable
	}
	return g.tiles[y*g.width+x]
}

// TileBounds returns the world-space box covered by the tile at (x, y). The
// coordinates need not be inside the grid.
func (g *Grid) TileBounds(x, y int) gamemath.Rect {
	return gamemath.Rect{
		X: float64(x) * g.tileW,
		Y: float64(y) * g.tileH,
		W: g.tileW,
		H: g.tileH,
	}
}

// Bounds returns the playable region of the grid in world units.
func (g *Grid) Bounds() gamemath.Rect {
	return gamemath.Rect{
		W: float64(g.width) * g.tileW,
		H: float64(g.height) * g.tileH,
	}
}

// ParseRows builds a Grid from compact text rows: '.' passable, 'X' or '#'
// impassable, '-' platform. All rows must have equal length. Used by tests
// and the built-in demo level.
func ParseRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("parse rows: empty grid")
	}

	grid := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != grid.width {
			return nil, fmt.Errorf("parse rows: row %d has %d tiles, want %d", y, len(row), grid.width)
		}
		for x, ch := range row {
			switch ch {
			case '.':
				// Passable is the zero value.
			case 'X', '#':
				grid.Set(x, y, Impassable)
			case '-':
				grid.Set(x, y, Platform)
			default:
				return nil, fmt.Errorf("parse rows: unknown tile %q at %d,%d", ch, x, y)
			}
		}
	}
	return grid, nil
}
