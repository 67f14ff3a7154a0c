package systems

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/components"
	"github.com/automoto/cliffside/gamemath"
	"github.com/automoto/cliffside/leveldata"
)

// UpdateCollisions resolves each character's tentative position against the
// tile grid, recomputes the grounded flag, and zeroes velocity on axes that
// ended up fully blocked.
func UpdateCollisions(w donburi.World, grid *leveldata.Grid) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		transform := components.Transform.Get(e)

		resolveTileCollisions(physics, &transform.Rect, grid)

		// An axis whose resolved position matches the pre-move position
		// was fully blocked; zero its speed so no energy builds up
		// against a wall or floor.
		if transform.Rect.X == physics.OldX {
			physics.SpeedX = 0
		}
		if transform.Rect.Y == physics.OldY {
			physics.SpeedY = 0
		}
	})
}

// resolveTileCollisions walks the tile footprint of bounds in row-major
// order and pushes the box out of every colliding tile. bounds is corrected
// in place so later tiles in the same pass test against the already-adjusted
// box; earlier tiles are never re-validated.
func resolveTileCollisions(p *components.PhysicsData, bounds *gamemath.Rect, grid *leveldata.Grid) {
	tileW, tileH := grid.TileSize()
	leftTile := int(math.Floor(bounds.X / tileW))
	rightTile := int(math.Ceil(bounds.Right()/tileW)) - 1
	topTile := int(math.Floor(bounds.Y / tileH))
	bottomTile := int(math.Ceil(bounds.Bottom()/tileH)) - 1

	// Grounded is never carried over from the previous frame.
	p.OnGround = false

	for y := topTile; y <= bottomTile; y++ {
		for x := leftTile; x <= rightTile; x++ {
			collision := grid.Classify(x, y)
			if collision == leveldata.Passable {
				continue
			}

			tileBounds := grid.TileBounds(x, y)
			depth, ok := bounds.IntersectionDepth(tileBounds)
			if !ok {
				continue
			}

			absX := math.Abs(depth.X)
			absY := math.Abs(depth.Y)

			if absY < absX || collision == leveldata.Platform {
				// Landing only counts when the previous frame's bottom
				// edge was at or above the tile top; a box that was
				// already inside the tile from the side or below passes
				// through a platform untouched.
				if p.PreviousBottom <= tileBounds.Y {
					p.OnGround = true
				}

				if collision == leveldata.Impassable || p.OnGround {
					bounds.Y += depth.Y
				}
			} else if collision == leveldata.Impassable {
				bounds.X += depth.X
			}
		}
	}

	p.PreviousBottom = bounds.Bottom()
}
