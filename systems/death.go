package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/components"
	"github.com/automoto/cliffside/gamemath"
	"github.com/automoto/cliffside/tags"
)

// UpdateDeath kills the player once its box has fallen fully below the
// playable region. Tiles below the grid are Passable, so this is the only
// thing that ends a fall off the bottom.
func UpdateDeath(w donburi.World, levelBounds gamemath.Rect) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.Alive {
			return
		}

		transform := components.Transform.Get(e)
		if transform.Rect.Y > levelBounds.Bottom() {
			player.Alive = false
		}
	})
}
