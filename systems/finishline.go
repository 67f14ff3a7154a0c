package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/components"
	"github.com/automoto/cliffside/gamemath"
	"github.com/automoto/cliffside/tags"
)

// UpdateExit latches ReachedExit once a living, grounded player's box covers
// the exit point.
func UpdateExit(w donburi.World, exit gamemath.Vec2, hasExit bool) {
	if !hasExit {
		return
	}

	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		transform := components.Transform.Get(e)

		if !player.Alive || player.ReachedExit || !physics.OnGround {
			return
		}

		r := transform.Rect
		if exit.X >= r.X && exit.X <= r.Right() && exit.Y >= r.Y && exit.Y <= r.Bottom() {
			player.ReachedExit = true
		}
	})
}
