package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/components"
	cfg "github.com/automoto/cliffside/config"
	"github.com/automoto/cliffside/tags"
)

// UpdateState derives the pose label from the resolved physics outcome. It
// runs after collision resolution so the grounded flag is this frame's.
func UpdateState(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		in := components.Input.Get(e)
		state := components.State.Get(e)

		moveX := 0.0
		if in.Left && !in.Right {
			moveX = cfg.DirectionLeft
		} else if in.Right && !in.Left {
			moveX = cfg.DirectionRight
		}

		next := derivePose(player, physics, moveX, in.Down)

		state.PreviousState = state.CurrentState
		state.CurrentState = next
	})
}

// derivePose is a pure function of the physics outcome. Die and Celebrate
// latch via the player flags and win over movement poses.
func derivePose(player *components.PlayerData, physics *components.PhysicsData, moveX float64, downHeld bool) cfg.StateID {
	switch {
	case !player.Alive:
		return cfg.Die
	case player.ReachedExit:
		return cfg.Celebrate
	case !physics.OnGround:
		return cfg.Jump
	case moveX != 0:
		return cfg.Walk
	case downHeld:
		return cfg.Crouch
	default:
		return cfg.Idle
	}
}
