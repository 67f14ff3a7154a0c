package systems

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/components"
	cfg "github.com/automoto/cliffside/config"
	"github.com/automoto/cliffside/gamemath"
)

// UpdatePhysics integrates input intent, gravity, the jump window and drag
// into velocity, then advances the bounding box to its tentative position.
// UpdateCollisions corrects that position afterwards.
func UpdatePhysics(w donburi.World, dt float64) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		transform := components.Transform.Get(e)
		in := components.Input.Get(e)

		moveX := 0.0
		if in.Left && !in.Right {
			moveX = cfg.DirectionLeft
		} else if in.Right && !in.Left {
			moveX = cfg.DirectionRight
		}
		jumpHeld := in.Up

		// A dead or celebrating character no longer takes input; gravity
		// still applies so it settles naturally.
		var player *components.PlayerData
		if e.HasComponent(components.Player) {
			player = components.Player.Get(e)
			if !player.Alive || player.ReachedExit {
				moveX = 0
				jumpHeld = false
			}
		}

		physics.SpeedX += moveX * cfg.Player.MoveAccel * dt
		physics.SpeedY = gamemath.Clamp(
			physics.SpeedY+cfg.Physics.Gravity*dt,
			-cfg.Physics.MaxFallSpeed, cfg.Physics.MaxFallSpeed)

		physics.SpeedY = applyJump(physics, jumpHeld, dt)

		// Drag reads the previous frame's grounded flag; collision
		// resolution has not recomputed it yet.
		if physics.OnGround {
			physics.SpeedX *= cfg.Player.GroundDrag
		} else {
			physics.SpeedX *= cfg.Player.AirDrag
		}
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, cfg.Player.MaxSpeed)

		physics.OldX = transform.Rect.X
		physics.OldY = transform.Rect.Y
		transform.Rect.X += physics.SpeedX * dt
		transform.Rect.Y += physics.SpeedY * dt

		if moveX != 0 && player != nil {
			player.FacingX = moveX
		}
	})
}

// applyJump returns the vertical speed after jump handling. While the jump
// input is held and the character either just left the ground or has an
// active jump timer, the timer accumulates and vertical speed is overridden
// with an impulse that decays as the hold window is exhausted. Releasing the
// input or exhausting the window resets the timer.
func applyJump(p *components.PhysicsData, jumpHeld bool, dt float64) float64 {
	speedY := p.SpeedY

	if jumpHeld {
		if (!p.WasJumping && p.OnGround) || p.JumpTime > 0 {
			p.JumpTime += dt
		}

		if 0 < p.JumpTime && p.JumpTime <= cfg.Player.MaxJumpTime {
			speedY = cfg.Player.JumpLaunchVel *
				(1 - math.Pow(p.JumpTime/cfg.Player.MaxJumpTime, cfg.Player.JumpPower))
		} else {
			p.JumpTime = 0
		}
	} else {
		p.JumpTime = 0
	}
	p.WasJumping = jumpHeld

	return speedY
}
