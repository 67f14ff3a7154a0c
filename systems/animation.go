package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/components"
)

// UpdateAnimation advances the active pose's clock. Only the active clock
// accumulates time; every other pose stays frozen at its own phase.
func UpdateAnimation(w donburi.World, dt float64) {
	components.Animation.Each(w, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		state := components.State.Get(e)

		anim.SetState(state.CurrentState)
		if clip, ok := anim.Clips[anim.Current]; ok {
			clip.AddTime(dt)
		}
	})
}
