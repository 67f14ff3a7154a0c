package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/components"
)

// ApplyInput copies the external input collaborator's per-frame snapshot
// into every Input component.
func ApplyInput(w donburi.World, in components.InputData) {
	components.Input.Each(w, func(e *donburi.Entry) {
		*components.Input.Get(e) = in
	})
}
