package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/config"
)

// StateData is the derived pose label consumed by the render collaborator.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
}

var State = donburi.NewComponentType[StateData]()
