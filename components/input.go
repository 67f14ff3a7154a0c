package components

import "github.com/yohamta/donburi"

// InputData is this frame's snapshot of held directional and jump flags,
// supplied by the external input collaborator.
type InputData struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

var Input = donburi.NewComponentType[InputData]()
