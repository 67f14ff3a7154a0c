package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/gamemath"
)

// TransformData is the character's world-space bounding box. Only the
// position changes at runtime; the size is fixed at spawn.
type TransformData struct {
	Rect gamemath.Rect
}

var Transform = donburi.NewComponentType[TransformData]()
