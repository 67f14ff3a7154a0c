package components

import "github.com/yohamta/donburi"

// PlayerData holds run-level character flags.
type PlayerData struct {
	// FacingX is config.DirectionLeft or config.DirectionRight; it keeps
	// its last value while idle so the sprite doesn't flip.
	FacingX float64

	// Alive is cleared when the character falls out of the world. A dead
	// character keeps falling but no longer takes input.
	Alive bool

	// ReachedExit latches when the bounding box touches the level exit.
	ReachedExit bool

	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
