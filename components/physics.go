package components

import "github.com/yohamta/donburi"

// PhysicsData holds per-character movement state mutated every frame.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64

	// OnGround is recomputed from scratch by collision resolution each
	// frame; during velocity integration it still holds the previous
	// frame's value, which is what drag and jump eligibility read.
	OnGround bool

	// Jump hold window state.
	JumpTime   float64
	WasJumping bool

	// Bottom edge of the bounding box at the end of the previous frame.
	// Disambiguates landing on a platform from already overlapping it.
	PreviousBottom float64

	// Position before this frame's tentative move; collision resolution
	// compares against it to zero velocity on fully blocked axes.
	OldX float64
	OldY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
