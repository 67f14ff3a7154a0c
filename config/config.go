// Package config holds all gameplay tuning values. Defaults are Go struct
// literals set in init; an optional YAML file overrides them at startup or,
// with the watcher, between frames.
package config

import "fmt"

// PlayerConfig contains all player movement tuning values.
type PlayerConfig struct {
	// Horizontal movement
	MoveAccel  float64 `yaml:"moveAccel"`  // world units/s^2 while input held
	MaxSpeed   float64 `yaml:"maxSpeed"`   // horizontal speed clamp
	GroundDrag float64 `yaml:"groundDrag"` // per-frame velocity multiplier on ground
	AirDrag    float64 `yaml:"airDrag"`    // per-frame velocity multiplier airborne

	// Jump. JumpLaunchVel is negative (up). While the jump is held for
	// 0 < t <= MaxJumpTime, vertical velocity is overridden to
	// JumpLaunchVel * (1 - (t/MaxJumpTime)^JumpPower).
	JumpLaunchVel float64 `yaml:"jumpLaunchVel"`
	MaxJumpTime   float64 `yaml:"maxJumpTime"`
	JumpPower     float64 `yaml:"jumpPower"`

	// Bounding box dimensions; fixed for the lifetime of the character.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig contains global physics tuning values.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`      // world units/s^2, down
	MaxFallSpeed float64 `yaml:"maxFallSpeed"` // vertical speed clamp magnitude
}

// AnimationDef describes one pose's frame set.
type AnimationDef struct {
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
}

var (
	Player     PlayerConfig
	Physics    PhysicsConfig
	Animations map[StateID]AnimationDef
)

func init() {
	Player = PlayerConfig{
		MoveAccel:  13000.0,
		MaxSpeed:   1750.0,
		GroundDrag: 0.48,
		AirDrag:    0.58,

		JumpLaunchVel: -3500.0,
		MaxJumpTime:   0.35,
		JumpPower:     0.14,

		Width:  32.0,
		Height: 48.0,
	}

	Physics = PhysicsConfig{
		Gravity:      3400.0,
		MaxFallSpeed: 550.0,
	}

	Animations = map[StateID]AnimationDef{
		Idle:      {Frames: 1, FPS: 1},
		Walk:      {Frames: 10, FPS: 10},
		Jump:      {Frames: 11, FPS: 10},
		Crouch:    {Frames: 1, FPS: 1},
		Celebrate: {Frames: 11, FPS: 10},
		Die:       {Frames: 12, FPS: 10},
	}
}

// Validate rejects tuning that would corrupt the per-frame loop. Called after
// defaults, after overrides, and by the session constructor.
func Validate() error {
	if Player.Width <= 0 || Player.Height <= 0 {
		return fmt.Errorf("config: player box %gx%g must be positive", Player.Width, Player.Height)
	}
	if Player.MaxJumpTime <= 0 {
		return fmt.Errorf("config: maxJumpTime %g must be positive", Player.MaxJumpTime)
	}
	if Player.JumpPower <= 0 {
		return fmt.Errorf("config: jumpPower %g must be positive", Player.JumpPower)
	}
	if Physics.MaxFallSpeed <= 0 {
		return fmt.Errorf("config: maxFallSpeed %g must be positive", Physics.MaxFallSpeed)
	}
	for state, def := range Animations {
		if def.Frames < 1 || def.FPS <= 0 {
			return fmt.Errorf("config: animation %q has a zero-duration cycle (%d frames at %g fps)",
				state, def.Frames, def.FPS)
		}
	}
	return nil
}
