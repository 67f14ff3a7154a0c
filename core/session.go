// Package core assembles a level and a character into a runnable simulation
// session and drives it one deterministic frame at a time.
package core

import (
	"fmt"

	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/components"
	cfg "github.com/automoto/cliffside/config"
	"github.com/automoto/cliffside/gamemath"
	"github.com/automoto/cliffside/leveldata"
	"github.com/automoto/cliffside/systems"
	"github.com/automoto/cliffside/tags"
)

// Session owns the world state for one level run. All mutation happens
// inside Step; nothing else touches the world while a frame is in flight.
type Session struct {
	level  *leveldata.Level
	world  donburi.World
	player donburi.Entity

	// run clock, frozen on death or completion
	elapsed float64
}

// Frame is the per-frame result consumed by the render collaborator.
type Frame struct {
	Bounds      gamemath.Rect
	FacingX     float64
	Pose        cfg.StateID
	FrameIndex  int
	Grounded    bool
	Alive       bool
	ReachedExit bool
}

// NewSession validates the tuning and spawn placement and builds the world.
// A character box that cannot fit the playable region is a construction
// error, not something the frame loop should ever see.
func NewSession(level *leveldata.Level) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	spawnBox := gamemath.Rect{
		X: level.Spawn.X, Y: level.Spawn.Y,
		W: cfg.Player.Width, H: cfg.Player.Height,
	}
	placed, ok := spawnBox.MoveInside(level.Bounds())
	if !ok {
		return nil, fmt.Errorf("session: %gx%g player box does not fit level %q (%gx%g)",
			spawnBox.W, spawnBox.H, level.Name, level.Bounds().W, level.Bounds().H)
	}

	anim, err := components.NewAnimationData(cfg.Animations)
	if err != nil {
		return nil, err
	}

	w := donburi.NewWorld()
	entity := w.Create(
		tags.Player,
		components.Transform,
		components.Physics,
		components.Input,
		components.State,
		components.Animation,
		components.Player,
	)

	entry := w.Entry(entity)
	components.Transform.Set(entry, &components.TransformData{Rect: placed})
	components.Physics.Set(entry, &components.PhysicsData{
		PreviousBottom: placed.Bottom(),
		OldX:           placed.X,
		OldY:           placed.Y,
	})
	components.State.Set(entry, &components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Animation.Set(entry, anim)
	components.Player.Set(entry, &components.PlayerData{
		FacingX: cfg.DirectionRight,
		Alive:   true,
		SpawnX:  placed.X,
		SpawnY:  placed.Y,
	})

	return &Session{
		level:  level,
		world:  w,
		player: entity,
	}, nil
}

// Level returns the loaded level this session runs.
func (s *Session) Level() *leveldata.Level {
	return s.level
}

// Step advances the simulation by dt seconds with the given input snapshot.
// One call is one frame: integrate, resolve, derive state, advance the
// active animation clock.
func (s *Session) Step(dt float64, in components.InputData) {
	systems.ApplyInput(s.world, in)
	systems.UpdatePhysics(s.world, dt)
	systems.UpdateCollisions(s.world, s.level.Grid)
	systems.UpdateDeath(s.world, s.level.Bounds())
	systems.UpdateExit(s.world, s.level.Exit, s.level.HasExit)
	systems.UpdateState(s.world)
	systems.UpdateAnimation(s.world, dt)

	player := components.Player.Get(s.entry())
	if player.Alive && !player.ReachedExit {
		s.elapsed += dt
	}
}

// Frame returns the resolved state for rendering.
func (s *Session) Frame() Frame {
	entry := s.entry()
	transform := components.Transform.Get(entry)
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)
	player := components.Player.Get(entry)

	return Frame{
		Bounds:      transform.Rect,
		FacingX:     player.FacingX,
		Pose:        state.CurrentState,
		FrameIndex:  anim.Frame(),
		Grounded:    physics.OnGround,
		Alive:       player.Alive,
		ReachedExit: player.ReachedExit,
	}
}

// Elapsed returns the run clock in seconds. It stops accumulating once the
// player dies or reaches the exit.
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// Respawn puts the character back at the spawn point with movement state
// cleared. Animation clocks keep their phase.
func (s *Session) Respawn() {
	entry := s.entry()
	player := components.Player.Get(entry)
	transform := components.Transform.Get(entry)

	transform.Rect = transform.Rect.At(player.SpawnX, player.SpawnY)
	*components.Physics.Get(entry) = components.PhysicsData{
		PreviousBottom: transform.Rect.Bottom(),
		OldX:           transform.Rect.X,
		OldY:           transform.Rect.Y,
	}
	player.Alive = true
	player.ReachedExit = false

	state := components.State.Get(entry)
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Idle

	s.elapsed = 0
}

func (s *Session) entry() *donburi.Entry {
	return s.world.Entry(s.player)
}
