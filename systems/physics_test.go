package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/components"
	cfg "github.com/automoto/cliffside/config"
	"github.com/automoto/cliffside/gamemath"
	"github.com/automoto/cliffside/leveldata"
	"github.com/automoto/cliffside/tags"
)

// setTestTuning installs round numbers (and dt below is a power of two) so
// penetration depths in the scenarios stay exactly representable, and
// restores the defaults when the test ends.
func setTestTuning(t *testing.T) {
	t.Helper()
	prevPlayer, prevPhysics := cfg.Player, cfg.Physics
	t.Cleanup(func() {
		cfg.Player, cfg.Physics = prevPlayer, prevPhysics
	})

	cfg.Player.MoveAccel = 1024
	cfg.Player.MaxSpeed = 512
	cfg.Player.GroundDrag = 1
	cfg.Player.AirDrag = 1
	cfg.Player.JumpLaunchVel = -800
	cfg.Player.MaxJumpTime = 0.35
	cfg.Player.JumpPower = 0.14
	cfg.Physics.Gravity = 256
	cfg.Physics.MaxFallSpeed = 550
}

const dt = 0.125

func newTestPlayer(t *testing.T, box gamemath.Rect) (donburi.World, *donburi.Entry) {
	t.Helper()

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

	anim, err := components.NewAnimationData(cfg.Animations)
	require.NoError(t, err)

	components.Transform.Set(entry, &components.TransformData{Rect: box})
	components.Physics.Set(entry, &components.PhysicsData{
		PreviousBottom: box.Bottom(),
		OldX:           box.X,
		OldY:           box.Y,
	})
	components.State.Set(entry, &components.StateData{CurrentState: cfg.Idle, PreviousState: cfg.StateNone})
	components.Animation.Set(entry, anim)
	components.Player.Set(entry, &components.PlayerData{FacingX: cfg.DirectionRight, Alive: true})
	return w, entry
}

func mustGrid(t *testing.T, rows []string) *leveldata.Grid {
	t.Helper()
	grid, err := leveldata.ParseRows(rows)
	require.NoError(t, err)
	return grid
}

func TestFallingOntoSolidRowLands(t *testing.T) {
	setTestTuning(t)

	// 64x64 box resting on a solid row whose top edge is y=128
	// (tile row 4, 40x32 tiles). One step of gravity must keep it there.
	grid := mustGrid(t, []string{
		".....",
		".....",
		".....",
		".....",
		"XXXXX",
	})
	w, entry := newTestPlayer(t, gamemath.Rect{X: 100, Y: 64, W: 64, H: 64})

	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)

	transform := components.Transform.Get(entry)
	physics := components.Physics.Get(entry)

	assert.Equal(t, 128.0, transform.Rect.Bottom())
	assert.Equal(t, 100.0, transform.Rect.X)
	assert.True(t, physics.OnGround)
	assert.Zero(t, physics.SpeedY)
	assert.Equal(t, 128.0, physics.PreviousBottom)
}

func TestWalkIntoWallClampsAndZeroesSpeed(t *testing.T) {
	setTestTuning(t)
	cfg.Physics.Gravity = 0 // isolate the horizontal axis

	// Wall column at tile x=3; the box starts flush against it.
	grid := mustGrid(t, []string{
		"...X",
		"XXXX",
	})
	w, entry := newTestPlayer(t, gamemath.Rect{X: 88, Y: 0, W: 32, H: 32})
	components.Physics.Get(entry).SpeedX = 100

	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)

	transform := components.Transform.Get(entry)
	physics := components.Physics.Get(entry)

	assert.Equal(t, 120.0, transform.Rect.Right(), "clamped to the tile edge")
	assert.Zero(t, physics.SpeedX, "blocked axis zeroes its speed")
}

func TestWorldEdgeBlocksHorizontally(t *testing.T) {
	setTestTuning(t)
	cfg.Physics.Gravity = 0

	// Tiles left of x=0 classify as Impassable, so the world edge is a wall.
	grid := mustGrid(t, []string{
		"....",
		"XXXX",
	})
	w, entry := newTestPlayer(t, gamemath.Rect{X: 0, Y: 0, W: 32, H: 32})
	components.Physics.Get(entry).SpeedX = -100

	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)

	transform := components.Transform.Get(entry)
	physics := components.Physics.Get(entry)

	assert.Equal(t, 0.0, transform.Rect.X)
	assert.Zero(t, physics.SpeedX)
}

func TestLandingOnPlatformFromAbove(t *testing.T) {
	setTestTuning(t)
	cfg.Physics.Gravity = 0

	// Platform row at tile y=2 (top edge y=64). The box falls from fully
	// above it: previous bottom 52 is above the platform top.
	grid := mustGrid(t, []string{
		"....",
		"....",
		".--.",
	})
	w, entry := newTestPlayer(t, gamemath.Rect{X: 84, Y: 20, W: 32, H: 32})
	components.Physics.Get(entry).SpeedY = 200

	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)

	transform := components.Transform.Get(entry)
	physics := components.Physics.Get(entry)

	assert.Equal(t, 64.0, transform.Rect.Bottom(), "snapped to the platform top")
	assert.True(t, physics.OnGround)

	// The next step starts from rest on the platform and must stay put.
	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)
	assert.Equal(t, 64.0, transform.Rect.Bottom())
	assert.Zero(t, physics.SpeedY)
	assert.True(t, physics.OnGround)
}

func TestPlatformPassableFromBelow(t *testing.T) {
	setTestTuning(t)
	cfg.Physics.Gravity = 0

	grid := mustGrid(t, []string{
		"....",
		"....",
		".--.",
	})

	// Moving up through the platform: the previous bottom 104 is below
	// the platform top 64, so the platform neither grounds nor pushes.
	w, entry := newTestPlayer(t, gamemath.Rect{X: 84, Y: 72, W: 32, H: 32})
	physics := components.Physics.Get(entry)
	physics.SpeedY = -100
	physics.PreviousBottom = 104

	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)

	transform := components.Transform.Get(entry)
	assert.Equal(t, 59.5, transform.Rect.Y, "platform does not push a box passing through")
	assert.False(t, physics.OnGround)
}

func TestPlatformPassableFromSide(t *testing.T) {
	setTestTuning(t)
	cfg.Physics.Gravity = 0

	grid := mustGrid(t, []string{
		"....",
		"....",
		".-..",
	})

	// Box overlapping the platform tile sideways while its previous
	// bottom is already below the tile top: free horizontal movement.
	w, entry := newTestPlayer(t, gamemath.Rect{X: 20, Y: 70, W: 32, H: 32})
	physics := components.Physics.Get(entry)
	physics.SpeedX = 100
	physics.PreviousBottom = 102

	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)

	transform := components.Transform.Get(entry)
	assert.Equal(t, 32.5, transform.Rect.X, "platform never blocks horizontally")
	assert.False(t, physics.OnGround)
}

func TestGroundedIsRecomputedEveryFrame(t *testing.T) {
	setTestTuning(t)

	grid := mustGrid(t, []string{
		"....",
		"....",
	})
	w, entry := newTestPlayer(t, gamemath.Rect{X: 40, Y: 0, W: 32, H: 32})
	physics := components.Physics.Get(entry)
	physics.OnGround = true // stale carry-over

	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)

	assert.False(t, physics.OnGround, "no ground under the box this frame")
	assert.Positive(t, physics.SpeedY, "gravity pulls the box down")
}

func TestMaxFallSpeedClamp(t *testing.T) {
	setTestTuning(t)

	grid := mustGrid(t, []string{"...."})
	w, entry := newTestPlayer(t, gamemath.Rect{X: 40, Y: 200, W: 32, H: 32})
	physics := components.Physics.Get(entry)
	physics.SpeedY = 100000

	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)

	assert.Equal(t, cfg.Physics.MaxFallSpeed, physics.SpeedY)
}

func TestJumpImpulseDecaysOverHoldWindow(t *testing.T) {
	setTestTuning(t)
	cfg.Physics.Gravity = 0

	w, entry := newTestPlayer(t, gamemath.Rect{X: 40, Y: 0, W: 32, H: 32})
	physics := components.Physics.Get(entry)
	physics.OnGround = true

	in := components.InputData{Up: true}
	hold := 0.05

	// Launch speed magnitude must strictly decrease across the window.
	prev := 1e18
	for i := 0; i < 6; i++ {
		ApplyInput(w, in)
		UpdatePhysics(w, hold)

		require.Negative(t, physics.SpeedY, "step %d should launch upward", i)
		mag := -physics.SpeedY
		assert.Less(t, mag, prev, "impulse must decay at step %d", i)
		prev = mag
	}

	// Holding past the window resets the timer and ends the override.
	for i := 0; i < 3; i++ {
		ApplyInput(w, in)
		UpdatePhysics(w, hold)
	}
	assert.Zero(t, physics.JumpTime)
}

func TestJumpRequiresGroundOrActiveTimer(t *testing.T) {
	setTestTuning(t)

	grid := mustGrid(t, []string{"...."})
	w, entry := newTestPlayer(t, gamemath.Rect{X: 40, Y: 0, W: 32, H: 32})
	physics := components.Physics.Get(entry)
	physics.OnGround = false

	ApplyInput(w, components.InputData{Up: true})
	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)

	assert.Zero(t, physics.JumpTime, "holding jump in midair never starts the window")
	assert.Positive(t, physics.SpeedY)
}

func TestJumpReleaseResetsTimer(t *testing.T) {
	setTestTuning(t)
	cfg.Physics.Gravity = 0

	w, entry := newTestPlayer(t, gamemath.Rect{X: 40, Y: 0, W: 32, H: 32})
	physics := components.Physics.Get(entry)
	physics.OnGround = true

	ApplyInput(w, components.InputData{Up: true})
	UpdatePhysics(w, 0.05)
	require.Positive(t, physics.JumpTime)

	ApplyInput(w, components.InputData{})
	UpdatePhysics(w, 0.05)
	assert.Zero(t, physics.JumpTime)
}

func TestFacingFollowsIntent(t *testing.T) {
	setTestTuning(t)

	grid := mustGrid(t, []string{
		"....",
		"XXXX",
	})
	w, entry := newTestPlayer(t, gamemath.Rect{X: 80, Y: 0, W: 32, H: 32})
	player := components.Player.Get(entry)
	require.Equal(t, cfg.DirectionRight, player.FacingX)

	ApplyInput(w, components.InputData{Left: true})
	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)
	assert.Equal(t, cfg.DirectionLeft, player.FacingX)

	// No intent: facing keeps its last value.
	ApplyInput(w, components.InputData{})
	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)
	assert.Equal(t, cfg.DirectionLeft, player.FacingX)

	// Holding both directions cancels out.
	ApplyInput(w, components.InputData{Left: true, Right: true})
	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)
	assert.Equal(t, cfg.DirectionLeft, player.FacingX)
}

func TestWorkingBoxThreadsThroughResolution(t *testing.T) {
	setTestTuning(t)
	cfg.Physics.Gravity = 0

	// Two stacked wall tiles; the box overlaps both after the move. The
	// push out of the first tile must already clear the second, which is
	// only seen because later tiles test the corrected box.
	grid := mustGrid(t, []string{
		"..X",
		"..X",
	})
	w, entry := newTestPlayer(t, gamemath.Rect{X: 46, Y: 8, W: 32, H: 48})
	components.Physics.Get(entry).SpeedX = 40

	UpdatePhysics(w, dt)
	UpdateCollisions(w, grid)

	transform := components.Transform.Get(entry)
	assert.Equal(t, 80.0, transform.Rect.Right(), "single push clears both stacked tiles")
}
