// Package animations provides frame playback clocks for character poses.
package animations

import "fmt"

// Clip tracks elapsed playback time for one pose's frame set. Each pose owns
// its own Clip, so pausing a pose and coming back resumes mid-cycle rather
// than restarting.
type Clip struct {
	frameCount int
	frameDelay float64 // seconds from one frame to the next

	// total time the clip has been playing, kept within [0, cycle)
	elapsed float64
	cycle   float64
}

// NewClip returns a Clip with the given frame count and playback rate.
// A zero-duration cycle is rejected here rather than surfacing as a
// divide-by-zero in the frame loop.
func NewClip(frameCount int, fps float64) (*Clip, error) {
	if frameCount < 1 {
		return nil, fmt.Errorf("clip: frame count %d must be at least 1", frameCount)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("clip: fps %g must be positive", fps)
	}

	delay := 1 / fps
	return &Clip{
		frameCount: frameCount,
		frameDelay: delay,
		cycle:      float64(frameCount) * delay,
	}, nil
}

// FrameCount returns the number of frames in the cycle.
func (c *Clip) FrameCount() int {
	return c.frameCount
}

// AddTime advances the clock by dt seconds, wrapping around the total cycle
// duration. A negative dt rewinds.
func (c *Clip) AddTime(dt float64) {
	c.elapsed += dt

	if c.elapsed < 0 {
		c.elapsed += c.cycle
	} else if c.elapsed >= c.cycle {
		c.elapsed -= c.cycle
	}
}

// Frame returns the current frame index.
func (c *Clip) Frame() int {
	return int(c.elapsed/c.frameDelay) % c.frameCount
}

// Restart rewinds the clip to its first frame.
func (c *Clip) Restart() {
	c.elapsed = 0
}
