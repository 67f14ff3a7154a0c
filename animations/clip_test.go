package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClipRejectsZeroDurationCycles(t *testing.T) {
	_, err := NewClip(0, 10)
	assert.Error(t, err)

	_, err = NewClip(4, 0)
	assert.Error(t, err)

	_, err = NewClip(4, -5)
	assert.Error(t, err)
}

func TestClipFrameProgression(t *testing.T) {
	// 4 frames at 10 fps: 0.1s per frame, 0.4s cycle.
	clip, err := NewClip(4, 10)
	require.NoError(t, err)

	assert.Equal(t, 0, clip.Frame())

	clip.AddTime(0.05)
	assert.Equal(t, 0, clip.Frame())

	clip.AddTime(0.1)
	assert.Equal(t, 1, clip.Frame())

	clip.AddTime(0.2)
	assert.Equal(t, 3, clip.Frame())

	// Wraps back to the start of the cycle.
	clip.AddTime(0.1)
	assert.Equal(t, 0, clip.Frame())
}

func TestClipRewind(t *testing.T) {
	clip, err := NewClip(4, 10)
	require.NoError(t, err)

	// Rewinding past zero wraps to the end of the cycle.
	clip.AddTime(-0.05)
	assert.Equal(t, 3, clip.Frame())
}

func TestClipRestart(t *testing.T) {
	clip, err := NewClip(4, 10)
	require.NoError(t, err)

	clip.AddTime(0.25)
	require.Equal(t, 2, clip.Frame())

	clip.Restart()
	assert.Equal(t, 0, clip.Frame())
}
