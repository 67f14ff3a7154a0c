package components

import (
	"fmt"

	"github.com/yohamta/donburi"

	"github.com/automoto/cliffside/animations"
	"github.com/automoto/cliffside/config"
)

// AnimationData owns one playback clock per pose. Clocks are independent and
// persistent: switching away from a pose and back resumes it mid-cycle.
type AnimationData struct {
	Clips   map[config.StateID]*animations.Clip
	Current config.StateID
}

// NewAnimationData builds a clock for every pose in defs, failing fast on
// zero-duration cycles.
func NewAnimationData(defs map[config.StateID]config.AnimationDef) (*AnimationData, error) {
	clips := make(map[config.StateID]*animations.Clip, len(defs))
	for state, def := range defs {
		clip, err := animations.NewClip(def.Frames, def.FPS)
		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", state, err)
		}
		clips[state] = clip
	}
	return &AnimationData{Clips: clips, Current: config.StateNone}, nil
}

// SetState switches the active pose. The new pose's clock is left wherever
// it last stopped.
func (a *AnimationData) SetState(state config.StateID) {
	a.Current = state
}

// Frame returns the active pose's current frame index, or 0 when no pose is
// active yet.
func (a *AnimationData) Frame() int {
	if clip, ok := a.Clips[a.Current]; ok {
		return clip.Frame()
	}
	return 0
}

var Animation = donburi.NewComponentType[AnimationData]()
