package components

import (
	"github.com/automoto/prism-runner/engine"
	"github.com/yohamta/donburi"
)

// AnimationData mirrors an actor's playback. States request clips here and
// the animation system dispatches to Playback once per tick.
type AnimationData struct {
	Playback  engine.Playback
	Requested string
	Paused    bool
	Frame     int // frame cached after the last advance

	restart bool
}

// SetAnimation requests clip without restarting it if already playing.
func (a *AnimationData) SetAnimation(clip string) {
	a.Requested = clip
}

// Enter requests clip from frame 0, even when it is already playing.
func (a *AnimationData) Enter(clip string) {
	a.Requested = clip
	a.restart = true
	a.Paused = false
}

// Changed reports whether moving from one clip to another needs a clip change.
func (a *AnimationData) Changed(from, to string) bool {
	return from != to
}

// Completed reports whether the requested clip has played through. It stays
// true until another clip or frame is dispatched.
func (a *AnimationData) Completed() bool {
	if a.restart || a.Changed(a.Playback.CurrentClip(), a.Requested) {
		return false
	}
	return a.Playback.Finished()
}

// Sync dispatches the requested clip to Playback.
func (a *AnimationData) Sync() {
	if a.Changed(a.Playback.CurrentClip(), a.Requested) {
		a.Playback.SetClip(a.Requested)
	} else if a.restart {
		a.Playback.SetFrame(0)
	}
	a.restart = false

	if a.Paused {
		a.Playback.Pause()
	} else {
		a.Playback.Play()
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
