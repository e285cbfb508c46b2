package animations

import (
	"fmt"
	"sort"

	"github.com/automoto/prism-runner/config"
)

type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices do we move per frame
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
	// Looped is set once playback has passed the last frame at least once.
	Looped bool
	// Loop wraps back to First; otherwise the clip freezes on Last.
	Loop bool
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.Loop {
				a.frame = a.First
			} else {
				a.frame = a.Last
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame jumps to frame, clamped to the clip, and restarts the frame
// counter. Completion is cleared.
func (a *Animation) SetFrame(frame int) {
	if frame < a.First {
		frame = a.First
	}
	if frame > a.Last {
		frame = a.Last
	}
	a.frame = frame
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

// Finished reports whether a non-looping clip has run past its last frame.
// Looping clips never finish.
func (a *Animation) Finished() bool {
	return !a.Loop && a.Looped
}

func (a *Animation) Restart() {
	a.SetFrame(a.First)
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
		Loop:         true,
	}
}

// Library maps clip names to their timing.
type Library map[string]config.ClipConfig

// NewLibrary copies the configured clips.
func NewLibrary(clips map[string]config.ClipConfig) Library {
	lib := make(Library, len(clips))
	for name, c := range clips {
		lib[name] = c
	}
	return lib
}

// New builds a fresh animation for the named clip.
func (l Library) New(name string) (*Animation, error) {
	c, ok := l[name]
	if !ok {
		return nil, fmt.Errorf("animations: unknown clip %q", name)
	}
	if c.Frames <= 0 {
		return nil, fmt.Errorf("animations: clip %q has no frames", name)
	}
	anim := NewAnimation(0, c.Frames-1, 1, c.TicksPerFrame)
	anim.Loop = c.Loop
	return anim, nil
}

// Names returns the clip names in sorted order.
func (l Library) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
