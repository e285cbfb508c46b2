package engine

import (
	"github.com/automoto/prism-runner/assets/animations"
)

// ClipPlayer plays clips from an animation library one tick at a time.
type ClipPlayer struct {
	library animations.Library
	clip    string
	anim    *animations.Animation
	playing bool
}

func NewClipPlayer(library animations.Library) *ClipPlayer {
	return &ClipPlayer{library: library}
}

// Has reports whether the library knows clip.
func (p *ClipPlayer) Has(clip string) bool {
	_, ok := p.library[clip]
	return ok
}

// SetClip switches to name from its first frame. Unknown clips leave the
// player stopped on no clip.
func (p *ClipPlayer) SetClip(name string) {
	anim, err := p.library.New(name)
	if err != nil {
		p.clip = ""
		p.anim = nil
		return
	}
	p.clip = name
	p.anim = anim
}

func (p *ClipPlayer) Play() {
	p.playing = true
}

func (p *ClipPlayer) Pause() {
	p.playing = false
}

func (p *ClipPlayer) CurrentClip() string {
	return p.clip
}

func (p *ClipPlayer) CurrentFrame() int {
	if p.anim == nil {
		return 0
	}
	return p.anim.Frame()
}

func (p *ClipPlayer) SetFrame(frame int) {
	if p.anim != nil {
		p.anim.SetFrame(frame)
	}
}

func (p *ClipPlayer) Finished() bool {
	return p.anim != nil && p.anim.Finished()
}

func (p *ClipPlayer) Advance() {
	if p.anim == nil || !p.playing {
		return
	}
	p.anim.Update()
}
