// Package engine holds the collaborators the simulation core talks to: the
// physics body, clip playback, intent sources, randomness, one-shot timers,
// effect spawning and camera shake. Each is an interface with a default
// implementation so tests can swap in fakes.
package engine

import (
	"github.com/automoto/prism-runner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Body is the physics primitive an actor moves through.
type Body interface {
	Position() math.Vec2
	Velocity() math.Vec2
	SetVelocity(v math.Vec2)
	// MoveWithCollision integrates velocity over dt, resolves collisions and
	// reports whether the body is standing on ground afterwards.
	MoveWithCollision(dt float64) bool
}

// Playback is the animation primitive driven by the animation sync.
type Playback interface {
	SetClip(name string)
	Play()
	Pause()
	CurrentClip() string
	CurrentFrame() int
	SetFrame(frame int)
	// Finished is level-triggered: true from the tick a non-looping clip
	// passes its last frame until another clip or frame is set.
	Finished() bool
	// Advance steps playback by one tick.
	Advance()
}

// IntentSource answers per-action queries for one actor.
type IntentSource interface {
	Pressed(a config.ActionID) bool
	JustPressed(a config.ActionID) bool
}

// Observation is what a Brain sees of the world each tick.
type Observation struct {
	Tick      int
	SelfX     float64
	SelfY     float64
	TargetX   float64
	TargetY   float64
	HasTarget bool
	HP        float64
	Grounded  bool
	Facing    int // -1 left, 1 right
	State     config.StateID
}

// Brain is an intent source that decides once per tick.
type Brain interface {
	IntentSource
	Think(obs Observation)
}

// Spawner instantiates transient effect entities. Fire-and-forget.
type Spawner interface {
	Spawn(kind string, pos math.Vec2, flipped bool, owner *donburi.Entry)
}

// ShakeSink receives additive camera shake impulses.
type ShakeSink interface {
	Shake(power int)
}
