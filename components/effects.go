package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Power   float64 // current magnitude, clamped to the camera max
	Tween   *gween.Tween
	Elapsed int // ticks since the last impulse (for oscillation)
	Offset  math.Vec2
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// EffectData is a transient visual entity spawned by a gate window.
type EffectData struct {
	Kind     string
	Owner    *donburi.Entry
	Flipped  bool
	Velocity math.Vec2 // pixels per tick
	Age      float64   // seconds
	Delay    float64   // seconds before the fade starts
	Fade     *gween.Tween
	Alpha    float64
	Hitbox   *donburi.Entry // nil for purely visual effects
}

var Effect = donburi.NewComponentType[EffectData]()
