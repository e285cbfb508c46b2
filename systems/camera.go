package systems

import (
	"math"

	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(ecs *ecs.ECS) {
	w, dt := ecs.World, clockOf(ecs.World).Dt

	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(components.ScreenShake.Get(cameraEntry), dt)

	target := camera.Target
	if target == nil || !target.Valid() {
		target, ok = tags.Player.First(w)
		if !ok {
			return
		}
	}
	x, y := center(components.Object.Get(target).Object)
	targetY := y + config.Camera.OffsetY

	camera.Position.X += (x - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// updateScreenShake decays the shake and recomputes its oscillating offset.
func updateScreenShake(shake *components.ScreenShakeData, dt float64) {
	if shake.Tween == nil {
		shake.Power = 0
		shake.Offset.X, shake.Offset.Y = 0, 0
		return
	}

	power, done := shake.Tween.Update(float32(dt))
	shake.Power = float64(power)
	shake.Elapsed++
	if done {
		shake.Tween = nil
		shake.Power = 0
	}

	intensity := shake.Power * config.Camera.ShakeScale
	shake.Offset.X = math.Sin(float64(shake.Elapsed)*1.1) * intensity
	shake.Offset.Y = math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// TriggerScreenShake adds power to the camera shake, clamped to the
// configured maximum, and restarts its decay.
func TriggerScreenShake(w donburi.World, power int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || power <= 0 {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Power = math.Min(shake.Power+float64(power), config.Camera.MaxShake)
	shake.Tween = gween.New(float32(shake.Power), 0, config.Camera.ShakeDecay, ease.OutQuad)
	shake.Elapsed = 0
}

// CameraShake forwards gate shake events to the world camera.
type CameraShake struct {
	World donburi.World
}

func (c CameraShake) Shake(power int) {
	TriggerScreenShake(c.World, power)
}
