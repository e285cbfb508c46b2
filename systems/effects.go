package systems

import (
	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateEffects moves and fades transient effects and removes finished ones
// together with their hitboxes.
func UpdateEffects(ecs *ecs.ECS) {
	w, dt := ecs.World, clockOf(ecs.World).Dt
	var done []*donburi.Entry

	components.Effect.Each(w, func(e *donburi.Entry) {
		effect := components.Effect.Get(e)
		obj := components.Object.Get(e).Object

		if effect.Velocity.X != 0 || effect.Velocity.Y != 0 {
			obj.X += effect.Velocity.X
			obj.Y += effect.Velocity.Y
			obj.Update()
		}
		if effect.Hitbox != nil && effect.Hitbox.Valid() {
			hbObj := components.Object.Get(effect.Hitbox).Object
			hbObj.X, hbObj.Y = obj.X, obj.Y
			hbObj.Update()
		}

		effect.Age += dt
		if effect.Age >= effect.Delay && effect.Fade != nil {
			alpha, finished := effect.Fade.Update(float32(dt))
			effect.Alpha = float64(alpha)
			if finished {
				done = append(done, e)
				return
			}
		}

		if outOfArena(obj.X, obj.Y, obj.W, obj.H) {
			done = append(done, e)
		}
	})

	for _, e := range done {
		removeEffect(e)
	}
}

func outOfArena(x, y, w, h float64) bool {
	return x+w < 0 || y+h < 0 ||
		x > float64(config.Sim.ArenaWidth) || y > float64(config.Sim.ArenaHeight)
}

func removeEffect(e *donburi.Entry) {
	effect := components.Effect.Get(e)
	if effect.Hitbox != nil && effect.Hitbox.Valid() {
		removeObject(effect.Hitbox)
		effect.Hitbox.Remove()
	}
	logger.Debug("effect removed", zap.String("kind", effect.Kind))
	removeObject(e)
	e.Remove()
}

func removeObject(e *donburi.Entry) {
	obj := components.Object.Get(e).Object
	if obj != nil && obj.Space != nil {
		obj.Space.Remove(obj)
	}
}
