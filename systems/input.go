package systems

import (
	"math"

	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/engine"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// aggroReporter is implemented by brains that track engagement.
type aggroReporter interface {
	Aggro() bool
}

// UpdateBrains lets every AI-driven actor decide its intents for the tick.
// Device-driven actors are fed by the caller before the tick runs.
func UpdateBrains(ecs *ecs.ECS) {
	w := ecs.World
	clock := clockOf(w)
	tick, rng := clock.Tick, clock.Rand

	components.Actor.Each(w, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		if actor.Brain == nil {
			return
		}

		obs := Observe(w, e, tick)
		if e.HasComponent(components.Enemy) {
			enemy := components.Enemy.Get(e)
			enemy.Target = nearestOpponent(w, e)
			updateEnemyFacing(e, obs, rng)
			obs.Facing = int(actor.Facing)
		}

		actor.Brain.Think(obs)

		if e.HasComponent(components.Enemy) {
			if r, ok := actor.Brain.(aggroReporter); ok {
				components.Enemy.Get(e).Aggro = r.Aggro()
			}
		}
	})
}

// Observe builds what e's brain sees this tick. The target is the nearest
// living opponent.
func Observe(w donburi.World, e *donburi.Entry, tick int) engine.Observation {
	actor := components.Actor.Get(e)
	physics := components.Physics.Get(e)
	x, y := center(components.Object.Get(e).Object)

	obs := engine.Observation{
		Tick:     tick,
		SelfX:    x,
		SelfY:    y,
		HP:       components.Health.Get(e).Current,
		Grounded: physics.Grounded,
		Facing:   int(actor.Facing),
		State:    components.State.Get(e).CurrentState,
	}
	if target := nearestOpponent(w, e); target != nil {
		obs.HasTarget = true
		obs.TargetX, obs.TargetY = center(components.Object.Get(target).Object)
	}
	return obs
}

func nearestOpponent(w donburi.World, e *donburi.Entry) *donburi.Entry {
	self := components.Actor.Get(e)
	x, _ := center(components.Object.Get(e).Object)

	var best *donburi.Entry
	bestDist, bestSerial := math.Inf(1), 0
	components.Actor.Each(w, func(other *donburi.Entry) {
		actor := components.Actor.Get(other)
		if actor.Kind == self.Kind || !components.Health.Get(other).Alive() {
			return
		}
		ox, _ := center(components.Object.Get(other).Object)
		d := math.Abs(ox - x)
		if d < bestDist || (d == bestDist && actor.Serial < bestSerial) {
			best, bestDist, bestSerial = other, d, actor.Serial
		}
	})
	return best
}

