package systems

import (
	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateHitboxGate enables exactly the hitboxes of the active window for
// each actor's (state, frame) and fires window side effects once per
// continuous activation.
func UpdateHitboxGate(ecs *ecs.ECS) {
	clock := clockOf(ecs.World)
	shake, spawner := clock.Shake, clock.Spawner

	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		state := components.State.Get(e)
		anim := components.Animation.Get(e)
		combat := components.Combat.Get(e)
		gate := components.Gate.Get(e)
		table := config.Actions(actor.Kind)

		windows := table.Gate[state.CurrentState]
		idx := windowIndex(windows, anim.Frame)
		if state.CurrentState == config.Death {
			idx = -1
		}

		changed := state.CurrentState != gate.State || idx != gate.Window || state.StateTimer == 0
		if changed {
			gate.State = state.CurrentState
			gate.Window = idx
			gate.Fired = false
		}

		var active *config.GateWindow
		if idx >= 0 {
			active = &windows[idx]
		}

		for tier, hb := range combat.Hitboxes {
			hitbox := components.Hitbox.Get(hb)
			on := active != nil && active.Enables(tier)
			if (hitbox.Enabled && !on) || changed {
				hitbox.ClearHits()
			}
			hitbox.Enabled = on
		}

		if state.CurrentState == config.Death {
			return
		}
		combat.Invincible = table.States[state.CurrentState].Invincible || (active != nil && active.Invincible)
		combat.Resistant = active != nil && active.Resistant

		if active == nil || gate.Fired || (active.Shake == 0 && active.Spawn == "") {
			return
		}
		gate.Fired = true
		if active.Shake > 0 && shake != nil {
			shake.Shake(active.Shake)
		}
		if active.Spawn != "" && spawner != nil {
			x, y := center(components.Object.Get(e).Object)
			spawner.Spawn(active.Spawn, math.Vec2{X: x, Y: y}, actor.Facing == components.FacingLeft, e)
		}
	})
}

func windowIndex(windows []config.GateWindow, frame int) int {
	for i, win := range windows {
		if win.Contains(frame) {
			return i
		}
	}
	return -1
}

func activeWindow(windows []config.GateWindow, frame int) (config.GateWindow, bool) {
	if i := windowIndex(windows, frame); i >= 0 {
		return windows[i], true
	}
	return config.GateWindow{}, false
}
