package systems

import (
	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/yohamta/donburi"
)

// enemyOneShot prefers the heavy attack whenever its cooldown is ready and
// falls back to the light one.
func enemyOneShot(e *donburi.Entry) (config.StateID, bool) {
	actor := components.Actor.Get(e)
	physics := components.Physics.Get(e)
	cooldown := components.Cooldown.Get(e)

	if actor.Intent == nil || !physics.Grounded || !actor.Intent.Pressed(config.ActionAttack) {
		return config.StateNone, false
	}

	strong := config.EnemyActions.States[config.StrongAttack].Cooldown
	basic := config.EnemyActions.States[config.BasicAttack].Cooldown
	switch {
	case cooldown.Ready(strong):
		return config.StrongAttack, true
	case cooldown.Ready(basic):
		return config.BasicAttack, true
	}
	return config.StateNone, false
}

// updateEnemyFacing turns an engaged enemy toward its target, at most once
// per randomized flip delay.
func updateEnemyFacing(e *donburi.Entry, obs engine.Observation, rng engine.Rand) {
	actor := components.Actor.Get(e)
	enemy := components.Enemy.Get(e)
	state := components.State.Get(e)
	cooldown := components.Cooldown.Get(e)

	if !enemy.Aggro || !obs.HasTarget {
		return
	}
	if !config.EnemyActions.States[state.CurrentState].Interruptible {
		return
	}

	want := components.FacingOf(obs.TargetX-obs.SelfX+enemy.Inconstancy, actor.Facing)
	if want == actor.Facing || !cooldown.Ready(config.CooldownEnemyFlip) {
		return
	}
	actor.Facing = want
	cooldown.StartFor(config.CooldownEnemyFlip, rng.Range(config.Enemy.FlipDelayMin, config.Enemy.FlipDelayMax))
}
