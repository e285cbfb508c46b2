package systems

import (
	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/yohamta/donburi"
)

// playerOneShot checks the player's one-shot intents in priority order and
// returns the first whose guard passes.
func playerOneShot(e *donburi.Entry) (config.StateID, bool) {
	actor := components.Actor.Get(e)
	state := components.State.Get(e)
	physics := components.Physics.Get(e)
	cooldown := components.Cooldown.Get(e)
	in := actor.Intent
	if in == nil {
		return config.StateNone, false
	}

	ready := func(s config.StateID) bool {
		return cooldown.Ready(config.PlayerActions.States[s].Cooldown)
	}
	grounded := physics.Grounded

	if state.CurrentState == config.Climb {
		if in.JustPressed(config.ActionJump) {
			return config.Jump, true
		}
		return config.StateNone, false
	}

	switch {
	case in.JustPressed(config.ActionClimb) && actor.Climbable && ready(config.Climb):
		return config.Climb, true
	case in.JustPressed(config.ActionDash) && !actor.DashedSinceLanding:
		actor.DashedSinceLanding = true
		return config.Dash, true
	case in.JustPressed(config.ActionSlide) && grounded:
		return config.Slide, true
	case in.JustPressed(config.ActionFallAttack) && !grounded && ready(config.FallAttack):
		return config.FallAttack, true
	case in.JustPressed(config.ActionAttack) && grounded:
		return config.BasicAttack, true
	case in.JustPressed(config.ActionStrongAttack) && grounded && ready(config.StrongAttack):
		return config.StrongAttack, true
	case in.JustPressed(config.ActionAuraAttack) && grounded && ready(config.AuraAttack):
		return config.AuraAttack, true
	case in.JustPressed(config.ActionJump) && grounded:
		return config.Jump, true
	}
	return config.StateNone, false
}
