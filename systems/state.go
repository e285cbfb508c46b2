package systems

import (
	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// UpdateActions evaluates every actor's transition guards once, after
// movement and combat have settled for the tick.
func UpdateActions(ecs *ecs.ECS) {
	components.Actor.Each(ecs.World, updateActions)
}

func updateActions(e *donburi.Entry) {
	actor := components.Actor.Get(e)
	state := components.State.Get(e)
	health := components.Health.Get(e)
	combat := components.Combat.Get(e)
	physics := components.Physics.Get(e)

	state.StateTimer++

	// Death is terminal.
	if state.CurrentState == config.Death {
		return
	}
	if !health.Alive() {
		enterDeath(e)
		return
	}

	if health.Current < health.Max {
		health.Current += health.Regen
		health.Clamp()
	}

	if combat.HitPending {
		combat.HitPending = false
		transition(e, config.Hit)
		return
	}

	if next, ok := exitState(e); ok {
		transition(e, next)
	}

	acted := false
	if canAct(actor.Kind, state.CurrentState) {
		var next config.StateID
		var ok bool
		if actor.Kind == config.KindEnemy {
			next, ok = enemyOneShot(e)
		} else {
			next, ok = playerOneShot(e)
		}
		if ok {
			acted = true
			transition(e, next)
			if next == config.Jump {
				v := physics.Body.Velocity()
				v.Y = -config.Player.JumpSpeed
				physics.Body.SetVelocity(v)
			}
		}
	}

	if !acted && state.CurrentState.IsMovement() {
		if next := movementState(e); next != state.CurrentState {
			transition(e, next)
		}
	}

	if physics.Grounded && !state.Is(config.Dash, config.DashRecover) {
		actor.DashedSinceLanding = false
	}

	if state.CurrentState == config.Climb {
		anim := components.Animation.Get(e)
		anim.Paused = !hasMoveIntent(actor)
	}
}

// canAct reports whether one-shot intents are evaluated in s. Climb only
// accepts the jump off.
func canAct(kind config.ActorKind, s config.StateID) bool {
	if s == config.Climb {
		return true
	}
	return config.Actions(kind).States[s].Interruptible
}

// exitState returns the state to leave to when the current one has run its
// course.
func exitState(e *donburi.Entry) (config.StateID, bool) {
	actor := components.Actor.Get(e)
	state := components.State.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)

	switch state.CurrentState {
	case config.Slide, config.DashRecover, config.BasicAttack, config.StrongAttack,
		config.AuraAttack, config.FallAttackRecover, config.Hit:
		if anim.Completed() {
			return movementState(e), true
		}
	case config.Dash:
		if anim.Completed() {
			return config.DashRecover, true
		}
	case config.FallAttack:
		if physics.Grounded {
			return config.FallAttackRecover, true
		}
	case config.Climb:
		if !actor.Climbable {
			return movementState(e), true
		}
	}
	return config.StateNone, false
}

// movementState picks the plain locomotion state from grounded, velocity
// and directional intent.
func movementState(e *donburi.Entry) config.StateID {
	actor := components.Actor.Get(e)
	physics := components.Physics.Get(e)

	if physics.Grounded {
		if hasHorizontalIntent(actor) {
			return config.Run
		}
		return config.Idle
	}
	if physics.Body.Velocity().Y < 0 {
		return config.Jump
	}
	return config.Fall
}

func hasHorizontalIntent(actor *components.ActorData) bool {
	if actor.Intent == nil {
		return false
	}
	left := actor.Intent.Pressed(config.ActionMoveLeft)
	right := actor.Intent.Pressed(config.ActionMoveRight)
	return left != right
}

func hasMoveIntent(actor *components.ActorData) bool {
	return hasHorizontalIntent(actor) ||
		(actor.Intent != nil && actor.Intent.Pressed(config.ActionMoveUp))
}

// transition leaves the current state and enters next. Re-entering the
// current state restarts its clip.
func transition(e *donburi.Entry, next config.StateID) {
	actor := components.Actor.Get(e)
	state := components.State.Get(e)
	combat := components.Combat.Get(e)
	anim := components.Animation.Get(e)
	cooldown := components.Cooldown.Get(e)
	table := config.Actions(actor.Kind)

	prev := state.CurrentState
	if logger.Enabled(zapcore.DebugLevel) {
		logger.Debug("state transition",
			zap.Stringer("kind", actor.Kind),
			zap.Int("actor", actor.Serial),
			zap.Stringer("from", prev),
			zap.Stringer("to", next),
		)
	}

	// Exit
	combat.Invincible = false
	combat.Resistant = false
	anim.Paused = false

	// Entry
	state.PreviousState = prev
	state.CurrentState = next
	state.StateTimer = 0

	sc := table.States[next]
	if next.IsMovement() && prev != next {
		anim.SetAnimation(sc.Clip)
	} else {
		anim.Enter(sc.Clip)
	}
	anim.Frame = 0

	combat.Invincible = sc.Invincible
	if w, ok := activeWindow(table.Gate[next], 0); ok {
		combat.Invincible = combat.Invincible || w.Invincible
		combat.Resistant = w.Resistant
	}
	cooldown.Start(sc.Cooldown)
}

func enterDeath(e *donburi.Entry) {
	actor := components.Actor.Get(e)
	combat := components.Combat.Get(e)

	transition(e, config.Death)
	combat.HitPending = false
	combat.Invincible = false
	combat.Resistant = false
	for _, hb := range combat.Hitboxes {
		hitbox := components.Hitbox.Get(hb)
		hitbox.Enabled = false
		hitbox.ClearHits()
	}

	logger.Info("actor died", zap.Stringer("kind", actor.Kind), zap.Int("actor", actor.Serial))
}
