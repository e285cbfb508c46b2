package systems

import (
	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// LocomotionInput is the part of an actor the velocity resolver reads.
type LocomotionInput struct {
	Kind     config.ActorKind
	State    config.StateID
	Frame    int
	Velocity math.Vec2
	Grounded bool
	Facing   components.Facing

	Left, Right, Up bool

	Speed   float64
	Damping float64 // per-tick lerp factor toward zero in Hit and Death
	Dt      float64
}

// ResolveVelocity returns the velocity an actor should move with this tick.
func ResolveVelocity(in LocomotionInput) math.Vec2 {
	v := in.Velocity
	g := config.Physics.Gravity

	switch {
	case in.State == config.Climb:
		v.Y = 0
	case in.State == config.FallAttack && !in.Grounded:
		v.Y = min(v.Y+config.Physics.PlungeBoost+g*config.Physics.PlungeGravityScale+in.Dt, config.Physics.MaxPlungeSpeed)
	case !in.Grounded:
		v.Y = min(v.Y+g+in.Dt, config.Physics.MaxFallSpeed)
	case v.Y >= 0:
		v.Y = 0
	default:
		// Leaving the ground this tick (jump or knockback impulse).
		v.Y = min(v.Y+g+in.Dt, config.Physics.MaxFallSpeed)
	}

	dir := 0.0
	if in.Left && !in.Right {
		dir = -1
	} else if in.Right && !in.Left {
		dir = 1
	}
	facing := in.Facing.Sign()

	switch in.State {
	case config.Death, config.Hit:
		v.X = lerp(v.X, 0, in.Damping)
	case config.Slide:
		v.X = facing * in.Speed * config.Player.SlideScale
	case config.Dash:
		v.X = facing * in.Speed * config.Player.DashScale
	case config.StrongAttack:
		// Only the player's strong attack lunges; enemies brake in place.
		if in.Kind == config.KindPlayer && in.Frame < config.Player.LungeFrames {
			v.X = facing * in.Speed * config.Player.LungeScale
		} else {
			v.X = moveToward(v.X, 0, in.Speed)
		}
	case config.Climb:
		v.X = dir * in.Speed * config.Player.ClimbScale
		if in.Up && v.X == 0 {
			v.Y = -in.Speed * config.Player.ClimbScale
		}
	case config.Idle, config.Run, config.Jump, config.Fall, config.DashRecover:
		if dir != 0 {
			v.X = dir * in.Speed
		} else {
			v.X = moveToward(v.X, 0, in.Speed)
		}
	default:
		v.X = moveToward(v.X, 0, in.Speed)
	}

	return v
}

// UpdateLocomotion resolves every actor's velocity and writes it to the body.
func UpdateLocomotion(ecs *ecs.ECS) {
	dt := clockOf(ecs.World).Dt

	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)
		anim := components.Animation.Get(e)

		in := LocomotionInput{
			Kind:     actor.Kind,
			State:    state.CurrentState,
			Frame:    anim.Frame,
			Velocity: physics.Body.Velocity(),
			Grounded: physics.Grounded,
			Facing:   actor.Facing,
			Speed:    physics.Speed,
			Damping:  damping(actor.Kind, state.CurrentState),
			Dt:       dt,
		}
		if actor.Intent != nil {
			in.Left = actor.Intent.Pressed(config.ActionMoveLeft)
			in.Right = actor.Intent.Pressed(config.ActionMoveRight)
			in.Up = actor.Intent.Pressed(config.ActionMoveUp)
		}

		if actor.Kind == config.KindPlayer && turnable(state.CurrentState) {
			switch {
			case in.Left && !in.Right:
				actor.Facing = components.FacingLeft
			case in.Right && !in.Left:
				actor.Facing = components.FacingRight
			}
			in.Facing = actor.Facing
		}

		physics.Body.SetVelocity(ResolveVelocity(in))
	})
}

// turnable reports whether directional intent may change facing in s.
func turnable(s config.StateID) bool {
	if s == config.Climb {
		return true
	}
	if s == config.Death {
		return false
	}
	return config.PlayerActions.States[s].Interruptible
}

func damping(kind config.ActorKind, s config.StateID) float64 {
	if kind == config.KindEnemy {
		if s == config.Death {
			return config.Enemy.DeathDamping
		}
		return config.Enemy.HitDamping
	}
	if s == config.Death {
		return config.Player.DeathDamping
	}
	return config.Player.HitDamping
}

func moveToward(from, to, step float64) float64 {
	if from < to {
		return min(from+step, to)
	}
	return max(from-step, to)
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
