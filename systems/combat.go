package systems

import (
	"sort"

	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/automoto/prism-runner/logger"
	"github.com/automoto/prism-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Victim is the part of an actor a hit is resolved against.
type Victim struct {
	HP         float64
	Invincible bool
	Resistant  bool
	CenterX    float64
	Velocity   math.Vec2
}

// Outcome is what a resolved hit does to its victim.
type Outcome struct {
	Applied    bool
	Damage     float64
	HitPending bool
	Knockback  bool
	Velocity   math.Vec2
}

// ResolveHit applies one attack tier to a victim. A resistant victim takes
// the reduced damage and keeps its velocity and state.
func ResolveHit(tier config.TierConfig, attackerX float64, attackerFacing components.Facing, v Victim) Outcome {
	if v.HP <= 0 || v.Invincible {
		return Outcome{Velocity: v.Velocity}
	}
	if v.Resistant {
		return Outcome{Applied: true, Damage: tier.Resisted, Velocity: v.Velocity}
	}

	out := Outcome{
		Applied:    true,
		Damage:     tier.Damage,
		HitPending: true,
		Velocity:   v.Velocity,
	}

	switch tier.Sign {
	case config.SignFacing:
		out.Knockback = true
		out.Velocity = math.Vec2{X: attackerFacing.Sign() * tier.KnockbackX, Y: tier.KnockbackY}
	case config.SignAway:
		sign := 1.0
		if v.CenterX < attackerX {
			sign = -1
		}
		out.Knockback = true
		out.Velocity = math.Vec2{X: sign * tier.KnockbackX, Y: tier.KnockbackY}
	}
	return out
}

// UpdateCombat detects hitbox overlaps into the damage queue, then resolves
// the queue in (target, sequence) order.
func UpdateCombat(ecs *ecs.ECS) {
	w := ecs.World
	queueEntry, ok := components.DamageQueue.First(w)
	if !ok {
		return
	}
	queue := components.DamageQueue.Get(queueEntry)

	// --------------------------------------------------------------------
	// 1. Detection
	// --------------------------------------------------------------------
	components.Hitbox.Each(w, func(e *donburi.Entry) {
		detectHits(e, queue)
	})

	// --------------------------------------------------------------------
	// 2. Resolution
	// --------------------------------------------------------------------
	events := queue.Drain()
	sort.SliceStable(events, func(i, j int) bool {
		si := components.Actor.Get(events[i].Target).Serial
		sj := components.Actor.Get(events[j].Target).Serial
		if si != sj {
			return si < sj
		}
		return events[i].Seq < events[j].Seq
	})

	for _, ev := range events {
		applyHit(ev)
	}
}

func detectHits(e *donburi.Entry, queue *components.DamageQueueData) {
	hitbox := components.Hitbox.Get(e)
	if !hitbox.Enabled || hitbox.Owner == nil || !hitbox.Owner.Valid() {
		return
	}
	obj := components.Object.Get(e).Object

	owner := components.Actor.Get(hitbox.Owner)
	opposing := tags.ResolvEnemy
	if owner.Kind == config.KindEnemy {
		opposing = tags.ResolvPlayer
	}

	check := obj.Check(0, 0, opposing)
	if check == nil {
		return
	}
	for _, o := range check.ObjectsByTags(opposing) {
		if !engine.Overlaps(obj, 0, 0, o) {
			continue
		}
		target, ok := o.Data.(*donburi.Entry)
		if !ok || target == hitbox.Owner || !target.Valid() || !target.HasComponent(components.Actor) {
			continue
		}
		if hitbox.HitEntities[target] {
			continue
		}
		if hitbox.HitEntities == nil {
			hitbox.HitEntities = make(map[*donburi.Entry]bool)
		}
		hitbox.HitEntities[target] = true

		attackerX, _ := center(components.Object.Get(hitbox.Owner).Object)
		queue.Push(components.HitEvent{
			Attacker:       hitbox.Owner,
			Target:         target,
			Tier:           hitbox.Tier,
			AttackerX:      attackerX,
			AttackerFacing: owner.Facing,
		})
	}
}

func applyHit(ev components.HitEvent) {
	if !ev.Target.Valid() {
		return
	}
	tier, ok := config.Combat.Tiers[ev.Tier]
	if !ok {
		return
	}

	health := components.Health.Get(ev.Target)
	combat := components.Combat.Get(ev.Target)
	physics := components.Physics.Get(ev.Target)
	targetX, _ := center(components.Object.Get(ev.Target).Object)

	out := ResolveHit(tier, ev.AttackerX, ev.AttackerFacing, Victim{
		HP:         health.Current,
		Invincible: combat.Invincible,
		Resistant:  combat.Resistant,
		CenterX:    targetX,
		Velocity:   physics.Body.Velocity(),
	})
	if !out.Applied {
		return
	}

	health.Current -= out.Damage
	health.Clamp()
	if out.HitPending {
		combat.HitPending = true
	}
	if out.Knockback {
		physics.Body.SetVelocity(out.Velocity)
	}

	if logger.Enabled(zapcore.DebugLevel) {
		logger.Debug("hit",
			zap.Int("attacker", components.Actor.Get(ev.Attacker).Serial),
			zap.Int("target", components.Actor.Get(ev.Target).Serial),
			zap.String("tier", string(ev.Tier)),
			zap.Float64("damage", out.Damage),
			zap.Float64("hp", health.Current),
			zap.Bool("resisted", !out.HitPending),
		)
	}
}
