package archetypes

import (
	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/tags"
	"github.com/yohamta/donburi"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Climbable = newArchetype(
		tags.Climbable,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.State,
		components.Combat,
		components.Gate,
		components.Cooldown,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Actor,
		components.Enemy,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.State,
		components.Combat,
		components.Gate,
		components.Cooldown,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
	DamageQueue = newArchetype(
		components.DamageQueue,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(append(a.components, cs...)...))
	return e
}
