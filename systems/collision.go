package systems

import (
	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/automoto/prism-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every actor body, records grounded and climbable,
// then snaps attached hitboxes to their owners.
func UpdateCollisions(ecs *ecs.ECS) {
	w, dt := ecs.World, clockOf(ecs.World).Dt

	components.Actor.Each(w, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		physics := components.Physics.Get(e)

		physics.Grounded = physics.Body.MoveWithCollision(dt)
		actor.Climbable = overlapsTag(components.Object.Get(e).Object, tags.ResolvClimbable)
	})

	components.Hitbox.Each(w, func(e *donburi.Entry) {
		hitbox := components.Hitbox.Get(e)
		if !hitbox.Attached || hitbox.Owner == nil || !hitbox.Owner.Valid() {
			return
		}
		PlaceHitbox(components.Object.Get(e).Object, hitbox.Shape,
			components.Object.Get(hitbox.Owner).Object,
			components.Actor.Get(hitbox.Owner).Facing)
	})
}

// PlaceHitbox positions obj relative to owner. Non-centred shapes sit in
// front of the body and mirror with facing.
func PlaceHitbox(obj *resolv.Object, shape config.HitboxShape, owner *resolv.Object, facing components.Facing) {
	switch {
	case shape.Centered:
		obj.X = owner.X + owner.W/2 - shape.Width/2
	case facing == components.FacingLeft:
		obj.X = owner.X - shape.OffsetX - shape.Width
	default:
		obj.X = owner.X + owner.W + shape.OffsetX
	}
	obj.Y = owner.Y + shape.OffsetY
	obj.Update()
}

// overlapsTag reports whether obj intersects any object carrying tag.
func overlapsTag(obj *resolv.Object, tag string) bool {
	if obj == nil || obj.Space == nil {
		return false
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tag) {
		if engine.Overlaps(obj, 0, 0, o) {
			return true
		}
	}
	return false
}

// center returns the middle of obj's bounds.
func center(obj *resolv.Object) (float64, float64) {
	return obj.X + obj.W/2, obj.Y + obj.H/2
}
