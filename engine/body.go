package engine

import (
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// ResolvBody moves a resolv object through its space. Solids block on both
// axes; platforms only catch a body falling onto them from above.
type ResolvBody struct {
	Object   *resolv.Object
	velocity math.Vec2
}

func NewResolvBody(obj *resolv.Object) *ResolvBody {
	return &ResolvBody{Object: obj}
}

func (b *ResolvBody) Position() math.Vec2 {
	return math.Vec2{X: b.Object.X, Y: b.Object.Y}
}

func (b *ResolvBody) Velocity() math.Vec2 {
	return b.velocity
}

func (b *ResolvBody) SetVelocity(v math.Vec2) {
	b.velocity = v
}

func (b *ResolvBody) MoveWithCollision(dt float64) bool {
	obj := b.Object
	if obj.Space == nil {
		return false
	}

	b.moveHorizontal(b.velocity.X * dt)
	grounded := b.moveVertical(b.velocity.Y * dt)
	obj.Update()
	return grounded
}

func (b *ResolvBody) moveHorizontal(dx float64) {
	if dx == 0 {
		return
	}
	obj := b.Object

	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !Overlaps(obj, dx, 0, solid) {
				continue
			}
			dx = check.ContactWithObject(solid).X()
			b.velocity.X = 0
			break
		}
	}

	obj.X += dx
}

func (b *ResolvBody) moveVertical(dy float64) bool {
	obj := b.Object

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := obj.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		obj.Y += dy
		return false
	}

	if dy < 0 {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if Overlaps(obj, 0, dy, solid) {
				dy = check.ContactWithObject(solid).Y()
				b.velocity.Y = 0
				break
			}
		}
		obj.Y += dy
		return false
	}

	for _, ground := range check.Objects {
		if !Overlaps(obj, 0, checkDistance, ground) {
			continue
		}
		if ground.HasTags(tags.ResolvPlatform) && obj.Bottom() > ground.Y+config.Physics.PlatformTolerance {
			continue
		}
		obj.Y += check.ContactWithObject(ground).Y()
		b.velocity.Y = 0
		return true
	}

	obj.Y += dy
	return false
}

// Overlaps reports whether a, offset by (dx, dy), intersects b's bounds.
// Edges that only touch do not overlap.
func Overlaps(a *resolv.Object, dx, dy float64, b *resolv.Object) bool {
	return a.X+dx < b.X+b.W &&
		a.X+dx+a.W > b.X &&
		a.Y+dy < b.Y+b.H &&
		a.Y+dy+a.H > b.Y
}
