package factory

import (
	"github.com/automoto/prism-runner/archetypes"
	"github.com/automoto/prism-runner/components"
	cfg "github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateHitbox adds a disabled hitbox of tier owned by owner. Attached
// hitboxes follow the owner's body; detached ones are moved by their effect.
func CreateHitbox(w donburi.World, space *resolv.Space, owner *donburi.Entry, tier cfg.AttackTier, attached bool) *donburi.Entry {
	shape := cfg.Combat.Hitboxes[tier]
	hitbox := archetypes.Hitbox.Spawn(w)

	ownerObj := components.Object.Get(owner).Object
	obj := resolv.NewObject(ownerObj.X, ownerObj.Y, shape.Width, shape.Height, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, shape.Width, shape.Height))
	obj.Data = hitbox
	space.Add(obj)

	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})
	components.Hitbox.SetValue(hitbox, components.HitboxData{
		Owner:       owner,
		Tier:        tier,
		Shape:       shape,
		Attached:    attached,
		HitEntities: make(map[*donburi.Entry]bool),
	})
	return hitbox
}
