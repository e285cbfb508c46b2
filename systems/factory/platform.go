package factory

import (
	"github.com/automoto/prism-runner/archetypes"
	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlatform adds a one-way platform: bodies land on it from above and
// pass through it from below.
func CreatePlatform(w donburi.World, space *resolv.Space, x, y, width, height float64) *donburi.Entry {
	return createStatic(w, archetypes.Ground.Spawn, space, x, y, width, height, tags.ResolvPlatform)
}

// CreateClimbable adds a zone the player may climb while overlapping it.
func CreateClimbable(w donburi.World, space *resolv.Space, x, y, width, height float64) *donburi.Entry {
	return createStatic(w, archetypes.Climbable.Spawn, space, x, y, width, height, tags.ResolvClimbable)
}

type spawnFunc func(donburi.World, ...donburi.IComponentType) *donburi.Entry

func createStatic(w donburi.World, spawn spawnFunc, space *resolv.Space, x, y, width, height float64, tag string) *donburi.Entry {
	entry := spawn(w)
	obj := resolv.NewObject(x, y, width, height, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	space.Add(obj)
	return entry
}
