package factory

import (
	"github.com/automoto/prism-runner/archetypes"
	"github.com/automoto/prism-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateGround adds a solid block that stops bodies on both axes. Floors and
// arena walls are both grounds.
func CreateGround(w donburi.World, space *resolv.Space, x, y, width, height float64) *donburi.Entry {
	return createStatic(w, archetypes.Ground.Spawn, space, x, y, width, height, tags.ResolvSolid)
}
