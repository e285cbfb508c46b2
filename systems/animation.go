package systems

import (
	"github.com/automoto/prism-runner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation dispatches requested clips, advances playback one tick and
// caches the frame the gate reads.
func UpdateAnimation(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		anim.Sync()
		anim.Playback.Advance()
		anim.Frame = anim.Playback.CurrentFrame()
	})
}
