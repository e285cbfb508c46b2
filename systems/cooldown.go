package systems

import (
	"github.com/automoto/prism-runner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCooldowns(ecs *ecs.ECS) {
	dt := clockOf(ecs.World).Dt
	components.Cooldown.Each(ecs.World, func(e *donburi.Entry) {
		components.Cooldown.Get(e).Tick(dt)
	})
}
