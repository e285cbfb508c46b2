package systems

import (
	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// clockOf returns the world's tick singleton. A world without one steps at
// the configured tick rate with no collaborators.
func clockOf(w donburi.World) *components.ClockData {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e)
	}
	return &components.ClockData{Dt: 1 / float64(config.Sim.TickRate)}
}

// UpdateClock closes the tick. It runs after every other system.
func UpdateClock(ecs *ecs.ECS) {
	clockOf(ecs.World).Tick++
}
