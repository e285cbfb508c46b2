package factory

import (
	"github.com/automoto/prism-runner/archetypes"
	"github.com/automoto/prism-runner/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// CreateDamageQueue adds the world's combat event queue.
func CreateDamageQueue(w donburi.World) *donburi.Entry {
	queue := archetypes.DamageQueue.Spawn(w)
	components.DamageQueue.SetValue(queue, components.DamageQueueData{})
	return queue
}

// CreateClock adds the tick singleton.
func CreateClock(w donburi.World, clock components.ClockData) *donburi.Entry {
	e := archetypes.Clock.Spawn(w)
	components.Clock.SetValue(e, clock)
	return e
}
