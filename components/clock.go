package components

import (
	"github.com/automoto/prism-runner/engine"
	"github.com/yohamta/donburi"
)

// ClockData is the world singleton systems read the fixed step and the
// shared collaborators from.
type ClockData struct {
	Tick    int
	Dt      float64
	Rand    engine.Rand
	Shake   engine.ShakeSink
	Spawner engine.Spawner
}

var Clock = donburi.NewComponentType[ClockData]()
