package components

import (
	"github.com/automoto/prism-runner/engine"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Body     engine.Body
	Grounded bool
	Speed    float64 // base horizontal speed
}

var Physics = donburi.NewComponentType[PhysicsData]()
