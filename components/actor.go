package components

import (
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/yohamta/donburi"
)

// Facing is the horizontal direction an actor looks in.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns -1 or 1.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Flip returns the opposite facing.
func (f Facing) Flip() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// FacingOf returns the facing that points along dx. Zero keeps current.
func FacingOf(dx float64, current Facing) Facing {
	switch {
	case dx < 0:
		return FacingLeft
	case dx > 0:
		return FacingRight
	}
	return current
}

// ActorData is shared by players and enemies.
type ActorData struct {
	Kind   config.ActorKind
	Serial int // spawn order, used to order same-tick hits
	Facing Facing

	Climbable          bool // overlapping a climbable zone this tick
	DashedSinceLanding bool

	Intent engine.IntentSource
	Brain  engine.Brain // nil when Intent is fed from a device
}

var Actor = donburi.NewComponentType[ActorData]()
