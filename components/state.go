package components

import (
	"github.com/automoto/prism-runner/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // ticks spent in CurrentState
}

// Is reports whether the current state is one of states.
func (s *StateData) Is(states ...config.StateID) bool {
	for _, st := range states {
		if s.CurrentState == st {
			return true
		}
	}
	return false
}

var State = donburi.NewComponentType[StateData]()
