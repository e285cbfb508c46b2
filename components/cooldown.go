package components

import (
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/yohamta/donburi"
)

// CooldownData is the per-actor registry of action cooldowns.
type CooldownData struct {
	Timers map[config.ActionKind]*engine.Timer
}

func NewCooldownData() CooldownData {
	return CooldownData{Timers: make(map[config.ActionKind]*engine.Timer)}
}

// Start restarts kind with its configured duration.
func (c *CooldownData) Start(kind config.ActionKind) {
	if kind == config.CooldownNone {
		return
	}
	c.StartFor(kind, config.Cooldown.Durations[kind])
}

// StartFor restarts kind with an explicit duration in seconds.
func (c *CooldownData) StartFor(kind config.ActionKind, seconds float64) {
	if c.Timers == nil {
		c.Timers = make(map[config.ActionKind]*engine.Timer)
	}
	t, ok := c.Timers[kind]
	if !ok {
		t = &engine.Timer{}
		c.Timers[kind] = t
	}
	t.Start(seconds)
}

// Ready reports whether kind may trigger. Kinds never started are ready.
func (c *CooldownData) Ready(kind config.ActionKind) bool {
	t, ok := c.Timers[kind]
	return !ok || t.Ready()
}

func (c *CooldownData) Remaining(kind config.ActionKind) float64 {
	if t, ok := c.Timers[kind]; ok {
		return t.Remaining()
	}
	return 0
}

func (c *CooldownData) Tick(dt float64) {
	for _, t := range c.Timers {
		t.Tick(dt)
	}
}

var Cooldown = donburi.NewComponentType[CooldownData]()
