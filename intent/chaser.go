package intent

import (
	"math"

	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
)

// Chaser is the melee enemy AI. It engages a target inside the aggro range,
// keeps pursuing until the target leaves the wider deaggro range, walks
// toward it while out of reach and attacks once in reach.
type Chaser struct {
	Buffer
	Inconstancy float64
	aggro       bool
}

func NewChaser(inconstancy float64) *Chaser {
	return &Chaser{Inconstancy: inconstancy}
}

func (c *Chaser) Aggro() bool {
	return c.aggro
}

func (c *Chaser) Think(obs engine.Observation) {
	c.Latch(c.Decide(obs)...)
}

// Decide updates aggro and returns the actions to hold this tick. Movement
// is only requested along the current facing; turning around is left to the
// caller's flip timer.
func (c *Chaser) Decide(obs engine.Observation) []config.ActionID {
	if !obs.HasTarget || obs.HP <= 0 {
		c.aggro = false
		return nil
	}

	dx := obs.TargetX - obs.SelfX + c.Inconstancy
	dist := math.Abs(dx)
	switch {
	case c.aggro && dist > config.Enemy.DeaggroRange:
		c.aggro = false
	case !c.aggro && dist < config.Enemy.AggroRange:
		c.aggro = true
	}
	if !c.aggro {
		return nil
	}

	if dist <= config.Enemy.AttackRange {
		return []config.ActionID{config.ActionAttack}
	}

	want := 1
	if dx < 0 {
		want = -1
	}
	if want != obs.Facing {
		return nil
	}
	if want < 0 {
		return []config.ActionID{config.ActionMoveLeft}
	}
	return []config.ActionID{config.ActionMoveRight}
}
