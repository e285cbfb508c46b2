package intent

import (
	"testing"

	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/automoto/prism-runner/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuffer(t *testing.T) {
	var b Buffer

	b.Latch(config.ActionJump)
	assert.True(t, b.Pressed(config.ActionJump))
	assert.True(t, b.JustPressed(config.ActionJump))

	b.Latch(config.ActionJump)
	assert.True(t, b.Pressed(config.ActionJump))
	assert.False(t, b.JustPressed(config.ActionJump), "held, not a fresh press")

	b.Latch()
	assert.False(t, b.Pressed(config.ActionJump))

	t.Run("update polls every action", func(t *testing.T) {
		var b Buffer
		b.Update(func(a config.ActionID) bool { return a == config.ActionDash })
		assert.True(t, b.JustPressed(config.ActionDash))
		assert.False(t, b.Pressed(config.ActionSlide))
	})

	t.Run("out of range actions are never pressed", func(t *testing.T) {
		var b Buffer
		b.Set(config.ActionCount, true)
		b.Set(config.ActionNone, true)
		assert.False(t, b.Pressed(config.ActionCount))
		assert.False(t, b.JustPressed(config.ActionNone))
	})
}

func chaseObs(selfX, targetX float64, facing int) engine.Observation {
	return engine.Observation{
		SelfX:     selfX,
		TargetX:   targetX,
		HasTarget: true,
		HP:        100,
		Grounded:  true,
		Facing:    facing,
		State:     config.Idle,
	}
}

func TestChaser(t *testing.T) {
	config.Reset()

	t.Run("aggro hysteresis", func(t *testing.T) {
		c := NewChaser(0)

		assert.Empty(t, c.Decide(chaseObs(0, 700, 1)))
		assert.False(t, c.Aggro(), "outside aggro range")

		c.Decide(chaseObs(0, 500, 1))
		assert.True(t, c.Aggro())

		c.Decide(chaseObs(0, 750, 1))
		assert.True(t, c.Aggro(), "inside the deaggro band")

		c.Decide(chaseObs(0, 850, 1))
		assert.False(t, c.Aggro())
	})

	t.Run("walks only along its facing", func(t *testing.T) {
		c := NewChaser(0)
		assert.Equal(t, []config.ActionID{config.ActionMoveRight}, c.Decide(chaseObs(0, 400, 1)))
		assert.Empty(t, c.Decide(chaseObs(0, 400, -1)))
		assert.Equal(t, []config.ActionID{config.ActionMoveLeft}, c.Decide(chaseObs(400, 0, -1)))
	})

	t.Run("attacks in reach", func(t *testing.T) {
		c := NewChaser(0)
		assert.Equal(t, []config.ActionID{config.ActionAttack}, c.Decide(chaseObs(0, 150, -1)))
	})

	t.Run("inconstancy shifts the perceived target", func(t *testing.T) {
		c := NewChaser(-50)
		assert.Equal(t, []config.ActionID{config.ActionAttack}, c.Decide(chaseObs(0, 240, 1)))
	})

	t.Run("no target or dead means idle", func(t *testing.T) {
		c := NewChaser(0)
		c.Decide(chaseObs(0, 100, 1))
		require.True(t, c.Aggro())

		obs := chaseObs(0, 100, 1)
		obs.HP = 0
		assert.Empty(t, c.Decide(obs))
		assert.False(t, c.Aggro())

		c.Think(engine.Observation{})
		assert.False(t, c.Pressed(config.ActionAttack))
	})
}

func TestScript(t *testing.T) {
	t.Run("presses named actions", func(t *testing.T) {
		s, err := NewScript([]byte(`
if obs.target_x > obs.self_x {
	press = append(press, "right")
}
if obs.tick == 3 {
	press = append(press, "jump", "not_an_action")
}
`))
		require.NoError(t, err)

		s.Think(engine.Observation{Tick: 3, SelfX: 0, TargetX: 10})
		assert.True(t, s.JustPressed(config.ActionMoveRight))
		assert.True(t, s.JustPressed(config.ActionJump))

		s.Think(engine.Observation{Tick: 4, SelfX: 0, TargetX: 10})
		assert.True(t, s.Pressed(config.ActionMoveRight))
		assert.False(t, s.JustPressed(config.ActionMoveRight))
		assert.False(t, s.Pressed(config.ActionJump))
	})

	t.Run("compile errors are wrapped", func(t *testing.T) {
		_, err := NewScript([]byte(`press = (`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "intent: compile script")
	})

	t.Run("only pure modules can be imported", func(t *testing.T) {
		s, err := NewScript([]byte(`math := import("math")
if math.abs(obs.target_x - obs.self_x) < 10 {
	press = append(press, "attack")
}`))
		require.NoError(t, err)
		s.Think(engine.Observation{SelfX: 5, TargetX: 0})
		assert.True(t, s.JustPressed(config.ActionAttack))

		for _, mod := range []string{"os", "rand", "times"} {
			_, err := NewScript([]byte(`m := import("` + mod + `")`))
			require.Error(t, err, mod)
			assert.Contains(t, err.Error(), "intent: compile script", mod)
		}
	})

	t.Run("runtime errors idle the actor and warn once", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		logger.Set(zap.New(core))
		defer logger.Set(nil)

		s, err := NewScript([]byte(`press = append(press, "attack")
x := obs.tick + "oops"`))
		require.NoError(t, err)

		s.Think(engine.Observation{Tick: 0, SelfX: 1})
		s.Think(engine.Observation{Tick: 0, SelfX: 1})
		assert.False(t, s.Pressed(config.ActionAttack))
		assert.Equal(t, 1, logs.FilterMessage("bot script failed").Len())
	})

	t.Run("embedded scripts compile", func(t *testing.T) {
		for _, name := range []string{"bot.tengo", "idle.tengo"} {
			src, err := LoadScript(name)
			require.NoError(t, err, name)
			s, err := NewScript(src)
			require.NoError(t, err, name)
			s.Think(engine.Observation{HasTarget: true, HP: 100, Grounded: true, State: config.Idle})
		}
	})
}
