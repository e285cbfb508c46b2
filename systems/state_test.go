package systems

import (
	"testing"

	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnSettles(t *testing.T) {
	f := newFixture(t, nil)
	f.idle(3)

	assert.True(t, components.Physics.Get(f.player).Grounded)
	assert.Equal(t, config.Idle, stateOf(f.player))
	assert.Equal(t, "idle", components.Animation.Get(f.player).Playback.CurrentClip())
}

func TestAuraAttack(t *testing.T) {
	f := newFixture(t, nil)
	f.idle(2)

	f.press(config.ActionAuraAttack)
	require.Equal(t, config.AuraAttack, stateOf(f.player))
	assert.True(t, components.Combat.Get(f.player).Invincible, "opening frames are invincible")

	f.until(120, func() bool { return stateOf(f.player) == config.Idle })

	assert.Equal(t, []int{30}, f.shake.powers, "shake fires once per window")
	assert.Equal(t, []string{config.EffectSwordAura}, f.spawner.kinds)
	assert.Equal(t, []bool{false}, f.spawner.flipped)
	assert.False(t, components.Combat.Get(f.player).Invincible)

	t.Run("cooldown blocks re-entry", func(t *testing.T) {
		f.press(config.ActionAuraAttack)
		assert.Equal(t, config.Idle, stateOf(f.player))
		assert.Len(t, f.spawner.kinds, 1)
	})

	t.Run("ready again once the cooldown expires", func(t *testing.T) {
		f.idle(150)
		f.press(config.ActionAuraAttack)
		assert.Equal(t, config.AuraAttack, stateOf(f.player))
	})
}

func TestBasicAttackHasNoCooldown(t *testing.T) {
	f := newFixture(t, nil)
	f.idle(2)

	f.press(config.ActionAttack)
	require.Equal(t, config.BasicAttack, stateOf(f.player))
	f.until(120, func() bool { return stateOf(f.player) == config.Idle })

	f.press(config.ActionAttack)
	assert.Equal(t, config.BasicAttack, stateOf(f.player))
}

func TestHeldInputDoesNotRetrigger(t *testing.T) {
	f := newFixture(t, nil)
	f.idle(2)

	for i := 0; i < 80; i++ {
		f.press(config.ActionAttack)
	}
	assert.NotEqual(t, config.BasicAttack, stateOf(f.player))
}

func TestDash(t *testing.T) {
	f := newFixture(t, func() { config.Player.JumpSpeed = 1200 })
	f.idle(2)

	f.press(config.ActionJump)
	require.Equal(t, config.Jump, stateOf(f.player))
	f.idle(3)

	f.press(config.ActionDash)
	require.Equal(t, config.Dash, stateOf(f.player))
	assert.True(t, components.Combat.Get(f.player).Invincible)

	f.until(60, func() bool { return !stateOf(f.player).IsMovement() && stateOf(f.player) != config.Dash })
	assert.Equal(t, config.DashRecover, stateOf(f.player))
	assert.False(t, components.Combat.Get(f.player).Invincible)

	f.until(60, func() bool { return stateOf(f.player).IsMovement() })
	require.False(t, components.Physics.Get(f.player).Grounded)

	t.Run("second dash before landing is refused", func(t *testing.T) {
		f.press(config.ActionDash)
		assert.NotEqual(t, config.Dash, stateOf(f.player))
	})

	t.Run("landing re-arms the dash", func(t *testing.T) {
		f.until(200, func() bool {
			return components.Physics.Get(f.player).Grounded && stateOf(f.player) == config.Idle
		})
		f.press(config.ActionDash)
		assert.Equal(t, config.Dash, stateOf(f.player))
	})
}

func TestDeathIsTerminal(t *testing.T) {
	f := newFixture(t, nil)
	f.idle(2)

	f.press(config.ActionAttack)
	components.Health.Get(f.player).Current = 0
	f.idle(1)
	require.Equal(t, config.Death, stateOf(f.player))

	f.press(config.ActionJump)
	f.press(config.ActionDash)
	components.Combat.Get(f.player).HitPending = true
	f.idle(120)

	assert.Equal(t, config.Death, stateOf(f.player))
	assert.Zero(t, hpOf(f.player))
	combat := components.Combat.Get(f.player)
	assert.False(t, combat.Invincible)
	for tier, hb := range combat.Hitboxes {
		assert.False(t, components.Hitbox.Get(hb).Enabled, string(tier))
	}
}

func TestRegenClampsAtMax(t *testing.T) {
	f := newFixture(t, func() { config.Player.Regen = 0.5 })
	f.idle(1)

	components.Health.Get(f.player).Current = 99.8
	f.idle(1)
	assert.Equal(t, 100.0, hpOf(f.player))
	f.idle(5)
	assert.Equal(t, 100.0, hpOf(f.player))
}

func TestClimb(t *testing.T) {
	f := newFixture(t, nil)
	factory.CreateClimbable(f.w, f.space, 280, 100, 80, 500)
	f.idle(2)
	require.True(t, components.Actor.Get(f.player).Climbable)

	f.press(config.ActionClimb)
	require.Equal(t, config.Climb, stateOf(f.player))

	f.idle(1)
	assert.True(t, components.Animation.Get(f.player).Paused, "no input holds the clip")

	startY := components.Object.Get(f.player).Y
	for i := 0; i < 10; i++ {
		f.press(config.ActionMoveUp)
	}
	assert.Less(t, components.Object.Get(f.player).Y, startY)
	assert.Equal(t, config.Climb, stateOf(f.player))
	assert.False(t, components.Animation.Get(f.player).Paused)

	f.press(config.ActionJump)
	assert.Equal(t, config.Jump, stateOf(f.player))
	assert.False(t, components.Cooldown.Get(f.player).Ready(config.CooldownClimb))
}

func TestFallAttack(t *testing.T) {
	f := newFixture(t, nil)
	f.idle(2)

	f.press(config.ActionFallAttack)
	assert.Equal(t, config.Idle, stateOf(f.player), "needs to be airborne")

	f.press(config.ActionJump)
	f.idle(5)
	f.press(config.ActionFallAttack)
	require.Equal(t, config.FallAttack, stateOf(f.player))
	assert.True(t, components.Combat.Get(f.player).Invincible)

	f.until(60, func() bool { return stateOf(f.player) == config.FallAttackRecover })
	f.idle(1)
	assert.Equal(t, []int{75}, f.shake.powers)
	assert.Equal(t, []string{config.EffectGroundCrack}, f.spawner.kinds)

	f.until(60, func() bool { return stateOf(f.player) == config.Idle })
	assert.False(t, components.Combat.Get(f.player).Invincible)
}
