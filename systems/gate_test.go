package systems

import (
	"testing"

	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/automoto/prism-runner/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowIndex(t *testing.T) {
	windows := []config.GateWindow{
		{From: 0, To: 2, Invincible: true},
		{From: 3, To: 4, Hitboxes: []config.AttackTier{config.TierStrong}},
	}
	assert.Equal(t, 0, windowIndex(windows, 1))
	assert.Equal(t, 1, windowIndex(windows, 4))
	assert.Equal(t, -1, windowIndex(windows, 5))
	assert.Equal(t, -1, windowIndex(nil, 0))

	w, ok := activeWindow(windows, 3)
	require.True(t, ok)
	assert.True(t, w.Enables(config.TierStrong))
}

func TestGateEnablesOnlyActiveWindow(t *testing.T) {
	f := newFixture(t, nil)
	f.idle(2)

	hitboxes := components.Combat.Get(f.player).Hitboxes
	enabled := func() []config.AttackTier {
		var on []config.AttackTier
		for tier, hb := range hitboxes {
			if components.Hitbox.Get(hb).Enabled {
				on = append(on, tier)
			}
		}
		return on
	}

	f.press(config.ActionAttack)
	assert.Empty(t, enabled(), "wind-up frames")

	seen := map[int]bool{}
	for i := 0; i < 60 && stateOf(f.player) == config.BasicAttack; i++ {
		frame := components.Animation.Get(f.player).Frame
		on := enabled()
		if frame == 5 || frame == 6 || frame == 9 || frame == 10 {
			assert.Equal(t, []config.AttackTier{config.TierBasic}, on, "frame %d", frame)
			seen[frame] = true
		} else {
			assert.Empty(t, on, "frame %d", frame)
		}
		f.idle(1)
	}
	assert.True(t, seen[5] && seen[9], "both swings were gated")
	assert.Empty(t, enabled())
}

func TestGateClearsHitsBetweenActivations(t *testing.T) {
	f := newFixture(t, nil)
	enemy, _ := f.addEnemy(345, components.FacingLeft)
	f.idle(2)

	f.press(config.ActionAttack)
	f.until(60, func() bool { return stateOf(f.player) != config.BasicAttack })

	// Each window lands at most once. The first pops the enemy up, so the
	// second may miss.
	lost := config.Enemy.MaxHealth - hpOf(enemy)
	basic := config.Combat.Tiers[config.TierBasic].Damage
	assert.Contains(t, []float64{basic, 2 * basic}, lost)
}

func TestPlaceHitbox(t *testing.T) {
	owner := resolv.NewObject(100, 50, 40, 96)
	obj := resolv.NewObject(0, 0, 70, 60)
	shape := config.HitboxShape{Width: 70, Height: 60, OffsetX: 10, OffsetY: 20}

	PlaceHitbox(obj, shape, owner, components.FacingRight)
	assert.Equal(t, 150.0, obj.X)
	assert.Equal(t, 70.0, obj.Y)

	PlaceHitbox(obj, shape, owner, components.FacingLeft)
	assert.Equal(t, 20.0, obj.X)

	shape.Centered = true
	PlaceHitbox(obj, shape, owner, components.FacingLeft)
	assert.Equal(t, 85.0, obj.X)
}

func TestEnemyFacingFlipDelay(t *testing.T) {
	f := newFixture(t, nil)
	enemy, _ := f.addEnemy(800, components.FacingRight)
	components.Enemy.Get(enemy).Aggro = true
	f.idle(1)

	behind := Observe(f.w, enemy, f.tick())
	require.True(t, behind.HasTarget)
	updateEnemyFacing(enemy, behind, f.rng)
	assert.Equal(t, components.FacingLeft, components.Actor.Get(enemy).Facing)

	ahead := behind
	ahead.TargetX = behind.SelfX + 400
	updateEnemyFacing(enemy, ahead, f.rng)
	assert.Equal(t, components.FacingLeft, components.Actor.Get(enemy).Facing, "flip delay still running")

	components.Cooldown.Get(enemy).Tick(config.Enemy.FlipDelayMax)
	updateEnemyFacing(enemy, ahead, f.rng)
	assert.Equal(t, components.FacingRight, components.Actor.Get(enemy).Facing)
}

func TestNearestOpponentTieBreak(t *testing.T) {
	f := newFixture(t, nil)
	px, _ := center(components.Object.Get(f.player).Object)
	half := config.Enemy.CollisionWidth / 2
	left, _ := f.addEnemy(px-200-half, components.FacingRight)
	f.addEnemy(px+200-half, components.FacingLeft)

	assert.Equal(t, left, nearestOpponent(f.w, f.player))

	components.Health.Get(left).Current = 0
	assert.NotEqual(t, left, nearestOpponent(f.w, f.player), "the dead are ignored")
}

func TestChaserBrainDrivesEnemy(t *testing.T) {
	f := newFixture(t, nil)
	enemy, err := factory.CreateEnemy(f.w, factory.ActorOptions{
		X:        700,
		Y:        testFloorY - config.Enemy.CollisionHeight,
		Facing:   components.FacingLeft,
		Space:    f.space,
		Playback: factory.NewPlayback(),
		Rand:     engine.NewRand(3),
	})
	require.NoError(t, err)
	require.NotNil(t, components.Actor.Get(enemy).Brain)

	startX := components.Object.Get(enemy).Object.X
	f.idle(30)

	assert.True(t, components.Enemy.Get(enemy).Aggro)
	assert.Equal(t, f.player, components.Enemy.Get(enemy).Target)
	assert.Less(t, components.Object.Get(enemy).Object.X, startX, "walks toward the player")
}

func TestGateSpawnsAtBodyCentre(t *testing.T) {
	f := newFixture(t, nil)
	f.idle(2)

	f.press(config.ActionMoveLeft)
	f.press(config.ActionAuraAttack)
	require.Equal(t, config.AuraAttack, stateOf(f.player))
	f.until(60, func() bool { return len(f.spawner.kinds) > 0 })

	assert.True(t, f.spawner.flipped[0])
	assert.Equal(t, f.player, f.spawner.owners[0])
	x, y := center(components.Object.Get(f.player).Object)
	assert.InDelta(t, x, f.spawner.positions[0].X, 1e-9)
	assert.InDelta(t, y, f.spawner.positions[0].Y, 1e-9)
}
