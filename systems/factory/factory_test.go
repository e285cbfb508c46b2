package factory

import (
	"testing"

	"github.com/automoto/prism-runner/components"
	cfg "github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/automoto/prism-runner/intent"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newWorld(t *testing.T) (donburi.World, *resolv.Space) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := donburi.NewWorld()
	space := components.Space.Get(CreateSpace(w, 2000, 1000, 16, 16)).Space
	return w, space
}

func TestCreateActorRequiresCollaborators(t *testing.T) {
	w, space := newWorld(t)
	full := ActorOptions{
		X:        100,
		Y:        100,
		Space:    space,
		Playback: NewPlayback(),
		Intent:   &intent.Buffer{},
		Rand:     engine.NewRand(1),
	}

	tests := []struct {
		name   string
		create func(donburi.World, ActorOptions) (*donburi.Entry, error)
		strip  func(o *ActorOptions)
		err    error
	}{
		{"player without space", CreatePlayer, func(o *ActorOptions) { o.Space = nil }, ErrMissingSpace},
		{"player without playback", CreatePlayer, func(o *ActorOptions) { o.Playback = nil }, ErrMissingPlayback},
		{"player without intent", CreatePlayer, func(o *ActorOptions) { o.Intent = nil }, ErrMissingIntent},
		{"enemy without rand", CreateEnemy, func(o *ActorOptions) { o.Rand = nil }, ErrMissingRand},
		{"enemy without playback", CreateEnemy, func(o *ActorOptions) { o.Playback = nil }, ErrMissingPlayback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := full
			tt.strip(&opts)
			e, err := tt.create(w, opts)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, e)
		})
	}
}

func TestMissingClipIsRefused(t *testing.T) {
	w, space := newWorld(t)
	delete(cfg.Animation.Clips, "climb")

	_, err := CreatePlayer(w, ActorOptions{Space: space, Playback: NewPlayback(), Intent: &intent.Buffer{}})
	require.ErrorIs(t, err, ErrMissingClip)
	assert.Contains(t, err.Error(), "climb")

	// Enemies never climb.
	_, err = CreateEnemy(w, ActorOptions{Space: space, Playback: NewPlayback(), Rand: engine.NewRand(1)})
	assert.NoError(t, err)
}

func TestActorWiring(t *testing.T) {
	w, space := newWorld(t)

	player, err := CreatePlayer(w, ActorOptions{X: 100, Y: 200, Space: space, Playback: NewPlayback(), Intent: &intent.Buffer{}})
	require.NoError(t, err)
	enemy, err := CreateEnemy(w, ActorOptions{X: 600, Y: 200, Space: space, Playback: NewPlayback(), Rand: engine.NewRand(1)})
	require.NoError(t, err)

	t.Run("serials follow creation order", func(t *testing.T) {
		assert.Equal(t, 1, components.Actor.Get(player).Serial)
		assert.Equal(t, 2, components.Actor.Get(enemy).Serial)
	})

	t.Run("bodies are sized from config", func(t *testing.T) {
		obj := components.Object.Get(player).Object
		assert.Equal(t, cfg.Player.CollisionWidth, obj.W)
		assert.Equal(t, cfg.Player.CollisionHeight, obj.H)
		assert.Equal(t, player, obj.Data)
		assert.Equal(t, cfg.Enemy.CollisionWidth, components.Object.Get(enemy).W)
	})

	t.Run("actors start idle at full health", func(t *testing.T) {
		for _, e := range []*donburi.Entry{player, enemy} {
			assert.Equal(t, cfg.Idle, components.State.Get(e).CurrentState)
			health := components.Health.Get(e)
			assert.Equal(t, health.Max, health.Current)
		}
		assert.Equal(t, components.FacingRight, components.Actor.Get(player).Facing)
		assert.Equal(t, components.FacingLeft, components.Actor.Get(enemy).Facing)
	})

	t.Run("enemies without intent get a brain", func(t *testing.T) {
		actor := components.Actor.Get(enemy)
		require.NotNil(t, actor.Brain)
		assert.Equal(t, actor.Intent, actor.Brain)
		assert.Nil(t, components.Actor.Get(player).Brain)

		inc := components.Enemy.Get(enemy).Inconstancy
		assert.GreaterOrEqual(t, inc, cfg.Enemy.InconstancyMin)
		assert.LessOrEqual(t, inc, cfg.Enemy.InconstancyMax)
	})

	t.Run("one disabled hitbox per tier", func(t *testing.T) {
		hitboxes := components.Combat.Get(player).Hitboxes
		require.Len(t, hitboxes, len(cfg.PlayerActions.Hitboxes))
		for tier, hb := range hitboxes {
			data := components.Hitbox.Get(hb)
			assert.Equal(t, tier, data.Tier)
			assert.Equal(t, player, data.Owner)
			assert.True(t, data.Attached)
			assert.False(t, data.Enabled)
		}
		assert.Len(t, components.Combat.Get(enemy).Hitboxes, len(cfg.EnemyActions.Hitboxes))
	})

	t.Run("validate catches a lost hitbox", func(t *testing.T) {
		require.NoError(t, Validate(enemy))
		hitboxes := components.Combat.Get(enemy).Hitboxes
		hitboxes[cfg.TierHeavy].Remove()
		assert.ErrorIs(t, Validate(enemy), ErrMissingHitbox)
	})
}

func TestCreateArena(t *testing.T) {
	w, _ := newWorld(t)
	space := resolv.NewSpace(cfg.Sim.ArenaWidth, cfg.Sim.ArenaHeight, cfg.Sim.CellSize, cfg.Sim.CellSize)

	arena := CreateArena(w, space, 3)
	assert.Equal(t, float64(cfg.Sim.ArenaHeight-cfg.Sim.GroundHeight), arena.FloorY)
	require.Len(t, arena.EnemySpawnX, 3)
	for _, x := range arena.EnemySpawnX {
		assert.Greater(t, x, arena.PlayerSpawnX)
		assert.LessOrEqual(t, x+cfg.Enemy.CollisionWidth, arena.Width)
	}

	// Floor, two walls, a platform and a climbable column.
	assert.Len(t, space.Objects(), 5)

	empty := resolv.NewSpace(cfg.Sim.ArenaWidth, cfg.Sim.ArenaHeight, cfg.Sim.CellSize, cfg.Sim.CellSize)
	assert.Empty(t, CreateArena(donburi.NewWorld(), empty, 0).EnemySpawnX)
}
