package sim

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/intent"
	"github.com/automoto/prism-runner/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func resetConfig(t *testing.T) {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)
}

func newBotSim(t *testing.T, seed int64) *Simulation {
	t.Helper()
	src, err := intent.LoadScript("bot.tengo")
	require.NoError(t, err)
	bot, err := intent.NewScript(src)
	require.NoError(t, err)

	opts := DefaultOptions(bot)
	opts.Seed = seed
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	resetConfig(t)
	s := newBotSim(t, 1)

	require.Len(t, s.Enemies, config.Sim.Enemies)
	assert.Equal(t, 1.0/60, s.Dt())
	assert.Zero(t, s.Ticks())
	assert.Equal(t, s.World, s.ECS.World)

	snap := s.Snapshot()
	require.Len(t, snap, 1+config.Sim.Enemies)
	assert.Equal(t, config.KindPlayer, snap[0].Kind)
	for i, a := range snap {
		assert.Equal(t, i+1, a.Serial)
		assert.Equal(t, config.Idle, a.State)
	}
}

func TestNewRejectsBadWiring(t *testing.T) {
	resetConfig(t)

	t.Run("no player intent", func(t *testing.T) {
		_, err := New(DefaultOptions(nil))
		assert.Error(t, err)
	})

	t.Run("zero tick rate", func(t *testing.T) {
		config.Sim.TickRate = 0
		defer config.Reset()
		_, err := New(DefaultOptions(&intent.Buffer{}))
		assert.ErrorContains(t, err, "tick rate")
	})
}

func TestSameSeedSameRun(t *testing.T) {
	resetConfig(t)
	a := newBotSim(t, 42)
	b := newBotSim(t, 42)

	for i := 0; i < 20; i++ {
		a.Run(60)
		b.Run(60)
		require.Equal(t, a.Snapshot(), b.Snapshot(), "diverged by tick %d", a.Ticks())
	}
	assert.Equal(t, 1200, a.Ticks())
}

func TestTickRunsTheScheduler(t *testing.T) {
	resetConfig(t)
	s := newBotSim(t, 1)

	s.Tick()
	s.ECS.Update()
	assert.Equal(t, 2, s.Ticks(), "Tick and a bare scheduler update are the same step")
}

func TestActorsStayInArena(t *testing.T) {
	resetConfig(t)
	s := newBotSim(t, 7)
	s.Run(1800)

	for _, a := range s.Snapshot() {
		assert.GreaterOrEqual(t, a.X, 0.0, "actor %d", a.Serial)
		assert.LessOrEqual(t, a.X, s.Arena.Width, "actor %d", a.Serial)
		assert.LessOrEqual(t, a.Y, s.Arena.FloorY, "actor %d", a.Serial)
		assert.GreaterOrEqual(t, a.HP, 0.0)
	}
}

func TestLoop(t *testing.T) {
	resetConfig(t)

	t.Run("stops after max ticks", func(t *testing.T) {
		s := newBotSim(t, 1)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		require.NoError(t, s.Loop(ctx, 5, nil))
		assert.Equal(t, 5, s.Ticks())
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		s := newBotSim(t, 1)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, s.Loop(ctx, 0, nil), context.Canceled)
	})
}

func TestLoopReload(t *testing.T) {
	resetConfig(t)
	defer logger.Set(nil)
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Set(zap.New(core))

	s := newBotSim(t, 1)
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte("player:\n  speed: 600\n  max_health: 80\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("sim:\n  tick_rate: 0\n"), 0o644))

	reload := make(chan string, 2)
	reload <- bad
	reload <- good

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// Queued reloads are handled before the ticker first fires.
	require.NoError(t, s.Loop(ctx, 3, reload))

	assert.Equal(t, 1, logs.FilterMessage("config reload rejected").Len())
	assert.Equal(t, 1, logs.FilterMessage("config reloaded").Len())
	assert.Equal(t, 60, config.Sim.TickRate, "rejected file left config untouched")

	assert.Equal(t, 600.0, config.Player.Speed)
	for _, a := range s.Snapshot() {
		if a.Kind == config.KindPlayer {
			assert.LessOrEqual(t, a.HP, 80.0, "health clamps to the new max")
		}
	}
}
