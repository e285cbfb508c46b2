package systems

import (
	"testing"

	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/automoto/prism-runner/intent"
	"github.com/automoto/prism-runner/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const (
	testFloorY = 600.0
	testDt     = 1.0 / 60
)

type shakeRecorder struct {
	powers []int
}

func (s *shakeRecorder) Shake(power int) {
	s.powers = append(s.powers, power)
}

type spawnRecorder struct {
	kinds     []string
	flipped   []bool
	positions []math.Vec2
	owners    []*donburi.Entry
}

func (s *spawnRecorder) Spawn(kind string, pos math.Vec2, flipped bool, owner *donburi.Entry) {
	s.kinds = append(s.kinds, kind)
	s.flipped = append(s.flipped, flipped)
	s.positions = append(s.positions, pos)
	s.owners = append(s.owners, owner)
}

// fixture is a flat floor with one player driven by a test buffer.
type fixture struct {
	t       *testing.T
	ecs     *ecs.ECS
	w       donburi.World
	space   *resolv.Space
	player  *donburi.Entry
	input   *intent.Buffer
	shake   *shakeRecorder
	spawner *spawnRecorder
	rng     engine.Rand
}

// newFixture resets config, applies tune, then builds the world. Regen is
// off so health assertions are exact.
func newFixture(t *testing.T, tune func()) *fixture {
	t.Helper()
	config.Reset()
	config.Player.Regen = 0
	config.Enemy.Regen = 0
	if tune != nil {
		tune()
	}
	t.Cleanup(config.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	w := e.World
	spaceEntry := factory.CreateSpace(w, 4000, 1000, 16, 16)
	space := components.Space.Get(spaceEntry).Space
	factory.CreateDamageQueue(w)
	factory.CreateGround(w, space, 0, testFloorY, 4000, 64)

	f := &fixture{
		t:       t,
		ecs:     e,
		w:       w,
		space:   space,
		input:   &intent.Buffer{},
		shake:   &shakeRecorder{},
		spawner: &spawnRecorder{},
		rng:     engine.NewRand(7),
	}

	player, err := factory.CreatePlayer(w, factory.ActorOptions{
		X:        300,
		Y:        testFloorY - config.Player.CollisionHeight,
		Facing:   components.FacingRight,
		Space:    space,
		Playback: factory.NewPlayback(),
		Intent:   f.input,
	})
	require.NoError(t, err)
	f.player = player
	factory.CreateCamera(w, player)
	factory.CreateClock(w, components.ClockData{
		Dt:      testDt,
		Rand:    f.rng,
		Shake:   f.shake,
		Spawner: f.spawner,
	})

	e.AddSystem(UpdateBrains)
	e.AddSystem(UpdateLocomotion)
	e.AddSystem(UpdateCollisions)
	e.AddSystem(UpdateCombat)
	e.AddSystem(UpdateActions)
	e.AddSystem(UpdateAnimation)
	e.AddSystem(UpdateHitboxGate)
	e.AddSystem(UpdateCooldowns)
	e.AddSystem(UpdateEffects)
	e.AddSystem(UpdateCamera)
	e.AddSystem(UpdateClock)
	return f
}

// addEnemy places an enemy driven by its own buffer, so it only acts when
// the test presses for it.
func (f *fixture) addEnemy(x float64, facing components.Facing) (*donburi.Entry, *intent.Buffer) {
	f.t.Helper()
	buf := &intent.Buffer{}
	enemy, err := factory.CreateEnemy(f.w, factory.ActorOptions{
		X:        x,
		Y:        testFloorY - config.Enemy.CollisionHeight,
		Facing:   facing,
		Space:    f.space,
		Playback: factory.NewPlayback(),
		Intent:   buf,
		Rand:     f.rng,
	})
	require.NoError(f.t, err)
	return enemy, buf
}

func (f *fixture) step() {
	f.ecs.Update()
}

func (f *fixture) tick() int {
	return clockOf(f.w).Tick
}

// press holds exactly the given actions for one tick.
func (f *fixture) press(actions ...config.ActionID) {
	f.input.Latch(actions...)
	f.step()
}

// idle runs n ticks with nothing held.
func (f *fixture) idle(n int) {
	for i := 0; i < n; i++ {
		f.press()
	}
}

// until runs ticks with nothing held until cond holds, failing after limit.
func (f *fixture) until(limit int, cond func() bool) {
	f.t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return
		}
		f.press()
	}
	require.True(f.t, cond(), "condition not reached in %d ticks", limit)
}

func stateOf(e *donburi.Entry) config.StateID {
	return components.State.Get(e).CurrentState
}

func hpOf(e *donburi.Entry) float64 {
	return components.Health.Get(e).Current
}
