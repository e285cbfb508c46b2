// Package sim owns the world and runs the fixed per-tick system order.
package sim

import (
	"fmt"
	"sort"

	"github.com/automoto/prism-runner/components"
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/automoto/prism-runner/logger"
	"github.com/automoto/prism-runner/systems"
	"github.com/automoto/prism-runner/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Options wires a simulation. PlayerIntent is required; the rest default
// from config.
type Options struct {
	Seed         int64
	Enemies      int
	PlayerIntent engine.IntentSource
	Rand         engine.Rand
	NewPlayback  func() engine.Playback
}

// DefaultOptions fills seed and enemy count from config.Sim.
func DefaultOptions(player engine.IntentSource) Options {
	return Options{
		Seed:         config.Sim.Seed,
		Enemies:      config.Sim.Enemies,
		PlayerIntent: player,
	}
}

type Simulation struct {
	ECS     *ecs.ECS
	World   donburi.World
	Space   *resolv.Space
	Arena   factory.Arena
	Player  *donburi.Entry
	Enemies []*donburi.Entry

	clock *donburi.Entry
}

// New builds the arena and its actors. It refuses to start when any actor
// is missing a collaborator.
func New(opts Options) (*Simulation, error) {
	if config.Sim.TickRate <= 0 {
		return nil, fmt.Errorf("sim: tick rate must be positive, got %d", config.Sim.TickRate)
	}
	rng := opts.Rand
	if rng == nil {
		rng = engine.NewRand(opts.Seed)
	}
	newPlayback := opts.NewPlayback
	if newPlayback == nil {
		newPlayback = func() engine.Playback { return factory.NewPlayback() }
	}

	e := ecs.NewECS(donburi.NewWorld())
	w := e.World
	spaceEntry := factory.CreateSpace(w, config.Sim.ArenaWidth, config.Sim.ArenaHeight, config.Sim.CellSize, config.Sim.CellSize)
	space := components.Space.Get(spaceEntry).Space
	factory.CreateDamageQueue(w)

	arena := factory.CreateArena(w, space, opts.Enemies)

	player, err := factory.CreatePlayer(w, factory.ActorOptions{
		X:        arena.PlayerSpawnX,
		Y:        arena.FloorY - config.Player.CollisionHeight,
		Facing:   components.FacingRight,
		Space:    space,
		Playback: newPlayback(),
		Intent:   opts.PlayerIntent,
	})
	if err != nil {
		logger.Error("player wiring failed", zap.Error(err))
		return nil, err
	}

	clock := factory.CreateClock(w, components.ClockData{
		Dt:      1 / float64(config.Sim.TickRate),
		Rand:    rng,
		Shake:   systems.CameraShake{World: w},
		Spawner: &factory.EffectSpawner{World: w, Space: space},
	})

	s := &Simulation{
		ECS:    e,
		World:  w,
		Space:  space,
		Arena:  arena,
		Player: player,
		clock:  clock,
	}

	for _, x := range arena.EnemySpawnX {
		enemy, err := factory.CreateEnemy(w, factory.ActorOptions{
			X:        x,
			Y:        arena.FloorY - config.Enemy.CollisionHeight,
			Facing:   components.FacingLeft,
			Space:    space,
			Playback: newPlayback(),
			Rand:     rng,
		})
		if err != nil {
			logger.Error("enemy wiring failed", zap.Error(err))
			return nil, err
		}
		s.Enemies = append(s.Enemies, enemy)
	}

	camera := factory.CreateCamera(w, player)
	cx, cy := bodyCenter(player)
	components.Camera.Get(camera).Position.X = cx
	components.Camera.Get(camera).Position.Y = cy + config.Camera.OffsetY

	e.AddSystem(systems.UpdateBrains)
	e.AddSystem(systems.UpdateLocomotion)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateActions)
	e.AddSystem(systems.UpdateAnimation)
	e.AddSystem(systems.UpdateHitboxGate)
	e.AddSystem(systems.UpdateCooldowns)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateClock)

	logger.Info("simulation ready",
		zap.Int64("seed", opts.Seed),
		zap.Int("enemies", len(s.Enemies)),
		zap.Int("tick_rate", config.Sim.TickRate),
	)
	return s, nil
}

// Tick advances the world by one fixed step. There is no suspension point
// inside a tick.
func (s *Simulation) Tick() {
	s.ECS.Update()
}

// Ticks returns how many ticks have run.
func (s *Simulation) Ticks() int {
	return components.Clock.Get(s.clock).Tick
}

// Dt is the fixed step in seconds.
func (s *Simulation) Dt() float64 {
	return components.Clock.Get(s.clock).Dt
}

// ApplyTuning pushes reloaded config values into live actors.
func (s *Simulation) ApplyTuning() {
	components.Clock.Get(s.clock).Dt = 1 / float64(config.Sim.TickRate)
	components.Actor.Each(s.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		health := components.Health.Get(e)
		if components.Actor.Get(e).Kind == config.KindEnemy {
			physics.Speed = config.Enemy.Speed
			health.Max, health.Regen = config.Enemy.MaxHealth, config.Enemy.Regen
		} else {
			physics.Speed = config.Player.Speed
			health.Max, health.Regen = config.Player.MaxHealth, config.Player.Regen
		}
		health.Clamp()
	})
}

func bodyCenter(e *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(e).Object
	return obj.X + obj.W/2, obj.Y + obj.H/2
}

// ActorSnapshot is a read-only view of one actor.
type ActorSnapshot struct {
	Serial     int
	Kind       config.ActorKind
	State      config.StateID
	HP         float64
	X, Y       float64
	Invincible bool
}

// Snapshot lists every actor ordered by serial.
func (s *Simulation) Snapshot() []ActorSnapshot {
	var out []ActorSnapshot
	components.Actor.Each(s.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		obj := components.Object.Get(e).Object
		out = append(out, ActorSnapshot{
			Serial:     actor.Serial,
			Kind:       actor.Kind,
			State:      components.State.Get(e).CurrentState,
			HP:         components.Health.Get(e).Current,
			X:          obj.X,
			Y:          obj.Y,
			Invincible: components.Combat.Get(e).Invincible,
		})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Serial < out[j].Serial })
	return out
}
