package scenes

import (
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/logger"
	"github.com/automoto/prism-runner/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// ArenaScene drives the simulation from ebiten's fixed-rate Update and
// renders it with primitive shapes.
type ArenaScene struct {
	sim    *sim.Simulation
	input  *DeviceIntent
	reload <-chan string
	paused bool
}

// NewArenaScene builds the simulation with a device-fed player. reload may
// be nil.
func NewArenaScene(reload <-chan string) (*ArenaScene, error) {
	input := &DeviceIntent{}
	s, err := sim.New(sim.DefaultOptions(input))
	if err != nil {
		return nil, err
	}
	s.ECS.AddRenderer(LayerWorld, DrawArena)
	s.ECS.AddRenderer(LayerWorld, DrawEffects)
	s.ECS.AddRenderer(LayerWorld, DrawActors)
	s.ECS.AddRenderer(LayerDebug, DrawHitboxes)
	s.ECS.AddRenderer(LayerHUD, DrawHUD)

	return &ArenaScene{sim: s, input: input, reload: reload}, nil
}

func (as *ArenaScene) Update() error {
	select {
	case path := <-as.reload:
		if err := config.Load(path); err != nil {
			logger.Warn("config reload rejected", zap.String("path", path), zap.Error(err))
			break
		}
		as.sim.ApplyTuning()
		ebiten.SetTPS(config.Sim.TickRate)
		logger.Info("config reloaded", zap.String("path", path), zap.Int("tick", as.sim.Ticks()))
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		as.paused = !as.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		config.C.Debug = !config.C.Debug
	}
	if as.paused {
		return nil
	}

	as.input.Poll()
	as.sim.Tick()
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	as.sim.ECS.Draw(screen)
}
