package main

import (
	"log"

	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/fonts"
	"github.com/automoto/prism-runner/logger"
	"github.com/automoto/prism-runner/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	config.ParseFlags()
	if err := config.Load(config.ConfigPath()); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(config.Logging.Level, config.Logging.LogFile); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	fonts.LoadDefaults()

	var reload <-chan string
	if path := config.ActivePath(); path != "" {
		watcher, err := config.NewWatcher(path)
		if err != nil {
			logger.Warn("config watch disabled", zap.String("path", path), zap.Error(err))
		} else {
			defer watcher.Close()
			reload = watcher.Events
			go func() {
				for err := range watcher.Errors {
					logger.Warn("config watch error", zap.Error(err))
				}
			}()
		}
	}

	scene, err := scenes.NewArenaScene(reload)
	if err != nil {
		logger.Error("Failed to build arena", zap.Error(err))
		return
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("prism runner")
	ebiten.SetTPS(config.Sim.TickRate)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		logger.Error("game exited", zap.Error(err))
	}
}
