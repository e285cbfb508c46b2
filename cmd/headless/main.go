// Command headless runs the arena without a window: the player is driven by
// a tengo bot script and the result is logged when the run ends.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/intent"
	"github.com/automoto/prism-runner/logger"
	"github.com/automoto/prism-runner/sim"
	"go.uber.org/zap"
)

var (
	flagTicks    = flag.Int("ticks", 3600, "Number of ticks to simulate (0 runs until interrupted)")
	flagScript   = flag.String("script", "bot.tengo", "Embedded bot script driving the player, or a file path")
	flagRealtime = flag.Bool("realtime", false, "Pace ticks at the configured tick rate")
)

func main() {
	config.ParseFlags()
	if err := config.Load(config.ConfigPath()); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(config.Logging.Level, config.Logging.LogFile); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	src, err := readScript(*flagScript)
	if err != nil {
		logger.Error("script not found", zap.String("script", *flagScript), zap.Error(err))
		os.Exit(1)
	}
	bot, err := intent.NewScript(src)
	if err != nil {
		logger.Error("script rejected", zap.String("script", *flagScript), zap.Error(err))
		os.Exit(1)
	}

	s, err := sim.New(sim.DefaultOptions(bot))
	if err != nil {
		os.Exit(1)
	}

	if *flagRealtime || *flagTicks <= 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var reload <-chan string
		if path := config.ActivePath(); path != "" {
			if watcher, err := config.NewWatcher(path); err == nil {
				defer watcher.Close()
				reload = watcher.Events
			}
		}
		_ = s.Loop(ctx, *flagTicks, reload)
	} else {
		s.Run(*flagTicks)
	}

	for _, a := range s.Snapshot() {
		logger.Info("actor",
			zap.Int("serial", a.Serial),
			zap.Stringer("kind", a.Kind),
			zap.Stringer("state", a.State),
			zap.Float64("hp", a.HP),
			zap.Float64("x", a.X),
			zap.Float64("y", a.Y),
		)
	}
	logger.Info("run complete", zap.Int("ticks", s.Ticks()))
}

// readScript prefers a file on disk and falls back to the embedded scripts.
func readScript(name string) ([]byte, error) {
	if src, err := os.ReadFile(name); err == nil {
		return src, nil
	}
	return intent.LoadScript(name)
}
