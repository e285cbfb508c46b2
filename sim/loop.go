package sim

import (
	"context"
	"time"

	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/logger"
	"go.uber.org/zap"
)

// Loop ticks at config.Sim.TickRate until ctx is done or maxTicks have run.
// maxTicks <= 0 means no limit. Config paths received on reload are loaded
// between ticks so changes never land mid-tick. reload may be nil.
func (s *Simulation) Loop(ctx context.Context, maxTicks int, reload <-chan string) error {
	ticker := time.NewTicker(time.Second / time.Duration(config.Sim.TickRate))
	defer ticker.Stop()

	logger.Info("simulation loop started", zap.Int("max_ticks", maxTicks))
	for {
		select {
		case <-ctx.Done():
			logger.Info("simulation loop stopped", zap.Int("ticks", s.Ticks()))
			return ctx.Err()
		case path := <-reload:
			if err := config.Load(path); err != nil {
				logger.Warn("config reload rejected", zap.String("path", path), zap.Error(err))
				continue
			}
			s.ApplyTuning()
			ticker.Reset(time.Second / time.Duration(config.Sim.TickRate))
			logger.Info("config reloaded", zap.String("path", path), zap.Int("tick", s.Ticks()))
		case <-ticker.C:
			s.Tick()
			if maxTicks > 0 && s.Ticks() >= maxTicks {
				logger.Info("simulation loop finished", zap.Int("ticks", s.Ticks()))
				return nil
			}
		}
	}
}

// Run ticks n times without pacing.
func (s *Simulation) Run(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}
