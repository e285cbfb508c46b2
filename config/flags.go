package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging and hitbox overlay")
	flagSeed    = flag.Int64("seed", 0, "Random seed (0 keeps the configured seed)")
	flagEnemies = flag.Int("enemies", -1, "Number of enemies to spawn")
	flagLogFile = flag.String("log-file", "", "Write logs to this file as well")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *fileConfig) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Window.Debug = true
	}
	if *flagSeed != 0 {
		cfg.Sim.Seed = *flagSeed
	}
	if *flagEnemies >= 0 {
		cfg.Sim.Enemies = *flagEnemies
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
