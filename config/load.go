package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// healthCap bounds max_health; hit points live in [0,100].
const healthCap = 100.0

// fileConfig is the YAML layout of a tuning file. Sections that are absent
// keep their current values; map entries replace the matching default entry.
type fileConfig struct {
	Window    Config          `yaml:"window"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Combat    CombatConfig    `yaml:"combat"`
	Cooldown  CooldownConfig  `yaml:"cooldown"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	Effects   EffectConfig    `yaml:"effects"`
	Sim       SimConfig       `yaml:"sim"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Load loads configuration with priority: defaults < file < flags.
// An empty path falls back to ./config.yaml when present. On error the
// current configuration is left untouched.
func Load(path string) error {
	cfg := snapshot()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(&cfg, path); err != nil {
			return fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(&cfg)

	if err := cfg.validate(); err != nil {
		return err
	}
	cfg.apply()
	return nil
}

// ActivePath returns the config file Load reads: the --config flag when
// set, otherwise the first default location that exists.
func ActivePath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	return findConfigFile()
}

// findConfigFile looks for config in the working directory.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join("config", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *fileConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func snapshot() fileConfig {
	cfg := fileConfig{
		Window:    *C,
		Physics:   Physics,
		Player:    Player,
		Enemy:     Enemy,
		Combat:    Combat,
		Cooldown:  Cooldown,
		Animation: Animation,
		Camera:    Camera,
		Effects:   Effects,
		Sim:       Sim,
		Logging:   Logging,
	}
	cfg.Combat.Tiers = maps.Clone(Combat.Tiers)
	cfg.Combat.Hitboxes = maps.Clone(Combat.Hitboxes)
	cfg.Cooldown.Durations = maps.Clone(Cooldown.Durations)
	cfg.Animation.Clips = maps.Clone(Animation.Clips)
	return cfg
}

func (cfg *fileConfig) apply() {
	window := cfg.Window
	C = &window
	Physics = cfg.Physics
	Player = cfg.Player
	Enemy = cfg.Enemy
	Combat = cfg.Combat
	Cooldown = cfg.Cooldown
	Animation = cfg.Animation
	Camera = cfg.Camera
	Effects = cfg.Effects
	Sim = cfg.Sim
	Logging = cfg.Logging
}

// Validate checks the active configuration.
func Validate() error {
	cfg := snapshot()
	return cfg.validate()
}

func (cfg *fileConfig) validate() error {
	if cfg.Sim.TickRate <= 0 {
		return fmt.Errorf("%w: sim.tick_rate must be positive, got %d", ErrInvalid, cfg.Sim.TickRate)
	}
	if cfg.Sim.CellSize <= 0 {
		return fmt.Errorf("%w: sim.cell_size must be positive, got %d", ErrInvalid, cfg.Sim.CellSize)
	}
	if cfg.Player.Speed <= 0 || cfg.Enemy.Speed <= 0 {
		return fmt.Errorf("%w: actor speeds must be positive", ErrInvalid)
	}
	if cfg.Player.MaxHealth <= 0 || cfg.Enemy.MaxHealth <= 0 {
		return fmt.Errorf("%w: max_health must be positive", ErrInvalid)
	}
	if cfg.Player.MaxHealth > healthCap || cfg.Enemy.MaxHealth > healthCap {
		return fmt.Errorf("%w: max_health must not exceed %.0f", ErrInvalid, healthCap)
	}
	for name, d := range map[string]float64{
		"player.hit_damping":   cfg.Player.HitDamping,
		"player.death_damping": cfg.Player.DeathDamping,
		"enemy.hit_damping":    cfg.Enemy.HitDamping,
		"enemy.death_damping":  cfg.Enemy.DeathDamping,
	} {
		if d < 0 || d > 1 {
			return fmt.Errorf("%w: %s must be within [0,1], got %g", ErrInvalid, name, d)
		}
	}
	if cfg.Enemy.AggroRange > cfg.Enemy.DeaggroRange {
		return fmt.Errorf("%w: enemy.aggro_range %.0f exceeds deaggro_range %.0f",
			ErrInvalid, cfg.Enemy.AggroRange, cfg.Enemy.DeaggroRange)
	}
	if cfg.Camera.MaxShake < 0 {
		return fmt.Errorf("%w: camera.max_shake must not be negative", ErrInvalid)
	}
	if len(cfg.Animation.Clips) == 0 {
		return fmt.Errorf("%w: animation.clips is empty", ErrInvalid)
	}
	for name, clip := range cfg.Animation.Clips {
		if clip.Frames <= 0 {
			return fmt.Errorf("%w: clip %q has no frames", ErrInvalid, name)
		}
	}
	for _, table := range []*ActionTable{&PlayerActions, &EnemyActions} {
		for state, sc := range table.States {
			if _, ok := cfg.Animation.Clips[sc.Clip]; !ok {
				return fmt.Errorf("%w: state %s uses unknown clip %q", ErrInvalid, state, sc.Clip)
			}
		}
		for state, windows := range table.Gate {
			for _, w := range windows {
				if w.To >= 0 && w.To < w.From {
					return fmt.Errorf("%w: state %s has inverted gate window %d..%d", ErrInvalid, state, w.From, w.To)
				}
				for _, tier := range w.Hitboxes {
					if _, ok := cfg.Combat.Tiers[tier]; !ok {
						return fmt.Errorf("%w: state %s gates unknown tier %q", ErrInvalid, state, tier)
					}
				}
			}
		}
	}
	return nil
}
