package config

import "image/color"

// AttackTier names a damage/knockback profile.
type AttackTier string

const (
	TierBasic      AttackTier = "basic"
	TierStrong     AttackTier = "strong"
	TierPlunge     AttackTier = "plunge"
	TierGroundSlam AttackTier = "ground_slam"
	TierAura       AttackTier = "aura"
	TierLight      AttackTier = "light"
	TierHeavy      AttackTier = "heavy"
)

// KnockbackSign selects how the horizontal knockback sign is derived.
type KnockbackSign string

const (
	// SignNone applies no knockback at all.
	SignNone KnockbackSign = "none"
	// SignFacing follows the attacker's facing.
	SignFacing KnockbackSign = "facing"
	// SignAway pushes the victim away from the attacker's position.
	SignAway KnockbackSign = "away"
)

// TierConfig is the damage profile of one attack tier.
type TierConfig struct {
	Damage     float64       `yaml:"damage"`
	Resisted   float64       `yaml:"resisted"` // applied instead of Damage against a resistant victim
	KnockbackX float64       `yaml:"knockback_x"`
	KnockbackY float64       `yaml:"knockback_y"`
	Sign       KnockbackSign `yaml:"sign"`
}

// HitboxShape positions a hitbox relative to its owner's body.
type HitboxShape struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"` // distance in front of the body, mirrored by facing
	OffsetY float64 `yaml:"offset_y"` // from the body's top edge
	// Centered hitboxes ignore facing and sit on the body's horizontal centre.
	Centered bool `yaml:"centered"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`        // added to vertical velocity every airborne tick
	MaxFallSpeed       float64 `yaml:"max_fall_speed"` // units per second
	PlungeBoost        float64 `yaml:"plunge_boost"`
	PlungeGravityScale float64 `yaml:"plunge_gravity_scale"`
	MaxPlungeSpeed     float64 `yaml:"max_plunge_speed"`
	PlatformTolerance  float64 `yaml:"platform_tolerance"` // pixels above a one-way platform that still land
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	MaxHealth    float64 `yaml:"max_health"`
	Regen        float64 `yaml:"regen"` // hp per tick
	SlideScale   float64 `yaml:"slide_scale"`
	DashScale    float64 `yaml:"dash_scale"`
	LungeScale   float64 `yaml:"lunge_scale"`
	ClimbScale   float64 `yaml:"climb_scale"`
	LungeFrames  int     `yaml:"lunge_frames"` // strong attack frames that carry the lunge
	HitDamping   float64 `yaml:"hit_damping"`
	DeathDamping float64 `yaml:"death_damping"`

	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// EnemyConfig contains enemy AI and body configuration
type EnemyConfig struct {
	Speed        float64 `yaml:"speed"`
	MaxHealth    float64 `yaml:"max_health"`
	Regen        float64 `yaml:"regen"`
	HitDamping   float64 `yaml:"hit_damping"`
	DeathDamping float64 `yaml:"death_damping"`

	// Aggro hysteresis band on horizontal distance.
	AggroRange   float64 `yaml:"aggro_range"`
	DeaggroRange float64 `yaml:"deaggro_range"`
	AttackRange  float64 `yaml:"attack_range"`

	InconstancyMin float64 `yaml:"inconstancy_min"`
	InconstancyMax float64 `yaml:"inconstancy_max"`
	FlipDelayMin   float64 `yaml:"flip_delay_min"` // seconds
	FlipDelayMax   float64 `yaml:"flip_delay_max"`

	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	Tiers    map[AttackTier]TierConfig  `yaml:"tiers"`
	Hitboxes map[AttackTier]HitboxShape `yaml:"hitboxes"`
}

// CooldownConfig holds the cooldown length of every gated action, in seconds.
type CooldownConfig struct {
	Durations map[ActionKind]float64 `yaml:"durations"`
}

// ClipConfig describes one animation clip.
type ClipConfig struct {
	Frames        int     `yaml:"frames"`
	TicksPerFrame float32 `yaml:"ticks_per_frame"`
	Loop          bool    `yaml:"loop"`
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	Clips map[string]ClipConfig `yaml:"clips"`
}

// CameraConfig contains camera follow and shake configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"`
	OffsetY         float64 `yaml:"offset_y"`
	MaxShake        float64 `yaml:"max_shake"`
	ShakeDecay      float32 `yaml:"shake_decay"` // seconds for a shake to settle
	ShakeScale      float64 `yaml:"shake_scale"` // pixels of offset per unit of shake power
}

// EffectConfig contains transient effect configuration
type EffectConfig struct {
	AuraSpeed   float64 `yaml:"aura_speed"` // pixels per tick
	AuraOffsetX float64 `yaml:"aura_offset_x"`
	AuraDelay   float64 `yaml:"aura_delay"` // seconds before fading starts
	AuraFade    float32 `yaml:"aura_fade"`
	AuraWidth   float64 `yaml:"aura_width"`
	AuraHeight  float64 `yaml:"aura_height"`
	CrackDelay  float64 `yaml:"crack_delay"`
	CrackFade   float32 `yaml:"crack_fade"`
	CrackWidth  float64 `yaml:"crack_width"`
	CrackHeight float64 `yaml:"crack_height"`
}

// SimConfig contains simulation loop and arena configuration
type SimConfig struct {
	TickRate     int   `yaml:"tick_rate"`
	Seed         int64 `yaml:"seed"`
	ArenaWidth   int   `yaml:"arena_width"`
	ArenaHeight  int   `yaml:"arena_height"`
	CellSize     int   `yaml:"cell_size"`
	GroundHeight int   `yaml:"ground_height"`
	Enemies      int   `yaml:"enemies"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Config holds window and debug settings for the demo.
type Config struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Debug  bool `yaml:"debug"`
}

var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Cooldown CooldownConfig
var Animation AnimationConfig
var Camera CameraConfig
var Effects EffectConfig
var Sim SimConfig
var Logging LoggingConfig

// Colours used by the demo renderer.
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
)

func init() {
	Reset()
}

// Reset restores every tuning table to its built-in default.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Physics = PhysicsConfig{
		Gravity:            980.0 / 35.0,
		MaxFallSpeed:       750,
		PlungeBoost:        300,
		PlungeGravityScale: 1.5,
		MaxPlungeSpeed:     1200,
		PlatformTolerance:  4,
	}

	Player = PlayerConfig{
		Speed:        450,
		JumpSpeed:    600,
		MaxHealth:    100,
		Regen:        0.1,
		SlideScale:   1.25,
		DashScale:    2,
		LungeScale:   2,
		ClimbScale:   0.5,
		LungeFrames:  5,
		HitDamping:   0.1,
		DeathDamping: 0.1,

		CollisionWidth:  40,
		CollisionHeight: 96,
	}

	Enemy = EnemyConfig{
		Speed:        250,
		MaxHealth:    100,
		Regen:        0.05,
		HitDamping:   0.1,
		DeathDamping: 0.1,

		AggroRange:   600,
		DeaggroRange: 800,
		AttackRange:  200,

		InconstancyMin: -50,
		InconstancyMax: 50,
		FlipDelayMin:   0.2,
		FlipDelayMax:   0.6,

		CollisionWidth:  48,
		CollisionHeight: 96,
	}

	Combat = CombatConfig{
		Tiers: map[AttackTier]TierConfig{
			TierBasic:      {Damage: 15, Resisted: 7.5, KnockbackX: 0, KnockbackY: -400, Sign: SignFacing},
			TierStrong:     {Damage: 35, Resisted: 25, KnockbackX: 300, KnockbackY: -500, Sign: SignFacing},
			TierPlunge:     {Damage: 35, Resisted: 25, KnockbackX: 0, KnockbackY: 400, Sign: SignFacing},
			TierGroundSlam: {Damage: 50, Resisted: 30, KnockbackX: 1000, KnockbackY: -1500, Sign: SignAway},
			TierAura:       {Damage: 40, Resisted: 20, Sign: SignNone},
			TierLight:      {Damage: 10, Resisted: 5, KnockbackX: 300, KnockbackY: -300, Sign: SignAway},
			TierHeavy:      {Damage: 20, Resisted: 12, KnockbackX: 600, KnockbackY: -600, Sign: SignAway},
		},
		Hitboxes: map[AttackTier]HitboxShape{
			TierBasic:      {Width: 70, Height: 60, OffsetX: 0, OffsetY: 20},
			TierStrong:     {Width: 110, Height: 80, OffsetX: 0, OffsetY: 10},
			TierPlunge:     {Width: 60, Height: 40, OffsetY: 80, Centered: true},
			TierGroundSlam: {Width: 320, Height: 60, OffsetY: 60, Centered: true},
			TierAura:       {Width: 60, Height: 90},
			TierLight:      {Width: 60, Height: 50, OffsetX: 0, OffsetY: 30},
			TierHeavy:      {Width: 90, Height: 70, OffsetX: 0, OffsetY: 20},
		},
	}

	Cooldown = CooldownConfig{
		Durations: map[ActionKind]float64{
			CooldownStrong:     1.0,
			CooldownAura:       3.0,
			CooldownFallAttack: 1.5,
			CooldownClimb:      0.5,
			CooldownEnemyLight: 1.0,
			CooldownEnemyHeavy: 3.0,
		},
	}

	Animation = AnimationConfig{
		Clips: map[string]ClipConfig{
			"idle":                 {Frames: 6, TicksPerFrame: 6, Loop: true},
			"run":                  {Frames: 8, TicksPerFrame: 4, Loop: true},
			"jump":                 {Frames: 3, TicksPerFrame: 6, Loop: true},
			"fall":                 {Frames: 3, TicksPerFrame: 6, Loop: true},
			"slide":                {Frames: 8, TicksPerFrame: 4},
			"dash":                 {Frames: 5, TicksPerFrame: 3},
			"dash_finished":        {Frames: 3, TicksPerFrame: 4},
			"basic_attack":         {Frames: 12, TicksPerFrame: 3},
			"dash_attack":          {Frames: 10, TicksPerFrame: 4},
			"aura_attack":          {Frames: 8, TicksPerFrame: 5},
			"fall_attack":          {Frames: 3, TicksPerFrame: 4, Loop: true},
			"fall_attack_finished": {Frames: 6, TicksPerFrame: 4},
			"climb":                {Frames: 6, TicksPerFrame: 6, Loop: true},
			"hit":                  {Frames: 4, TicksPerFrame: 5},
			"death":                {Frames: 8, TicksPerFrame: 6},
			"attack1":              {Frames: 8, TicksPerFrame: 4},
			"attack2":              {Frames: 10, TicksPerFrame: 5},
		},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		OffsetY:         -200,
		MaxShake:        100,
		ShakeDecay:      0.4,
		ShakeScale:      0.2,
	}

	Effects = EffectConfig{
		AuraSpeed:   10,
		AuraOffsetX: 50,
		AuraDelay:   0.3,
		AuraFade:    0.15,
		CrackDelay:  3.0,
		CrackFade:   4.25,
		CrackWidth:  160,
		CrackHeight: 20,
		AuraWidth:   60,
		AuraHeight:  90,
	}

	Sim = SimConfig{
		TickRate:     60,
		Seed:         1,
		ArenaWidth:   3200,
		ArenaHeight:  1200,
		CellSize:     16,
		GroundHeight: 64,
		Enemies:      2,
	}

	Logging = LoggingConfig{
		Level: "info",
	}

	resetTables()
}
