package config

// GateWindow enables a set of hitboxes and flags while the owner's clip frame
// lies within [From, To]. A negative To extends the window to the last frame.
type GateWindow struct {
	From, To   int
	Hitboxes   []AttackTier
	Invincible bool
	Resistant  bool
	Shake      int    // camera shake fired once per activation
	Spawn      string // effect spawned once per activation
}

// Contains reports whether frame lies inside the window.
func (w GateWindow) Contains(frame int) bool {
	if frame < w.From {
		return false
	}
	return w.To < 0 || frame <= w.To
}

// Enables reports whether tier is part of the window's hitbox set.
func (w GateWindow) Enables(tier AttackTier) bool {
	for _, t := range w.Hitboxes {
		if t == tier {
			return true
		}
	}
	return false
}

// ActionTable is the per-kind transition table plus the hitbox gate.
type ActionTable struct {
	States map[StateID]StateConfig
	Gate   map[StateID][]GateWindow
	// Hitboxes lists the tiers an actor of this kind carries.
	Hitboxes []AttackTier
}

// Effect kinds spawned from gate windows.
const (
	EffectSwordAura   = "sword_aura"
	EffectGroundCrack = "ground_crack"
)

var PlayerActions ActionTable
var EnemyActions ActionTable

// Actions returns the table for an actor kind.
func Actions(kind ActorKind) *ActionTable {
	if kind == KindEnemy {
		return &EnemyActions
	}
	return &PlayerActions
}

func resetTables() {
	PlayerActions = ActionTable{
		States: map[StateID]StateConfig{
			Idle:              {Clip: "idle", Interruptible: true},
			Run:               {Clip: "run", Interruptible: true},
			Jump:              {Clip: "jump", Interruptible: true},
			Fall:              {Clip: "fall", Interruptible: true},
			Slide:             {Clip: "slide"},
			Dash:              {Clip: "dash", Invincible: true},
			DashRecover:       {Clip: "dash_finished", Interruptible: true},
			BasicAttack:       {Clip: "basic_attack"},
			StrongAttack:      {Clip: "dash_attack", Invincible: true, Cooldown: CooldownStrong},
			AuraAttack:        {Clip: "aura_attack", Cooldown: CooldownAura},
			FallAttack:        {Clip: "fall_attack", Invincible: true, Cooldown: CooldownFallAttack},
			FallAttackRecover: {Clip: "fall_attack_finished", Invincible: true},
			Climb:             {Clip: "climb", Cooldown: CooldownClimb},
			Hit:               {Clip: "hit"},
			Death:             {Clip: "death"},
		},
		Gate: map[StateID][]GateWindow{
			Slide: {
				{From: 0, To: 5, Invincible: true},
			},
			BasicAttack: {
				{From: 5, To: 6, Hitboxes: []AttackTier{TierBasic}},
				{From: 9, To: 10, Hitboxes: []AttackTier{TierBasic}},
			},
			StrongAttack: {
				{From: 6, To: 7, Hitboxes: []AttackTier{TierStrong}, Shake: 30},
			},
			AuraAttack: {
				{From: 0, To: 2, Invincible: true},
				{From: 3, To: 4, Hitboxes: []AttackTier{TierStrong}, Shake: 30, Spawn: EffectSwordAura},
			},
			FallAttack: {
				{From: 0, To: -1, Hitboxes: []AttackTier{TierPlunge}},
			},
			FallAttackRecover: {
				{From: 0, To: 0, Shake: 75, Spawn: EffectGroundCrack},
				{From: 1, To: 1, Hitboxes: []AttackTier{TierGroundSlam}},
			},
		},
		Hitboxes: []AttackTier{TierBasic, TierStrong, TierPlunge, TierGroundSlam},
	}

	EnemyActions = ActionTable{
		States: map[StateID]StateConfig{
			Idle:         {Clip: "idle", Interruptible: true},
			Run:          {Clip: "run", Interruptible: true},
			Jump:         {Clip: "jump", Interruptible: true},
			Fall:         {Clip: "fall", Interruptible: true},
			BasicAttack:  {Clip: "attack1", Cooldown: CooldownEnemyLight},
			StrongAttack: {Clip: "attack2", Cooldown: CooldownEnemyHeavy},
			Hit:          {Clip: "hit"},
			Death:        {Clip: "death"},
		},
		Gate: map[StateID][]GateWindow{
			BasicAttack: {
				{From: 4, To: 5, Hitboxes: []AttackTier{TierLight}},
			},
			StrongAttack: {
				{From: 0, To: 4, Resistant: true},
				{From: 5, To: 7, Hitboxes: []AttackTier{TierHeavy}, Resistant: true, Shake: 10},
			},
		},
		Hitboxes: []AttackTier{TierLight, TierHeavy},
	}
}
