package config

// StateID identifies an actor's action state. Exactly one is active per actor.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Run
	Jump
	Fall
	Slide
	Dash
	DashRecover
	BasicAttack
	StrongAttack
	AuraAttack
	FallAttack
	FallAttackRecover
	Climb
	Hit
	Death
)

var stateNames = map[StateID]string{
	StateNone:         "none",
	Idle:              "idle",
	Run:               "run",
	Jump:              "jump",
	Fall:              "fall",
	Slide:             "slide",
	Dash:              "dash",
	DashRecover:       "dash_recover",
	BasicAttack:       "basic_attack",
	StrongAttack:      "strong_attack",
	AuraAttack:        "aura_attack",
	FallAttack:        "fall_attack",
	FallAttackRecover: "fall_attack_recover",
	Climb:             "climb",
	Hit:               "hit",
	Death:             "death",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsAttack reports whether s is one of the attack states, including the
// landing recovery of the fall attack.
func (s StateID) IsAttack() bool {
	switch s {
	case BasicAttack, StrongAttack, AuraAttack, FallAttack, FallAttackRecover:
		return true
	}
	return false
}

// IsMovement reports whether s is a plain locomotion state.
func (s StateID) IsMovement() bool {
	switch s {
	case Idle, Run, Jump, Fall:
		return true
	}
	return false
}

// StateConfig is one row of an actor's transition table.
type StateConfig struct {
	// Clip is the animation clip played while in the state.
	Clip string
	// Interruptible states accept one-shot intents. Soft states (DashRecover)
	// are interruptible by one-shots but still exit on their own.
	Interruptible bool
	// Invincible is forced on for the whole state and cleared on exit.
	Invincible bool
	// Cooldown is started on entry when non-empty.
	Cooldown ActionKind
}

// ActorKind separates the two actor variants sharing the state machine.
type ActorKind int

const (
	KindPlayer ActorKind = iota
	KindEnemy
)

func (k ActorKind) String() string {
	if k == KindEnemy {
		return "enemy"
	}
	return "player"
}
