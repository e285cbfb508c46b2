package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionJump
	ActionSlide
	ActionDash
	ActionAttack
	ActionStrongAttack
	ActionAuraAttack
	ActionFallAttack
	ActionClimb
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[string]ActionID{
	"left":          ActionMoveLeft,
	"right":         ActionMoveRight,
	"up":            ActionMoveUp,
	"jump":          ActionJump,
	"slide":         ActionSlide,
	"dash":          ActionDash,
	"attack":        ActionAttack,
	"strong_attack": ActionStrongAttack,
	"aura_attack":   ActionAuraAttack,
	"fall_attack":   ActionFallAttack,
	"climb":         ActionClimb,
}

// ActionByName resolves the script-facing name of an action.
func ActionByName(name string) (ActionID, bool) {
	a, ok := actionNames[name]
	return a, ok
}

func (a ActionID) String() string {
	for name, id := range actionNames {
		if id == a {
			return name
		}
	}
	return "none"
}

// ActionKind keys the cooldown registry.
type ActionKind string

const (
	CooldownNone       ActionKind = ""
	CooldownStrong     ActionKind = "strong_attack"
	CooldownAura       ActionKind = "aura_attack"
	CooldownFallAttack ActionKind = "fall_attack"
	CooldownClimb      ActionKind = "climb"
	CooldownEnemyLight ActionKind = "enemy_attack1"
	CooldownEnemyHeavy ActionKind = "enemy_attack2"
	CooldownEnemyFlip  ActionKind = "enemy_flip"
)
