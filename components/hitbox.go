package components

import (
	"github.com/automoto/prism-runner/config"
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	Owner       *donburi.Entry // The actor credited with the hit
	Tier        config.AttackTier
	Shape       config.HitboxShape
	Enabled     bool
	Attached    bool                    // follows the owner's body each tick
	HitEntities map[*donburi.Entry]bool // Entities already hit this window
}

// ClearHits forgets every victim so the next window can hit them again.
func (h *HitboxData) ClearHits() {
	for e := range h.HitEntities {
		delete(h.HitEntities, e)
	}
}

var Hitbox = donburi.NewComponentType[HitboxData]()

// CombatData holds the flags the combat resolver reads and writes.
type CombatData struct {
	Invincible bool
	Resistant  bool
	HitPending bool

	Hitboxes map[config.AttackTier]*donburi.Entry
}

var Combat = donburi.NewComponentType[CombatData]()

// GateData remembers which gate window was active last tick.
type GateData struct {
	State  config.StateID
	Window int // index into the state's windows, -1 when none is active
	Fired  bool
}

var Gate = donburi.NewComponentType[GateData]()
