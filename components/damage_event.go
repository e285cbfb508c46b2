package components

import (
	"github.com/automoto/prism-runner/config"
	"github.com/yohamta/donburi"
)

// HitEvent is produced when an enabled hitbox overlaps an opposing actor and
// is applied in the combat resolution pass.
type HitEvent struct {
	Attacker       *donburi.Entry
	Target         *donburi.Entry
	Tier           config.AttackTier
	AttackerX      float64 // horizontal centre of the attacker at overlap time
	AttackerFacing Facing
	Seq            int
}

type DamageQueueData struct {
	Events []HitEvent
	seq    int
}

// Push appends ev with the next sequence number.
func (q *DamageQueueData) Push(ev HitEvent) {
	q.seq++
	ev.Seq = q.seq
	q.Events = append(q.Events, ev)
}

// Drain returns the queued events and empties the queue.
func (q *DamageQueueData) Drain() []HitEvent {
	events := q.Events
	q.Events = nil
	return events
}

var DamageQueue = donburi.NewComponentType[DamageQueueData]()
