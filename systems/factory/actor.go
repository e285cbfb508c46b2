package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/prism-runner/components"
	cfg "github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/engine"
	"github.com/automoto/prism-runner/logger"
	"github.com/automoto/prism-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
)

// Wiring errors. An actor missing any of these is refused at construction.
var (
	ErrMissingBody     = errors.New("missing physics body")
	ErrMissingPlayback = errors.New("missing animation playback")
	ErrMissingIntent   = errors.New("missing intent source")
	ErrMissingSpace    = errors.New("missing collision space")
	ErrMissingRand     = errors.New("missing random source")
	ErrMissingClip     = errors.New("missing animation clip")
	ErrMissingHitbox   = errors.New("missing hitbox")
)

// ActorOptions carries the collaborators an actor is wired to for its
// whole lifetime.
type ActorOptions struct {
	X, Y     float64 // top-left of the body
	Facing   components.Facing
	Space    *resolv.Space
	Playback engine.Playback
	Intent   engine.IntentSource // a Brain is also registered as the actor's brain
	Rand     engine.Rand         // enemies only
}

var actorQuery = donburi.NewQuery(filter.Contains(components.Actor))

type actorSpec struct {
	kind          cfg.ActorKind
	spawn         spawnFunc
	tag           string
	width, height float64
	speed         float64
	maxHealth     float64
	regen         float64
}

func createActor(w donburi.World, spec actorSpec, opts ActorOptions) (*donburi.Entry, error) {
	table := cfg.Actions(spec.kind)
	if opts.Space == nil {
		return nil, fmt.Errorf("factory: %s: %w", spec.kind, ErrMissingSpace)
	}
	if opts.Playback == nil {
		return nil, fmt.Errorf("factory: %s: %w", spec.kind, ErrMissingPlayback)
	}
	if opts.Intent == nil {
		return nil, fmt.Errorf("factory: %s: %w", spec.kind, ErrMissingIntent)
	}
	if err := checkClips(table, opts.Playback); err != nil {
		return nil, fmt.Errorf("factory: %s: %w", spec.kind, err)
	}

	serial := actorQuery.Count(w) + 1
	entry := spec.spawn(w)

	obj := resolv.NewObject(opts.X, opts.Y, spec.width, spec.height)
	obj.SetShape(resolv.NewRectangle(0, 0, spec.width, spec.height))
	obj.AddTags("character", spec.tag)
	obj.Data = entry
	opts.Space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	facing := opts.Facing
	if facing == 0 {
		facing = components.FacingRight
	}
	actor := components.ActorData{
		Kind:   spec.kind,
		Serial: serial,
		Facing: facing,
		Intent: opts.Intent,
	}
	if brain, ok := opts.Intent.(engine.Brain); ok {
		actor.Brain = brain
	}
	components.Actor.SetValue(entry, actor)

	components.State.SetValue(entry, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Physics.SetValue(entry, components.PhysicsData{
		Body:  engine.NewResolvBody(obj),
		Speed: spec.speed,
	})
	components.Health.SetValue(entry, components.HealthData{
		Current: spec.maxHealth,
		Max:     spec.maxHealth,
		Regen:   spec.regen,
	})
	components.Animation.SetValue(entry, components.AnimationData{
		Playback:  opts.Playback,
		Requested: table.States[cfg.Idle].Clip,
	})
	components.Gate.SetValue(entry, components.GateData{State: cfg.Idle, Window: -1})
	components.Cooldown.SetValue(entry, components.NewCooldownData())

	combat := components.CombatData{Hitboxes: make(map[cfg.AttackTier]*donburi.Entry)}
	for _, tier := range table.Hitboxes {
		combat.Hitboxes[tier] = CreateHitbox(w, opts.Space, entry, tier, true)
	}
	components.Combat.SetValue(entry, combat)

	if err := Validate(entry); err != nil {
		return nil, err
	}

	logger.Debug("actor spawned",
		zap.Stringer("kind", spec.kind),
		zap.Int("actor", serial),
		zap.Float64("x", opts.X),
		zap.Float64("y", opts.Y),
	)
	return entry, nil
}

// Validate checks that an actor entry has every collaborator the tick
// needs. The simulation refuses to start when any actor fails.
func Validate(e *donburi.Entry) error {
	actor := components.Actor.Get(e)
	kind := actor.Kind

	if e.HasComponent(tags.Enemy) && !e.HasComponent(components.Enemy) {
		return fmt.Errorf("factory: %s: missing enemy data", kind)
	}
	if components.Physics.Get(e).Body == nil {
		return fmt.Errorf("factory: %s: %w", kind, ErrMissingBody)
	}
	anim := components.Animation.Get(e)
	if anim.Playback == nil {
		return fmt.Errorf("factory: %s: %w", kind, ErrMissingPlayback)
	}
	if actor.Intent == nil {
		return fmt.Errorf("factory: %s: %w", kind, ErrMissingIntent)
	}
	combat := components.Combat.Get(e)
	for _, tier := range cfg.Actions(kind).Hitboxes {
		hb, ok := combat.Hitboxes[tier]
		if !ok || hb == nil || !hb.Valid() {
			return fmt.Errorf("factory: %s: %w: %s", kind, ErrMissingHitbox, tier)
		}
	}
	return nil
}
