package factory

import (
	"fmt"

	"github.com/automoto/prism-runner/archetypes"
	"github.com/automoto/prism-runner/components"
	cfg "github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/intent"
	"github.com/automoto/prism-runner/tags"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns a melee enemy. Its inconstancy is drawn once from
// opts.Rand; when opts.Intent is nil the enemy gets a Chaser brain.
func CreateEnemy(w donburi.World, opts ActorOptions) (*donburi.Entry, error) {
	if opts.Rand == nil {
		return nil, fmt.Errorf("factory: %s: %w", cfg.KindEnemy, ErrMissingRand)
	}
	inconstancy := opts.Rand.Range(cfg.Enemy.InconstancyMin, cfg.Enemy.InconstancyMax)
	if opts.Intent == nil {
		opts.Intent = intent.NewChaser(inconstancy)
	}
	if opts.Facing == 0 {
		opts.Facing = components.FacingLeft
	}

	enemy, err := createActor(w, actorSpec{
		kind:      cfg.KindEnemy,
		spawn:     archetypes.Enemy.Spawn,
		tag:       tags.ResolvEnemy,
		width:     cfg.Enemy.CollisionWidth,
		height:    cfg.Enemy.CollisionHeight,
		speed:     cfg.Enemy.Speed,
		maxHealth: cfg.Enemy.MaxHealth,
		regen:     cfg.Enemy.Regen,
	}, opts)
	if err != nil {
		return nil, err
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Inconstancy: inconstancy,
	})
	return enemy, nil
}
