package factory

import (
	"github.com/automoto/prism-runner/archetypes"
	cfg "github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, opts ActorOptions) (*donburi.Entry, error) {
	return createActor(w, actorSpec{
		kind:      cfg.KindPlayer,
		spawn:     archetypes.Player.Spawn,
		tag:       tags.ResolvPlayer,
		width:     cfg.Player.CollisionWidth,
		height:    cfg.Player.CollisionHeight,
		speed:     cfg.Player.Speed,
		maxHealth: cfg.Player.MaxHealth,
		regen:     cfg.Player.Regen,
	}, opts)
}
