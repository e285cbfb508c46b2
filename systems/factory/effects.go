package factory

import (
	"github.com/automoto/prism-runner/archetypes"
	"github.com/automoto/prism-runner/components"
	cfg "github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/logger"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// EffectSpawner creates transient effects fired by gate windows.
type EffectSpawner struct {
	World donburi.World
	Space *resolv.Space
}

// Spawn creates an effect of kind around pos, the owner's body centre.
// Unknown kinds are ignored.
func (s *EffectSpawner) Spawn(kind string, pos math.Vec2, flipped bool, owner *donburi.Entry) {
	switch kind {
	case cfg.EffectSwordAura:
		s.spawnSwordAura(pos, flipped, owner)
	case cfg.EffectGroundCrack:
		s.spawnGroundCrack(owner)
	default:
		logger.Warn("unknown effect", zap.String("kind", kind))
	}
}

func (s *EffectSpawner) spawnSwordAura(pos math.Vec2, flipped bool, owner *donburi.Entry) {
	dir := 1.0
	if flipped {
		dir = -1
	}
	x := pos.X + dir*cfg.Effects.AuraOffsetX - cfg.Effects.AuraWidth/2
	y := pos.Y - cfg.Effects.AuraHeight/2

	effect := s.create(cfg.EffectSwordAura, x, y, cfg.Effects.AuraWidth, cfg.Effects.AuraHeight)
	data := components.Effect.Get(effect)
	data.Owner = owner
	data.Flipped = flipped
	data.Velocity = math.Vec2{X: dir * cfg.Effects.AuraSpeed}
	data.Delay = cfg.Effects.AuraDelay
	data.Fade = gween.New(1, 0, cfg.Effects.AuraFade, ease.Linear)

	hitbox := CreateHitbox(s.World, s.Space, owner, cfg.TierAura, false)
	hb := components.Hitbox.Get(hitbox)
	hb.Enabled = true
	hbObj := components.Object.Get(hitbox).Object
	hbObj.X, hbObj.Y = x, y
	hbObj.Update()
	data.Hitbox = hitbox
}

func (s *EffectSpawner) spawnGroundCrack(owner *donburi.Entry) {
	body := components.Object.Get(owner).Object
	x := body.X + body.W/2 - cfg.Effects.CrackWidth/2
	y := body.Y + body.H - cfg.Effects.CrackHeight

	effect := s.create(cfg.EffectGroundCrack, x, y, cfg.Effects.CrackWidth, cfg.Effects.CrackHeight)
	data := components.Effect.Get(effect)
	data.Owner = owner
	data.Delay = cfg.Effects.CrackDelay
	data.Fade = gween.New(1, 0, cfg.Effects.CrackFade, ease.Linear)
}

func (s *EffectSpawner) create(kind string, x, y, w, h float64) *donburi.Entry {
	effect := archetypes.Effect.Spawn(s.World)
	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = effect
	s.Space.Add(obj)

	components.Object.SetValue(effect, components.ObjectData{Object: obj})
	components.Effect.SetValue(effect, components.EffectData{Kind: kind, Alpha: 1})

	logger.Debug("effect spawned", zap.String("kind", kind), zap.Float64("x", x), zap.Float64("y", y))
	return effect
}
