package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/prism-runner/components"
	cfg "github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/fonts"
	"github.com/automoto/prism-runner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	LayerWorld ecs.LayerID = iota
	LayerDebug
	LayerHUD
)

var (
	backgroundColor = color.RGBA{R: 18, G: 18, B: 28, A: 255}
	hudOp           = &text.DrawOptions{}
)

var stateColors = map[cfg.StateID]color.RGBA{
	cfg.Idle:              cfg.LightBlue,
	cfg.Run:               cfg.Blue,
	cfg.Jump:              cfg.DarkBlue,
	cfg.Fall:              cfg.DarkBlue,
	cfg.Slide:             cfg.Green,
	cfg.Dash:              cfg.White,
	cfg.DashRecover:       cfg.LightBlue,
	cfg.BasicAttack:       cfg.Orange,
	cfg.StrongAttack:      cfg.BrightOrange,
	cfg.AuraAttack:        cfg.Purple,
	cfg.FallAttack:        cfg.Magenta,
	cfg.FallAttackRecover: cfg.Magenta,
	cfg.Climb:             cfg.Green,
	cfg.Hit:               cfg.LightRed,
	cfg.Death:             cfg.Gray,
}

// view converts world coordinates to screen coordinates.
type view struct {
	offX, offY float64
}

func newView(w donburi.World, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	shake := components.ScreenShake.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return view{
		offX: float64(width)/2 - camera.Position.X + shake.Offset.X,
		offY: float64(height)/2 - camera.Position.Y + shake.Offset.Y,
	}, true
}

func (v view) fill(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x+v.offX), float32(y+v.offY), float32(w), float32(h), c, false)
}

func (v view) stroke(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x+v.offX), float32(y+v.offY), float32(w), float32(h), 1, c, false)
}

// DrawArena renders the static geometry.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs.World, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		switch {
		case obj.HasTags(tags.ResolvSolid):
			v.fill(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Gray)
		case obj.HasTags(tags.ResolvPlatform):
			v.fill(screen, obj.X, obj.Y, obj.W, obj.H, cfg.DarkBlue)
		case obj.HasTags(tags.ResolvClimbable):
			v.stroke(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Green)
		}
	}
}

// DrawEffects renders transient effects faded by their alpha.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs.World, screen)
	if !ok {
		return
	}
	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		effect := components.Effect.Get(e)
		obj := components.Object.Get(e).Object
		c := cfg.Purple
		if effect.Kind == cfg.EffectGroundCrack {
			c = cfg.BrightOrange
		}
		v.fill(screen, obj.X, obj.Y, obj.W, obj.H, faded(c, effect.Alpha))
	})
}

// DrawActors renders every actor as a box tinted by its state, with a
// facing marker and a health bar. Invincible actors get a white bar.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs.World, screen)
	if !ok {
		return
	}
	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		actor := components.Actor.Get(e)
		state := components.State.Get(e)
		health := components.Health.Get(e)
		combat := components.Combat.Get(e)

		c, ok := stateColors[state.CurrentState]
		if !ok {
			c = cfg.White
		}
		if actor.Kind == cfg.KindEnemy && state.CurrentState.IsMovement() {
			c = cfg.Red
		}
		v.fill(screen, obj.X, obj.Y, obj.W, obj.H, c)

		markX := obj.X + obj.W - 6
		if actor.Facing == components.FacingLeft {
			markX = obj.X
		}
		v.fill(screen, markX, obj.Y+12, 6, 6, cfg.White)

		barColor := cfg.Green
		if combat.Invincible {
			barColor = cfg.White
		}
		ratio := 0.0
		if health.Max > 0 {
			ratio = health.Current / health.Max
		}
		v.fill(screen, obj.X, obj.Y-10, obj.W, 4, cfg.Red)
		v.fill(screen, obj.X, obj.Y-10, obj.W*ratio, 4, barColor)
	})
}

// DrawHitboxes outlines enabled hitboxes while debug drawing is on.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.Debug {
		return
	}
	v, ok := newView(ecs.World, screen)
	if !ok {
		return
	}
	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Hitbox.Get(e).Enabled {
			return
		}
		obj := components.Object.Get(e).Object
		v.stroke(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Red)
	})
}

// DrawHUD prints the player's state, health and cooldowns.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	tick := 0
	if clock, ok := components.Clock.First(ecs.World); ok {
		tick = components.Clock.Get(clock).Tick
	}
	state := components.State.Get(player)
	health := components.Health.Get(player)
	cooldown := components.Cooldown.Get(player)

	lines := []string{
		fmt.Sprintf("tick %d  state %s  frame %d", tick, state.CurrentState, components.Animation.Get(player).Frame),
		fmt.Sprintf("hp %.0f/%.0f", health.Current, health.Max),
		fmt.Sprintf("strong %.1f  aura %.1f  plunge %.1f  climb %.1f",
			cooldown.Remaining(cfg.CooldownStrong),
			cooldown.Remaining(cfg.CooldownAura),
			cooldown.Remaining(cfg.CooldownFallAttack),
			cooldown.Remaining(cfg.CooldownClimb),
		),
	}
	face := fonts.HUD.Get()
	for i, line := range lines {
		hudOp.GeoM.Reset()
		hudOp.GeoM.Translate(12, 12+float64(i)*16)
		hudOp.ColorScale.Reset()
		hudOp.ColorScale.ScaleWithColor(cfg.White)
		text.Draw(screen, line, face, hudOp)
	}
}

func faded(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
