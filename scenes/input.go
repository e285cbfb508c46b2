package scenes

import (
	"github.com/automoto/prism-runner/config"
	"github.com/automoto/prism-runner/intent"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every player action to its devices.
var Bindings = map[config.ActionID]InputBinding{
	config.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	config.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	config.ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	config.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	config.ActionSlide: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	config.ActionDash: {
		Keys:                   []ebiten.Key{ebiten.KeyShiftLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
	},
	config.ActionAttack: {
		Keys:                   []ebiten.Key{ebiten.KeyJ, ebiten.KeyX},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	config.ActionStrongAttack: {
		Keys:                   []ebiten.Key{ebiten.KeyK, ebiten.KeyC},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	config.ActionAuraAttack: {
		Keys:                   []ebiten.Key{ebiten.KeyL, ebiten.KeyV},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	config.ActionFallAttack: {
		Keys:                   []ebiten.Key{ebiten.KeyI},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
	},
	config.ActionClimb: {
		Keys:                   []ebiten.Key{ebiten.KeyE},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// DeviceIntent is the player's intent buffer fed from keyboard and gamepads.
type DeviceIntent struct {
	intent.Buffer
}

// Poll samples the devices once. Call it exactly once per tick, before the
// simulation ticks.
func (d *DeviceIntent) Poll() {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	d.Update(func(a config.ActionID) bool {
		binding, ok := Bindings[a]
		if !ok {
			return false
		}
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				return true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					return true
				}
			}
		}
		return false
	})
}
