// Package input samples the keyboard, mouse and gamepads into an action
// frame. Only hosts that run ebiten import it.
package input

import (
	cfg "github.com/automoto/mysticwoods/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

type Bindings map[cfg.ActionID]InputBinding

// DefaultBindings returns a fresh map: WASD or arrows to move, Z, Space or
// the left mouse button to attack.
func DefaultBindings() Bindings {
	return Bindings{
		cfg.ActionMoveUp: {
			Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		cfg.ActionMoveDown: {
			Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		cfg.ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		cfg.ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		cfg.ActionAttack: {
			Keys:                   []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace},
			MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
	}
}

var gamepadIDs []ebiten.GamepadID

// Poll returns the actions held right now.
func Poll(b Bindings) [cfg.ActionCount]bool {
	var frame [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range b {
		if actionID <= cfg.ActionNone || actionID >= cfg.ActionCount {
			continue
		}
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				frame[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				frame[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					frame[actionID] = true
				}
			}
		}
	}
	return frame
}
