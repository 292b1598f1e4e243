package desktop

import (
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into the input snapshot.
// Must run BEFORE UpdateAutopilot and UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := systems.GetInput(ecs)
	if input == nil {
		return
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	input.Left = actionPressed(cfg.ActionMoveLeft)
	input.Right = actionPressed(cfg.ActionMoveRight)
	input.Up = actionPressed(cfg.ActionMoveUp)
	input.Down = actionPressed(cfg.ActionMoveDown)
	input.Fire = actionPressed(cfg.ActionFire)
	input.Restart = actionJustPressed(cfg.ActionRestart)

	if actionJustPressed(cfg.ActionAutopilot) {
		input.Autopilot = !input.Autopilot
	}
	if actionJustPressed(cfg.ActionDebug) {
		input.Debug = !input.Debug
	}
}

func actionPressed(action cfg.ActionID) bool {
	binding := Keys.Bindings[action]
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
}

func actionJustPressed(action cfg.ActionID) bool {
	binding := Keys.Bindings[action]
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}
