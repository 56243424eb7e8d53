package ui

import (
	"snake-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyFromRaylib maps a raylib key code to a game key.
func KeyFromRaylib(code int32) types.Key {
	switch code {
	case rl.KeyUp:
		return types.KeyUp
	case rl.KeyDown:
		return types.KeyDown
	case rl.KeyLeft:
		return types.KeyLeft
	case rl.KeyRight:
		return types.KeyRight
	case rl.KeyP:
		return types.KeyP
	case rl.KeyR:
		return types.KeyR
	}
	return types.KeyUnknown
}

// PressedKeys drains the keys pressed since the last frame.
func PressedKeys() []types.Key {
	var keys []types.Key
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		keys = append(keys, KeyFromRaylib(code))
	}
	return keys
}
