package ui

import (
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = []struct {
	keys []int32
	dir  types.Point
}{
	{[]int32{rl.KeyUp, rl.KeyW}, types.Up},
	{[]int32{rl.KeyDown, rl.KeyS}, types.Down},
	{[]int32{rl.KeyLeft, rl.KeyA}, types.Left},
	{[]int32{rl.KeyRight, rl.KeyD}, types.Right},
}

// PollDirection returns the direction key pressed this frame, or current when
// none was. Up wins over down, down over left, left over right.
func PollDirection(current types.Point) types.Point {
	for _, entry := range directionKeys {
		for _, key := range entry.keys {
			if rl.IsKeyPressed(key) {
				return entry.dir
			}
		}
	}
	return current
}

// QuitRequested reports a window close or the Q key. Escape closes the window
// through raylib's own exit key.
func QuitRequested() bool {
	return rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ)
}

// AnyKeyPressed reports whether a key went down this frame.
func AnyKeyPressed() bool {
	return rl.GetKeyPressed() != 0
}
