package terminal

import (
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// KeyDirection maps arrow keys and WASD/HJKL to a direction.
func KeyDirection(ev *tcell.EventKey) (types.Point, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return types.Up, true
		case 's', 'S', 'j':
			return types.Down, true
		case 'a', 'A', 'h':
			return types.Left, true
		case 'd', 'D', 'l':
			return types.Right, true
		}
	}
	return types.Point{}, false
}

// IsQuit reports whether ev asks to leave the game.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
