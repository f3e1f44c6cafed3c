package game

import (
	"box-pusher/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionRestart
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K', 'w', 'W':
		return ActionMoveUp
	case 'j', 'J', 's', 'S':
		return ActionMoveDown
	case 'l', 'L', 'd', 'D':
		return ActionMoveRight
	case 'h', 'H', 'a', 'A':
		return ActionMoveLeft
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDirection converts a movement action to its grid direction.
func actionToDirection(a Action) (system.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return system.DirUp, true
	case ActionMoveDown:
		return system.DirDown, true
	case ActionMoveLeft:
		return system.DirLeft, true
	case ActionMoveRight:
		return system.DirRight, true
	}
	return 0, false
}
