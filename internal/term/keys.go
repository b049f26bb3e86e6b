package term

import (
	"tile-snake/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Action is what a key press asks the host to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionKey
	ActionPause
	ActionQuit
)

// Translate maps a terminal key event to a host action. Arrow keys and the
// vi keys h/j/k/l produce the matching direction key code.
func Translate(ev *tcell.EventKey) (Action, core.Key) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, core.KeyNone
	case tcell.KeyLeft:
		return ActionKey, core.KeyLeft
	case tcell.KeyUp:
		return ActionKey, core.KeyUp
	case tcell.KeyRight:
		return ActionKey, core.KeyRight
	case tcell.KeyDown:
		return ActionKey, core.KeyDown
	case tcell.KeyRune:
	default:
		return ActionNone, core.KeyNone
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return ActionQuit, core.KeyNone
	case ' ', 'p':
		return ActionPause, core.KeyNone
	case 'h':
		return ActionKey, core.KeyLeft
	case 'k':
		return ActionKey, core.KeyUp
	case 'l':
		return ActionKey, core.KeyRight
	case 'j':
		return ActionKey, core.KeyDown
	}
	return ActionNone, core.KeyNone
}
