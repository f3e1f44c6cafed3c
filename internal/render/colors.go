package render

import (
	"box-pusher/internal/gameplay"

	"github.com/gdamore/tcell/v2"
)

// HUD palette.
var (
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleMessage  = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleRule     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWonTitle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// stateStyle colours the gameplay state label.
func stateStyle(s gameplay.State) tcell.Style {
	if s == gameplay.StateWon {
		return styleWonTitle
	}
	return styleStatus
}
