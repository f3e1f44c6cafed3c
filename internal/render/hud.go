package render

import (
	"fmt"

	"box-pusher/internal/gameplay"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status bar and message log at the bottom of the screen
// and flushes the frame.
func (r *Renderer) DrawHUD(gp gameplay.Gameplay, levelName string, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY)

	x := r.drawText(0, hudY+1, fmt.Sprintf("Level: %s  Moves: %d  ", levelName, gp.MovesCount), styleStatus)
	r.drawText(x, hudY+1, gp.State.String(), stateStyle(gp.State))

	// Message log (last 2 messages).
	start := max(0, len(messages)-2)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, styleMessage)
	}
	r.drawText(0, hudY+4, "arrows/hjkl/wasd move  r restart  q quit", styleHint)

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, styleRule)
	}
}

// drawText writes text starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}
