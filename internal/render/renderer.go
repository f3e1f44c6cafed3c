package render

import (
	"sort"

	"box-pusher/internal/component"
	"box-pusher/internal/ecs"
	"box-pusher/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of screen rows reserved at the bottom for the HUD.
const hudRows = 5

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	view   Viewport
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Viewport returns the placement used by the last frame.
func (r *Renderer) Viewport() Viewport { return r.view }

// Item is one entity resolved to the glyph it shows this frame.
type Item struct {
	Pos   component.Position
	Glyph string
	FG    tcell.Color
}

// DrawFrame clears the screen and renders every entity with Renderable and
// Position, lowest Z first. elapsed drives animation frames.
func (r *Renderer) DrawFrame(w *ecs.World, gmap *gamemap.GameMap, elapsed float64) {
	r.screen.Clear()
	sw, sh := r.screen.Size()
	r.view = Fit(gmap.Width, gmap.Height, sw, sh-hudRows)

	items := Layers(w, elapsed)
	for _, it := range items {
		sx, sy, ok := r.view.ToScreen(int(it.Pos.X), int(it.Pos.Y))
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(it.FG).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, it.Glyph, style)
	}
}

// Layers returns the drawable entities sorted by Z. Entities on the same
// layer keep store order, so frames are stable.
func Layers(w *ecs.World, elapsed float64) []Item {
	items := make([]Item, 0, w.Renderables.Len())
	w.Renderables.Each(func(id ecs.EntityID, rend component.Renderable) {
		pos, ok := w.Positions.Get(id)
		if !ok {
			return
		}
		items = append(items, Item{Pos: pos, Glyph: rend.Frame(elapsed), FG: rend.FGColor})
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Pos.Z < items[j].Pos.Z
	})
	return items
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < cellWidth {
		// Pad narrow glyphs so every grid cell spans two columns.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
