package component

import "github.com/gdamore/tcell/v2"

// frameSeconds is how long one animation frame stays on screen.
const frameSeconds = 0.25

// Renderable describes how an entity is drawn. One frame is static;
// several frames cycle as an animation.
type Renderable struct {
	Frames  []string
	FGColor tcell.Color
	BGColor tcell.Color
}

// Static returns a single-frame Renderable.
func Static(glyph string, fg tcell.Color) Renderable {
	return Renderable{Frames: []string{glyph}, FGColor: fg, BGColor: tcell.ColorDefault}
}

// Animated returns a Renderable cycling through frames.
func Animated(fg tcell.Color, frames ...string) Renderable {
	return Renderable{Frames: frames, FGColor: fg, BGColor: tcell.ColorDefault}
}

// IsAnimated reports whether the renderable has more than one frame.
func (r Renderable) IsAnimated() bool { return len(r.Frames) > 1 }

// Frame picks the glyph to draw after elapsed seconds. The cycle has four
// slots per second; shorter frame lists wrap.
func (r Renderable) Frame(elapsed float64) string {
	if len(r.Frames) == 0 {
		return ""
	}
	if !r.IsAnimated() || elapsed < 0 {
		return r.Frames[0]
	}
	slot := int(elapsed/frameSeconds) % 4
	return r.Frames[slot%len(r.Frames)]
}
