package factory

import (
	"box-pusher/assets"
	"box-pusher/internal/component"
	"box-pusher/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Draw layers. Spots sit between the floor and whatever stands on them.
const (
	LayerFloor uint8 = 5
	LayerSpot  uint8 = 9
	LayerSolid uint8 = 10
)

// NewWall creates an immovable wall at (x, y).
func NewWall(w *ecs.World, x, y uint8) ecs.EntityID {
	id := w.CreateEntity()
	w.Positions.Set(id, component.Position{X: x, Y: y, Z: LayerSolid})
	w.Renderables.Set(id, component.Static(assets.GlyphWall, tcell.ColorGray))
	w.Walls.Set(id, component.Wall{})
	w.Immovables.Set(id, component.Immovable{})
	return id
}

// NewFloor creates a floor tile. Floors only render; they take no part in
// push resolution.
func NewFloor(w *ecs.World, x, y uint8) ecs.EntityID {
	id := w.CreateEntity()
	w.Positions.Set(id, component.Position{X: x, Y: y, Z: LayerFloor})
	w.Renderables.Set(id, component.Static(assets.GlyphFloor, tcell.ColorDarkGray))
	return id
}

// NewBox creates a movable box of the given colour.
func NewBox(w *ecs.World, x, y uint8, colour component.BoxColour) ecs.EntityID {
	id := w.CreateEntity()
	w.Positions.Set(id, component.Position{X: x, Y: y, Z: LayerSolid})
	w.Renderables.Set(id, component.Animated(tcell.ColorWhite, assets.BoxFrames[colour]...))
	w.Boxes.Set(id, component.Box{Colour: colour})
	w.Movables.Set(id, component.Movable{})
	return id
}

// NewBoxSpot creates the target marker for boxes of the given colour.
func NewBoxSpot(w *ecs.World, x, y uint8, colour component.BoxColour) ecs.EntityID {
	id := w.CreateEntity()
	w.Positions.Set(id, component.Position{X: x, Y: y, Z: LayerSpot})
	w.Renderables.Set(id, component.Static(assets.SpotGlyphs[colour], tcell.ColorWhite))
	w.BoxSpots.Set(id, component.BoxSpot{Colour: colour})
	return id
}

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y uint8) ecs.EntityID {
	id := w.CreateEntity()
	w.Positions.Set(id, component.Position{X: x, Y: y, Z: LayerSolid})
	w.Renderables.Set(id, component.Animated(tcell.ColorYellow, assets.PlayerFrames...))
	w.Players.Set(id, component.Player{})
	w.Movables.Set(id, component.Movable{})
	return id
}
