package factory

import (
	"testing"

	"box-pusher/internal/component"
	"box-pusher/internal/ecs"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, 5, 3)

	if !w.Alive(id) {
		t.Fatal("player entity must be alive")
	}
	pos, ok := w.Positions.Get(id)
	if !ok {
		t.Fatal("player must have Position")
	}
	if pos.X != 5 || pos.Y != 3 || pos.Z != LayerSolid {
		t.Errorf("position = %+v; want (5,3,%d)", pos, LayerSolid)
	}
	if !w.Players.Has(id) {
		t.Error("player must carry Player")
	}
	if !w.Movables.Has(id) {
		t.Error("player must carry Movable")
	}
	if w.Immovables.Has(id) {
		t.Error("player must not carry Immovable")
	}
	r, ok := w.Renderables.Get(id)
	if !ok || !r.IsAnimated() {
		t.Error("player should have an animated Renderable")
	}
}

func TestNewWallComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewWall(w, 0, 0)

	if !w.Walls.Has(id) || !w.Immovables.Has(id) {
		t.Fatal("wall must carry Wall and Immovable")
	}
	if w.Movables.Has(id) {
		t.Fatal("wall must not be Movable")
	}
}

func TestNewBoxComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewBox(w, 2, 2, component.ColourBlue)

	b, ok := w.Boxes.Get(id)
	if !ok || b.Colour != component.ColourBlue {
		t.Fatalf("box = (%+v,%v); want blue box", b, ok)
	}
	if !w.Movables.Has(id) || w.Immovables.Has(id) {
		t.Fatal("box must be Movable and not Immovable")
	}
	if r, _ := w.Renderables.Get(id); len(r.Frames) != 2 {
		t.Fatalf("box frames = %d, want 2", len(r.Frames))
	}
}

func TestBoxSpotIsNotAnObstacle(t *testing.T) {
	w := ecs.NewWorld()
	id := NewBoxSpot(w, 1, 1, component.ColourRed)

	if w.Movables.Has(id) || w.Immovables.Has(id) {
		t.Fatal("box spot must carry neither Movable nor Immovable")
	}
	if pos := w.MustPosition(id); pos.Z != LayerSpot {
		t.Fatalf("spot layer = %d, want %d", pos.Z, LayerSpot)
	}
	if s, _ := w.BoxSpots.Get(id); s.Colour != component.ColourRed {
		t.Fatalf("spot colour = %v, want red", s.Colour)
	}
}

func TestNewFloorOnlyRenders(t *testing.T) {
	w := ecs.NewWorld()
	id := NewFloor(w, 3, 4)

	if !w.Renderables.Has(id) {
		t.Fatal("floor must be renderable")
	}
	if w.Movables.Has(id) || w.Immovables.Has(id) || w.Walls.Has(id) {
		t.Fatal("floor must not take part in resolution")
	}
	if pos := w.MustPosition(id); pos.Z != LayerFloor {
		t.Fatalf("floor layer = %d, want %d", pos.Z, LayerFloor)
	}
}
