package ecs

import (
	"testing"

	"box-pusher/internal/component"
)

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
	if other := w.CreateEntity(); other == id {
		t.Fatal("entity IDs must be unique")
	}
	if w.EntityCount() != 2 {
		t.Fatalf("EntityCount = %d, want 2", w.EntityCount())
	}
}

func TestMustPosition(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Positions.Set(id, component.Position{X: 2, Y: 3, Z: 10})

	if got := w.MustPosition(id); got.X != 2 || got.Y != 3 {
		t.Fatalf("MustPosition = %+v", got)
	}
}

func TestMustPositionPanicsOnMissing(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for entity without Position")
		}
	}()
	w.MustPosition(id)
}

func TestPlayerLookup(t *testing.T) {
	w := NewWorld()
	p := w.CreateEntity()
	w.Players.Set(p, component.Player{})
	if got := w.Player(); got != p {
		t.Fatalf("Player() = %d, want %d", got, p)
	}
}

func TestPlayerPanicsWithoutExactlyOne(t *testing.T) {
	cases := []struct {
		name    string
		players int
	}{
		{"none", 0},
		{"two", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			for i := 0; i < tc.players; i++ {
				w.Players.Set(w.CreateEntity(), component.Player{})
			}
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			w.Player()
		})
	}
}

func TestTablesAreIndependent(t *testing.T) {
	w := NewWorld()
	box := w.CreateEntity()
	w.Boxes.Set(box, component.Box{Colour: component.ColourRed})
	w.Movables.Set(box, component.Movable{})

	if w.Immovables.Has(box) || w.Walls.Has(box) {
		t.Fatal("box leaked into wall tables")
	}
	if !w.Movables.Has(box) {
		t.Fatal("box should be movable")
	}
}
