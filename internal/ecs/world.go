package ecs

import (
	"fmt"

	"box-pusher/internal/component"
)

// World is the central entity registry and component store. Each component
// type has its own typed table; systems reach them through the exported
// fields instead of a type-keyed lookup.
type World struct {
	nextID EntityID
	alive  map[EntityID]bool

	Positions   *Table[component.Position]
	Renderables *Table[component.Renderable]
	Players     *Table[component.Player]
	Boxes       *Table[component.Box]
	BoxSpots    *Table[component.BoxSpot]
	Walls       *Table[component.Wall]
	Movables    *Table[component.Movable]
	Immovables  *Table[component.Immovable]
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:      1,
		alive:       make(map[EntityID]bool),
		Positions:   NewTable[component.Position](),
		Renderables: NewTable[component.Renderable](),
		Players:     NewTable[component.Player](),
		Boxes:       NewTable[component.Box](),
		BoxSpots:    NewTable[component.BoxSpot](),
		Walls:       NewTable[component.Wall](),
		Movables:    NewTable[component.Movable](),
		Immovables:  NewTable[component.Immovable](),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.alive)
}

// MustPosition returns the position of id. Every Movable and Immovable
// entity is created with a Position, so a miss is a broken store.
func (w *World) MustPosition(id EntityID) component.Position {
	pos, ok := w.Positions.Get(id)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %d has no Position", id))
	}
	return pos
}

// Player returns the single player entity. Panics unless exactly one exists.
func (w *World) Player() EntityID {
	if n := w.Players.Len(); n != 1 {
		panic(fmt.Sprintf("ecs: expected exactly one player, found %d", n))
	}
	return w.Players.IDs()[0]
}
