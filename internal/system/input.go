package system

import (
	"fmt"

	"box-pusher/internal/ecs"
	"box-pusher/internal/event"
	"box-pusher/internal/gamemap"
	"box-pusher/internal/gameplay"
)

// Outcome describes how a directional scan ended.
type Outcome uint8

const (
	OutcomeClear     Outcome = iota // a gap was found; the chain can shift
	OutcomeBlocked                  // an immovable entity stops the chain
	OutcomeExhausted                // the grid edge was reached without a gap
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClear:
		return "clear"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// Plan is the result of resolving one input before anything moves.
// Move lists the entities to shift in scan order, player first.
// It is empty unless Outcome is OutcomeClear.
type Plan struct {
	Direction Direction
	Outcome   Outcome
	Move      []ecs.EntityID
}

type cell struct{ x, y int }

// cellIndex maps each occupied cell to the entity carrying the given tag.
func cellIndex[T any](w *ecs.World, tag *ecs.Table[T]) map[cell]ecs.EntityID {
	idx := make(map[cell]ecs.EntityID, tag.Len())
	for _, id := range tag.IDs() {
		pos := w.MustPosition(id)
		idx[cell{int(pos.X), int(pos.Y)}] = id
	}
	return idx
}

// Resolve works out what a push in dir would do without changing the world.
// The scan starts on the player's own cell and walks outward to the edge of
// gmap: movables join the chain, an immovable cancels it, and the first empty
// cell lets the whole chain shift by one.
func Resolve(w *ecs.World, gmap *gamemap.GameMap, dir Direction) Plan {
	plan := Plan{Direction: dir, Outcome: OutcomeExhausted}
	dx, dy := dir.Delta()
	if dx == 0 && dy == 0 {
		return plan
	}

	origin := w.MustPosition(w.Player())
	movableAt := cellIndex(w, w.Movables)
	immovableAt := cellIndex(w, w.Immovables)

	var chain []ecs.EntityID
	for x, y := int(origin.X), int(origin.Y); gmap.InBounds(x, y); x, y = x+dx, y+dy {
		c := cell{x, y}
		if id, ok := movableAt[c]; ok {
			chain = append(chain, id)
			continue
		}
		if _, ok := immovableAt[c]; ok {
			plan.Outcome = OutcomeBlocked
			return plan
		}
		plan.Outcome = OutcomeClear
		plan.Move = chain
		return plan
	}
	return plan
}

// Apply shifts every entity in a clear plan by one cell and returns an
// EntityMoved per entity in plan order. A blocked or exhausted plan moves
// nothing and yields a single PlayerHitObstacle.
func Apply(w *ecs.World, plan Plan) []event.Event {
	if plan.Outcome != OutcomeClear {
		return []event.Event{event.PlayerHitObstacle{}}
	}
	dx, dy := plan.Direction.Delta()
	events := make([]event.Event, 0, len(plan.Move))
	for _, id := range plan.Move {
		pos := w.Positions.Ptr(id)
		if pos == nil {
			panic(fmt.Sprintf("system: entity %d scheduled to move has no Position", id))
		}
		pos.X = uint8(int(pos.X) + dx)
		pos.Y = uint8(int(pos.Y) + dy)
		events = append(events, event.EntityMoved{ID: id})
	}
	return events
}

// HandleInput resolves one directional input: it plans the push, counts the
// move on gp when anything will shift, applies it and returns the events the
// caller must queue.
func HandleInput(w *ecs.World, gmap *gamemap.GameMap, gp *gameplay.Gameplay, dir Direction) []event.Event {
	plan := Resolve(w, gmap, dir)
	if plan.Outcome == OutcomeClear && len(plan.Move) > 0 {
		gp.RecordMove()
	}
	return Apply(w, plan)
}
