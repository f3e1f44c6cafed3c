// Package event holds the semantic events produced while resolving one
// input and the per-tick queue they pass through.
package event

import (
	"fmt"

	"box-pusher/internal/ecs"
)

// Event is one of EntityMoved or PlayerHitObstacle.
type Event interface {
	isEvent()
	String() string
}

// EntityMoved reports that an entity shifted one cell.
type EntityMoved struct {
	ID ecs.EntityID
}

// PlayerHitObstacle reports a push chain stopped by a wall or the grid edge.
type PlayerHitObstacle struct{}

func (EntityMoved) isEvent()       {}
func (PlayerHitObstacle) isEvent() {}

func (e EntityMoved) String() string     { return fmt.Sprintf("EntityMoved(%d)", e.ID) }
func (PlayerHitObstacle) String() string { return "PlayerHitObstacle" }
