package component

// Player marks the player-controlled entity. A level has exactly one.
type Player struct{}

// Wall marks a static obstacle.
type Wall struct{}

// Movable marks an entity the push resolution may shift.
type Movable struct{}

// Immovable marks an entity that blocks every push chain.
type Immovable struct{}
