package component

// Position places an entity on the grid. Z is draw order only.
type Position struct {
	X, Y, Z uint8
}
