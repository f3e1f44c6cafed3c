package gamemap

import "fmt"

// GameMap holds the dimensions of one level. Coordinates run from 0 to
// MaxX/MaxY inclusive.
type GameMap struct {
	Width, Height int
}

// New creates a GameMap of width columns and height rows. Both must fit in
// the uint8 coordinate space of component.Position.
func New(width, height int) (*GameMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gamemap: invalid size %dx%d", width, height)
	}
	if width > 256 || height > 256 {
		return nil, fmt.Errorf("gamemap: size %dx%d exceeds 256x256", width, height)
	}
	return &GameMap{Width: width, Height: height}, nil
}

// MustNew is New for fixed sizes known to be valid.
func MustNew(width, height int) *GameMap {
	m, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return m
}

// MaxX is the largest valid column.
func (m *GameMap) MaxX() uint8 { return uint8(m.Width - 1) }

// MaxY is the largest valid row.
func (m *GameMap) MaxY() uint8 { return uint8(m.Height - 1) }

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}
