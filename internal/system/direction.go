package system

import "fmt"

// Direction is one of the four cardinal inputs.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// CheckOrder is the fixed order in which pressed keys are examined each tick.
var CheckOrder = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Delta converts a direction to a one-cell (dx, dy) step. y grows downward.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Policy decides which of the keys pressed in one tick are resolved.
type Policy uint8

const (
	// PolicyFirstKey resolves only the first pressed key in CheckOrder.
	PolicyFirstKey Policy = iota
	// PolicyAllKeys resolves every pressed key, one full pass each, in CheckOrder.
	PolicyAllKeys
)

// ParsePolicy maps a configuration value ("first" or "all") to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "first":
		return PolicyFirstKey, nil
	case "all":
		return PolicyAllKeys, nil
	}
	return 0, fmt.Errorf("unknown input policy %q (want first or all)", s)
}

func (p Policy) String() string {
	if p == PolicyAllKeys {
		return "all"
	}
	return "first"
}

// Select returns the directions to resolve this tick, in CheckOrder.
// Keys outside the four directions are ignored and repeats count once.
func (p Policy) Select(pressed []Direction) []Direction {
	var down [len(CheckOrder)]bool
	for _, d := range pressed {
		if int(d) < len(down) {
			down[d] = true
		}
	}
	var out []Direction
	for _, d := range CheckOrder {
		if !down[d] {
			continue
		}
		out = append(out, d)
		if p == PolicyFirstKey {
			break
		}
	}
	return out
}
