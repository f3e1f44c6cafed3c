package component

import "fmt"

// BoxColour pairs boxes with the spots they belong on.
type BoxColour uint8

const (
	ColourRed BoxColour = iota
	ColourBlue
	ColourGreen
	ColourYellow
)

var colourNames = [...]string{
	ColourRed:    "red",
	ColourBlue:   "blue",
	ColourGreen:  "green",
	ColourYellow: "yellow",
}

func (c BoxColour) String() string {
	if int(c) < len(colourNames) {
		return colourNames[c]
	}
	return fmt.Sprintf("colour(%d)", uint8(c))
}

// ParseColour maps a level-file colour letter to a BoxColour.
func ParseColour(letter byte) (BoxColour, bool) {
	switch letter {
	case 'R':
		return ColourRed, true
	case 'B':
		return ColourBlue, true
	case 'G':
		return ColourGreen, true
	case 'Y':
		return ColourYellow, true
	}
	return 0, false
}

// Box is a pushable crate.
type Box struct {
	Colour BoxColour
}

// BoxSpot is the target marker for a box of the same colour. Not an obstacle.
type BoxSpot struct {
	Colour BoxColour
}
