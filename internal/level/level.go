// Package level parses puzzle text into a populated component store.
//
// A level is rows of whitespace-separated tokens:
//
//	W   wall (on floor)
//	.   floor
//	P   player (on floor)
//	N   nothing
//	Bc  box of colour c (on floor), also written cB
//	Sc  box spot of colour c (on floor), also written cS
//
// Colour letters are R, B, G and Y. Rows may differ in length; missing cells
// are empty. The widest row sets the map width.
package level

import (
	"errors"
	"fmt"
	"strings"

	"box-pusher/internal/component"
	"box-pusher/internal/ecs"
	"box-pusher/internal/factory"
	"box-pusher/internal/gamemap"
)

var (
	ErrEmpty          = errors.New("level: empty map")
	ErrTooLarge       = errors.New("level: map exceeds 256x256")
	ErrUnknownToken   = errors.New("level: unknown token")
	ErrNoPlayer       = errors.New("level: no player")
	ErrTooManyPlayers = errors.New("level: more than one player")
	ErrUnbalanced     = errors.New("level: box and spot counts differ")
)

// TileKind identifies what a level token places on its cell.
type TileKind uint8

const (
	TileNone TileKind = iota
	TileFloor
	TileWall
	TilePlayer
	TileBox
	TileSpot
)

// Tile is one parsed token. Colour is meaningful for boxes and spots only.
type Tile struct {
	Kind   TileKind
	Colour component.BoxColour
}

// Layout is a parsed, validated level.
type Layout struct {
	Width, Height int
	Rows          [][]Tile
}

// Parse reads level text and validates it: exactly one player and, per
// colour, as many boxes as spots.
func Parse(text string) (*Layout, error) {
	var rows [][]Tile
	width := 0
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		y := len(rows)
		row := make([]Tile, len(fields))
		for x, tok := range fields {
			t, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("%w %q at row %d col %d", err, tok, y, x)
			}
			row[x] = t
		}
		rows = append(rows, row)
		width = max(width, len(row))
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	if width > 256 || len(rows) > 256 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooLarge, width, len(rows))
	}

	l := &Layout{Width: width, Height: len(rows), Rows: rows}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func parseToken(tok string) (Tile, error) {
	switch tok {
	case ".":
		return Tile{Kind: TileFloor}, nil
	case "W":
		return Tile{Kind: TileWall}, nil
	case "P":
		return Tile{Kind: TilePlayer}, nil
	case "N":
		return Tile{Kind: TileNone}, nil
	}
	if len(tok) != 2 {
		return Tile{}, ErrUnknownToken
	}
	// Kind then colour ("BR"), falling back to colour then kind ("RB").
	if kind, ok := kindLetter(tok[0]); ok {
		if colour, ok := component.ParseColour(tok[1]); ok {
			return Tile{Kind: kind, Colour: colour}, nil
		}
	}
	if colour, ok := component.ParseColour(tok[0]); ok {
		if kind, ok := kindLetter(tok[1]); ok {
			return Tile{Kind: kind, Colour: colour}, nil
		}
	}
	return Tile{}, ErrUnknownToken
}

func kindLetter(b byte) (TileKind, bool) {
	switch b {
	case 'B':
		return TileBox, true
	case 'S':
		return TileSpot, true
	}
	return 0, false
}

func (l *Layout) validate() error {
	players := 0
	balance := make(map[component.BoxColour]int)
	for _, row := range l.Rows {
		for _, t := range row {
			switch t.Kind {
			case TilePlayer:
				players++
			case TileBox:
				balance[t.Colour]++
			case TileSpot:
				balance[t.Colour]--
			}
		}
	}
	switch {
	case players == 0:
		return ErrNoPlayer
	case players > 1:
		return fmt.Errorf("%w: found %d", ErrTooManyPlayers, players)
	}
	for _, c := range []component.BoxColour{component.ColourRed, component.ColourBlue, component.ColourGreen, component.ColourYellow} {
		if n := balance[c]; n != 0 {
			return fmt.Errorf("%w: %s off by %d", ErrUnbalanced, c, n)
		}
	}
	return nil
}

// Map returns the bounds matching this layout.
func (l *Layout) Map() *gamemap.GameMap {
	return gamemap.MustNew(l.Width, l.Height)
}

// Populate creates the entities of the layout in w. Everything except N
// stands on a floor tile.
func (l *Layout) Populate(w *ecs.World) {
	for y, row := range l.Rows {
		for x, t := range row {
			px, py := uint8(x), uint8(y)
			if t.Kind == TileNone {
				continue
			}
			factory.NewFloor(w, px, py)
			switch t.Kind {
			case TileWall:
				factory.NewWall(w, px, py)
			case TilePlayer:
				factory.NewPlayer(w, px, py)
			case TileBox:
				factory.NewBox(w, px, py, t.Colour)
			case TileSpot:
				factory.NewBoxSpot(w, px, py, t.Colour)
			}
		}
	}
}

// Load parses text and returns a freshly populated world with its bounds.
func Load(text string) (*ecs.World, *gamemap.GameMap, error) {
	l, err := Parse(text)
	if err != nil {
		return nil, nil, err
	}
	w := ecs.NewWorld()
	l.Populate(w)
	return w, l.Map(), nil
}

// MustLoad is Load for level text known to be valid, such as test fixtures.
func MustLoad(text string) (*ecs.World, *gamemap.GameMap) {
	w, m, err := Load(text)
	if err != nil {
		panic(err)
	}
	return w, m
}
