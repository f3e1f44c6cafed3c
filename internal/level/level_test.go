package level

import (
	"errors"
	"testing"

	"box-pusher/assets"
	"box-pusher/internal/component"
)

func TestParseTokens(t *testing.T) {
	cases := []struct {
		tok  string
		want Tile
	}{
		{".", Tile{Kind: TileFloor}},
		{"W", Tile{Kind: TileWall}},
		{"P", Tile{Kind: TilePlayer}},
		{"N", Tile{Kind: TileNone}},
		{"BR", Tile{Kind: TileBox, Colour: component.ColourRed}},
		{"RB", Tile{Kind: TileBox, Colour: component.ColourRed}},
		{"BB", Tile{Kind: TileBox, Colour: component.ColourBlue}},
		{"SB", Tile{Kind: TileSpot, Colour: component.ColourBlue}},
		{"BS", Tile{Kind: TileSpot, Colour: component.ColourBlue}},
		{"RS", Tile{Kind: TileSpot, Colour: component.ColourRed}},
		{"BY", Tile{Kind: TileBox, Colour: component.ColourYellow}},
		{"GS", Tile{Kind: TileSpot, Colour: component.ColourGreen}},
	}
	for _, c := range cases {
		got, err := parseToken(c.tok)
		if err != nil {
			t.Errorf("parseToken(%q) error: %v", c.tok, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseToken(%q) = %+v, want %+v", c.tok, got, c.want)
		}
	}
}

func TestParseRejectsUnknownToken(t *testing.T) {
	for _, tok := range []string{"X", "BX", "XB", "BBB", "SS"} {
		_, err := Parse("P " + tok)
		if !errors.Is(err, ErrUnknownToken) {
			t.Errorf("Parse with %q: err = %v, want ErrUnknownToken", tok, err)
		}
	}
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty", "\n  \n", ErrEmpty},
		{"no player", "W . W", ErrNoPlayer},
		{"two players", "P . P", ErrTooManyPlayers},
		{"box without spot", "P BR .", ErrUnbalanced},
		{"colour mismatch", "P BR SB", ErrUnbalanced},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.text); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseDimensions(t *testing.T) {
	l, err := Parse(`
N N W W
W P . . W
W W W W W
`)
	if err != nil {
		t.Fatal(err)
	}
	if l.Width != 5 || l.Height != 3 {
		t.Fatalf("size = %dx%d, want 5x3", l.Width, l.Height)
	}
	m := l.Map()
	if m.MaxX() != 4 || m.MaxY() != 2 {
		t.Fatalf("bounds = %d,%d, want 4,2", m.MaxX(), m.MaxY())
	}
}

func TestPopulateEntities(t *testing.T) {
	w, _, err := Load("N W P BR SR .")
	if err != nil {
		t.Fatal(err)
	}
	if w.Players.Len() != 1 {
		t.Fatalf("players = %d, want 1", w.Players.Len())
	}
	if w.Walls.Len() != 1 || w.Immovables.Len() != 1 {
		t.Fatalf("walls = %d immovables = %d, want 1 each", w.Walls.Len(), w.Immovables.Len())
	}
	if w.Boxes.Len() != 1 || w.BoxSpots.Len() != 1 {
		t.Fatalf("boxes = %d spots = %d, want 1 each", w.Boxes.Len(), w.BoxSpots.Len())
	}
	// Movables: player and box.
	if w.Movables.Len() != 2 {
		t.Fatalf("movables = %d, want 2", w.Movables.Len())
	}
	// Five floors (every cell but N) plus wall, player, box and spot.
	if w.EntityCount() != 9 {
		t.Fatalf("entities = %d, want 9", w.EntityCount())
	}
	pos := w.MustPosition(w.Player())
	if pos.X != 2 || pos.Y != 0 {
		t.Fatalf("player at (%d,%d), want (2,0)", pos.X, pos.Y)
	}
}

func TestBuiltInLevelsLoad(t *testing.T) {
	for _, l := range assets.Levels {
		t.Run(l.Name, func(t *testing.T) {
			if _, _, err := Load(l.Map); err != nil {
				t.Fatalf("Load(%s): %v", l.Name, err)
			}
		})
	}
}

func TestMustLoadPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustLoad of an invalid level should panic")
		}
	}()
	MustLoad("W W")
}
