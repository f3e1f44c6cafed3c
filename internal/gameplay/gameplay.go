// Package gameplay tracks the move counter and the Playing/Won state of a level.
package gameplay

// State is the two-state gameplay machine.
type State uint8

const (
	StatePlaying State = iota
	StateWon
)

func (s State) String() string {
	if s == StateWon {
		return "Won"
	}
	return "Playing"
}

// Gameplay is the per-level resource read by the HUD.
type Gameplay struct {
	State      State
	MovesCount uint32
}

// RecordMove counts one input that moved at least one entity.
func (g *Gameplay) RecordMove() { g.MovesCount++ }

// MarkWon moves Playing to Won. It reports whether this call made the
// transition; Won is terminal.
func (g *Gameplay) MarkWon() bool {
	if g.State == StateWon {
		return false
	}
	g.State = StateWon
	return true
}

// Won reports whether the level is solved.
func (g *Gameplay) Won() bool { return g.State == StateWon }
