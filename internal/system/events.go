package system

import (
	"box-pusher/internal/component"
	"box-pusher/internal/ecs"
	"box-pusher/internal/event"
	"box-pusher/internal/gameplay"
)

// Cue is a presentation notification derived from the events of one tick.
type Cue uint8

const (
	CueWall      Cue = iota + 1 // the player bumped into something
	CueCorrect                  // a box landed on a spot of its colour
	CueIncorrect                // a box landed on a spot of another colour
)

// String returns the sound name associated with the cue.
func (c Cue) String() string {
	switch c {
	case CueWall:
		return "wall"
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	}
	return "none"
}

// Interpretation summarises one drain of the event queue.
type Interpretation struct {
	Cues []Cue
	// Won is true only on the tick that moved gameplay from Playing to Won.
	Won bool
}

// InterpretEvents drains q in FIFO order and folds each event into gp.
// Every EntityMoved re-checks the win condition; PlayerHitObstacle only
// produces a cue. The queue is empty afterwards.
func InterpretEvents(w *ecs.World, gp *gameplay.Gameplay, q *event.Queue) Interpretation {
	var out Interpretation
	var spots map[cell][]component.BoxColour

	for _, ev := range q.Drain() {
		switch e := ev.(type) {
		case event.EntityMoved:
			if spots == nil {
				spots = spotIndex(w)
			}
			if cue, ok := landingCue(w, spots, e.ID); ok {
				out.Cues = append(out.Cues, cue)
			}
			if !gp.Won() && Solved(w) {
				out.Won = gp.MarkWon()
			}
		case event.PlayerHitObstacle:
			out.Cues = append(out.Cues, CueWall)
		}
	}
	return out
}

func spotIndex(w *ecs.World) map[cell][]component.BoxColour {
	idx := make(map[cell][]component.BoxColour, w.BoxSpots.Len())
	w.BoxSpots.Each(func(id ecs.EntityID, s component.BoxSpot) {
		pos := w.MustPosition(id)
		c := cell{int(pos.X), int(pos.Y)}
		idx[c] = append(idx[c], s.Colour)
	})
	return idx
}

// landingCue reports whether id is a box now resting on a spot, and if so
// whether the colours match.
func landingCue(w *ecs.World, spots map[cell][]component.BoxColour, id ecs.EntityID) (Cue, bool) {
	box, ok := w.Boxes.Get(id)
	if !ok {
		return 0, false
	}
	pos := w.MustPosition(id)
	colours, ok := spots[cell{int(pos.X), int(pos.Y)}]
	if !ok {
		return 0, false
	}
	for _, c := range colours {
		if c == box.Colour {
			return CueCorrect, true
		}
	}
	return CueIncorrect, true
}

type spotKey struct {
	x, y   uint8
	colour component.BoxColour
}

// Solved reports whether every box stands on a spot of its own colour with
// each spot holding at most one box, and the box and spot counts agree.
// A level without boxes or spots is trivially solved.
func Solved(w *ecs.World) bool {
	if w.Boxes.Len() != w.BoxSpots.Len() {
		return false
	}
	free := make(map[spotKey]int, w.BoxSpots.Len())
	w.BoxSpots.Each(func(id ecs.EntityID, s component.BoxSpot) {
		pos := w.MustPosition(id)
		free[spotKey{pos.X, pos.Y, s.Colour}]++
	})
	for _, id := range w.Boxes.IDs() {
		box, _ := w.Boxes.Get(id)
		pos := w.MustPosition(id)
		k := spotKey{pos.X, pos.Y, box.Colour}
		if free[k] == 0 {
			return false
		}
		free[k]--
	}
	return true
}
