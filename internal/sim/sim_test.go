package sim

import (
	"testing"

	"box-pusher/assets"
	"box-pusher/internal/event"
	"box-pusher/internal/gameplay"
	"box-pusher/internal/system"
)

const corridor = `
W W W W W W W
W P BR . . SR W
W W W W W W W
`

func mustLoad(t *testing.T, text string, opts Options) *Simulation {
	t.Helper()
	s, err := Load(text, opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func right() []system.Direction { return []system.Direction{system.DirRight} }

func TestTickSolvesCorridor(t *testing.T) {
	s := mustLoad(t, corridor, Options{})

	for i := 1; i <= 2; i++ {
		res := s.Tick(right())
		if res.Won || !res.Moved {
			t.Fatalf("tick %d: %+v", i, res)
		}
	}
	res := s.Tick(right())
	if !res.Won {
		t.Fatal("third push should solve the corridor")
	}
	gp := s.Gameplay()
	if gp.State != gameplay.StateWon || gp.MovesCount != 3 {
		t.Fatalf("gameplay = %+v, want Won after 3 moves", gp)
	}
	if len(res.Cues) != 1 || res.Cues[0] != system.CueCorrect {
		t.Fatalf("cues = %v, want [correct]", res.Cues)
	}
}

func TestTickEventsSnapshotAndDrain(t *testing.T) {
	s := mustLoad(t, corridor, Options{})

	res := s.Tick(right())
	if len(res.Events) != 2 {
		t.Fatalf("events = %v, want two EntityMoved", res.Events)
	}
	if len(s.PendingEvents()) != 0 {
		t.Fatal("events must not carry across ticks")
	}
}

func TestIdleTickIsNoop(t *testing.T) {
	s := mustLoad(t, corridor, Options{})
	before := s.Fingerprint()

	res := s.Tick(nil)
	if res.Moved || len(res.Events) != 0 || len(res.Cues) != 0 {
		t.Fatalf("idle tick produced %+v", res)
	}
	if s.Fingerprint() != before || s.Gameplay().MovesCount != 0 {
		t.Fatal("idle tick changed state")
	}
}

func TestBlockedTickCue(t *testing.T) {
	s := mustLoad(t, corridor, Options{})
	res := s.Tick([]system.Direction{system.DirUp})

	if res.Moved {
		t.Fatal("walking into the top wall moved something")
	}
	if len(res.Events) != 1 {
		t.Fatalf("events = %v", res.Events)
	}
	if _, ok := res.Events[0].(event.PlayerHitObstacle); !ok {
		t.Fatalf("event = %v, want PlayerHitObstacle", res.Events[0])
	}
	if len(res.Cues) != 1 || res.Cues[0] != system.CueWall {
		t.Fatalf("cues = %v, want [wall]", res.Cues)
	}
}

func TestPolicyFirstKeyIgnoresLaterKeys(t *testing.T) {
	open := `
W W W W W
W . . . W
W . P . W
W . . . W
W W W W W
`
	first := mustLoad(t, open, Options{Policy: system.PolicyFirstKey})
	all := mustLoad(t, open, Options{Policy: system.PolicyAllKeys})
	keys := []system.Direction{system.DirRight, system.DirDown}

	first.Tick(keys)
	all.Tick(keys)

	p := first.World().MustPosition(first.World().Player())
	if p.X != 2 || p.Y != 3 {
		t.Fatalf("first-key policy moved player to (%d,%d), want (2,3)", p.X, p.Y)
	}
	if first.Gameplay().MovesCount != 1 {
		t.Fatalf("first-key moves = %d, want 1", first.Gameplay().MovesCount)
	}

	p = all.World().MustPosition(all.World().Player())
	if p.X != 3 || p.Y != 3 {
		t.Fatalf("all-keys policy moved player to (%d,%d), want (3,3)", p.X, p.Y)
	}
	if all.Gameplay().MovesCount != 2 {
		t.Fatalf("all-keys moves = %d, want 2", all.Gameplay().MovesCount)
	}
}

func TestExactlyOnePlayerThroughout(t *testing.T) {
	s := mustLoad(t, assets.Levels[0].Map, Options{Policy: system.PolicyAllKeys})
	seq := []system.Direction{system.DirUp, system.DirRight, system.DirRight, system.DirDown, system.DirLeft, system.DirUp}
	for i := 0; i < 40; i++ {
		s.Tick([]system.Direction{seq[i%len(seq)]})
		if n := s.World().Players.Len(); n != 1 {
			t.Fatalf("tick %d: %d players", i, n)
		}
	}
}

func TestPositionsStayInBounds(t *testing.T) {
	s := mustLoad(t, "P BR . SR\n. . . .", Options{Policy: system.PolicyAllKeys})
	all := []system.Direction{system.DirUp, system.DirDown, system.DirLeft, system.DirRight}
	for i := 0; i < 25; i++ {
		s.Tick([]system.Direction{all[i%4], all[(i*3)%4]})
		for _, id := range s.World().Positions.IDs() {
			p := s.World().MustPosition(id)
			if !s.Map().InBounds(int(p.X), int(p.Y)) {
				t.Fatalf("tick %d: entity %d at (%d,%d) out of bounds", i, id, p.X, p.Y)
			}
		}
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a := mustLoad(t, corridor, Options{})
	b := mustLoad(t, corridor, Options{})
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("identical loads hash differently")
	}
	a.Tick(right())
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatal("fingerprint ignored a move")
	}
	b.Tick(right())
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("same inputs produced different fingerprints")
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	if _, err := Load("W W W", Options{}); err == nil {
		t.Fatal("Load should fail without a player")
	}
}
