// Package sim runs one level: it owns the component store, the event queue
// and the gameplay state, and advances them one tick at a time.
package sim

import (
	"encoding/binary"
	"slices"

	"box-pusher/internal/ecs"
	"box-pusher/internal/event"
	"box-pusher/internal/gamemap"
	"box-pusher/internal/gameplay"
	"box-pusher/internal/level"
	"box-pusher/internal/system"

	"github.com/cespare/xxhash/v2"
)

// Options tune how input is consumed.
type Options struct {
	Policy system.Policy
}

// TickResult is everything the presentation layer needs from one tick.
type TickResult struct {
	// Events produced by resolution, in queue order, before they were drained.
	Events []event.Event
	Cues   []system.Cue
	// Moved is true when at least one entity changed cell.
	Moved bool
	// Won is true on the tick that solved the level.
	Won bool
}

// Simulation is a single level in play.
type Simulation struct {
	world    *ecs.World
	gmap     *gamemap.GameMap
	queue    event.Queue
	gameplay gameplay.Gameplay
	opts     Options
}

// New wraps an already populated world.
func New(w *ecs.World, gmap *gamemap.GameMap, opts Options) *Simulation {
	return &Simulation{world: w, gmap: gmap, opts: opts}
}

// Load parses level text and returns a fresh simulation for it.
func Load(text string, opts Options) (*Simulation, error) {
	w, gmap, err := level.Load(text)
	if err != nil {
		return nil, err
	}
	return New(w, gmap, opts), nil
}

// Tick resolves the pressed directions allowed by the input policy, queues
// the resulting events, then interprets and drains them.
func (s *Simulation) Tick(pressed []system.Direction) TickResult {
	for _, dir := range s.opts.Policy.Select(pressed) {
		s.queue.Push(system.HandleInput(s.world, s.gmap, &s.gameplay, dir)...)
	}

	res := TickResult{Events: s.queue.Events()}
	for _, ev := range res.Events {
		if _, ok := ev.(event.EntityMoved); ok {
			res.Moved = true
			break
		}
	}
	interp := system.InterpretEvents(s.world, &s.gameplay, &s.queue)
	res.Cues = interp.Cues
	res.Won = interp.Won
	return res
}

// World exposes the component store for reading. Callers must not mutate it.
func (s *Simulation) World() *ecs.World { return s.world }

// Map returns the level bounds.
func (s *Simulation) Map() *gamemap.GameMap { return s.gmap }

// Gameplay returns a copy of the gameplay state.
func (s *Simulation) Gameplay() gameplay.Gameplay { return s.gameplay }

// PendingEvents returns the events queued but not yet interpreted. Between
// ticks it is always empty.
func (s *Simulation) PendingEvents() []event.Event { return s.queue.Events() }

// Fingerprint hashes the cell of every movable entity. Two simulations of
// the same level agree on it exactly when the player and boxes agree.
func (s *Simulation) Fingerprint() uint64 {
	ids := s.world.Movables.IDs()
	slices.Sort(ids)

	d := xxhash.New()
	buf := make([]byte, 0, 10)
	for _, id := range ids {
		pos := s.world.MustPosition(id)
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(id))
		buf = append(buf, pos.X, pos.Y)
		d.Write(buf) //nolint:errcheck // hash writes never fail
	}
	return d.Sum64()
}
