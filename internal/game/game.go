// Package game drives one player's terminal session: it polls keys, ticks the
// simulation at a fixed frame rate, plays cues and draws every frame.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"box-pusher/internal/audio"
	"box-pusher/internal/config"
	"box-pusher/internal/render"
	"box-pusher/internal/runlog"
	"box-pusher/internal/sim"
	"box-pusher/internal/system"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// maxMessages bounds the message log.
const maxMessages = 50

// errQuit ends the frame loop without being reported as a failure.
var errQuit = errors.New("game: quit")

// Options configures a Game. Audio and RunLog may be nil.
type Options struct {
	Level     config.LevelConfig
	Policy    system.Policy
	FrameRate int
	Player    string
	Audio     *audio.Manager
	RunLog    *runlog.Writer
	Logger    *slog.Logger
}

// Game is the top-level orchestrator for one screen.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	opts     Options
	logger   *slog.Logger

	sim      *sim.Simulation
	entry    runlog.Entry
	saved    bool
	start    time.Time
	pressed  []system.Direction
	messages []string

	finiOnce sync.Once
}

// New creates a Game on an initialised screen and loads the level.
func New(screen tcell.Screen, opts Options) (*Game, error) {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 30
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		opts:     opts,
		logger:   logger.With("level", opts.Level.Name),
	}
	if err := g.loadLevel(); err != nil {
		return nil, err
	}
	return g, nil
}

// loadLevel starts a fresh attempt at the configured level.
func (g *Game) loadLevel() error {
	s, err := sim.Load(g.opts.Level.Map, sim.Options{Policy: g.opts.Policy})
	if err != nil {
		return fmt.Errorf("load level %q: %w", g.opts.Level.Name, err)
	}
	g.sim = s
	g.entry = runlog.NewEntry(g.opts.Level.Name, g.opts.Player)
	g.saved = false
	g.start = time.Now()
	g.pressed = g.pressed[:0]
	g.addMessage(fmt.Sprintf("Level %s. Push every box onto its spot.", g.opts.Level.Name))
	g.logger.Info("level started", "attempt", g.entry.ID)
	return nil
}

// Run polls input and draws frames until the player quits or ctx ends.
// The screen is finalised before Run returns.
func (g *Game) Run(ctx context.Context) error {
	defer g.fini()

	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 16)

	eg.Go(func() error {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		// PollEvent only returns once the screen is finalised.
		defer g.fini()
		return g.loop(ctx, events)
	})

	err := eg.Wait()
	g.saveAttempt()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.opts.FrameRate))
	defer ticker.Stop()

	g.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if err := g.handleEvent(ev); err != nil {
				return err
			}
		case <-ticker.C:
			g.step()
			g.draw()
		}
	}
}

// handleEvent records key presses for the next frame. Movement keys are
// collected as a set; restart and quit act immediately.
func (g *Game) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		action := keyToAction(ev)
		switch action {
		case ActionQuit:
			return errQuit
		case ActionRestart:
			g.saveAttempt()
			return g.loadLevel()
		}
		if dir, ok := actionToDirection(action); ok {
			g.pressed = append(g.pressed, dir)
		}
	}
	return nil
}

// step advances the simulation by one tick using the keys pressed since the
// previous frame.
func (g *Game) step() {
	pressed := g.pressed
	g.pressed = g.pressed[:0]
	if g.sim.Gameplay().Won() {
		return
	}

	res := g.sim.Tick(pressed)
	for _, cue := range res.Cues {
		g.opts.Audio.Play(cue)
		if cue == system.CueIncorrect {
			g.addMessage("That box does not belong there.")
		}
	}
	if res.Won {
		gp := g.sim.Gameplay()
		g.addMessage(fmt.Sprintf("Solved in %d moves! Press r to replay or q to quit.", gp.MovesCount))
		g.logger.Info("level solved", "moves", gp.MovesCount)
		g.saveAttempt()
	}
}

// saveAttempt writes the current attempt to the run log once.
func (g *Game) saveAttempt() {
	if g.saved {
		return
	}
	g.saved = true
	gp := g.sim.Gameplay()
	g.entry.Finish(gp.Won(), gp.MovesCount, g.sim.Fingerprint())
	g.opts.RunLog.Save(g.entry)
}

func (g *Game) draw() {
	elapsed := time.Since(g.start).Seconds()
	g.renderer.DrawFrame(g.sim.World(), g.sim.Map(), elapsed)
	g.renderer.DrawHUD(g.sim.Gameplay(), g.opts.Level.Name, g.messages)
}

func (g *Game) fini() {
	g.finiOnce.Do(g.screen.Fini)
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
