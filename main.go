// box-pusher is the terminal front end: push every coloured box onto the
// spot of the same colour.
//
// Usage:
//
//	box-pusher [--config box-pusher.yaml] [--level classic] [--mute]
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"box-pusher/internal/audio"
	"box-pusher/internal/config"
	"box-pusher/internal/game"
	"box-pusher/internal/runlog"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "box-pusher",
		Usage: "push every coloured box onto its matching spot",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Usage: "level name (default: first configured)"},
			&cli.BoolFlag{Name: "list-levels", Usage: "print the configured level names and exit"},
			&cli.BoolFlag{Name: "mute", Usage: "disable sound cues"},
			&cli.BoolFlag{Name: "debug", Usage: "log at debug level"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to this file (default: discarded)"},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if cmd.Bool("list-levels") {
		for _, name := range cfg.LevelNames() {
			fmt.Println(name)
		}
		return nil
	}

	// stderr belongs to the screen, so logs go to a file or nowhere.
	logOut := io.Discard
	if path := cmd.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, cmd.Bool("debug"))

	opts, err := game.NewOptions(cfg, cmd.String("level"))
	if err != nil {
		return err
	}
	opts.Logger = logger
	if u, err := user.Current(); err == nil {
		opts.Player = u.Username
	}
	if cfg.Audio.Enabled && !cmd.Bool("mute") {
		opts.Audio = newAudio(cfg.Audio, logger)
	}
	if cfg.RunLog.Enabled {
		rl, err := runlog.NewWriter(cfg.RunLog.Dir, logger)
		if err != nil {
			logger.Warn("run log disabled", "error", err)
		}
		opts.RunLog = rl
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	g, err := game.New(screen, opts)
	if err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return g.Run(ctx)
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newAudio opens the speaker. Failure only costs the sound cues.
func newAudio(cfg config.AudioConfig, logger *slog.Logger) *audio.Manager {
	out, err := audio.InitSpeaker()
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil
	}
	m := audio.NewManager(out, cfg.Volume, logger)
	if cfg.SoundDir != "" {
		if err := m.LoadDir(cfg.SoundDir); err != nil {
			logger.Warn("sound dir ignored", "dir", cfg.SoundDir, "error", err)
		}
	}
	return m
}
