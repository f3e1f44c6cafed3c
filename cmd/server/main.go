// box-pusher-server serves the puzzle over SSH. Every connection plays its
// own copy of the level. Build:
//
//	go build -o box-pusher-server ./cmd/server
//
// Usage:
//
//	./box-pusher-server [--port 2222] [--key server_host_key] [--config box-pusher.yaml]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"box-pusher/internal/config"
	"box-pusher/internal/game"
	"box-pusher/internal/remote"
	"box-pusher/internal/runlog"

	gossh "github.com/gliderlabs/ssh"
	"github.com/urfave/cli/v3"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"
)

// maxNameBytes caps a player name as stored in the run log.
const maxNameBytes = 16

// allowedTerms are the TERM values handed to terminfo lookup.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode-256color": true,
}

func main() {
	cmd := &cli.Command{
		Name:  "box-pusher-server",
		Usage: "serve box-pusher over SSH",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Value: 2222, Usage: "SSH server port"},
			&cli.StringFlag{Name: "key", Value: "server_host_key", Usage: "PEM host key (generated if absent)"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Usage: "level name (default: first configured)"},
			&cli.BoolFlag{Name: "debug", Usage: "log at debug level"},
		},
		Action: serve,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	base, err := game.NewOptions(cfg, cmd.String("level"))
	if err != nil {
		return err
	}
	if cfg.RunLog.Enabled {
		rl, err := runlog.NewWriter(cfg.RunLog.Dir, logger)
		if err != nil {
			logger.Warn("run log disabled", "error", err)
		}
		base.RunLog = rl
	}

	signer, err := loadOrCreateHostKey(cmd.String("key"), logger)
	if err != nil {
		return err
	}

	port := cmd.Int("port")
	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", port),
		Handler: func(s gossh.Session) {
			handleSession(s, base, logger)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may connect; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("listening", "port", port, "level", base.Level.Name)
		err := srv.ListenAndServe()
		if errors.Is(err, gossh.ErrServerClosed) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return srv.Close()
		}
		return nil
	})
	return eg.Wait()
}

// handleSession runs one independent game for the connection. It blocks
// until the game ends so the SSH session stays open.
func handleSession(s gossh.Session, base game.Options, logger *slog.Logger) {
	name := sanitizeName(s.User())
	if name == "" {
		name = "guest"
	}
	log := logger.With("player", name, "remote", s.RemoteAddr().String())

	term := remote.SessionTerm(s.Environ())
	if !allowedTerms[term] {
		log.Warn("rejected terminal", "term", term)
		fmt.Fprintf(s, "Unsupported terminal %q. Try TERM=xterm-256color.\n", term)
		return
	}

	screen, err := remote.NewScreen(s, term)
	if errors.Is(err, remote.ErrNoPTY) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}
	if err != nil {
		log.Warn("screen setup failed", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	opts := base
	opts.Player = name
	opts.Logger = log
	g, err := game.New(screen, opts)
	if err != nil {
		screen.Fini()
		log.Error("game setup failed", "error", err)
		return
	}
	log.Info("session started")
	if err := g.Run(s.Context()); err != nil {
		log.Warn("session ended with error", "error", err)
		return
	}
	log.Info("session ended")
}

// sanitizeName drops control characters and cuts the result to
// maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "box-pusher server")
	if err != nil {
		logger.Warn("host key not persisted", "error", err)
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		logger.Warn("host key not persisted", "path", path, "error", err)
	}
	return signer, nil
}
