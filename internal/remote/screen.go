package remote

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client does not send TERM.
const DefaultTerm = "xterm-256color"

// ErrNoPTY is returned for sessions opened without a terminal.
var ErrNoPTY = errors.New("remote: session has no PTY")

// termMu serialises the TERM environment swap around screen creation.
var termMu sync.Mutex

// SessionTerm returns the TERM the client sent, or DefaultTerm.
func SessionTerm(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && v != "" {
			return v
		}
	}
	return DefaultTerm
}

// NewScreen builds and initialises a tcell screen for s using term.
// Callers must vet term; it is handed to terminfo lookup as is.
func NewScreen(s gossh.Session, term string) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	tty := NewTty(s, pty, winCh)

	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup for %q: %w", term, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}
