// Package remote adapts an SSH session into a tcell screen so every
// connection gets its own game.
package remote

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty over a gliderlabs SSH session.
type Tty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	size     tcell.WindowSize
	onResize func()
	watch    sync.Once
}

// NewTty wraps s. pty carries the initial window; winCh delivers resizes.
func NewTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return &Tty{
		session: s,
		winCh:   winCh,
		size:    tcell.WindowSize{Width: pty.Window.Width, Height: pty.Window.Height},
	}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *Tty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the server owns the channel.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the latest size reported by the client.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, nil
}

// NotifyResize sets the resize callback. The window channel is watched
// from the first call until the session closes it.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	t.watch.Do(func() { go t.watchResize() })
}

func (t *Tty) watchResize() {
	for win := range t.winCh {
		t.mu.Lock()
		t.size = tcell.WindowSize{Width: win.Width, Height: win.Height}
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
