// Package runlog appends a JSON line per finished or abandoned level.
package runlog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// fileName is the log file inside the data directory.
const fileName = "runs.jsonl"

// Entry records one attempt at one level.
type Entry struct {
	ID          string        `json:"id"`
	Timestamp   time.Time     `json:"timestamp"`
	Level       string        `json:"level"`
	Player      string        `json:"player,omitempty"`
	Won         bool          `json:"won"`
	Moves       uint32        `json:"moves"`
	Duration    time.Duration `json:"duration_ns"`
	Fingerprint string        `json:"fingerprint"`
}

// NewEntry stamps a fresh entry with a random id and the current time.
func NewEntry(levelName, player string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Level:     levelName,
		Player:    player,
	}
}

// Finish fills the outcome fields. fp is the board fingerprint at the end.
func (e *Entry) Finish(won bool, moves uint32, fp uint64) {
	e.Won = won
	e.Moves = moves
	e.Duration = time.Since(e.Timestamp)
	e.Fingerprint = fmt.Sprintf("%016x", fp)
}

// Writer appends entries under dir. A nil *Writer drops entries.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a writer for dir; an empty dir uses DefaultDir.
func NewWriter(dir string, logger *slog.Logger) (*Writer, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &Writer{dir: dir, logger: logger}, nil
}

// Path returns the log file location.
func (w *Writer) Path() string { return filepath.Join(w.dir, fileName) }

// Save appends e as a single JSON line. Errors are logged and never crash
// the game.
func (w *Writer) Save(e Entry) {
	if w == nil {
		return
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		w.logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(w.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		w.logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(e)
	if err != nil {
		w.logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		w.logger.Warn("run log: write failed", "error", err)
		return
	}
	w.logger.Debug("run log: saved", "id", e.ID, "level", e.Level, "won", e.Won, "moves", e.Moves)
}

// DefaultDir follows the XDG base directory layout:
// $XDG_DATA_HOME/box-pusher, defaulting to ~/.local/share/box-pusher.
func DefaultDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "box-pusher"), nil
}
