package runlog

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSaveAppendsLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	w, err := NewWriter(dir, quietLogger())
	if err != nil {
		t.Fatal(err)
	}

	first := NewEntry("classic", "alice")
	first.Finish(true, 42, 0xbeef)
	second := NewEntry("twins", "")
	second.Finish(false, 3, 1)
	w.Save(first)
	w.Save(second)

	f, err := os.Open(w.Path())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var got []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("line %q: %v", sc.Text(), err)
		}
		got = append(got, e)
	}
	if len(got) != 2 {
		t.Fatalf("lines = %d, want 2", len(got))
	}
	if got[0].Level != "classic" || !got[0].Won || got[0].Moves != 42 || got[0].Player != "alice" {
		t.Errorf("first entry = %+v", got[0])
	}
	if got[0].Fingerprint != "000000000000beef" {
		t.Errorf("fingerprint = %q", got[0].Fingerprint)
	}
	if got[1].Won || got[1].Level != "twins" {
		t.Errorf("second entry = %+v", got[1])
	}
}

func TestNewEntryHasUUID(t *testing.T) {
	a, b := NewEntry("x", ""), NewEntry("x", "")
	if _, err := uuid.Parse(a.ID); err != nil {
		t.Fatalf("id %q is not a UUID: %v", a.ID, err)
	}
	if a.ID == b.ID {
		t.Fatal("entries share an id")
	}
}

func TestNilWriterDrops(t *testing.T) {
	var w *Writer
	w.Save(NewEntry("x", "")) // must not panic
}

func TestDefaultDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-test")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg-test", "box-pusher") {
		t.Fatalf("DefaultDir = %q", dir)
	}
}

func TestSaveToUnwritableDirDoesNotPanic(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	// A regular file in the way makes MkdirAll fail.
	w, _ := NewWriter(filepath.Join(blocker, "sub"), quietLogger())
	w.Save(NewEntry("x", ""))
}
