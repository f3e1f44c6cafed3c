// Package audio plays the sound cues produced by event interpretation.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"box-pusher/internal/system"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Output receives finished streamers.
type Output interface {
	Play(s ...beep.Streamer)
}

type speakerOutput struct{}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

// InitSpeaker opens the system audio device and returns it as an Output.
func InitSpeaker() (Output, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return speakerOutput{}, nil
}

// tone is one note of a synthesised cue.
type tone struct {
	freq float64
	dur  time.Duration
}

var tones = map[system.Cue][]tone{
	system.CueWall:      {{110, 120 * time.Millisecond}},
	system.CueCorrect:   {{660, 80 * time.Millisecond}, {990, 120 * time.Millisecond}},
	system.CueIncorrect: {{220, 90 * time.Millisecond}, {165, 140 * time.Millisecond}},
}

// Manager maps cues to sounds. A nil *Manager is silent.
type Manager struct {
	mu     sync.Mutex
	out    Output
	volume float64
	sounds map[system.Cue]*beep.Buffer
	logger *slog.Logger
}

// NewManager creates a manager writing to out at the given volume (0-1).
func NewManager(out Output, volume float64, logger *slog.Logger) *Manager {
	return &Manager{
		out:    out,
		volume: volume,
		sounds: make(map[system.Cue]*beep.Buffer),
		logger: logger,
	}
}

// LoadDir decodes <cue>.wav files from dir. Missing files keep the
// synthesised tone; any other failure is returned.
func (m *Manager) LoadDir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for cue := range tones {
		path := filepath.Join(dir, cue.String()+".wav")
		buf, err := loadWAV(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		m.sounds[cue] = buf
		m.logger.Debug("audio: loaded sound", "cue", cue.String(), "path", path)
	}
	return nil
}

func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	return buf, nil
}

// Play sends the sound for cue to the output.
func (m *Manager) Play(cue system.Cue) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.streamer(cue)
	if err != nil {
		m.logger.Warn("audio: cannot build sound", "cue", cue.String(), "error", err)
		return
	}
	if s == nil {
		return
	}
	m.out.Play(withVolume(s, m.volume))
}

func (m *Manager) streamer(cue system.Cue) (beep.Streamer, error) {
	if buf, ok := m.sounds[cue]; ok {
		return buf.Streamer(0, buf.Len()), nil
	}
	notes, ok := tones[cue]
	if !ok {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}
	return beep.Seq(parts...), nil
}

// withVolume scales s linearly; 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
