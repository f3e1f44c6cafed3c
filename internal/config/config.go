// Package config loads the YAML configuration shared by the terminal game
// and the SSH server.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"box-pusher/assets"
	"box-pusher/internal/level"
	"box-pusher/internal/system"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoLevels       = errors.New("config: no levels defined")
	ErrLevelNotFound  = errors.New("config: level not found")
	ErrDuplicateLevel = errors.New("config: duplicate level name")
)

// Config is the root of the YAML document.
type Config struct {
	Input  InputConfig   `yaml:"input"`
	Audio  AudioConfig   `yaml:"audio"`
	RunLog RunLogConfig  `yaml:"run_log"`
	Levels []LevelConfig `yaml:"levels"`
}

// InputConfig controls how key presses become ticks.
type InputConfig struct {
	// Policy is "first" (one direction per tick) or "all".
	Policy    string `yaml:"policy"`
	FrameRate int    `yaml:"frame_rate"`
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	// SoundDir may hold wall.wav, correct.wav and incorrect.wav which
	// replace the synthesised tones.
	SoundDir string `yaml:"sound_dir"`
}

// RunLogConfig controls the finished-level log.
type RunLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// LevelConfig is one named level in level-text form.
type LevelConfig struct {
	Name string `yaml:"name"`
	Map  string `yaml:"map"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{
		Input:  InputConfig{Policy: "first", FrameRate: 30},
		Audio:  AudioConfig{Enabled: true, Volume: 0.5},
		RunLog: RunLogConfig{Enabled: true},
	}
	for _, l := range assets.Levels {
		c.Levels = append(c.Levels, LevelConfig{Name: l.Name, Map: l.Map})
	}
	return c
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses YAML from r over the defaults and validates the result.
// A document that lists levels replaces the built-in ones.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	builtIn := c.Levels
	c.Levels = nil

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if c.Levels == nil {
		c.Levels = builtIn
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every field and parses every level.
func (c *Config) Validate() error {
	if _, err := system.ParsePolicy(c.Input.Policy); err != nil {
		return fmt.Errorf("input.policy: %w", err)
	}
	if c.Input.FrameRate < 1 || c.Input.FrameRate > 240 {
		return fmt.Errorf("input.frame_rate: %d out of range 1-240", c.Input.FrameRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume: %v out of range 0-1", c.Audio.Volume)
	}
	if len(c.Levels) == 0 {
		return ErrNoLevels
	}
	seen := make(map[string]bool, len(c.Levels))
	for i, l := range c.Levels {
		if l.Name == "" {
			return fmt.Errorf("levels[%d]: missing name", i)
		}
		if seen[l.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateLevel, l.Name)
		}
		seen[l.Name] = true
		if _, err := level.Parse(l.Map); err != nil {
			return fmt.Errorf("level %q: %w", l.Name, err)
		}
	}
	return nil
}

// Policy returns the parsed input policy. Validate has already checked it.
func (c *Config) Policy() system.Policy {
	p, _ := system.ParsePolicy(c.Input.Policy)
	return p
}

// Level looks up a level by name. An empty name selects the first level.
func (c *Config) Level(name string) (LevelConfig, error) {
	if len(c.Levels) == 0 {
		return LevelConfig{}, ErrNoLevels
	}
	if name == "" {
		return c.Levels[0], nil
	}
	for _, l := range c.Levels {
		if l.Name == name {
			return l, nil
		}
	}
	return LevelConfig{}, fmt.Errorf("%w: %q", ErrLevelNotFound, name)
}

// LevelNames lists the configured levels in order.
func (c *Config) LevelNames() []string {
	names := make([]string, len(c.Levels))
	for i, l := range c.Levels {
		names[i] = l.Name
	}
	return names
}
