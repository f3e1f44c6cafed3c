package game

import (
	"box-pusher/internal/config"
)

// NewOptions selects levelName from cfg and copies the input settings.
// Audio, RunLog, Player and Logger are left for the caller.
func NewOptions(cfg *config.Config, levelName string) (Options, error) {
	lvl, err := cfg.Level(levelName)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Level:     lvl,
		Policy:    cfg.Policy(),
		FrameRate: cfg.Input.FrameRate,
	}, nil
}
