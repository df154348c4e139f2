package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"classic-snake/game/types"
)

// MaxFPS bounds -fps so a frame never lasts less than a millisecond.
const MaxFPS = 1000

// Config represents the command-line parameters for the game.
type Config struct {
	Width         int
	Height        int
	TileSize      int
	Interval      int
	FPS           int
	Seed          uint64
	Terminal      bool
	AssetsDir     string
	StatsFile     string
	Sound         bool
	ManualRespawn bool
}

// NewConfig returns a Config populated with the classic 20x20 setup.
func NewConfig() *Config {
	return &Config{
		Width:     types.DefaultWidth,
		Height:    types.DefaultHeight,
		TileSize:  types.DefaultTileSize,
		Interval:  types.DefaultTickInterval,
		FPS:       60,
		AssetsDir: "assets",
		StatsFile: "data/stats.json",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "arena width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "arena height in cells")
	fs.IntVar(&c.TileSize, "tile", c.TileSize, "pixels per cell")
	fs.IntVar(&c.Interval, "interval", c.Interval, "frames between snake moves (lower = faster)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "food placement seed (0 = time based)")
	fs.BoolVar(&c.Terminal, "term", c.Terminal, "play in the terminal instead of a window")
	fs.StringVar(&c.AssetsDir, "assets", c.AssetsDir, "directory holding the sprite textures")
	fs.StringVar(&c.StatsFile, "stats", c.StatsFile, "session statistics file (empty disables)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound cues")
	fs.BoolVar(&c.ManualRespawn, "manual-respawn", c.ManualRespawn, "wait for a key press after dying")
}

// Validate checks the values a game cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Width < 2 {
		errs = append(errs, fmt.Errorf("width must be at least 2, got %d", c.Width))
	}
	if c.Height < 1 {
		errs = append(errs, fmt.Errorf("height must be at least 1, got %d", c.Height))
	}
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile must be positive, got %d", c.TileSize))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %d", c.Interval))
	}
	if c.FPS <= 0 || c.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("fps must be in 1..%d, got %d", MaxFPS, c.FPS))
	}
	return errors.Join(errs...)
}

// FrameDuration is the wall-clock length of one frame.
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// ResolveSeed returns the configured seed, or one derived from now when unset.
func (c *Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
