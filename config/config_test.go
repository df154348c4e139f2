package config

import (
	"flag"
	"strings"
	"testing"
	"time"
)

func TestDefaultsAreValid(t *testing.T) {
	c := NewConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Width != 20 || c.Height != 20 || c.TileSize != 25 || c.Interval != 10 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestBindParsesFlags(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	c.Bind(fs)

	args := []string{"-width", "30", "-height", "15", "-interval", "4", "-seed", "7", "-term", "-stats", "", "-manual-respawn"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Width != 30 || c.Height != 15 || c.Interval != 4 || c.Seed != 7 {
		t.Fatalf("unexpected parsed config: %+v", c)
	}
	if !c.Terminal || !c.ManualRespawn || c.StatsFile != "" {
		t.Fatalf("unexpected parsed flags: %+v", c)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := NewConfig()
	c.Width = 1
	c.Height = 0
	c.FPS = 0

	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"width", "height", "fps"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestValidateRejectsFPSAboveMax(t *testing.T) {
	c := NewConfig()
	c.FPS = 2_000_000_000
	if err := c.Validate(); err == nil || !strings.Contains(err.Error(), "fps") {
		t.Fatalf("Validate() = %v, expected fps error", err)
	}

	c.FPS = MaxFPS
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() at MaxFPS: %v", err)
	}
	if c.FrameDuration() <= 0 {
		t.Fatalf("frame = %v, expected positive", c.FrameDuration())
	}
}

func TestResolveSeed(t *testing.T) {
	c := NewConfig()
	now := time.Unix(0, 12345)
	if got := c.ResolveSeed(now); got != 12345 {
		t.Fatalf("seed = %d, expected time based 12345", got)
	}
	c.Seed = 3
	if got := c.ResolveSeed(now); got != 3 {
		t.Fatalf("seed = %d, expected 3", got)
	}
}

func TestFrameDuration(t *testing.T) {
	c := NewConfig()
	c.FPS = 50
	if got := c.FrameDuration(); got != 20*time.Millisecond {
		t.Fatalf("frame = %v, expected 20ms", got)
	}
}
