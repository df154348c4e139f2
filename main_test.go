package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"classic-snake/config"
	"classic-snake/session"
)

func TestRunSavesStatsWhenFrontendFails(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Seed = 1
	cfg.StatsFile = filepath.Join(t.TempDir(), "stats.json")

	errFrontend := errors.New("screen lost")
	frames := 0
	err := run(cfg, func(sess *session.Session, _ *config.Config) error {
		for range 200 {
			sess.Frame()
			frames++
		}
		return errFrontend
	})

	if !errors.Is(err, errFrontend) {
		t.Fatalf("run() = %v, expected frontend error", err)
	}
	if frames != 200 {
		t.Fatalf("frames = %d, expected 200", frames)
	}
	if _, err := os.Stat(cfg.StatsFile); err != nil {
		t.Fatalf("stats not saved: %v", err)
	}
}

func TestRunRejectsBadArena(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Width = 1
	cfg.StatsFile = ""

	called := false
	err := run(cfg, func(*session.Session, *config.Config) error {
		called = true
		return nil
	})
	if err == nil || called {
		t.Fatalf("run() = %v, frontend called = %v; expected error before play", err, called)
	}
}
