package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"classic-snake/audio"
	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/session"
	"classic-snake/stats"
	"classic-snake/terminal"
	"classic-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[snake] invalid flags: %v", err)
	}
	play := runWindow
	if cfg.Terminal {
		play = runTerminal
	}
	if err := run(cfg, play); err != nil {
		log.Fatalf("[snake] %v", err)
	}
}

// frontend drives a session until the player quits.
type frontend func(sess *session.Session, cfg *config.Config) error

// run plays until the player quits. Deferred cleanup finishes before main
// decides the exit status.
func run(cfg *config.Config, play frontend) error {
	seed := cfg.ResolveSeed(time.Now())
	g, err := game.NewGame(cfg.Width, cfg.Height, rand.New(rand.NewSource(seed)), game.Options{
		FoodVariants:  len(ui.FoodSprites),
		ManualRespawn: cfg.ManualRespawn,
	})
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	gameStats, err := stats.Load(cfg.StatsFile)
	if err != nil {
		log.Printf("[snake] starting with empty stats, this session will not be saved: %v", err)
	}

	cues, err := audio.New(cfg.Sound)
	if err != nil {
		log.Printf("[snake] sound disabled: %v", err)
	}
	defer cues.Close()

	sess := session.New(g, cfg.Interval, gameStats, cues)
	log.Printf("[snake] session %s seed %d arena %dx%d", gameStats.SessionID, seed, cfg.Width, cfg.Height)

	err = play(sess, cfg)

	// Save final stats
	if saveErr := gameStats.SaveToFile(); saveErr != nil {
		log.Printf("[snake] %v", saveErr)
	}
	return err
}

func runWindow(sess *session.Session, cfg *config.Config) error {
	w, h := ui.WindowSize(sess.Game().Grid, cfg.TileSize)
	rl.InitWindow(w, h, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	renderer := ui.NewRenderer(sess.Game().Grid, cfg.TileSize, cfg.AssetsDir)
	defer renderer.Close()

	steer := sess.Game().Direction()
	for !ui.QuitRequested() {
		if !sess.Game().Alive() {
			if ui.AnyKeyPressed() {
				sess.Respawn()
				steer = sess.Game().Direction()
			}
		} else {
			steer = ui.PollDirection(steer)
			sess.Steer(steer)
		}

		sess.Frame()
		renderer.Draw(sess)
	}
	return nil
}

func runTerminal(sess *session.Session, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	// The log would scribble over the board.
	if f, err := os.OpenFile("snake.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		log.SetOutput(f)
		defer func() {
			log.SetOutput(os.Stderr)
			f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return terminal.Run(ctx, screen, sess, cfg.FrameDuration())
}
