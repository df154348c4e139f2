package terminal

import (
	"context"
	"errors"
	"time"

	"classic-snake/session"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

var errQuit = errors.New("quit")

// Run plays s on screen until the player quits or ctx is cancelled. One
// goroutine blocks on PollEvent; the loop goroutine alone touches the game.
// The caller owns screen initialization and Fini.
func Run(ctx context.Context, screen tcell.Screen, s *session.Session, frame time.Duration) error {
	screen.HideCursor()
	renderer := NewRenderer(screen)
	events := make(chan tcell.Event, 16)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			if _, ok := ev.(*tcell.EventInterrupt); ok {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		// Wake the poller so it can observe shutdown.
		defer screen.PostEvent(tcell.NewEventInterrupt(nil))

		ticker := time.NewTicker(frame)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if err := handleEvent(screen, s, ev); err != nil {
					return err
				}
			case <-ticker.C:
				s.Frame()
				renderer.Draw(s)
			}
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func handleEvent(screen tcell.Screen, s *session.Session, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			return errQuit
		}
		if !s.Game().Alive() {
			s.Respawn()
			return nil
		}
		if d, ok := KeyDirection(ev); ok {
			s.Steer(d)
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return nil
}
