// Package session drives one game for a frontend: it feeds frames to the
// simulation and turns their outcomes into statistics and sound cues.
package session

import (
	"log"
	"time"

	"classic-snake/game"
	"classic-snake/game/types"
)

// Recorder stores finished lives.
type Recorder interface {
	AddGame(score, ticks int, collision string, startTime, endTime time.Time)
	GetMaxScore() int
	GetGamesPlayed() int
}

// Sounds plays event cues.
type Sounds interface {
	Eat()
	Death()
}

type nopSounds struct{}

func (nopSounds) Eat()   {}
func (nopSounds) Death() {}

// Session is owned by a single goroutine; it holds no locks.
type Session struct {
	game    *game.Game
	cadence *game.Cadence
	stats   Recorder
	cues    Sounds
	now     func() time.Time

	steer     types.Point
	lifeStart time.Time
	lives     int
}

// New wraps g with a frame cadence of interval frames per move.
func New(g *game.Game, interval int, stats Recorder, cues Sounds) *Session {
	if cues == nil {
		cues = nopSounds{}
	}
	s := &Session{
		game:    g,
		cadence: game.NewCadence(interval),
		stats:   stats,
		cues:    cues,
		now:     time.Now,
		steer:   g.Direction(),
	}
	s.lifeStart = s.now()
	return s
}

// Steer remembers the latest direction key; it is applied on the next tick.
func (s *Session) Steer(d types.Point) {
	s.steer = d
}

// Frame advances the session by one rendered frame.
func (s *Session) Frame() game.FrameResult {
	res := s.cadence.Frame(s.game, s.steer)
	if res.Ate {
		s.cues.Eat()
	}
	if out := res.Outcome; out.Collision != types.NoCollision {
		s.cues.Death()
		s.recordLife(out)
	}
	return res
}

func (s *Session) recordLife(out game.Outcome) {
	end := s.now()
	s.lives++
	if s.stats != nil {
		s.stats.AddGame(out.Score, out.Ticks, out.Collision.String(), s.lifeStart, end)
	}
	log.Printf("[snake] life %d over: %s collision, score %d after %d ticks", s.lives, out.Collision, out.Score, out.Ticks)
	s.lifeStart = end
}

// Respawn restarts a game left dead by manual respawn mode.
func (s *Session) Respawn() {
	if s.game.Alive() {
		return
	}
	s.game.Respawn()
	s.steer = s.game.Direction()
	s.lifeStart = s.now()
}

func (s *Session) Game() *game.Game { return s.game }

// Best is the highest score seen, including the life in progress.
func (s *Session) Best() int {
	best := s.game.Score()
	if s.stats != nil {
		best = max(best, s.stats.GetMaxScore())
	}
	return best
}

// GamesPlayed counts recorded lives, including those loaded from disk.
func (s *Session) GamesPlayed() int {
	if s.stats == nil {
		return s.lives
	}
	return s.stats.GetGamesPlayed()
}
