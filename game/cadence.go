package game

import "classic-snake/game/types"

// FrameResult reports what a single frame did to the game.
type FrameResult struct {
	Ticked  bool
	Ate     bool
	Outcome Outcome
}

// Cadence is the driver's frame counter. Movement happens every Interval
// frames; food is checked on every frame.
type Cadence struct {
	Interval int
	frames   int
}

func NewCadence(interval int) *Cadence {
	if interval <= 0 {
		interval = types.DefaultTickInterval
	}
	return &Cadence{Interval: interval}
}

// Frame runs one driver frame. dir is the most recent direction key seen;
// it is handed to Input right before the tick.
func (c *Cadence) Frame(g *Game, dir types.Point) FrameResult {
	var res FrameResult
	if c.frames >= c.Interval {
		g.Input(dir)
		res.Outcome = g.Tick()
		res.Ticked = true
		c.frames = 0
	}
	res.Ate = g.Eat()
	c.frames++
	return res
}
