package game

import (
	"errors"
	"fmt"

	"classic-snake/game/manager"
	"classic-snake/game/types"
)

// ErrArenaTooSmall is returned when the arena cannot hold the start cell.
var ErrArenaTooSmall = errors.New("arena too small")

// Status is the life-cycle state of the snake.
type Status int

const (
	Alive Status = iota
	Dead
)

func (s Status) String() string {
	if s == Dead {
		return "dead"
	}
	return "alive"
}

// Options tune a Game beyond its arena size.
type Options struct {
	// FoodVariants is the number of visual food kinds to pick from.
	FoodVariants int
	// ManualRespawn keeps the game in the Dead state after a collision until
	// Respawn is called. By default Tick respawns in the same call.
	ManualRespawn bool
}

// Outcome describes a single Tick.
type Outcome struct {
	Moved     bool
	Grew      bool
	Collision types.CollisionType
	Respawned bool
	// Score and Ticks of the life that just ended; set when Collision != NoCollision.
	Score int
	Ticks int
}

// Game owns the snake, its direction, the food and the arena.
type Game struct {
	Grid types.Grid

	snake       []types.Point
	food        types.Point
	hasFood     bool
	foodVariant int
	pending     *types.Point
	direction   types.Point
	status      Status
	ticks       int

	manualRespawn bool
	collisionMgr  *manager.CollisionManager
	foodMgr       *manager.FoodManager
}

// NewGame builds a game on a width x height arena, drawing food positions
// from rng, and spawns the snake.
func NewGame(width, height int, rng manager.Random, opts Options) (*Game, error) {
	if width < 2 || height < 1 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrArenaTooSmall)
	}
	if rng == nil {
		return nil, errors.New("nil random source")
	}
	if opts.FoodVariants < 0 {
		return nil, fmt.Errorf("food variants must not be negative, got %d", opts.FoodVariants)
	}
	if opts.FoodVariants == 0 {
		opts.FoodVariants = types.DefaultFoodVariants
	}

	grid := types.Grid{
		Width:  width,
		Height: height,
	}
	g := &Game{
		Grid:          grid,
		manualRespawn: opts.ManualRespawn,
		collisionMgr:  manager.NewCollisionManager(grid),
		foodMgr:       manager.NewFoodManager(grid, rng, opts.FoodVariants),
	}
	g.Respawn()
	return g, nil
}

// Respawn resets the snake to a single segment on the start cell heading left.
func (g *Game) Respawn() {
	g.snake = []types.Point{g.Grid.Start()}
	g.GenFood()
	g.direction = types.Left
	g.status = Alive
	g.pending = nil
	g.ticks = 0
}

// Input changes direction unless d reverses the current one.
func (g *Game) Input(d types.Point) {
	if !d.IsDirection() {
		return
	}
	if g.direction.Add(d) == (types.Point{}) {
		return
	}
	g.direction = d
}

// Tick advances the simulation by one cell.
func (g *Game) Tick() Outcome {
	var out Outcome
	if g.status != Alive {
		return out
	}

	newHead := g.Head().Add(g.direction)
	g.snake = append([]types.Point{newHead}, g.snake[:len(g.snake)-1]...)
	out.Moved = true
	g.ticks++

	if g.pending != nil {
		g.snake = append(g.snake, *g.pending)
		g.pending = nil
		out.Grew = true
	}

	if collision := g.collisionMgr.Check(g.snake); collision != types.NoCollision {
		out.Collision = collision
		out.Score = g.Score()
		out.Ticks = g.ticks
		g.status = Dead
		if !g.manualRespawn {
			g.Respawn()
			out.Respawned = true
		}
	}
	return out
}

// Dead reports whether the head is outside the arena or on the tail.
func (g *Game) Dead() bool {
	return g.collisionMgr.Check(g.snake) != types.NoCollision
}

// Eat schedules growth and moves the food when the head is on it.
func (g *Game) Eat() bool {
	if g.status != Alive || !g.hasFood || g.Head() != g.food {
		return false
	}
	last := g.snake[len(g.snake)-1]
	g.pending = &last
	g.GenFood()
	return true
}

// GenFood places food on a random empty cell. When the snake fills the arena
// the game is left without food.
func (g *Game) GenFood() {
	g.food, g.foodVariant, g.hasFood = g.foodMgr.Generate(g.snake)
}

// Empties lists the arena cells not occupied by the snake.
func (g *Game) Empties() []types.Point {
	return g.foodMgr.Empties(g.snake)
}

func (g *Game) Head() types.Point {
	return g.snake[0]
}

// Tail returns the segments behind the head. The slice aliases game state.
func (g *Game) Tail() []types.Point {
	return g.snake[1:]
}

// Body returns a copy of every segment, head first.
func (g *Game) Body() []types.Point {
	body := make([]types.Point, len(g.snake))
	copy(body, g.snake)
	return body
}

func (g *Game) Len() int { return len(g.snake) }

// Score is the number of segments grown this life.
func (g *Game) Score() int { return len(g.snake) - 1 }

// Ticks is the number of moves made this life.
func (g *Game) Ticks() int { return g.ticks }

func (g *Game) Food() types.Point { return g.food }

func (g *Game) HasFood() bool { return g.hasFood }

func (g *Game) FoodVariant() int { return g.foodVariant }

func (g *Game) FoodVariants() int { return g.foodMgr.Variants() }

func (g *Game) Direction() types.Point { return g.direction }

func (g *Game) Status() Status { return g.status }

func (g *Game) Alive() bool { return g.status == Alive }

// Pending returns the cell queued for re-append on the next tick.
func (g *Game) Pending() (types.Point, bool) {
	if g.pending == nil {
		return types.Point{}, false
	}
	return *g.pending, true
}
