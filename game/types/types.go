package types

// Point is a grid coordinate. Directions are Points too.
type Point struct {
	X, Y int
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// IsDirection reports whether p is one of the four unit vectors.
func (p Point) IsDirection() bool {
	return p == Up || p == Down || p == Left || p == Right
}

// Opposite returns the reversed vector.
func (p Point) Opposite() Point {
	return Point{X: -p.X, Y: -p.Y}
}

var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Grid represents the arena dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the arena.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Start is the cell a fresh snake spawns on.
func (g Grid) Start() Point {
	return Point{X: g.Width - 2, Y: g.Height / 2}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Game constants
const (
	DefaultWidth        = 20
	DefaultHeight       = 20
	DefaultTileSize     = 25
	DefaultTickInterval = 10 // frames between ticks
	DefaultFoodVariants = 2  // apple, cherry
)
