package manager

import (
	"classic-snake/game/types"
)

// Random is the source food placement draws from. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Random interface {
	Intn(n int) int
}

type FoodManager struct {
	grid     types.Grid
	rng      Random
	variants int
}

func NewFoodManager(grid types.Grid, rng Random, variants int) *FoodManager {
	if variants <= 0 {
		variants = 1
	}
	return &FoodManager{
		grid:     grid,
		rng:      rng,
		variants: variants,
	}
}

// Empties lists every arena cell not covered by body, scanning columns left to
// right and each column top to bottom.
func (fm *FoodManager) Empties(body []types.Point) []types.Point {
	empties := make([]types.Point, 0, fm.grid.Width*fm.grid.Height)
	for x := 0; x < fm.grid.Width; x++ {
		for y := 0; y < fm.grid.Height; y++ {
			p := types.Point{X: x, Y: y}
			if !Occupied(p, body) {
				empties = append(empties, p)
			}
		}
	}
	return empties
}

// Generate picks a uniformly random empty cell and a random visual variant.
// ok is false when body covers the whole arena.
func (fm *FoodManager) Generate(body []types.Point) (food types.Point, variant int, ok bool) {
	empties := fm.Empties(body)
	if len(empties) == 0 {
		return types.Point{}, 0, false
	}
	food = empties[fm.rng.Intn(len(empties))]
	variant = fm.rng.Intn(fm.variants)
	return food, variant, true
}

func (fm *FoodManager) Variants() int {
	return fm.variants
}
