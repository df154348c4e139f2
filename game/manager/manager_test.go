package manager

import (
	"testing"

	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

type scripted struct {
	values []int
	calls  []int
}

func (s *scripted) Intn(n int) int {
	s.calls = append(s.calls, n)
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 5, Height: 5})

	tests := []struct {
		name string
		body []types.Point
		want types.CollisionType
	}{
		{"empty", nil, types.NoCollision},
		{"single inside", []types.Point{{X: 2, Y: 2}}, types.NoCollision},
		{"left wall", []types.Point{{X: -1, Y: 2}}, types.WallCollision},
		{"right wall", []types.Point{{X: 5, Y: 2}}, types.WallCollision},
		{"top wall", []types.Point{{X: 2, Y: -1}}, types.WallCollision},
		{"bottom wall", []types.Point{{X: 2, Y: 5}}, types.WallCollision},
		{"bites tail", []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}}, types.SelfCollision},
		{"wall wins over self", []types.Point{{X: 5, Y: 0}, {X: 5, Y: 0}}, types.WallCollision},
		{"long clear", []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, types.NoCollision},
	}

	for _, tt := range tests {
		if got := cm.Check(tt.body); got != tt.want {
			t.Errorf("%s: Check = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestEmptiesOrderAndExclusion(t *testing.T) {
	fm := NewFoodManager(types.Grid{Width: 2, Height: 3}, &scripted{}, 1)
	got := fm.Empties([]types.Point{{X: 0, Y: 1}, {X: 1, Y: 2}})
	want := []types.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("empties = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("empties[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestGenerateUsesRandomSource(t *testing.T) {
	rng := &scripted{values: []int{2, 1}}
	fm := NewFoodManager(types.Grid{Width: 2, Height: 2}, rng, 2)

	food, variant, ok := fm.Generate([]types.Point{{X: 0, Y: 0}})
	if !ok {
		t.Fatal("expected food to be placed")
	}
	// empties: (0,1) (1,0) (1,1)
	if food != (types.Point{X: 1, Y: 1}) {
		t.Fatalf("food = %v, expected (1,1)", food)
	}
	if variant != 1 {
		t.Fatalf("variant = %d, expected 1", variant)
	}
	if len(rng.calls) != 2 || rng.calls[0] != 3 || rng.calls[1] != 2 {
		t.Fatalf("Intn calls = %v, expected [3 2]", rng.calls)
	}
}

func TestGenerateFullArena(t *testing.T) {
	fm := NewFoodManager(types.Grid{Width: 2, Height: 1}, &scripted{}, 1)
	if _, _, ok := fm.Generate([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}); ok {
		t.Fatal("expected no food on a full arena")
	}
}

func TestGenerateNeverOnBody(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 4}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(7)), 2)
	body := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}}

	for i := 0; i < 500; i++ {
		food, variant, ok := fm.Generate(body)
		if !ok {
			t.Fatal("expected food to be placed")
		}
		if Occupied(food, body) {
			t.Fatalf("food %v placed on the snake", food)
		}
		if !grid.Contains(food) {
			t.Fatalf("food %v outside the arena", food)
		}
		if variant < 0 || variant >= 2 {
			t.Fatalf("variant %d out of range", variant)
		}
	}
}
