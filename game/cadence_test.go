package game

import (
	"testing"

	"classic-snake/game/types"
)

func TestCadenceTicksEveryIntervalFrames(t *testing.T) {
	g := newTestGame(t, 20, 20, Options{})
	g.hasFood = false
	c := NewCadence(10)

	var ticked []int
	for frame := 0; frame < 35; frame++ {
		if res := c.Frame(g, types.Left); res.Ticked {
			ticked = append(ticked, frame)
		}
	}

	want := []int{10, 20, 30}
	if len(ticked) != len(want) {
		t.Fatalf("ticked on frames %v, expected %v", ticked, want)
	}
	for i := range want {
		if ticked[i] != want[i] {
			t.Fatalf("ticked on frames %v, expected %v", ticked, want)
		}
	}
	if g.Head() != (types.Point{X: 15, Y: 10}) {
		t.Fatalf("head = %v, expected (15,10)", g.Head())
	}
}

func TestCadenceEatsBetweenTicks(t *testing.T) {
	g := newTestGame(t, 20, 20, Options{})
	c := NewCadence(10)

	// Food lands under the head mid-interval; the next frame eats it without a tick.
	c.Frame(g, types.Left)
	g.food = g.Head()
	g.hasFood = true

	res := c.Frame(g, types.Left)
	if res.Ticked {
		t.Fatal("unexpected tick on frame 1")
	}
	if !res.Ate {
		t.Fatal("expected food eaten between ticks")
	}
	if _, ok := g.Pending(); !ok {
		t.Fatal("expected pending growth")
	}
}

func TestCadenceAppliesDirectionOnlyOnTick(t *testing.T) {
	g := newTestGame(t, 20, 20, Options{})
	g.hasFood = false
	c := NewCadence(3)

	for i := 0; i < 3; i++ {
		c.Frame(g, types.Up)
		if g.Direction() != types.Left {
			t.Fatalf("frame %d: direction changed before tick", i)
		}
	}
	res := c.Frame(g, types.Up)
	if !res.Ticked {
		t.Fatal("expected tick on frame 3")
	}
	if g.Head() != (types.Point{X: 18, Y: 9}) {
		t.Fatalf("head = %v, expected (18,9)", g.Head())
	}
}

func TestNewCadenceDefaultsInterval(t *testing.T) {
	if c := NewCadence(0); c.Interval != types.DefaultTickInterval {
		t.Fatalf("interval = %d, expected %d", c.Interval, types.DefaultTickInterval)
	}
}
