package types

import "testing"

func TestStepStaysOnGrid(t *testing.T) {
	grids := []Grid{{Width: 1, Height: 1}, {Width: 5, Height: 3}, {Width: 30, Height: 30}}
	for _, g := range grids {
		for x := 0; x < g.Width; x++ {
			for y := 0; y < g.Height; y++ {
				for _, d := range Directions {
					p := g.Step(Point{X: x, Y: y}, d)
					if !g.Contains(p) {
						t.Fatalf("grid %dx%d: step %v from (%d,%d) left the grid: %+v", g.Width, g.Height, d, x, y, p)
					}
				}
			}
		}
	}
}

func TestStepWrapsAroundEdges(t *testing.T) {
	g := Grid{Width: 10, Height: 8}
	tests := []struct {
		from Point
		dir  Direction
		want Point
	}{
		{Point{9, 4}, Right, Point{0, 4}},
		{Point{0, 4}, Left, Point{9, 4}},
		{Point{3, 0}, Up, Point{3, 7}},
		{Point{3, 7}, Down, Point{3, 0}},
		{Point{3, 3}, Right, Point{4, 3}},
	}
	for _, tt := range tests {
		if got := g.Step(tt.from, tt.dir); got != tt.want {
			t.Errorf("Step(%+v, %v) = %+v, want %+v", tt.from, tt.dir, got, tt.want)
		}
	}
}

func TestWrapNegative(t *testing.T) {
	g := Grid{Width: 7, Height: 4}
	if got := g.Wrap(Point{X: -15, Y: -1}); got != (Point{X: 6, Y: 3}) {
		t.Errorf("Wrap = %+v, want {6 3}", got)
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite() == d {
			t.Errorf("%v is its own opposite", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("opposite of opposite of %v is %v", d, d.Opposite().Opposite())
		}
		delta, back := d.Delta(), d.Opposite().Delta()
		if delta.X+back.X != 0 || delta.Y+back.Y != 0 {
			t.Errorf("%v and its opposite do not cancel", d)
		}
	}
}

func TestTurns(t *testing.T) {
	tests := []struct {
		d, left, right Direction
	}{
		{Up, Left, Right},
		{Right, Up, Down},
		{Down, Right, Left},
		{Left, Down, Up},
	}
	for _, tt := range tests {
		if got := tt.d.TurnLeft(); got != tt.left {
			t.Errorf("%v.TurnLeft() = %v, want %v", tt.d, got, tt.left)
		}
		if got := tt.d.TurnRight(); got != tt.right {
			t.Errorf("%v.TurnRight() = %v, want %v", tt.d, got, tt.right)
		}
		if tt.d.TurnLeft().TurnRight() != tt.d {
			t.Errorf("left then right from %v does not come back", tt.d)
		}
	}
}

func TestDirectionToAcrossSeam(t *testing.T) {
	g := Grid{Width: 6, Height: 6}
	d, ok := g.DirectionTo(Point{0, 2}, Point{5, 2})
	if !ok || d != Left {
		t.Errorf("DirectionTo across seam = %v,%v, want left,true", d, ok)
	}
	if _, ok := g.DirectionTo(Point{0, 0}, Point{2, 2}); ok {
		t.Error("non-adjacent points reported adjacent")
	}
}

func TestDistanceUsesShortWayRound(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	if got := g.Distance(Point{0, 0}, Point{9, 9}); got != 2 {
		t.Errorf("Distance = %d, want 2", got)
	}
	if got := g.Distance(Point{2, 2}, Point{5, 4}); got != 5 {
		t.Errorf("Distance = %d, want 5", got)
	}
}
