package entity

import (
	"testing"

	"golang.org/x/exp/rand"

	"snake-arena/game/types"
)

func TestOccupancyPassableTails(t *testing.T) {
	walls := NewWalls(types.Point{X: 0, Y: 0})
	s := NewSnake(7, Enemy, testGrid, types.Point{X: 5, Y: 5}, types.Right)
	food := &Food{}
	food.Place(types.Point{X: 12, Y: 12})

	full := BuildOccupancy(walls, []*Snake{s}, food, false)
	if !full.HasSegment(s.Tail()) {
		t.Error("post-move view must keep the tail")
	}
	if !full.HasWall(types.Point{X: 0, Y: 0}) {
		t.Error("wall missing")
	}
	if full.Blocked(food.Pos) || len(full.At(food.Pos)) == 0 {
		t.Error("food cell should be occupied but not blocking")
	}

	pre := BuildOccupancy(walls, []*Snake{s}, food, true)
	if pre.HasSegment(s.Tail()) {
		t.Error("tail about to vacate should be passable")
	}

	s.Feed()
	growing := BuildOccupancy(walls, []*Snake{s}, food, true)
	if !growing.HasSegment(s.Tail()) {
		t.Error("tail of a growing snake stays put and must stay blocked")
	}
}

func TestKeepTailRestoresTail(t *testing.T) {
	s := NewSnake(4, Enemy, testGrid, types.Point{X: 5, Y: 5}, types.Right)
	pre := BuildOccupancy(nil, []*Snake{s}, nil, true)
	if pre.Blocked(s.Tail()) {
		t.Fatal("tail should start passable")
	}
	pre.KeepTail(s)
	pre.KeepTail(s)
	if !pre.Blocked(s.Tail()) {
		t.Error("kept tail should block")
	}
	if got := len(pre.At(s.Tail())); got != 1 {
		t.Errorf("tail cell has %d occupants after keeping it twice", got)
	}
}

func TestOccupancyRoles(t *testing.T) {
	s := NewSnake(3, Player, testGrid, types.Point{X: 5, Y: 5}, types.Up)
	occ := BuildOccupancy(nil, []*Snake{s}, nil, false)

	for i, p := range s.Body {
		got := occ.At(p)
		if len(got) != 1 {
			t.Fatalf("cell %+v has %d occupants", p, len(got))
		}
		if got[0].Role != s.Role(i) || got[0].SnakeID != 3 || got[0].Owner != Player {
			t.Errorf("cell %+v = %+v", p, got[0])
		}
	}
	if _, ok := occ.SegmentOf(s.Head(), 3); ok {
		t.Error("SegmentOf should skip the excluded snake")
	}
	if !occ.Contains(3) || occ.Contains(4) {
		t.Error("Contains mismatch")
	}
}

func TestDeadSnakesAreAbsent(t *testing.T) {
	s := NewSnake(1, Enemy, testGrid, types.Point{X: 5, Y: 5}, types.Up)
	s.Dead = true
	occ := BuildOccupancy(nil, []*Snake{s}, nil, false)
	if occ.Len() != 0 {
		t.Errorf("dead snake occupies %d cells", occ.Len())
	}
}

func TestGenerateWalls(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 30}
	reservedCell := types.Point{X: 15, Y: 15}
	reserved := func(p types.Point) bool { return p == reservedCell }

	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		w := GenerateWalls(grid, rng, WallOptions{Count: 5, MinLength: 3, MaxLength: 7}, reserved)

		for _, p := range BorderCells(grid) {
			if !w.Has(p) {
				t.Fatalf("seed %d: border cell %+v missing", seed, p)
			}
		}
		if w.Has(reservedCell) {
			t.Fatalf("seed %d: reserved cell walled", seed)
		}
		for _, p := range w.Cells() {
			if !grid.Contains(p) {
				t.Fatalf("seed %d: wall %+v outside grid", seed, p)
			}
		}
		inner := w.Len() - len(BorderCells(grid))
		if inner < 0 || inner > 5*7 {
			t.Errorf("seed %d: %d inner wall cells", seed, inner)
		}
	}
}
