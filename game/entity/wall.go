package entity

import (
	"snake-arena/game/types"
)

const wallMargin = 5 // Inner segments start at least this far from the edge

// Walls is the immutable wall layout of a round
type Walls struct {
	set   map[types.Point]struct{}
	cells []types.Point
}

// WallOptions controls the random inner segments
type WallOptions struct {
	Count     int
	MinLength int
	MaxLength int
}

// NewWalls builds a wall set from explicit cells
func NewWalls(cells ...types.Point) *Walls {
	w := &Walls{set: make(map[types.Point]struct{}, len(cells))}
	for _, p := range cells {
		w.add(p)
	}
	return w
}

// BorderCells returns the outer ring of the grid
func BorderCells(grid types.Grid) []types.Point {
	cells := make([]types.Point, 0, 2*grid.Width+2*grid.Height)
	for x := 0; x < grid.Width; x++ {
		cells = append(cells, types.Point{X: x, Y: 0}, types.Point{X: x, Y: grid.Height - 1})
	}
	for y := 1; y < grid.Height-1; y++ {
		cells = append(cells, types.Point{X: 0, Y: y}, types.Point{X: grid.Width - 1, Y: y})
	}
	return cells
}

// GenerateWalls lays out the border ring plus opts.Count random horizontal
// or vertical segments clipped inside the border. Cells for which reserved
// returns true are never walled.
func GenerateWalls(grid types.Grid, rng types.Rand, opts WallOptions, reserved func(types.Point) bool) *Walls {
	w := NewWalls(BorderCells(grid)...)

	for i := 0; i < opts.Count; i++ {
		x := randRange(rng, wallMargin, grid.Width-wallMargin-1, 1, grid.Width-2)
		y := randRange(rng, wallMargin, grid.Height-wallMargin-1, 1, grid.Height-2)
		length := randRange(rng, opts.MinLength, opts.MaxLength, opts.MinLength, opts.MinLength)

		horizontal := rng.Float64() < 0.5
		for j := 0; j < length; j++ {
			p := types.Point{X: x, Y: y + j}
			if horizontal {
				p = types.Point{X: x + j, Y: y}
			}
			if p.X >= grid.Width-1 || p.Y >= grid.Height-1 {
				break
			}
			if reserved != nil && reserved(p) {
				continue
			}
			w.add(p)
		}
	}
	return w
}

// randRange draws from [lo, hi], falling back to [fallbackLo, fallbackHi]
// when the grid is too small for the preferred range.
func randRange(rng types.Rand, lo, hi, fallbackLo, fallbackHi int) int {
	if hi < lo {
		lo, hi = fallbackLo, fallbackHi
	}
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func (w *Walls) add(p types.Point) {
	if _, ok := w.set[p]; ok {
		return
	}
	w.set[p] = struct{}{}
	w.cells = append(w.cells, p)
}

// Has reports whether p is a wall
func (w *Walls) Has(p types.Point) bool {
	_, ok := w.set[p]
	return ok
}

// Cells returns the wall cells in insertion order
func (w *Walls) Cells() []types.Point {
	return w.cells
}

func (w *Walls) Len() int {
	return len(w.cells)
}
