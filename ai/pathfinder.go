package ai

import (
	"snake-arena/game/types"
)

// FindPath runs a breadth-first search from start to goal over the wrapped
// grid. Cells for which blocked returns true are never entered, the goal
// included. The returned path starts with the cell after start and ends
// with goal; it is empty when start == goal. Neighbours are expanded in
// types.Directions order, so ties always resolve the same way.
func FindPath(grid types.Grid, start, goal types.Point, blocked func(types.Point) bool) ([]types.Point, bool) {
	if start == goal {
		return []types.Point{}, true
	}
	if blocked != nil && blocked(goal) {
		return nil, false
	}

	parent := make([]int, grid.Cells())
	for i := range parent {
		parent[i] = -1
	}
	startIdx := grid.Index(start)
	parent[startIdx] = startIdx

	queue := make([]types.Point, 0, grid.Cells())
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, next := range grid.Neighbors(cur) {
			idx := grid.Index(next)
			if parent[idx] != -1 {
				continue
			}
			if blocked != nil && blocked(next) {
				continue
			}
			parent[idx] = grid.Index(cur)
			if next == goal {
				return reconstruct(grid, parent, startIdx, idx), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

func reconstruct(grid types.Grid, parent []int, startIdx, goalIdx int) []types.Point {
	var rev []types.Point
	for idx := goalIdx; idx != startIdx; idx = parent[idx] {
		rev = append(rev, types.Point{X: idx % grid.Width, Y: idx / grid.Width})
	}
	path := make([]types.Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

// Truncate keeps at most n leading steps of path
func Truncate(path []types.Point, n int) []types.Point {
	if n <= 0 || len(path) <= n {
		return path
	}
	return path[:n]
}
