package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

type FoodManager struct {
	grid         types.Grid
	rng          types.Rand
	collisionMgr *CollisionManager
	maxAttempts  int
}

func NewFoodManager(grid types.Grid, rng types.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		maxAttempts:  4 * grid.Cells(),
	}
}

// Spawn moves food to a random cell that is off every wall, off every live
// snake and not the previous food cell. Random draws are tried first; once
// they run out the free cells are enumerated. When the board is full the
// food stays where it is and Spawn returns false.
func (fm *FoodManager) Spawn(food *entity.Food, walls *entity.Walls, snakes []*entity.Snake) bool {
	valid := func(p types.Point) bool {
		if food.Placed && p == food.Pos {
			return false
		}
		return fm.collisionMgr.ValidateSpawnPosition(p, walls, snakes)
	}

	for i := 0; i < fm.maxAttempts; i++ {
		p := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if valid(p) {
			food.Place(p)
			return true
		}
	}

	free := fm.FreeCells(walls, snakes)
	candidates := free[:0]
	for _, p := range free {
		if valid(p) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	food.Place(candidates[fm.rng.Intn(len(candidates))])
	return true
}

// FreeCells lists every cell free of walls and live snakes, row by row
func (fm *FoodManager) FreeCells(walls *entity.Walls, snakes []*entity.Snake) []types.Point {
	var free []types.Point
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, walls, snakes) {
				free = append(free, p)
			}
		}
	}
	return free
}
