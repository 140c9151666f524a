package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// DeathCause tells what killed a snake
type DeathCause int

const (
	CauseSelf DeathCause = iota
	CauseWall
	CauseSnake
)

func (c DeathCause) String() string {
	switch c {
	case CauseSelf:
		return "self"
	case CauseWall:
		return "wall"
	default:
		return "snake"
	}
}

// Death records one snake killed during resolution
type Death struct {
	Snake *entity.Snake
	Cause DeathCause

	// For CauseSnake: the snake whose segment was struck
	StruckID    int
	StruckOwner entity.Owner
}

// Outcome is everything one resolution pass decided
type Outcome struct {
	Deaths       []Death
	Eaters       []*entity.Snake // Live snakes whose head landed on the food
	PlayerPoints int
	EnemyPoints  int
}

// FoodEaten reports whether any live snake reached the food
func (o Outcome) FoodEaten() bool {
	return len(o.Eaters) > 0
}

func (o *Outcome) award(owner entity.Owner) {
	if owner == entity.Player {
		o.PlayerPoints++
	} else {
		o.EnemyPoints++
	}
}

func (o *Outcome) kill(s *entity.Snake, cause DeathCause) *Death {
	s.Dead = true
	o.Deaths = append(o.Deaths, Death{Snake: s, Cause: cause})
	return &o.Deaths[len(o.Deaths)-1]
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Resolve checks every live snake after movement, in order: self, wall,
// other snakes, food. A snake killed by an earlier check skips the later
// ones. Cross-snake checks all run against the same post-move occupancy,
// so two heads meeting kill both snakes and score for both owners.
// Dead snakes are flagged in place.
func (cm *CollisionManager) Resolve(walls *entity.Walls, snakes []*entity.Snake, food *entity.Food) Outcome {
	var out Outcome
	live := make([]*entity.Snake, 0, len(snakes))
	for _, s := range snakes {
		if s != nil && !s.Dead {
			live = append(live, s)
		}
	}
	occ := entity.BuildOccupancy(walls, live, food, false)
	dead := make(map[int]bool, len(live))

	// Self collision
	for _, s := range live {
		if s.HitsSelf() {
			dead[s.ID] = true
			out.kill(s, CauseSelf)
			if s.Owner == entity.Enemy {
				out.award(entity.Player)
			}
		}
	}

	// Wall collision
	for _, s := range live {
		if dead[s.ID] {
			continue
		}
		if occ.HasWall(s.Head()) {
			dead[s.ID] = true
			out.kill(s, CauseWall)
			if s.Owner == entity.Enemy {
				out.award(entity.Player)
			}
		}
	}

	// Cross-snake collision
	struck := make(map[int]entity.Occupant)
	for _, s := range live {
		if dead[s.ID] {
			continue
		}
		if o, ok := occ.SegmentOf(s.Head(), s.ID); ok {
			struck[s.ID] = o
		}
	}
	for _, s := range live {
		o, ok := struck[s.ID]
		if !ok {
			continue
		}
		dead[s.ID] = true
		d := out.kill(s, CauseSnake)
		d.StruckID = o.SnakeID
		d.StruckOwner = o.Owner
		out.award(o.Owner)
	}

	// Food
	if food != nil && food.Placed {
		for _, s := range live {
			if dead[s.ID] || s.Head() != food.Pos {
				continue
			}
			out.Eaters = append(out.Eaters, s)
			out.award(s.Owner)
		}
	}
	return out
}

// ValidateSpawnPosition checks that pos is on the grid, off every wall and
// off every live snake.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, walls *entity.Walls, snakes []*entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	if walls != nil && walls.Has(pos) {
		return false
	}
	for _, snake := range snakes {
		if snake == nil || snake.Dead {
			continue
		}
		if snake.Occupies(pos) {
			return false
		}
	}
	return true
}
