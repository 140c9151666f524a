package game

import (
	"log"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"snake-arena/ai"
	"snake-arena/config"
	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// PlayerID is the snake ID of the player; enemies count up from it
const PlayerID = 0

// Round is one game from spawn to the player's death or a manual stop
type Round struct {
	ID          string
	Mode        Mode
	Tick        int
	Grid        types.Grid
	Walls       *entity.Walls
	Food        entity.Food
	Player      *entity.Snake // nil in observer mode
	PlayerScore int
	EnemyScore  int
	Over        bool

	foodStuck bool // Last respawn found no free cell

	logger       *log.Logger
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	popMgr       *manager.PopulationManager
}

// PlayerStart is the player's spawn head; it faces right
func PlayerStart(grid types.Grid) types.Point {
	return types.Point{X: grid.Width / 2, Y: grid.Height / 2}
}

// NewRound lays out walls, the player, food and enemies for a fresh round
func NewRound(cfg config.Config, mode Mode, rng types.Rand, logger *log.Logger) *Round {
	grid := cfg.Grid()
	r := &Round{
		ID:     uuid.New().String(),
		Mode:   mode,
		Grid:   grid,
		logger: logger,
	}
	r.collisionMgr = manager.NewCollisionManager(grid)
	r.foodMgr = manager.NewFoodManager(grid, rng, r.collisionMgr)
	r.popMgr = manager.NewPopulationManager(grid, rng, r.collisionMgr, cfg.RespawnDelay, ai.Options{
		PathPrefix:     cfg.PathPrefix,
		RecomputeEvery: cfg.RecomputeEvery,
		StraightBias:   cfg.StraightBias,
	})

	start := PlayerStart(grid)
	reserved := make(map[types.Point]bool)
	if mode == Competitive {
		for _, p := range entity.Layout(grid, start, types.Right) {
			reserved[p] = true
		}
		ahead := start
		for i := 0; i < 2; i++ {
			ahead = grid.Step(ahead, types.Right)
			reserved[ahead] = true
		}
	}
	r.Walls = entity.GenerateWalls(grid, rng, entity.WallOptions{
		Count:     cfg.InnerWalls,
		MinLength: cfg.WallMinLength,
		MaxLength: cfg.WallMaxLength,
	}, func(p types.Point) bool { return reserved[p] })

	if mode == Competitive {
		r.Player = entity.NewSnake(PlayerID, entity.Player, grid, start, types.Right)
	}
	if !r.foodMgr.Spawn(&r.Food, r.Walls, r.playerSnakes()) {
		r.logf("no free cell for food")
	}
	r.popMgr.InitializePopulation(cfg.Enemies, PlayerID+1, r.Walls, r.playerSnakes(), &r.Food)
	return r
}

func (r *Round) logf(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Printf("round %s tick %d: "+format, append([]interface{}{r.ID[:8], r.Tick}, args...)...)
	}
}

func (r *Round) playerSnakes() []*entity.Snake {
	if r.Player == nil || r.Player.Dead {
		return nil
	}
	return []*entity.Snake{r.Player}
}

// Snakes returns every live snake, player first
func (r *Round) Snakes() []*entity.Snake {
	return append(r.playerSnakes(), r.popMgr.Snakes()...)
}

// Enemies exposes the enemy roster, dead ones included
func (r *Round) Enemies() []*manager.Enemy {
	return r.popMgr.Enemies()
}

// Occupancy is the post-move view of the current state
func (r *Round) Occupancy() *entity.Occupancy {
	return entity.BuildOccupancy(r.Walls, r.Snakes(), &r.Food, false)
}

func (r *Round) enemyTarget() (types.Point, bool) {
	if r.Mode == Competitive && r.Player != nil && !r.Player.Dead {
		return r.Player.Head(), true
	}
	return r.Food.Pos, r.Food.Placed
}

// Step advances the round by one tick. dir, when non-nil, is the player's
// direction request for this tick. Order: input, AI decisions, movement,
// collisions, food respawn, enemy respawn.
func (r *Round) Step(dir *types.Direction) manager.Outcome {
	if r.Over {
		return manager.Outcome{}
	}
	r.Tick++

	if dir != nil && r.Player != nil {
		r.Player.RequestDirection(*dir)
	}

	snakes := r.Snakes()

	// A snake that eats keeps its tail this tick. The player's move is
	// committed already; an enemy that could reach the food keeps its tail
	// in the planning view whatever it goes on to decide.
	if r.Player != nil && r.Food.Placed && r.Player.NextHead(r.Grid) == r.Food.Pos {
		r.Player.Feed()
	}
	pre := entity.BuildOccupancy(r.Walls, snakes, &r.Food, true)
	if r.Food.Placed {
		for _, e := range r.popMgr.Enemies() {
			if !e.Snake.Dead && e.Snake.MayEat(r.Grid, r.Food.Pos) {
				pre.KeepTail(e.Snake)
			}
		}
	}
	target, hasTarget := r.enemyTarget()
	for _, e := range r.popMgr.Enemies() {
		if e.Snake.Dead {
			continue
		}
		e.Controller.Decide(ai.View{
			Grid:      r.Grid,
			Self:      e.Snake,
			Walls:     r.Walls,
			Occupancy: pre,
			Target:    target,
			HasTarget: hasTarget,
		})
	}

	for _, s := range snakes {
		if r.Food.Placed && s.NextHead(r.Grid) == r.Food.Pos {
			s.Feed()
		}
		s.Advance(r.Grid)
	}

	out := r.collisionMgr.Resolve(r.Walls, snakes, &r.Food)
	if r.Mode == Competitive {
		r.PlayerScore += out.PlayerPoints
	}
	r.EnemyScore += out.EnemyPoints
	for _, d := range out.Deaths {
		r.logf("%s snake %d died (%s)", d.Snake.Owner, d.Snake.ID, d.Cause)
		if d.Snake == r.Player {
			r.Over = true
			continue
		}
		r.popMgr.Kill(d.Snake)
	}

	if out.FoodEaten() {
		r.foodStuck = !r.foodMgr.Spawn(&r.Food, r.Walls, r.Snakes())
		if r.foodStuck {
			r.logf("no free cell for food, keeping %+v", r.Food.Pos)
		}
	}

	for _, s := range r.popMgr.Update(r.Walls, r.playerSnakes(), &r.Food) {
		r.logf("enemy snake %d respawned at %+v", s.ID, s.Head())
	}
	return out
}

// CheckInvariants verifies the state between ticks: every live snake is
// long enough, self-distinct, on the grid and clear of walls and other
// snakes, with its head next to its neck; the food sits on a free cell.
// The body is not required to be contiguous. Growth drops the cell the last
// body segment held and doubles the tail, which leaves a one cell gap that
// travels down the body until the tail moves past it.
func (r *Round) CheckInvariants() error {
	owner := make(map[types.Point]int)
	for _, s := range r.Snakes() {
		if s.Len() < types.MinSnakeLength {
			return errors.Errorf("snake %d: length %d below %d", s.ID, s.Len(), types.MinSnakeLength)
		}
		if !s.Distinct() {
			return errors.Errorf("snake %d: overlapping segments %v", s.ID, s.Body)
		}
		for i, p := range s.Body {
			if !r.Grid.Contains(p) {
				return errors.Errorf("snake %d: segment %d at %+v off the grid", s.ID, i, p)
			}
			if r.Walls.Has(p) {
				return errors.Errorf("snake %d: segment %d inside wall %+v", s.ID, i, p)
			}
			if id, ok := owner[p]; ok && id != s.ID {
				return errors.Errorf("snake %d: segment %d overlaps snake %d at %+v", s.ID, i, id, p)
			}
			owner[p] = s.ID
		}
		if _, ok := r.Grid.DirectionTo(s.Body[1], s.Head()); !ok {
			return errors.Errorf("snake %d: head %+v detached from neck %+v", s.ID, s.Head(), s.Body[1])
		}
	}
	if r.Food.Placed {
		if r.Walls.Has(r.Food.Pos) {
			return errors.Errorf("food inside wall %+v", r.Food.Pos)
		}
		if id, ok := owner[r.Food.Pos]; ok && !r.foodStuck {
			return errors.Errorf("food under snake %d at %+v", id, r.Food.Pos)
		}
	}
	return nil
}
