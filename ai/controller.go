package ai

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// Options tunes how far ahead an enemy commits and how often it replans
type Options struct {
	PathPrefix     int     // Steps kept from each computed path
	RecomputeEvery int     // Ticks before a cached path is considered stale
	StraightBias   float64 // Chance of keeping straight in the fallback
}

// View is the read-only world an enemy decides from. Occupancy is the
// pre-move view with passable tails; nothing in it is retained.
type View struct {
	Grid      types.Grid
	Self      *entity.Snake
	Walls     *entity.Walls
	Occupancy *entity.Occupancy
	Target    types.Point
	HasTarget bool
}

// Controller steers one enemy snake
type Controller struct {
	opts Options
	rng  types.Rand

	path         []types.Point
	cursor       int
	sinceCompute int

	// Fallback is true when the last decision came from the random-safe heuristic
	Fallback bool
}

func NewController(opts Options, rng types.Rand) *Controller {
	return &Controller{opts: opts, rng: rng}
}

// Reset drops the cached path, used when the snake respawns
func (c *Controller) Reset() {
	c.path = nil
	c.cursor = 0
	c.sinceCompute = 0
	c.Fallback = false
}

// Path returns the remaining cached steps
func (c *Controller) Path() []types.Point {
	if c.cursor >= len(c.path) {
		return nil
	}
	return c.path[c.cursor:]
}

// Decide picks the next direction for v.Self and requests it on the snake.
func (c *Controller) Decide(v View) types.Direction {
	c.sinceCompute++
	if c.stale(v) {
		c.recompute(v)
	}

	head := v.Self.Head()
	if c.cursor < len(c.path) {
		next := c.path[c.cursor]
		if d, ok := v.Grid.DirectionTo(head, next); ok && d != v.Self.Direction.Opposite() {
			c.cursor++
			c.Fallback = false
			v.Self.RequestDirection(d)
			return d
		}
		c.path = nil
	}

	d := SafeDirection(v.Grid, v.Self, v.Walls, c.rng, c.opts.StraightBias)
	c.Fallback = true
	v.Self.RequestDirection(d)
	return d
}

func (c *Controller) stale(v View) bool {
	if c.path == nil || c.cursor >= len(c.path) {
		return true
	}
	if c.opts.RecomputeEvery > 0 && c.sinceCompute >= c.opts.RecomputeEvery {
		return true
	}
	next := c.path[c.cursor]
	if _, ok := v.Grid.DirectionTo(v.Self.Head(), next); !ok {
		return true
	}
	return v.Occupancy != nil && next != v.Target && v.Occupancy.Blocked(next)
}

func (c *Controller) recompute(v View) {
	c.sinceCompute = 0
	c.cursor = 0
	c.path = nil
	if !v.HasTarget {
		return
	}

	blocked := func(p types.Point) bool {
		if p == v.Target {
			return false
		}
		if v.Occupancy != nil {
			return v.Occupancy.Blocked(p)
		}
		return v.Walls != nil && v.Walls.Has(p)
	}
	path, ok := FindPath(v.Grid, v.Self.Head(), v.Target, blocked)
	if !ok || len(path) == 0 {
		return
	}
	c.path = Truncate(path, c.opts.PathPrefix)
}

// SafeDirections lists, in the order straight, left turn, right turn, the
// moves whose wrapped next cell is neither a wall nor one of the snake's own
// non-tail segments. A reversal is never a candidate.
func SafeDirections(grid types.Grid, s *entity.Snake, walls *entity.Walls) []types.Direction {
	straight := s.Direction
	candidates := [3]types.Direction{straight, straight.TurnLeft(), straight.TurnRight()}
	safe := make([]types.Direction, 0, len(candidates))
	for _, d := range candidates {
		if isSafe(grid.Step(s.Head(), d), s, walls) {
			safe = append(safe, d)
		}
	}
	return safe
}

// SafeDirection keeps straight with probability bias when straight is safe,
// otherwise picks uniformly among the safe directions. With none safe the
// snake carries on straight.
func SafeDirection(grid types.Grid, s *entity.Snake, walls *entity.Walls, rng types.Rand, bias float64) types.Direction {
	safe := SafeDirections(grid, s, walls)
	straight := s.Direction
	if len(safe) == 0 {
		return straight
	}
	for _, d := range safe {
		if d == straight && rng.Float64() < bias {
			return straight
		}
	}
	return safe[rng.Intn(len(safe))]
}

func isSafe(p types.Point, s *entity.Snake, walls *entity.Walls) bool {
	if walls != nil && walls.Has(p) {
		return false
	}
	last := len(s.Body) - 1
	for i, b := range s.Body {
		if i == last && !s.Growing() {
			continue
		}
		if b == p {
			return false
		}
	}
	return true
}
