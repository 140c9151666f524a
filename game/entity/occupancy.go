package entity

import (
	"snake-arena/game/types"
)

// Kind of thing sitting on a cell
type Kind int

const (
	KindWall Kind = iota
	KindFood
	KindSegment
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFood:
		return "food"
	default:
		return "segment"
	}
}

// Role of a snake segment
type Role int

const (
	Head Role = iota
	Body
	Tail
)

func (r Role) String() string {
	switch r {
	case Head:
		return "head"
	case Tail:
		return "tail"
	default:
		return "body"
	}
}

// Occupant is a tagged variant over wall, food and snake segment.
// SnakeID, Owner and Role are only meaningful for KindSegment.
type Occupant struct {
	Kind    Kind
	SnakeID int
	Owner   Owner
	Role    Role
}

// Occupancy maps grid cells to their occupants for a single tick
type Occupancy struct {
	cells map[types.Point][]Occupant
}

// BuildOccupancy derives the occupancy of the current entities.
// With passableTails the tail of every snake that is not growing is left
// out, since it vacates its cell on the next advance.
func BuildOccupancy(walls *Walls, snakes []*Snake, food *Food, passableTails bool) *Occupancy {
	o := &Occupancy{cells: make(map[types.Point][]Occupant)}
	if walls != nil {
		for _, p := range walls.Cells() {
			o.add(p, Occupant{Kind: KindWall})
		}
	}
	for _, s := range snakes {
		if s == nil || s.Dead {
			continue
		}
		last := len(s.Body) - 1
		for i, p := range s.Body {
			if i == last && passableTails && !s.Growing() {
				continue
			}
			o.add(p, Occupant{Kind: KindSegment, SnakeID: s.ID, Owner: s.Owner, Role: s.Role(i)})
		}
	}
	if food != nil && food.Placed {
		o.add(food.Pos, Occupant{Kind: KindFood})
	}
	return o
}

// KeepTail puts the tail of s back into a view built with passable tails,
// for a snake that may still grow this tick.
func (o *Occupancy) KeepTail(s *Snake) {
	last := len(s.Body) - 1
	for _, occ := range o.cells[s.Body[last]] {
		if occ.Kind == KindSegment && occ.SnakeID == s.ID && occ.Role == Tail {
			return
		}
	}
	o.add(s.Body[last], Occupant{Kind: KindSegment, SnakeID: s.ID, Owner: s.Owner, Role: Tail})
}

func (o *Occupancy) add(p types.Point, occ Occupant) {
	o.cells[p] = append(o.cells[p], occ)
}

// At returns every occupant of p
func (o *Occupancy) At(p types.Point) []Occupant {
	return o.cells[p]
}

func (o *Occupancy) HasWall(p types.Point) bool {
	for _, occ := range o.cells[p] {
		if occ.Kind == KindWall {
			return true
		}
	}
	return false
}

// HasSegment reports whether any snake segment sits on p
func (o *Occupancy) HasSegment(p types.Point) bool {
	for _, occ := range o.cells[p] {
		if occ.Kind == KindSegment {
			return true
		}
	}
	return false
}

// SegmentOf returns the first segment on p that belongs to a snake other
// than exclude.
func (o *Occupancy) SegmentOf(p types.Point, exclude int) (Occupant, bool) {
	for _, occ := range o.cells[p] {
		if occ.Kind == KindSegment && occ.SnakeID != exclude {
			return occ, true
		}
	}
	return Occupant{}, false
}

// Blocked reports whether p holds a wall or a segment
func (o *Occupancy) Blocked(p types.Point) bool {
	for _, occ := range o.cells[p] {
		if occ.Kind != KindFood {
			return true
		}
	}
	return false
}

// Contains reports whether snake id has any segment in this occupancy
func (o *Occupancy) Contains(id int) bool {
	for _, occs := range o.cells {
		for _, occ := range occs {
			if occ.Kind == KindSegment && occ.SnakeID == id {
				return true
			}
		}
	}
	return false
}

// Len is the number of occupied cells
func (o *Occupancy) Len() int {
	return len(o.cells)
}
