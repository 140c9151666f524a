package game

import (
	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// Phase of the session state machine
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseRoundOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	default:
		return "round over"
	}
}

// Cell is one occupied grid cell as seen by a frontend
type Cell struct {
	Pos     types.Point
	Kind    entity.Kind
	Role    entity.Role  // Segments only
	SnakeID int          // Segments only
	Owner   entity.Owner // Segments only
}

// Snapshot is a read-only copy of everything a frontend draws. Cells are
// ordered walls, food, then each live snake head first.
type Snapshot struct {
	RoundID     string
	Tick        int
	Phase       Phase
	Mode        Mode
	Grid        types.Grid
	Cells       []Cell
	PlayerScore int
	EnemyScore  int
	PlayerDead  bool
	Session     manager.Summary
}

// Segments returns the cells of snake id, head first
func (s Snapshot) Segments(id int) []Cell {
	var out []Cell
	for _, c := range s.Cells {
		if c.Kind == entity.KindSegment && c.SnakeID == id {
			out = append(out, c)
		}
	}
	return out
}

// Food returns the food cell, if any
func (s Snapshot) Food() (types.Point, bool) {
	for _, c := range s.Cells {
		if c.Kind == entity.KindFood {
			return c.Pos, true
		}
	}
	return types.Point{}, false
}

func (r *Round) snapshot() Snapshot {
	snap := Snapshot{
		RoundID:     r.ID,
		Tick:        r.Tick,
		Mode:        r.Mode,
		Grid:        r.Grid,
		PlayerScore: r.PlayerScore,
		EnemyScore:  r.EnemyScore,
		PlayerDead:  r.Player != nil && r.Player.Dead,
	}
	snakes := r.Snakes()
	n := r.Walls.Len() + 1
	for _, s := range snakes {
		n += s.Len()
	}
	snap.Cells = make([]Cell, 0, n)

	for _, p := range r.Walls.Cells() {
		snap.Cells = append(snap.Cells, Cell{Pos: p, Kind: entity.KindWall})
	}
	if r.Food.Placed {
		snap.Cells = append(snap.Cells, Cell{Pos: r.Food.Pos, Kind: entity.KindFood})
	}
	for _, s := range snakes {
		for i, p := range s.Body {
			snap.Cells = append(snap.Cells, Cell{
				Pos:     p,
				Kind:    entity.KindSegment,
				Role:    s.Role(i),
				SnakeID: s.ID,
				Owner:   s.Owner,
			})
		}
	}
	return snap
}
