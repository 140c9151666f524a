package entity

import (
	"snake-arena/game/types"
)

// Owner tells which side a snake plays for
type Owner int

const (
	Player Owner = iota
	Enemy
)

func (o Owner) String() string {
	if o == Player {
		return "player"
	}
	return "enemy"
}

// Snake holds the segments of one snake, head first and tail last.
type Snake struct {
	ID            int
	Owner         Owner
	Body          []types.Point
	Direction     types.Direction // Committed on the last advance
	NextDirection types.Direction // Requested for the next advance
	Dead          bool
	Grew          bool // Last advance inserted a segment

	growPending bool
}

// Layout returns the default head, body, body, tail layout facing dir
func Layout(grid types.Grid, head types.Point, dir types.Direction) []types.Point {
	back := dir.Opposite()
	body := make([]types.Point, types.MinSnakeLength)
	body[0] = grid.Wrap(head)
	for i := 1; i < len(body); i++ {
		body[i] = grid.Step(body[i-1], back)
	}
	return body
}

func NewSnake(id int, owner Owner, grid types.Grid, head types.Point, dir types.Direction) *Snake {
	return &Snake{
		ID:            id,
		Owner:         owner,
		Body:          Layout(grid, head, dir),
		Direction:     dir,
		NextDirection: dir,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Growing reports whether the next advance will add a segment
func (s *Snake) Growing() bool {
	return s.growPending
}

// Feed marks the snake to grow on its next advance
func (s *Snake) Feed() {
	s.growPending = true
}

// MayEat reports whether some move other than a reversal takes the head
// onto food
func (s *Snake) MayEat(grid types.Grid, food types.Point) bool {
	for _, d := range types.Directions {
		if d != s.Direction.Opposite() && grid.Step(s.Head(), d) == food {
			return true
		}
	}
	return false
}

// RequestDirection queues dir for the next advance. A reversal of the
// committed direction is refused.
func (s *Snake) RequestDirection(dir types.Direction) bool {
	if dir == s.Direction.Opposite() {
		return false
	}
	s.NextDirection = dir
	return true
}

// NextHead is where the head lands on the next advance
func (s *Snake) NextHead(grid types.Grid) types.Point {
	return grid.Step(s.Head(), s.NextDirection)
}

// Advance moves the snake one step. Previous positions are captured before
// any segment is written, then the head moves, each body segment takes the
// place of the one in front of it and the tail either follows or, when
// growing, stays put behind a new segment.
func (s *Snake) Advance(grid types.Grid) {
	s.Direction = s.NextDirection

	prev := make([]types.Point, len(s.Body))
	copy(prev, s.Body)
	n := len(prev)
	prevTail := prev[n-1]

	next := make([]types.Point, 0, n+1)
	next = append(next, grid.Step(prev[0], s.Direction))
	next = append(next, prev[:n-2]...)

	if s.growPending {
		next = append(next, prevTail, prevTail)
		s.growPending = false
		s.Grew = true
	} else {
		next = append(next, prev[n-2])
		s.Grew = false
	}
	s.Body = next
}

// HitsSelf reports whether the head shares a cell with any other segment.
// Snakes of minimum length cannot reach their own body and are exempt.
func (s *Snake) HitsSelf() bool {
	if len(s.Body) <= types.MinSnakeLength {
		return false
	}
	head := s.Head()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Distinct reports whether every segment is on its own cell. Right after a
// growth step the new segment shares the tail's cell; that pair is allowed.
func (s *Snake) Distinct() bool {
	seen := make(map[types.Point]int, len(s.Body))
	for i, p := range s.Body {
		if j, ok := seen[p]; ok {
			if s.Grew && j == len(s.Body)-2 && i == len(s.Body)-1 {
				continue
			}
			return false
		}
		seen[p] = i
	}
	return true
}

// Role of the segment at index i
func (s *Snake) Role(i int) Role {
	switch i {
	case 0:
		return Head
	case len(s.Body) - 1:
		return Tail
	default:
		return Body
	}
}
