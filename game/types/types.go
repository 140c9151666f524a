package types

// Point is a grid cell
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions. Movement wraps around every edge.
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	MinSnakeLength = 4 // Head + 2 body segments + tail
)

// Rand is the random source injected into spawning and AI decisions.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps any point back onto the torus
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Step moves p one cell in direction d, wrapping around the edges
func (g Grid) Step(p Point, d Direction) Point {
	delta := d.Delta()
	return g.Wrap(Point{X: p.X + delta.X, Y: p.Y + delta.Y})
}

// Neighbors returns the four wrapped neighbours of p in Directions order
func (g Grid) Neighbors(p Point) [4]Point {
	var out [4]Point
	for i, d := range Directions {
		out[i] = g.Step(p, d)
	}
	return out
}

// DirectionTo returns the direction whose wrapped step takes a onto b.
// ok is false when b is not adjacent to a.
func (g Grid) DirectionTo(a, b Point) (Direction, bool) {
	for _, d := range Directions {
		if g.Step(a, d) == b {
			return d, true
		}
	}
	return Up, false
}

// Distance is the Manhattan distance between two points considering the wrapping of the grid
func (g Grid) Distance(p1, p2 Point) int {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)

	if dx > g.Width/2 {
		dx = g.Width - dx
	}
	if dy > g.Height/2 {
		dy = g.Height - dy
	}

	return dx + dy
}

// Index flattens p into y*Width+x
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Cells is the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
