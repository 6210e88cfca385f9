package world

import "fmt"

// Pos is an integer grid coordinate. The grid is unbounded; generation only
// populates a square region.
type Pos struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbouring position in direction d.
func (p Pos) Step(d Direction) Pos {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// String formats the position as (x,y).
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four unit moves the input model produces.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// AllDirections returns all valid directions for iteration.
func AllDirections() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is one of the four unit moves.
func (d Direction) IsValid() bool {
	return d >= Left && d <= Down
}

// Delta returns the x and y offsets for this direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}
