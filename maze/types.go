// Package maze defines the grid primitives shared by the generator and the
// solvers: cells, movement directions, and sentinel errors.
package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a maze is requested with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("maze: width and height must be positive")

// Cell identifies a grid position by its column X and row Y.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)", the form used in step-event messages.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction enumerates the four orthogonal movement directions in the fixed
// exploration order used by every solver: up, right, down, left.
type Direction int

const (
	// Up moves toward decreasing Y.
	Up Direction = iota
	// Right moves toward increasing X.
	Right
	// Down moves toward increasing Y.
	Down
	// Left moves toward decreasing X.
	Left

	// NumDirections is the count of orthogonal directions.
	NumDirections = 4
)

// dirNames backs Direction.String; index matches the constant order.
var dirNames = [NumDirections]string{"up", "right", "down", "left"}

// deltas holds per-direction coordinate offsets {dx, dy}.
var deltas = [NumDirections][2]int{
	{0, -1}, // Up
	{1, 0},  // Right
	{0, 1},  // Down
	{-1, 0}, // Left
}

// String returns the lowercase direction name, or "invalid" out of range.
func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return "invalid"
	}

	return dirNames[d]
}

// Valid reports whether d is one of the four orthogonal directions.
func (d Direction) Valid() bool {
	return d >= 0 && d < NumDirections
}

// Opposite returns the reverse direction: Up↔Down, Right↔Left.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Delta returns the coordinate offset (dx, dy) of one step along d.
func (d Direction) Delta() (dx, dy int) {
	return deltas[d][0], deltas[d][1]
}

// Step returns the cell one move from c along d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()

	return Cell{X: c.X + dx, Y: c.Y + dy}
}
