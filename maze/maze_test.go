package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazer/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidDimensions rejects non-positive widths and heights.
func TestNew_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		m, err := maze.New(dims[0], dims[1])
		assert.Nil(t, m, "dims %v", dims)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions, "dims %v", dims)
	}

	m, err := maze.Generate(0, 1)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
}

// TestNew_FullyWalled verifies that an uncarved grid permits no movement.
func TestNew_FullyWalled(t *testing.T) {
	m, err := maze.New(3, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 0, m.RemovedWalls())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			for d := maze.Direction(0); d < maze.NumDirections; d++ {
				assert.False(t, m.CanMove(x, y, d), "(%d,%d) %s", x, y, d)
			}
		}
	}
}

// TestIndexCoordinate checks the row-major bijection between (x,y) and index.
func TestIndexCoordinate(t *testing.T) {
	m, err := maze.New(4, 3)
	require.NoError(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			idx := m.Index(x, y)
			assert.Equal(t, y*4+x, idx)
			gx, gy := m.Coordinate(idx)
			assert.Equal(t, x, gx)
			assert.Equal(t, y, gy)
			assert.Equal(t, maze.Cell{X: x, Y: y}, m.CellAt(idx))
		}
	}
}

// TestDirection covers naming, opposites and step deltas.
func TestDirection(t *testing.T) {
	assert.Equal(t, "up", maze.Up.String())
	assert.Equal(t, "right", maze.Right.String())
	assert.Equal(t, "down", maze.Down.String())
	assert.Equal(t, "left", maze.Left.String())
	assert.Equal(t, "invalid", maze.Direction(9).String())

	assert.Equal(t, maze.Down, maze.Up.Opposite())
	assert.Equal(t, maze.Left, maze.Right.Opposite())
	assert.Equal(t, maze.Up, maze.Down.Opposite())
	assert.Equal(t, maze.Right, maze.Left.Opposite())

	c := maze.Cell{X: 2, Y: 2}
	assert.Equal(t, maze.Cell{X: 2, Y: 1}, c.Step(maze.Up))
	assert.Equal(t, maze.Cell{X: 3, Y: 2}, c.Step(maze.Right))
	assert.Equal(t, maze.Cell{X: 2, Y: 3}, c.Step(maze.Down))
	assert.Equal(t, maze.Cell{X: 1, Y: 2}, c.Step(maze.Left))

	assert.Equal(t, "(2,2)", c.String())
}

// TestStartGoal checks the conventional corner cells.
func TestStartGoal(t *testing.T) {
	m, err := maze.New(7, 5)
	require.NoError(t, err)
	assert.Equal(t, maze.Cell{X: 0, Y: 0}, m.Start())
	assert.Equal(t, maze.Cell{X: 6, Y: 4}, m.Goal())
}
