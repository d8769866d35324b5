package render_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazer/maze"
	"github.com/katalvlaran/mazer/render"
	"github.com/katalvlaran/mazer/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCanvas_NilMaze rejects nil input.
func TestNewCanvas_NilMaze(t *testing.T) {
	c, err := render.NewCanvas(nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, render.ErrMazeNil)
}

// TestCanvas_Base_SingleCell pins the 1x1 frame: a sealed box with the
// entrance gap on the left and the exit gap on the right.
func TestCanvas_Base_SingleCell(t *testing.T) {
	m, err := maze.Generate(1, 1, maze.WithSeed(0))
	require.NoError(t, err)
	c, err := render.NewCanvas(m)
	require.NoError(t, err)

	want := []string{
		"+-+",
		"   ",
		"+-+",
	}
	assert.Equal(t, want, c.Base())
	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, 3, c.Cols())
}

// TestCanvas_Base_TwoCells pins the forced 2x1 maze: one open corridor
// from entrance to exit.
func TestCanvas_Base_TwoCells(t *testing.T) {
	m, err := maze.Generate(2, 1, maze.WithSeed(4))
	require.NoError(t, err)
	c, err := render.NewCanvas(m)
	require.NoError(t, err)

	want := []string{
		"+-+-+",
		"     ",
		"+-+-+",
	}
	assert.Equal(t, want, c.Base())
}

// TestCanvas_Base_Corridor pins the forced 1x3 maze: every down wall open,
// side walls intact except the entrance and exit gaps.
func TestCanvas_Base_Corridor(t *testing.T) {
	m, err := maze.Generate(1, 3, maze.WithSeed(4))
	require.NoError(t, err)
	c, err := render.NewCanvas(m)
	require.NoError(t, err)

	want := []string{
		"+-+",
		"  |",
		"+ +",
		"| |",
		"+ +",
		"|  ",
		"+-+",
	}
	assert.Equal(t, want, c.Base())
}

// TestCanvas_Frame overlays a BFS event stream on the 2x1 corridor and
// checks the glyph z-order: current over frontier over visited.
func TestCanvas_Frame(t *testing.T) {
	m, err := maze.Generate(2, 1, maze.WithSeed(4))
	require.NoError(t, err)
	c, err := render.NewCanvas(m)
	require.NoError(t, err)

	res, err := solve.Solve(m, solve.BFS, solve.WithMode(solve.Stepwise))
	require.NoError(t, err)
	require.Len(t, res.Events, 4)

	// Expansion of (0,0): only the current marker.
	assert.Equal(t, " @   ", c.Frame(res.Events[1])[1])

	// Enqueue of (1,0): (0,0) stays current, (1,0) shows as frontier.
	assert.Equal(t, " @ o ", c.Frame(res.Events[2])[1])

	// Expansion of (1,0): (0,0) is visited, (1,0) is current.
	assert.Equal(t, " . @ ", c.Frame(res.Events[3])[1])
}

// TestCanvas_PathFrame stars the final path of the 1x3 corridor.
func TestCanvas_PathFrame(t *testing.T) {
	m, err := maze.Generate(1, 3, maze.WithSeed(4))
	require.NoError(t, err)
	c, err := render.NewCanvas(m)
	require.NoError(t, err)

	res, err := solve.Solve(m, solve.BFS)
	require.NoError(t, err)

	frame := c.PathFrame(res.Path)
	assert.Equal(t, " *|", frame[1])
	assert.Equal(t, "|*|", frame[3])
	assert.Equal(t, "|* ", frame[5])
}

// TestCanvas_BaseImmutable ensures rendered frames never leak into the
// base layer.
func TestCanvas_BaseImmutable(t *testing.T) {
	m, err := maze.Generate(3, 3, maze.WithSeed(6))
	require.NoError(t, err)
	c, err := render.NewCanvas(m)
	require.NoError(t, err)

	before := strings.Join(c.Base(), "\n")
	res, err := solve.Solve(m, solve.BFS, solve.WithMode(solve.Stepwise))
	require.NoError(t, err)
	for _, ev := range res.Events {
		_ = c.Frame(ev)
	}
	_ = c.PathFrame(res.Path)
	assert.Equal(t, before, strings.Join(c.Base(), "\n"))
}

// TestLegend spot-checks the symbol key.
func TestLegend(t *testing.T) {
	leg := render.Legend()
	for _, sym := range []string{"+", "-", "|", ".", "o", "@", "*"} {
		assert.Contains(t, leg, sym)
	}
}
