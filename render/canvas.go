package render

import (
	"errors"
	"strings"

	"github.com/katalvlaran/mazer/maze"
	"github.com/katalvlaran/mazer/solve"
)

// ErrMazeNil is returned when NewCanvas receives a nil maze.
var ErrMazeNil = errors.New("render: maze is nil")

// Overlay glyphs, matching the original animation's symbol key.
const (
	glyphCorner  = '+'
	glyphHWall   = '-'
	glyphVWall   = '|'
	glyphVisited = '.'
	glyphFront   = 'o'
	glyphCurrent = '@'
	glyphPath    = '*'
)

// Canvas renders one maze. The base layer (walls and passages) is computed
// once; each Frame/PathFrame call clones it and applies an overlay, so a
// Canvas can be reused across runs and is safe for read-only sharing.
type Canvas struct {
	m          *maze.Maze
	rows, cols int
	base       [][]byte
}

// NewCanvas builds the wall layer for m. Returns ErrMazeNil on nil input.
func NewCanvas(m *maze.Maze) (*Canvas, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	w, h := m.Width(), m.Height()
	c := &Canvas{
		m:    m,
		rows: 2*h + 1,
		cols: 2*w + 1,
	}

	// Full lattice first: corners on even/even, walls elsewhere on even
	// rows/columns, cell interiors blank.
	c.base = make([][]byte, c.rows)
	for r := 0; r < c.rows; r++ {
		line := make([]byte, c.cols)
		for col := 0; col < c.cols; col++ {
			switch {
			case r%2 == 0 && col%2 == 0:
				line[col] = glyphCorner
			case r%2 == 0:
				line[col] = glyphHWall
			case col%2 == 0:
				line[col] = glyphVWall
			default:
				line[col] = ' '
			}
		}
		c.base[r] = line
	}

	// Open the carved passages: a right passage blanks the wall east of
	// the cell, a down passage blanks the wall south of it.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, col := 2*y+1, 2*x+1
			if m.CanMove(x, y, maze.Right) {
				c.base[r][col+1] = ' '
			}
			if m.CanMove(x, y, maze.Down) {
				c.base[r+1][col] = ' '
			}
		}
	}

	// Entrance west of the start cell, exit east of the goal cell.
	start, goal := m.Start(), m.Goal()
	c.base[2*start.Y+1][2*start.X] = ' '
	c.base[2*goal.Y+1][2*goal.X+2] = ' '

	return c, nil
}

// Rows returns the rendered frame height in lines.
func (c *Canvas) Rows() int { return c.rows }

// Cols returns the rendered frame width in characters.
func (c *Canvas) Cols() int { return c.cols }

// Base returns the wall layer with no overlay, one string per line.
func (c *Canvas) Base() []string {
	return c.render(nil)
}

// Frame renders one search snapshot: visited '.', frontier 'o' (drawn over
// visited), current '@' (drawn over both) — the original z-order.
func (c *Canvas) Frame(ev solve.Event) []string {
	return c.render(func(grid [][]byte) {
		for idx := range ev.Visited {
			c.mark(grid, idx, glyphVisited)
		}
		for idx := range ev.Frontier {
			c.mark(grid, idx, glyphFront)
		}
		if ev.Current != solve.NoCell {
			c.mark(grid, ev.Current, glyphCurrent)
		}
	})
}

// PathFrame renders the final path as '*'.
func (c *Canvas) PathFrame(path []maze.Cell) []string {
	return c.render(func(grid [][]byte) {
		for _, cell := range path {
			c.mark(grid, c.m.Index(cell.X, cell.Y), glyphPath)
		}
	})
}

// render clones the base layer, applies the overlay, and joins lines.
func (c *Canvas) render(overlay func([][]byte)) []string {
	grid := make([][]byte, c.rows)
	for r := range c.base {
		grid[r] = append([]byte(nil), c.base[r]...)
	}
	if overlay != nil {
		overlay(grid)
	}
	out := make([]string, c.rows)
	for r, line := range grid {
		out[r] = string(line)
	}

	return out
}

// mark stamps a glyph into the interior slot of the given cell index.
func (c *Canvas) mark(grid [][]byte, idx int, glyph byte) {
	x, y := c.m.Coordinate(idx)
	grid[2*y+1][2*x+1] = glyph
}

// Legend returns the symbol key shown to first-time viewers.
func Legend() string {
	var b strings.Builder
	b.WriteString("Legend:\n")
	b.WriteString("+ : corner of wall\n")
	b.WriteString("- : horizontal wall\n")
	b.WriteString("| : vertical wall\n")
	b.WriteString(". : visited cell\n")
	b.WriteString("o : frontier\n")
	b.WriteString("@ : current cell\n")
	b.WriteString("* : final path\n")

	return b.String()
}
