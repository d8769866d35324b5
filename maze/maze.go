package maze

// Maze is a W×H grid whose cells are separated by removable walls.
// Only two wall grids are stored: the wall to the right of each cell and
// the wall below it; the borders are implicit and never removable.
// A Maze is immutable once handed out — Generate carves before returning,
// and every exported method is read-only.
type Maze struct {
	width, height int
	// rightWall[x][y] reports a standing wall between (x,y) and (x+1,y).
	rightWall [][]bool
	// downWall[x][y] reports a standing wall between (x,y) and (x,y+1).
	downWall [][]bool
}

// New returns a fully walled w×h grid: every cell is sealed off from its
// neighbors. Returns ErrInvalidDimensions if w ≤ 0 or h ≤ 0.
// A fully walled grid is not a spanning tree; solvers report unreachable
// goals on it. Use Generate for a connected maze.
// Complexity: O(W·H) time and memory.
func New(w, h int) (*Maze, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Maze{
		width:     w,
		height:    h,
		rightWall: make([][]bool, w),
		downWall:  make([][]bool, w),
	}
	for x := 0; x < w; x++ {
		m.rightWall[x] = make([]bool, h)
		m.downWall[x] = make([]bool, h)
		for y := 0; y < h; y++ {
			m.rightWall[x][y] = true
			m.downWall[x][y] = true
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the conventional entry cell (0,0).
func (m *Maze) Start() Cell { return Cell{X: 0, Y: 0} }

// Goal returns the conventional exit cell (W-1,H-1).
func (m *Maze) Goal() Cell { return Cell{X: m.width - 1, Y: m.height - 1} }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Index maps (x,y) to its row-major cell index y*W+x.
// Complexity: O(1).
func (m *Maze) Index(x, y int) int {
	return y*m.width + x
}

// Coordinate converts a row-major cell index back to (x,y).
// Complexity: O(1).
func (m *Maze) Coordinate(idx int) (x, y int) {
	return idx % m.width, idx / m.width
}

// CellAt converts a row-major cell index to a Cell value.
func (m *Maze) CellAt(idx int) Cell {
	x, y := m.Coordinate(idx)

	return Cell{X: x, Y: y}
}

// CanMove reports whether a step from (x,y) along dir is possible: the
// neighbor must exist and the wall between the two cells must have been
// removed. Symmetric by construction: every query inspects the single
// wall slot shared by both cells.
// Complexity: O(1).
func (m *Maze) CanMove(x, y int, dir Direction) bool {
	switch dir {
	case Up:
		if y == 0 {
			return false
		}

		return !m.downWall[x][y-1]
	case Right:
		if x+1 >= m.width {
			return false
		}

		return !m.rightWall[x][y]
	case Down:
		if y+1 >= m.height {
			return false
		}

		return !m.downWall[x][y]
	case Left:
		if x == 0 {
			return false
		}

		return !m.rightWall[x-1][y]
	default:
		return false
	}
}

// RemovedWalls counts the carved passages. A generated maze always reports
// exactly W×H−1 (the spanning-tree edge count); a New maze reports 0.
// Complexity: O(W·H).
func (m *Maze) RemovedWalls() int {
	removed := 0
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			if x+1 < m.width && !m.rightWall[x][y] {
				removed++
			}
			if y+1 < m.height && !m.downWall[x][y] {
				removed++
			}
		}
	}

	return removed
}
