package solve

import (
	"fmt"

	"github.com/katalvlaran/mazer/maze"
)

// Solve runs the chosen strategy on m from start to goal and returns the
// final path. In Stepwise mode the Result also carries the full event
// stream, and the OnStep hook (if any) observes each event as it occurs.
//
// Start and goal default to the maze's corners (0,0) and (W-1,H-1); both
// are validated against the grid before any search state is allocated.
// On an unreachable goal the partial Result (events, no path) is returned
// together with ErrGoalUnreachable.
func Solve(m *maze.Maze, algo Algorithm, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	if !algo.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(o.Mode))
	}
	if !o.hasStart {
		o.Start = m.Start()
	}
	if !o.hasGoal {
		o.Goal = m.Goal()
	}
	if !m.InBounds(o.Start.X, o.Start.Y) {
		return nil, fmt.Errorf("%w: start %s", ErrInvalidCell, o.Start)
	}
	if !m.InBounds(o.Goal.X, o.Goal.Y) {
		return nil, fmt.Errorf("%w: goal %s", ErrInvalidCell, o.Goal)
	}

	r := newRunner(m, algo, o)

	// Degenerate run: the one-cell path needs no exploration and, per the
	// engine contract, no step events precede the final path.
	if r.start == r.goal {
		r.res.Path = []maze.Cell{o.Start}

		return r.res, nil
	}

	var found bool
	switch algo {
	case DFS:
		found = r.runDFS()
	case BFS:
		found = r.runBFS()
	case Dijkstra:
		found = r.runPriority(zeroHeuristic(m))
	case AStar:
		found = r.runPriority(manhattanHeuristic(m, o.Goal))
	}

	if !found {
		return r.res, ErrGoalUnreachable
	}
	r.res.Path = r.reconstruct()

	return r.res, nil
}

// runner holds the mutable state of a single run. Every Solve invocation
// builds a fresh runner, so concurrent runs never share anything.
type runner struct {
	m           *maze.Maze
	algo        Algorithm
	opts        Options
	start, goal int // row-major cell indices

	parent  []int        // predecessor per cell, -1 = none
	visited map[int]bool // discovered or finalized cells
	res     *Result
}

// newRunner allocates search state sized to the grid.
func newRunner(m *maze.Maze, algo Algorithm, o Options) *runner {
	n := m.Width() * m.Height()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = noParent
	}

	return &runner{
		m:       m,
		algo:    algo,
		opts:    o,
		start:   m.Index(o.Start.X, o.Start.Y),
		goal:    m.Index(o.Goal.X, o.Goal.Y),
		parent:  parent,
		visited: make(map[int]bool, n),
		res:     &Result{Algorithm: algo},
	}
}

// noParent is the predecessor sentinel of the start cell.
const noParent = -1

// stepwise reports whether events are being recorded.
func (r *runner) stepwise() bool {
	return r.opts.Mode == Stepwise
}

// emit records one step event with snapshot copies of the frontier
// highlight set and the visited set, then feeds it to the OnStep hook.
// No-op in Batch mode.
func (r *runner) emit(current int, frontier []int, format string, args ...interface{}) {
	if !r.stepwise() {
		return
	}
	fr := make(map[int]bool, len(frontier))
	for _, c := range frontier {
		fr[c] = true
	}
	vis := make(map[int]bool, len(r.visited))
	for c := range r.visited {
		vis[c] = true
	}
	ev := Event{
		Current:  current,
		Frontier: fr,
		Visited:  vis,
		Message:  fmt.Sprintf("%s - ", r.algo) + fmt.Sprintf(format, args...),
	}
	r.res.Events = append(r.res.Events, ev)
	if r.opts.OnStep != nil {
		r.opts.OnStep(ev)
	}
}

// emitOpening records the "starting" frame shown before the first
// expansion; Current is NoCell, matching the original's first drawn frame.
func (r *runner) emitOpening() {
	r.emit(NoCell, nil, "starting %s", r.algo)
}

// cell converts a row-major index to its coordinates.
func (r *runner) cell(idx int) maze.Cell {
	return r.m.CellAt(idx)
}

// neighbor returns the index of the cell one step from idx along dir and
// whether that step is possible (in bounds, wall removed).
func (r *runner) neighbor(idx int, dir maze.Direction) (int, bool) {
	c := r.cell(idx)
	if !r.m.CanMove(c.X, c.Y, dir) {
		return 0, false
	}
	n := c.Step(dir)

	return r.m.Index(n.X, n.Y), true
}

// reconstruct walks parent links back from the goal and returns the path
// start → goal inclusive. Callers only invoke it after the goal was reached.
func (r *runner) reconstruct() []maze.Cell {
	var rev []int
	for v := r.goal; v != noParent; v = r.parent[v] {
		rev = append(rev, v)
	}
	path := make([]maze.Cell, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = r.cell(v)
	}

	return path
}
