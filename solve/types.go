// Package solve defines the strategy and mode enums, step events, result
// type, sentinel errors, and functional options of the search engine.
package solve

import (
	"errors"

	"github.com/katalvlaran/mazer/maze"
)

// Sentinel errors for solver execution.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("solve: maze is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the enum.
	ErrUnknownAlgorithm = errors.New("solve: unknown algorithm")

	// ErrUnknownMode is returned for a Mode outside the enum.
	ErrUnknownMode = errors.New("solve: unknown mode")

	// ErrInvalidCell is returned when start or goal lies outside the grid.
	// The run is rejected before any state is touched.
	ErrInvalidCell = errors.New("solve: cell outside maze bounds")

	// ErrGoalUnreachable is returned when the frontier empties before the
	// goal is reached. A generated maze is a spanning tree, so this occurs
	// only on out-of-contract input such as an uncarved maze.New grid.
	ErrGoalUnreachable = errors.New("solve: goal unreachable")
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	// DFS explores depth-first along a single active path with backtracking.
	DFS Algorithm = iota
	// BFS explores breadth-first; first discovery is a shortest path.
	BFS
	// Dijkstra expands by lowest distance from the start.
	Dijkstra
	// AStar expands by distance plus Manhattan estimate to the goal.
	AStar

	numAlgorithms
)

// algoNames backs Algorithm.String; the A* spelling matches the original
// status lines ("A* - expanding cell ...").
var algoNames = [numAlgorithms]string{"DFS", "BFS", "Dijkstra", "A*"}

// String returns the display name used as the step-event message prefix.
func (a Algorithm) String() string {
	if a < 0 || a >= numAlgorithms {
		return "unknown"
	}

	return algoNames[a]
}

// Valid reports whether a names one of the four strategies.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < numAlgorithms
}

// Mode selects how much observable output a run retains.
type Mode int

const (
	// Batch runs to completion keeping only the final path.
	Batch Mode = iota
	// Stepwise records an Event for every state-changing operation and
	// feeds each one to the OnStep hook as it happens.
	Stepwise
)

// Valid reports whether m is Batch or Stepwise.
func (m Mode) Valid() bool {
	return m == Batch || m == Stepwise
}

// NoCell marks "no current cell" in an Event, used by the opening frame.
const NoCell = -1

// Event is one immutable snapshot of search progress. Cells are row-major
// indices (maze.Index); the snapshot maps are private copies, safe to keep.
//
// Frontier carries the cells an observer should highlight for this step:
// the heap strategies snapshot their whole priority queue, DFS and BFS
// highlight the cell just added, mirroring the original animation.
type Event struct {
	// Current is the cell being processed, or NoCell for the opening frame.
	Current int

	// Frontier is the highlight set of discovered-but-unfinalized cells.
	Frontier map[int]bool

	// Visited is the set of cells discovered or finalized so far.
	Visited map[int]bool

	// Message describes the transition, e.g. "BFS - enqueue (3,1)".
	Message string
}

// Result is the outcome of one Solve run.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm

	// Path is the ordered cell sequence from start to goal, inclusive.
	// Nil when the goal was unreachable.
	Path []maze.Cell

	// Events holds the step stream in Stepwise mode; nil in Batch mode.
	Events []Event

	// Expanded counts the cells taken from the frontier and processed.
	Expanded int
}

// Option configures a Solve run via functional arguments.
type Option func(*Options)

// Options holds the per-run parameters. Zero values mean "use the maze's
// conventional corners and Batch mode"; build via DefaultOptions.
type Options struct {
	// Start is the source cell. Defaults to (0,0).
	Start maze.Cell

	// Goal is the target cell. Defaults to (W-1,H-1).
	Goal maze.Cell

	// Mode selects Batch or Stepwise output.
	Mode Mode

	// OnStep, if non-nil, receives every Event as it is recorded
	// (Stepwise mode only). The engine never sleeps between calls;
	// pacing belongs to the observer.
	OnStep func(Event)

	// hasStart / hasGoal track whether the caller overrode the corners.
	hasStart, hasGoal bool
}

// DefaultOptions returns Options targeting the maze's conventional corners
// in Batch mode with no hook installed.
func DefaultOptions() Options {
	return Options{Mode: Batch}
}

// WithStart overrides the source cell.
func WithStart(c maze.Cell) Option {
	return func(o *Options) {
		o.Start = c
		o.hasStart = true
	}
}

// WithGoal overrides the target cell.
func WithGoal(c maze.Cell) Option {
	return func(o *Options) {
		o.Goal = c
		o.hasGoal = true
	}
}

// WithMode selects Batch or Stepwise output.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithOnStep installs a per-event hook for Stepwise runs.
// A nil fn leaves the options unchanged.
func WithOnStep(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
