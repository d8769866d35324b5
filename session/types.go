// Package session defines the state and decision enums, the Controller
// interface, and the functional options of the session loop.
package session

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/mazer/maze"
	"github.com/katalvlaran/mazer/solve"
)

// ErrNilController is returned when Run is invoked without a controller.
var ErrNilController = errors.New("session: controller is nil")

// State enumerates the phases of one session loop iteration.
type State int

const (
	// GeneratingMaze builds a fresh maze.
	GeneratingMaze State = iota
	// ChoosingStrategy asks the controller which solver to run.
	ChoosingStrategy
	// Animating executes the solver, streaming events to the controller.
	Animating
	// AwaitingNextStep asks the controller what to do with the session.
	AwaitingNextStep
)

// stateNames backs State.String.
var stateNames = [...]string{"GeneratingMaze", "ChoosingStrategy", "Animating", "AwaitingNextStep"}

// String returns the state name for logs and tests.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

// Decision is the controller's answer in AwaitingNextStep.
type Decision int

const (
	// RunAgain runs another strategy on the same maze.
	RunAgain Decision = iota
	// Regenerate discards the maze and builds a new one.
	Regenerate
	// Quit ends the session.
	Quit
)

// Controller is the external collaborator driving a session: menus,
// pacing, rendering and terminal control all live behind it. Every method
// is called from the session goroutine, one at a time.
type Controller interface {
	// ChooseAlgorithm picks the strategy and mode for the current maze.
	// Returning ok=false ends the session.
	ChooseAlgorithm(m *maze.Maze) (algo solve.Algorithm, mode solve.Mode, ok bool)

	// OnStep receives every step event of a Stepwise run as it happens.
	// Pacing (animation delay, keypress waits) is this method's business.
	OnStep(ev solve.Event)

	// OnResult receives the finished run: final path plus any event tail.
	OnResult(m *maze.Maze, res *solve.Result)

	// NextStep decides how the session continues after a run.
	NextStep() Decision
}

// Option configures a session.
type Option func(*Options)

// Options holds session parameters; build via DefaultOptions.
type Options struct {
	// Width and Height of generated mazes.
	Width, Height int

	// rng drives maze generation; a seeded rng reproduces the whole
	// sequence of mazes a session generates.
	rng *rand.Rand
}

// Default maze dimensions, matching the classic 30x15 demo grid.
const (
	DefaultWidth  = 30
	DefaultHeight = 15
)

// DefaultOptions returns the 30x15 configuration with wall-clock seeding.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, Height: DefaultHeight}
}

// WithSize sets the dimensions of generated mazes. Validation happens in
// maze.Generate; non-positive values surface ErrInvalidDimensions there.
func WithSize(w, h int) Option {
	return func(o *Options) {
		o.Width, o.Height = w, h
	}
}

// WithSeed makes the session's maze sequence reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}
