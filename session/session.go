package session

import (
	"github.com/katalvlaran/mazer/maze"
	"github.com/katalvlaran/mazer/solve"
)

// Run executes the session state machine until the controller quits or an
// error surfaces. The loop is a plain switch over the state enum; every
// transition is explicit and the core never blocks on its own.
func Run(ctrl Controller, opts ...Option) error {
	if ctrl == nil {
		return ErrNilController
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		m     *maze.Maze
		algo  solve.Algorithm
		mode  solve.Mode
		state = GeneratingMaze
	)
	for {
		switch state {
		case GeneratingMaze:
			var err error
			m, err = generate(o)
			if err != nil {
				return err
			}
			state = ChoosingStrategy

		case ChoosingStrategy:
			var ok bool
			algo, mode, ok = ctrl.ChooseAlgorithm(m)
			if !ok {
				return nil
			}
			state = Animating

		case Animating:
			res, err := solve.Solve(m, algo,
				solve.WithMode(mode),
				solve.WithOnStep(ctrl.OnStep),
			)
			if err != nil {
				return err
			}
			ctrl.OnResult(m, res)
			state = AwaitingNextStep

		case AwaitingNextStep:
			switch ctrl.NextStep() {
			case RunAgain:
				state = ChoosingStrategy
			case Regenerate:
				state = GeneratingMaze
			default:
				// Quit, and any out-of-range decision, ends the session.
				return nil
			}
		}
	}
}

// generate builds one maze with the session's RNG policy.
func generate(o Options) (*maze.Maze, error) {
	if o.rng != nil {
		return maze.Generate(o.Width, o.Height, maze.WithRand(o.rng))
	}

	return maze.Generate(o.Width, o.Height)
}
