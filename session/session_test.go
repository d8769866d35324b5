package session_test

import (
	"testing"

	"github.com/katalvlaran/mazer/maze"
	"github.com/katalvlaran/mazer/session"
	"github.com/katalvlaran/mazer/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedController replays a fixed sequence of choices and records what
// the session fed back to it.
type scriptedController struct {
	algos     []solve.Algorithm
	mode      solve.Mode
	decisions []session.Decision

	mazes   []*maze.Maze
	results []*solve.Result
	steps   int
}

func (c *scriptedController) ChooseAlgorithm(m *maze.Maze) (solve.Algorithm, solve.Mode, bool) {
	if len(c.algos) == 0 {
		return 0, 0, false
	}
	algo := c.algos[0]
	c.algos = c.algos[1:]
	c.mazes = append(c.mazes, m)

	return algo, c.mode, true
}

func (c *scriptedController) OnStep(solve.Event) { c.steps++ }

func (c *scriptedController) OnResult(_ *maze.Maze, res *solve.Result) {
	c.results = append(c.results, res)
}

func (c *scriptedController) NextStep() session.Decision {
	d := c.decisions[0]
	c.decisions = c.decisions[1:]

	return d
}

// TestRun_NilController rejects a missing controller.
func TestRun_NilController(t *testing.T) {
	assert.ErrorIs(t, session.Run(nil), session.ErrNilController)
}

// TestRun_QuitAtStrategyChoice ends the session before any run.
func TestRun_QuitAtStrategyChoice(t *testing.T) {
	ctrl := &scriptedController{} // no algorithms scripted → immediate quit
	require.NoError(t, session.Run(ctrl, session.WithSize(4, 4), session.WithSeed(1)))
	assert.Empty(t, ctrl.results)
}

// TestRun_SameMazeTwice runs two strategies on one maze, then quits; both
// runs must see the identical maze instance.
func TestRun_SameMazeTwice(t *testing.T) {
	ctrl := &scriptedController{
		algos:     []solve.Algorithm{solve.BFS, solve.AStar},
		mode:      solve.Batch,
		decisions: []session.Decision{session.RunAgain, session.Quit},
	}
	require.NoError(t, session.Run(ctrl, session.WithSize(6, 5), session.WithSeed(7)))

	require.Len(t, ctrl.results, 2)
	require.Len(t, ctrl.mazes, 2)
	assert.Same(t, ctrl.mazes[0], ctrl.mazes[1], "RunAgain must reuse the maze")
	assert.Equal(t, solve.BFS, ctrl.results[0].Algorithm)
	assert.Equal(t, solve.AStar, ctrl.results[1].Algorithm)
	// Both strategies find shortest paths on the same maze.
	assert.Equal(t, len(ctrl.results[0].Path), len(ctrl.results[1].Path))
}

// TestRun_Regenerate builds a fresh maze between runs.
func TestRun_Regenerate(t *testing.T) {
	ctrl := &scriptedController{
		algos:     []solve.Algorithm{solve.DFS, solve.DFS},
		mode:      solve.Batch,
		decisions: []session.Decision{session.Regenerate, session.Quit},
	}
	require.NoError(t, session.Run(ctrl, session.WithSize(5, 5), session.WithSeed(3)))

	require.Len(t, ctrl.mazes, 2)
	assert.NotSame(t, ctrl.mazes[0], ctrl.mazes[1], "Regenerate must build a new maze")
}

// TestRun_StepwiseStreamsToController verifies that a Stepwise session
// feeds every event through Controller.OnStep.
func TestRun_StepwiseStreamsToController(t *testing.T) {
	ctrl := &scriptedController{
		algos:     []solve.Algorithm{solve.BFS},
		mode:      solve.Stepwise,
		decisions: []session.Decision{session.Quit},
	}
	require.NoError(t, session.Run(ctrl, session.WithSize(4, 4), session.WithSeed(5)))

	require.Len(t, ctrl.results, 1)
	assert.Equal(t, len(ctrl.results[0].Events), ctrl.steps,
		"controller must observe exactly the recorded events")
	assert.NotZero(t, ctrl.steps)
}

// TestRun_InvalidSize propagates generation errors.
func TestRun_InvalidSize(t *testing.T) {
	ctrl := &scriptedController{}
	err := session.Run(ctrl, session.WithSize(0, 3))
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
}

// TestState_String covers the enum names.
func TestState_String(t *testing.T) {
	assert.Equal(t, "GeneratingMaze", session.GeneratingMaze.String())
	assert.Equal(t, "ChoosingStrategy", session.ChoosingStrategy.String())
	assert.Equal(t, "Animating", session.Animating.String())
	assert.Equal(t, "AwaitingNextStep", session.AwaitingNextStep.String())
	assert.Equal(t, "unknown", session.State(99).String())
}
