// Package solve runs graph-search strategies over a maze.Maze and exposes
// every state change of the search as an observable step event.
//
// What:
//
//   - Four interchangeable strategies: DFS, BFS, Dijkstra, AStar.
//   - Two modes: Batch (final path only) and Stepwise (one Event per
//     expansion, enqueue, relaxation or backtrack, plus an opening frame).
//   - Shared parent-link path reconstruction; every strategy returns the
//     ordered cell sequence from start to goal, inclusive.
//
// Why:
//
//   - Stepwise events drive renderers and teaching animations without the
//     engine knowing anything about pacing or display: the engine never
//     blocks or sleeps, the observer decides what a "frame" means.
//   - Batch mode reuses the identical code path, so what is animated is
//     exactly what is computed.
//
// Strategy policies (uniform edge cost 1, direction order up/right/down/left):
//
//   - DFS: stack of the single active path; first untried direction wins,
//     dead ends pop and emit a backtrack event. Path need not be shortest.
//   - BFS: FIFO queue; first discovery is shortest in edge count.
//   - Dijkstra: min-heap keyed by dist, lazy decrease-key relaxation.
//   - AStar: same relaxation, key dist+Manhattan-to-goal. The heuristic is
//     admissible and consistent on a uniform-cost orthogonal grid, so the
//     result is still a shortest path and never more cells are finalized
//     than Dijkstra finalizes.
//
// Complexity: O(V) for DFS/BFS, O(V log V) for the heap strategies, with
// V = W·H and E < 2V on a maze (E = V−1 on a perfect maze).
//
// Errors:
//
//   - ErrMazeNil:          nil maze.
//   - ErrUnknownAlgorithm: algorithm outside the enum.
//   - ErrUnknownMode:      mode outside the enum.
//   - ErrInvalidCell:      start or goal off the grid (rejected up front).
//   - ErrGoalUnreachable:  frontier exhausted before the goal — possible
//     only when the maze is not a spanning tree (e.g. an uncarved
//     maze.New grid); the partial Result still carries the events.
//
// Each Solve call owns its whole search state, so independent runs may
// execute concurrently on the same (immutable) maze.
package solve
