package solve

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/mazer/maze"
)

// heuristicFunc estimates the remaining cost from a cell to the goal.
// Dijkstra uses the zero estimate; A* uses Manhattan distance, which never
// overestimates on a uniform-cost orthogonal grid (admissible, consistent).
type heuristicFunc func(idx int) int

// zeroHeuristic turns the priority walker into plain Dijkstra.
func zeroHeuristic(*maze.Maze) heuristicFunc {
	return func(int) int { return 0 }
}

// manhattanHeuristic returns |x-gx| + |y-gy| for the fixed goal.
func manhattanHeuristic(m *maze.Maze, goal maze.Cell) heuristicFunc {
	return func(idx int) int {
		x, y := m.Coordinate(idx)

		return abs(x-goal.X) + abs(y-goal.Y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// runPriority is the shared walker behind Dijkstra and AStar: a min-heap
// keyed by dist+h with lazy decrease-key (shorter rediscoveries push a
// duplicate entry; stale entries are skipped when popped). Relaxation uses
// the fixed edge cost 1. Reports whether the goal was finalized.
//
// Tie-breaking among equal keys follows heap order and is not part of the
// contract; equal-cost runs may expand cells in different orders.
func (r *runner) runPriority(h heuristicFunc) bool {
	dist := make([]int, len(r.parent))
	for i := range dist {
		dist[i] = math.MaxInt
	}
	dist[r.start] = 0

	pq := make(cellPQ, 0, len(r.parent))
	heap.Init(&pq)
	heap.Push(&pq, &pqItem{cell: r.start, key: h(r.start)})
	r.visited[r.start] = true
	r.emitOpening()

	for pq.Len() > 0 {
		// Snapshot the heap before popping; the original shows this exact
		// set for the expansion and every relaxation of the iteration.
		frontier := pq.cells(r.visited)

		u := heap.Pop(&pq).(*pqItem).cell
		if r.visited[u] && u != r.start {
			// Stale lazy-decrease-key duplicate.
			continue
		}
		r.visited[u] = true
		r.emit(u, frontier, "expanding cell %s", r.cell(u))
		r.res.Expanded++

		if u == r.goal {
			return true
		}

		for d := maze.Direction(0); d < maze.NumDirections; d++ {
			v, ok := r.neighbor(u, d)
			if !ok {
				continue
			}
			alt := dist[u] + 1
			if alt < dist[v] {
				dist[v] = alt
				r.parent[v] = u
				heap.Push(&pq, &pqItem{cell: v, key: alt + h(v)})
				r.emit(u, frontier, "relax edge to %s", r.cell(v))
			}
		}
	}

	return false
}

// pqItem pairs a cell index with its priority key (dist, or dist+heuristic).
type pqItem struct {
	cell int
	key  int
}

// cellPQ is a min-heap of *pqItem ordered by ascending key.
type cellPQ []*pqItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].key < pq[j].key }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// cells lists the cells currently in the heap, skipping already-finalized
// duplicates, for frontier snapshots.
func (pq cellPQ) cells(finalized map[int]bool) []int {
	out := make([]int, 0, len(pq))
	for _, it := range pq {
		if !finalized[it.cell] {
			out = append(out, it.cell)
		}
	}

	return out
}
