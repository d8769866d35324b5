package solve

import "github.com/katalvlaran/mazer/maze"

// runBFS explores breadth-first with a FIFO queue. Each dequeue emits an
// expansion event; every unvisited reachable neighbor is discovered in the
// fixed direction order and enqueued with its own event. With uniform edge
// cost, first discovery yields a shortest path in edge count.
// Reports whether the goal was dequeued.
func (r *runner) runBFS() bool {
	queue := make([]int, 0, len(r.parent))
	queue = append(queue, r.start)
	r.visited[r.start] = true
	r.emitOpening()

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		r.emit(u, nil, "expanding cell %s", r.cell(u))
		r.res.Expanded++

		if u == r.goal {
			return true
		}

		for d := maze.Direction(0); d < maze.NumDirections; d++ {
			v, ok := r.neighbor(u, d)
			if !ok || r.visited[v] {
				continue
			}
			r.visited[v] = true
			r.parent[v] = u
			queue = append(queue, v)
			r.emit(u, []int{v}, "enqueue %s", r.cell(v))
		}
	}

	return false
}
