package solve

import "github.com/katalvlaran/mazer/maze"

// runDFS explores depth-first with an explicit stack holding the single
// active path. At every step the top cell tries the first untried direction
// in the fixed order up, right, down, left; a cell with no unvisited exits
// is popped (backtrack). The search stops as soon as the goal becomes the
// top of the stack. Reports whether the goal was reached.
func (r *runner) runDFS() bool {
	stack := make([]int, 0, len(r.parent))
	stack = append(stack, r.start)
	r.visited[r.start] = true
	r.emitOpening()

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if u == r.goal {
			return true
		}

		// First untried direction from the top of the stack.
		next := noParent
		for d := maze.Direction(0); d < maze.NumDirections; d++ {
			if v, ok := r.neighbor(u, d); ok && !r.visited[v] {
				next = v
				break
			}
		}

		if next != noParent {
			r.emit(u, nil, "expanding cell %s", r.cell(u))
			r.res.Expanded++

			r.parent[next] = u
			stack = append(stack, next)
			r.visited[next] = true
			r.emit(u, []int{next}, "add to frontier %s", r.cell(next))
		} else {
			stack = stack[:len(stack)-1]
			r.emit(u, nil, "dead end at %s, backtracking", r.cell(u))
		}
	}

	return false
}
