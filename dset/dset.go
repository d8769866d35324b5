package dset

import "errors"

// ErrBadSize is returned when New is called with a non-positive element count.
var ErrBadSize = errors.New("dset: element count must be positive")

// DisjointSet tracks a partition of 0..n-1 into mergeable components.
// The zero value is not usable; construct with New.
type DisjointSet struct {
	parent []int // parent[i] == i marks a root
	size   []int // size[r] is the component size, valid only at roots
	count  int   // number of live components
}

// New returns a DisjointSet over n singleton components {0}, {1}, ..., {n-1}.
// Returns ErrBadSize if n ≤ 0.
// Complexity: O(n) time and memory.
func New(n int) (*DisjointSet, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Find returns the representative (root) of x's component, compressing the
// path as it walks: every visited node is re-pointed at its grandparent, so
// repeated queries flatten the tree.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the components containing a and b, attaching the smaller tree
// under the larger root (union by size). It reports whether a merge occurred;
// false means a and b were already connected.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	// Keep ra as the larger root.
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return true
}

// Connected reports whether a and b currently share a component.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Count returns the number of components remaining.
// Complexity: O(1).
func (d *DisjointSet) Count() int {
	return d.count
}

// Len returns the total number of elements n.
// Complexity: O(1).
func (d *DisjointSet) Len() int {
	return len(d.parent)
}
