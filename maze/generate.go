package maze

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/mazer/dset"
)

// GenOption customizes maze generation. Option constructors validate their
// arguments and panic on programmer error; Generate itself never panics.
type GenOption func(*genConfig)

// genConfig carries the generation knobs; rng is the only one today.
type genConfig struct {
	rng *rand.Rand
}

// WithSeed derives a deterministic RNG from seed. Two Generate calls with
// the same dimensions and seed produce bit-identical wall grids — use this
// in tests and golden fixtures.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil; prefer WithSeed when
// reproducibility is the goal.
func WithRand(r *rand.Rand) GenOption {
	if r == nil {
		panic("maze: WithRand(nil)")
	}

	return func(c *genConfig) {
		c.rng = r
	}
}

// wallEdge is one candidate passage between a cell and its right or down
// neighbor; together they enumerate every interior wall exactly once.
type wallEdge struct {
	x, y int
	dir  Direction // Right or Down only
}

// Generate builds a perfect w×h maze with randomized Kruskal construction:
// enumerate every right/down candidate edge, shuffle uniformly, and knock
// out a wall whenever its two cells are in different components.
// The resulting removed-wall set is a uniform random spanning tree of the
// grid graph: connected, acyclic, exactly W×H−1 passages.
//
// Without options the RNG is seeded from the wall clock; pass WithSeed for
// reproducible mazes. Returns ErrInvalidDimensions if w ≤ 0 or h ≤ 0.
// Complexity: O(W·H·α(W·H)) time, O(W·H) memory.
func Generate(w, h int, opts ...GenOption) (*Maze, error) {
	m, err := New(w, h)
	if err != nil {
		return nil, err
	}

	cfg := genConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 1) Enumerate candidate edges in row-major order: for each cell, the
	//    passage to its right neighbor, then the passage below.
	edges := make([]wallEdge, 0, 2*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				edges = append(edges, wallEdge{x: x, y: y, dir: Right})
			}
			if y+1 < h {
				edges = append(edges, wallEdge{x: x, y: y, dir: Down})
			}
		}
	}

	// 2) Uniform random permutation of the candidate list.
	cfg.rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	// 3) Kruskal sweep: accept an edge iff it joins two components.
	ds, err := dset.New(w * h)
	if err != nil {
		// Unreachable: dimensions were validated above.
		return nil, err
	}
	for _, e := range edges {
		a := m.Index(e.x, e.y)
		var b int
		if e.dir == Right {
			b = a + 1
		} else {
			b = a + w
		}
		if ds.Union(a, b) {
			m.carve(e.x, e.y, e.dir)
			if ds.Count() == 1 {
				break
			}
		}
	}

	return m, nil
}

// carve removes the wall on the right or down side of (x,y).
// Generation-internal; the exported surface stays read-only.
func (m *Maze) carve(x, y int, dir Direction) {
	if dir == Right {
		m.rightWall[x][y] = false
	} else {
		m.downWall[x][y] = false
	}
}
