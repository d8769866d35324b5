// Package maze models a rectangular grid maze and generates perfect
// (uniquely solvable) instances via randomized Kruskal construction.
//
// What:
//
//   - Maze stores, per cell, whether the wall to its right and below is
//     still standing; adjacency is queried through CanMove.
//   - New builds a fully walled grid (no two cells connected).
//   - Generate carves a uniform random spanning tree: every candidate
//     wall is shuffled, and a wall is knocked out exactly when its two
//     cells live in different components (tracked by dset.DisjointSet).
//
// Why:
//
//   - A spanning tree over the cell graph means the maze is connected and
//     acyclic, so exactly one simple path joins any two cells — the
//     property search-animation demos and solver comparisons rely on.
//
// Guarantees after Generate:
//
//   - Exactly W×H−1 walls removed (spanning-tree edge count).
//   - CanMove is symmetric: CanMove(x,y,d) == CanMove(nx,ny,d.Opposite()).
//   - A fixed seed (WithSeed) reproduces bit-identical wall grids.
//
// Complexity:
//
//   - Generate: O(W·H·α(W·H)) time, O(W·H) memory.
//   - CanMove / Index / Coordinate: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0.
//
// The Maze is immutable once returned; all methods are read-only and safe
// for concurrent use by independent solver runs.
package maze
