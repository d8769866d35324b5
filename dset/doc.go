// Package dset implements an array-backed disjoint-set (union-find)
// structure over the integer elements 0..n-1.
//
// What:
//
//   - Find with iterative path compression (grandparent hopping).
//   - Union by size: the smaller tree is attached under the larger root.
//   - Count reports the number of remaining components.
//
// Why:
//
//   - Kruskal-style spanning-tree construction: merge cell components as
//     candidate edges are accepted, skip edges that would close a cycle.
//   - Connectivity queries during any incremental edge-accumulation process.
//
// Complexity:
//
//   - Find / Union: O(α(n)) amortized (inverse Ackermann, effectively constant).
//   - Memory: O(n) for the parent and size arrays.
//
// Errors:
//
//   - ErrBadSize: New was called with n ≤ 0.
//
// Elements outside 0..n-1 are a programmer error; the structure is designed
// to be fed by a generator that derives elements from grid indices.
package dset
