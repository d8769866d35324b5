// Package mazer generates perfect rectangular mazes and animates how
// classic graph-search strategies solve them — step by observable step.
//
// 🚀 What is mazer?
//
//	A small, focused library that brings together:
//		• dset    — disjoint-set (union-find) with path compression & union by size
//		• maze    — grid model + randomized-Kruskal perfect-maze generator
//		• solve   — DFS, BFS, Dijkstra and A* emitting step events per transition
//		• render  — plain-ASCII canvas for frames, paths and golden tests
//		• session — the generate/choose/animate loop as an explicit state machine
//
// ✨ Why choose mazer?
//
//   - Deterministic by choice – seed the generator, replay the exact maze
//   - Renderer-free core – algorithms emit events; observers decide pacing
//   - Pure Go – no cgo, no hidden deps
//   - Comparable strategies – one call shape for all four solvers
//
// Quick ASCII example, a solved 3x3 maze:
//
//	+-+-+-+
//	 *|* *|
//	+ + + +
//	|* *|*|
//	+-+-+ +
//	|     *
//	+-+-+-+
//
// Every generated maze is a uniform random spanning tree of the grid:
// connected, acyclic, exactly one simple path between any two cells.
//
//	go get github.com/katalvlaran/mazer
package mazer
