// Package render draws a maze and search progress as plain ASCII text.
//
// What:
//
//   - Canvas lays a maze out on a (2H+1)×(2W+1) character grid: '+' at
//     wall corners, '-' and '|' for standing walls, gaps where passages
//     were carved, plus an entrance gap left of the start cell and an
//     exit gap right of the goal cell.
//   - Frame overlays one solve.Event: visited cells as '.', frontier
//     cells as 'o', the current cell as '@'.
//   - PathFrame overlays a final path as '*'.
//
// Why:
//
//   - A renderer-free core needs at least one reference observer; Canvas
//     turns event streams into terminal frames, golden-test fixtures, or
//     log output without the engine knowing about any of it.
//
// Deliberately absent: colors, cursor control, terminal-size probing and
// frame pacing — those belong to whatever drives the animation.
//
// Complexity: building a Canvas and rendering a frame are both O(W·H).
package render
