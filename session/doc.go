// Package session runs the generate/choose/animate/next loop as an
// explicit finite state machine.
//
// What:
//
//   - Four states: GeneratingMaze → ChoosingStrategy → Animating →
//     AwaitingNextStep, with AwaitingNextStep looping back to either
//     ChoosingStrategy (same maze, another strategy) or GeneratingMaze
//     (fresh maze), or ending the session.
//   - All interaction flows through the Controller interface: menu
//     prompts, frame pacing, rendering, terminal handling — none of it
//     lives here, and the loop itself never sleeps.
//
// Why:
//
//   - The classic interactive maze demo tangles algorithm calls, drawing
//     and jump-based control flow together. Modelling the session as a
//     loop over a state enum keeps transitions inspectable and lets a
//     scripted controller drive the whole flow in tests.
//
// Errors:
//
//   - ErrNilController: Run was called without a controller.
//   - Generation and solver errors propagate unchanged; a generated maze
//     is a spanning tree, so solver runs inside a session cannot report
//     an unreachable goal.
package session
