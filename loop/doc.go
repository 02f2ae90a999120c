// Package loop traces the closed pipe loop through the Start tile of a
// pipegrid.Grid and answers the two questions asked about it: how far the
// farthest loop tile is from Start, and how many tiles the loop encloses.
//
// What:
//
//   - Trace:         forward-only walk from Start back to Start.
//   - ResolveStart:  the pipe shape Start stands for, from the walk's first and last steps.
//   - Farthest:      half the loop length, rounded down.
//   - Classify:      ray-casting parity scan, row by row, over the resolved grid.
//   - Analyze:       all of the above in one pass, every result exposed.
//
// Walk:
//
//	Every pipe has exactly two openings. Once a tile is entered through one,
//	the other is the only way forward, so the walk never branches. A
//	positional visited bitmap bounds it: stepping onto a visited tile other
//	than Start abandons the walk instead of lapping the loop again.
//
// Parity:
//
//	.F-7.      scanning row 1 left to right:
//	.|.|.      '|' toggles in, '.' is counted, '|' toggles out.
//	.L-J.      Only shapes opening north ('|', 'L', 'J') toggle.
//
// Options:
//
//   - WithContext: cancellation, checked once per step and per row.
//   - WithInitialDirection: force the first step out of Start.
//   - WithParallelRows: scan rows on an errgroup with a goroutine limit.
//   - WithLogger: zap logger for Debug progress records.
//
// Complexity:
//
//   - Trace:    O(R×C) time and memory per attempted walk.
//   - Classify: O(R×C) time and memory.
//
// Errors:
//
//   - ErrGridNil: nil grid.
//   - ErrNoCycleFound: Start has fewer than two exits, or no walk closes.
//   - ErrUnresolvedStart: Classify got a grid still holding 'S' on the loop.
//   - ErrOptionViolation: invalid Option value.
package loop
