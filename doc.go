// Package gridpath is a small toolkit for shortest-path search on 2-D grids.
//
// What is in the box?
//
//	grid          passability matrix, 4-neighbor derivation, regions, seeded scatter
//	astar         deterministic A* with Manhattan heuristic, hooks and cancellation
//	editor        headless board editor: start, goal, barriers, per-cell status
//	render        PNG snapshots of an editor board
//	scenario      YAML scenario files turned into ready-to-run editors
//	cmd/gridpath  command line runner
//
// Search behavior is fully deterministic: neighbors are visited down, up,
// right, left and equal-priority entries leave the open set in insertion
// order, so a given board always yields the same path and the same
// expansion trace.
//
// Quick start:
//
//	g, _ := grid.FromStrings([]string{
//		"..#..",
//		"..#..",
//		".....",
//	})
//	res, _ := astar.FindPath(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 4})
//	fmt.Println(res.Status, res.Cost) // found 8
//
// Libraries are silent by default; install a logrus logger with
// astar.SetLogger to see search progress.
package gridpath
