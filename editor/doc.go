// Package editor is a headless model of the interactive grid editor that
// drives astar searches: it owns the per-cell display status, the chosen
// start and goal, and the grid passability behind them.
//
// The editor reproduces the classic click semantics without any windowing
// code:
//
//   - Place: first click sets the start, second sets the goal, later clicks
//     paint barriers (never over start or goal).
//   - Erase: resets a cell, forgetting start or goal if it was one.
//   - Clear: forgets both endpoints and makes every cell passable.
//   - Run:   searches from start to goal, coloring cells Open as they enter
//     the open set, Closed as they are expanded, and Path on success.
//
// Status is view state only. Search correctness depends solely on the grid,
// so a renderer can read Snapshot at any time, including from a WithOnStep
// callback while a search is running.
package editor
