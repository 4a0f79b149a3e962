// Package scenario loads grid search scenarios from YAML files and turns
// them into ready-to-run editors.
//
// A scenario declares the board either by size plus a barrier list, or by an
// ASCII layout where '#' is a barrier, 'S' the start and 'G' the goal:
//
//	rows: 5
//	cols: 5
//	start: [0, 0]
//	goal: [4, 4]
//	barriers: [[1, 1], [2, 2]]
//	random:
//	  density: 0.2
//	  seed: 42
//	render:
//	  cell_size: 16
//	  labels: true
//
//	layout: |
//	  S.#..
//	  ..#.G
//
// Coordinates are [row, col]. Unknown keys are rejected.
package scenario
