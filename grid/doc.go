// Package grid models a fixed-size 2-D board of cells that are either
// passable or blocked, as consumed by the astar search engine.
//
// What:
//
//   - Grid stores one passability flag per cell of a rows×cols board.
//   - Cell is a comparable (Row, Col) value, suitable as a map key.
//   - NeighborsOf derives the 4-connected neighbor set on demand, so a
//     barrier toggled between searches can never leave a stale adjacency.
//   - Regions groups passable cells into 4-connected components.
//
// Neighbor order:
//
//	NeighborsOf always returns candidates in the order down, up, right, left
//	(row+1, row-1, col+1, col-1). Search engines rely on this order for
//	deterministic tie-breaking, so it is part of the contract.
//
// Complexity:
//
//   - New, Reset:      O(R×C) time and memory.
//   - SetPassable:     O(1).
//   - NeighborsOf:     O(1), at most 4 cells.
//   - Regions:         O(R×C) time and memory.
//
// Errors:
//
//   - ErrInvalidDimension: rows or cols is not positive.
//   - ErrOutOfBounds:      a cell-addressed call received coordinates outside the grid.
//   - ErrEmptyGrid:        FromStrings got no rows or an empty first row.
//   - ErrNonRectangular:   FromStrings rows have differing lengths.
//   - ErrInvalidDensity:   Scatter density outside [0,1].
//
// A Grid is not safe for concurrent mutation. Callers must not toggle
// passability while a search over the same grid is running.
package grid
