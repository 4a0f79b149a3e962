// Package astar finds shortest paths between two cells of a grid.Grid using
// the A* algorithm with unit edge costs and 4-directional movement.
//
// Overview:
//
//   - FindPath expands cells in ascending f = g + h order, where g is the
//     number of steps from the start and h is the Manhattan distance to the
//     goal. Manhattan distance is admissible and consistent for orthogonal
//     unit-cost moves, so the first path that reaches the goal is optimal.
//   - Ties on f are broken by insertion order (first pushed, first popped).
//     Together with grid.NeighborsOf's fixed down, up, right, left order this
//     makes every search fully deterministic: identical inputs produce
//     identical paths and identical expansion sequences.
//   - The open set uses a "lazy" strategy: when a cell already in the open set
//     gets a better g-score, its heap entry is left in place instead of being
//     re-keyed. Entries for cells no longer in the open set are discarded
//     when popped. This keeps the tie-break trace stable and the queue simple.
//
// Outcomes:
//
//	A search ends in one of three statuses, none of which is an error:
//
//	  - Found:       Result.Path holds the cells from start to goal inclusive.
//	  - Unreachable: the open set ran dry; no path exists.
//	  - Cancelled:   the context passed via WithContext was done.
//
// Hooks:
//
//   - WithOnExpand(fn): fn(cell) runs after all neighbors of cell were
//     processed, and once more for the goal when it is reached.
//   - WithOnOpen(fn):   fn(cell) runs whenever a cell enters the open set.
//
// Hooks run synchronously on the calling goroutine and must not block.
//
// Errors (sentinel):
//
//   - ErrNilGrid:         the grid pointer is nil.
//   - ErrInvalidEndpoint: start or goal lies outside the grid.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Complexity:
//
//   - Time:  O(V log V) for V = rows×cols; each cell is pushed at most once
//     per open-set membership, each push/pop is O(log V).
//   - Space: O(V) for scores, predecessors and the heap.
//
// Thread safety:
//
//	FindPath keeps all search state local to the call; concurrent searches
//	over the same grid are safe as long as nobody mutates the grid meanwhile.
package astar
