package astar

import "github.com/katalvlaran/gridpath/grid"

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the exact step count
// between two cells on an obstacle-free 4-connected grid.
func Manhattan(a, b grid.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
