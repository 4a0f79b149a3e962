package astar

import "github.com/katalvlaran/gridpath/grid"

// reconstruct rebuilds the start→goal path by following cameFrom links back
// from goal until a cell without predecessor (the start) is reached.
func reconstruct(cameFrom map[grid.Cell]grid.Cell, goal grid.Cell) []grid.Cell {
	path := []grid.Cell{goal}
	for cur := goal; ; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// IsContiguous reports whether every consecutive pair in path is a pair of
// orthogonal neighbors and no cell appears twice. Empty and single-cell
// paths are contiguous.
func IsContiguous(path []grid.Cell) bool {
	seen := make(map[grid.Cell]struct{}, len(path))
	for i, c := range path {
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
		if i > 0 && Manhattan(path[i-1], c) != 1 {
			return false
		}
	}

	return true
}
