package grid

// Regions finds all 4-connected regions of passable cells.
// Returns a slice of regions; each region lists its cells in BFS discovery
// order, and regions appear in row-major order of their first cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, len(g.blocked))
	var regions [][]Cell

	for i0 := range g.blocked {
		if g.blocked[i0] || seen[i0] {
			continue
		}
		// BFS to collect the region
		seen[i0] = true
		queue := []Cell{g.cell(i0)}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.NeighborsOf(queue[qi]) {
				ni := g.index(n.Row, n.Col)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// Connected reports whether a and b are passable and lie in the same
// 4-connected region. It floods from a and stops as soon as b is seen.
// Out-of-bounds or blocked endpoints are never connected.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	if g.blocked[g.index(a.Row, a.Col)] || g.blocked[g.index(b.Row, b.Col)] {
		return false
	}
	if a == b {
		return true
	}

	seen := make([]bool, len(g.blocked))
	seen[g.index(a.Row, a.Col)] = true
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.NeighborsOf(queue[qi]) {
			if n == b {
				return true
			}
			ni := g.index(n.Row, n.Col)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}
