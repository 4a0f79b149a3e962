package grid

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Scatter blocks each cell independently with probability density, using a
// source seeded with seed so the same arguments always yield the same board.
// Cells listed in keep are left untouched (typically start and goal).
// Existing barriers are never cleared. Returns ErrInvalidDensity if density
// is outside [0,1].
func (g *Grid) Scatter(density float64, seed uint64, keep ...Cell) error {
	if density < 0 || density > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidDensity, density)
	}

	skip := make(map[Cell]struct{}, len(keep))
	for _, c := range keep {
		skip[c] = struct{}{}
	}

	r := rand.New(rand.NewSource(seed))
	for i := range g.blocked {
		// draw for every cell so kept cells do not shift the sequence
		hit := r.Float64() < density
		if _, ok := skip[g.cell(i)]; ok {
			continue
		}
		if hit {
			g.blocked[i] = true
		}
	}

	return nil
}
