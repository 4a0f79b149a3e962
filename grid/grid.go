package grid

import (
	"fmt"
)

// New constructs a rows×cols Grid with every cell passable.
// Returns ErrInvalidDimension if rows <= 0 or cols <= 0.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimension, rows, cols)
	}

	return &Grid{
		rows:    rows,
		cols:    cols,
		blocked: make([]bool, rows*cols),
	}, nil
}

// NewSquare constructs an n×n Grid with every cell passable.
func NewSquare(n int) (*Grid, error) {
	return New(n, n)
}

// FromStrings builds a Grid from an ASCII layout, one string per row.
// BarrierRune ('#') marks an impassable cell; any other rune is passable.
// Returns ErrEmptyGrid for an empty layout and ErrNonRectangular when row
// lengths (in runes) differ.
func FromStrings(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, n, cols)
		}
	}

	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		for c, ch := range []rune(line) {
			if ch == BarrierRune {
				g.blocked[g.index(r, c)] = true
			}
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// SetPassable marks c passable or impassable.
// Returns ErrOutOfBounds if c is outside the grid.
func (g *Grid) SetPassable(c Cell, passable bool) error {
	if !g.InBounds(c) {
		return g.outOfBounds(c)
	}
	g.blocked[g.index(c.Row, c.Col)] = !passable

	return nil
}

// Passable reports whether c can be entered.
// Returns ErrOutOfBounds if c is outside the grid.
func (g *Grid) Passable(c Cell) (bool, error) {
	if !g.InBounds(c) {
		return false, g.outOfBounds(c)
	}

	return !g.blocked[g.index(c.Row, c.Col)], nil
}

// NeighborsOf returns the in-bounds, passable orthogonal neighbors of c in
// the fixed order down, up, right, left. The passability of c itself is not
// consulted. An out-of-bounds c yields only its in-bounds neighbors.
// Complexity: O(1).
func (g *Grid) NeighborsOf(c Cell) []Cell {
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if !g.InBounds(n) || g.blocked[g.index(n.Row, n.Col)] {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Reset makes every cell passable again.
func (g *Grid) Reset() {
	clear(g.blocked)
}

// Barriers lists impassable cells in row-major order.
func (g *Grid) Barriers() []Cell {
	var out []Cell
	for i, b := range g.blocked {
		if b {
			out = append(out, g.cell(i))
		}
	}

	return out
}

// String renders the grid as an ASCII layout accepted by FromStrings.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.blocked[g.index(r, c)] {
				buf = append(buf, BarrierRune)
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}

	return string(buf)
}

// index maps (row,col) to a row-major index: row*cols + col.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// cell converts a row-major index back to a Cell.
func (g *Grid) cell(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

func (g *Grid) outOfBounds(c Cell) error {
	return fmt.Errorf("%w: %v not in %d×%d", ErrOutOfBounds, c, g.rows, g.cols)
}
