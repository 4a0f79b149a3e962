// Package grid defines the cell type, the grid model, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates a non-positive row or column count.
	ErrInvalidDimension = errors.New("grid: rows and cols must be positive")
	// ErrOutOfBounds indicates coordinates outside the grid extent.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrEmptyGrid indicates an ASCII layout with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all layout rows must have the same length")
	// ErrInvalidDensity indicates a barrier density outside [0,1].
	ErrInvalidDensity = errors.New("grid: density must be within [0,1]")
)

// BarrierRune marks an impassable cell in ASCII layouts.
const BarrierRune = '#'

// Cell identifies a grid cell by its zero-based row and column.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a rows×cols board of passability flags.
// Dimensions never change after construction; blocked[r*cols+c] is true
// when the cell at (r,c) is impassable.
type Grid struct {
	rows, cols int
	blocked    []bool
}

// offsets lists neighbor deltas in the contract order: down, up, right, left.
var offsets = [4]Cell{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}
