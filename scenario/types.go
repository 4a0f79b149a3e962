package scenario

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for scenario loading.
var (
	// ErrMissingEndpoint indicates the scenario lacks a start or a goal.
	ErrMissingEndpoint = errors.New("scenario: start and goal are required")
	// ErrSameEndpoints indicates start and goal name the same cell.
	ErrSameEndpoints = errors.New("scenario: start and goal must differ")
	// ErrConflictingLayout indicates a layout that disagrees with explicit fields.
	ErrConflictingLayout = errors.New("scenario: layout conflicts with explicit settings")
	// ErrInvalidPoint indicates a coordinate that is not a [row, col] pair.
	ErrInvalidPoint = errors.New("scenario: point must be a [row, col] pair")
)

// Default values applied by Parse.
const (
	DefaultCellSize = 16
)

// Point is a [row, col] coordinate pair.
type Point struct {
	Row, Col int
}

// UnmarshalYAML decodes a two-element integer sequence.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrInvalidPoint, value.Line, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: line %d: got %d elements", ErrInvalidPoint, value.Line, len(pair))
	}
	p.Row, p.Col = pair[0], pair[1]
	return nil
}

// Cell converts p to a grid cell.
func (p Point) Cell() grid.Cell {
	return grid.Cell{Row: p.Row, Col: p.Col}
}

// Scenario holds one search setup.
type Scenario struct {
	Rows     int           `yaml:"rows"`
	Cols     int           `yaml:"cols"`
	Start    *Point        `yaml:"start"`
	Goal     *Point        `yaml:"goal"`
	Barriers []Point       `yaml:"barriers"`
	Layout   string        `yaml:"layout"`
	Random   *RandomConfig `yaml:"random"`
	Render   RenderConfig  `yaml:"render"`

	// layout cells parsed by Parse; nil when Layout is empty
	layoutLines []string
}

// RandomConfig adds seeded random barriers on top of declared ones.
type RandomConfig struct {
	Density float64 `yaml:"density"`
	Seed    uint64  `yaml:"seed"`
}

// RenderConfig holds PNG output settings.
type RenderConfig struct {
	CellSize  int   `yaml:"cell_size"`
	Labels    bool  `yaml:"labels"`
	GridLines *bool `yaml:"grid_lines"` // nil means on
}
