package editor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for editor operations.
var (
	// ErrNilGrid indicates FromGrid received a nil grid.
	ErrNilGrid = errors.New("editor: grid is nil")
	// ErrEndpointsUnset indicates Run was called before start and goal were placed.
	ErrEndpointsUnset = errors.New("editor: start and goal must both be set")
)

// Status is the display state of one cell.
type Status int

const (
	// Unvisited is a passable cell the last search never touched.
	Unvisited Status = iota
	// Open is a cell that entered the open set but was not expanded.
	Open
	// Closed is a cell that was expanded.
	Closed
	// Barrier is an impassable cell.
	Barrier
	// Start is the search origin.
	Start
	// Goal is the search target.
	Goal
	// Path is a cell on the reconstructed shortest path.
	Path
)

var statusNames = [...]string{
	Unvisited: "unvisited",
	Open:      "open",
	Closed:    "closed",
	Barrier:   "barrier",
	Start:     "start",
	Goal:      "goal",
	Path:      "path",
}

// String returns the lower-case status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// decoration reports whether s is left over from a previous search.
func (s Status) decoration() bool {
	return s == Open || s == Closed || s == Path
}

// Option configures an Editor.
type Option func(*Options)

// Options holds editor callbacks.
type Options struct {
	// OnStep runs after every expansion of Run, once the expanded cell's
	// status was updated. Typical use is re-rendering the board.
	OnStep func(e *Editor, c grid.Cell)
}

// DefaultOptions returns Options with a no-op OnStep.
func DefaultOptions() Options {
	return Options{OnStep: func(*Editor, grid.Cell) {}}
}

// WithOnStep registers the per-expansion callback. Nil is ignored.
func WithOnStep(fn func(e *Editor, c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
