// Package astar defines result types, functional options and sentinel errors
// for A* search over a grid.Grid.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates that start or goal lies outside the grid.
	ErrInvalidEndpoint = errors.New("astar: endpoint out of bounds")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Status is the terminal outcome of a search.
type Status int

const (
	// Unreachable means the open set was exhausted without reaching the goal.
	Unreachable Status = iota
	// Found means a shortest path was reconstructed.
	Found
	// Cancelled means the search context was done before the goal was reached.
	Cancelled
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result holds the outcome of FindPath:
//   - Status:   Found, Unreachable or Cancelled.
//   - Path:     cells from start to goal inclusive; nil unless Found.
//   - Cost:     number of edges on Path (len(Path)-1); 0 unless Found.
//   - Expanded: number of cells popped from the open set and expanded,
//     the goal included; stale duplicates are not counted.
type Result struct {
	Status   Status
	Path     []grid.Cell
	Cost     int
	Expanded int
}

// Found reports whether the search produced a path.
func (r Result) Found() bool { return r.Status == Found }

// Edges returns the number of moves on the path, 0 when none was found.
func (r Result) Edges() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Heuristic estimates the remaining cost from a cell to the goal.
// It must never overestimate for FindPath to return optimal paths.
type Heuristic func(from, goal grid.Cell) int

// Option configures FindPath via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters and callbacks of a single search.
type Options struct {
	// Ctx is checked once per outer loop iteration.
	Ctx context.Context

	// OnExpand is called after a cell's neighbors were processed,
	// and once for the goal when it is reached.
	OnExpand func(c grid.Cell)

	// OnOpen is called when a cell is pushed into the open set.
	OnOpen func(c grid.Cell)

	// Heuristic defaults to Manhattan.
	Heuristic Heuristic

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op OnExpand and OnOpen hooks
//   - the Manhattan heuristic
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnExpand:  func(grid.Cell) {},
		OnOpen:    func(grid.Cell) {},
		Heuristic: Manhattan,
	}
}

// WithContext sets a context whose cancellation stops the search with
// status Cancelled. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers the expansion hook.
func WithOnExpand(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnOpen registers the hook run when a cell enters the open set.
func WithOnOpen(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}

// WithHeuristic replaces the Manhattan heuristic.
// A nil heuristic is recorded as ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}
