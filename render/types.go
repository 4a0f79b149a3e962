package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/katalvlaran/gridpath/editor"
)

// Sentinel errors for rendering.
var (
	// ErrEmptySnapshot indicates a snapshot with no rows or no columns.
	ErrEmptySnapshot = errors.New("render: snapshot must have at least one row and one column")
	// ErrNonRectangular indicates snapshot rows of differing lengths.
	ErrNonRectangular = errors.New("render: all snapshot rows must have the same length")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Palette maps each status to its fill color.
type Palette map[editor.Status]color.Color

// Classic visualizer colors.
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Purple = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Grey   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// DefaultPalette returns a fresh copy of the classic palette.
func DefaultPalette() Palette {
	return Palette{
		editor.Unvisited: White,
		editor.Open:      Blue,
		editor.Closed:    Red,
		editor.Barrier:   Black,
		editor.Start:     Orange,
		editor.Goal:      Purple,
		editor.Path:      Green,
	}
}

// color returns the fill for s, falling back to the Unvisited color and
// then to white for statuses the palette does not cover.
func (p Palette) color(s editor.Status) color.Color {
	if c, ok := p[s]; ok {
		return c
	}
	if c, ok := p[editor.Unvisited]; ok {
		return c
	}
	return White
}

// Option configures rendering.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	CellSize  int         // pixels per cell edge
	GridLines bool        // draw cell separators
	LineColor color.Color // separator color
	Labels    bool        // draw "S" and "G" on endpoints
	Palette   Palette     // status colors

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns 16px cells with grey grid lines, labels off and
// the classic palette.
func DefaultOptions() Options {
	return Options{
		CellSize:  16,
		GridLines: true,
		LineColor: Grey,
		Labels:    false,
		Palette:   DefaultPalette(),
	}
}

// WithCellSize sets the cell edge in pixels; px must be positive.
func WithCellSize(px int) Option {
	return func(o *Options) {
		if px <= 0 {
			o.err = fmt.Errorf("%w: cell size must be positive (%d)", ErrOptionViolation, px)
			return
		}
		o.CellSize = px
	}
}

// WithGridLines toggles cell separators.
func WithGridLines(on bool) Option {
	return func(o *Options) { o.GridLines = on }
}

// WithLabels toggles "S"/"G" endpoint labels.
func WithLabels(on bool) Option {
	return func(o *Options) { o.Labels = on }
}

// WithPalette overrides individual status colors; statuses missing from p
// keep their current color.
func WithPalette(p Palette) Option {
	return func(o *Options) {
		for s, c := range p {
			o.Palette[s] = c
		}
	}
}
