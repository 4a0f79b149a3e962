package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/katalvlaran/gridpath/editor"
)

// Draw renders snap, indexed [row][col], to an image of
// (cols×CellSize) × (rows×CellSize) pixels.
func Draw(snap [][]editor.Status, opts ...Option) (image.Image, error) {
	dc, err := draw(snap, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders snap and encodes it as PNG to w.
func WritePNG(w io.Writer, snap [][]editor.Status, opts ...Option) error {
	dc, err := draw(snap, opts)
	if err != nil {
		return err
	}
	if err = dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG renders snap and writes it to the PNG file at path.
func SavePNG(path string, snap [][]editor.Status, opts ...Option) error {
	dc, err := draw(snap, opts)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %q: %w", path, err)
	}
	return nil
}

func draw(snap [][]editor.Status, opts []Option) (*gg.Context, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	rows, cols, err := dims(snap)
	if err != nil {
		return nil, err
	}

	cs := float64(o.CellSize)
	w, h := cols*o.CellSize, rows*o.CellSize
	dc := gg.NewContext(w, h)
	dc.SetColor(o.Palette.color(editor.Unvisited))
	dc.Clear()

	for r, row := range snap {
		for c, st := range row {
			dc.SetColor(o.Palette.color(st))
			dc.DrawRectangle(float64(c)*cs, float64(r)*cs, cs, cs)
			dc.Fill()
		}
	}

	if o.GridLines {
		dc.SetColor(o.LineColor)
		dc.SetLineWidth(1)
		for r := 0; r <= rows; r++ {
			y := float64(r) * cs
			dc.DrawLine(0, y, float64(w), y)
		}
		for c := 0; c <= cols; c++ {
			x := float64(c) * cs
			dc.DrawLine(x, 0, x, float64(h))
		}
		dc.Stroke()
	}

	if o.Labels {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(White)
		for r, row := range snap {
			for c, st := range row {
				var label string
				switch st {
				case editor.Start:
					label = "S"
				case editor.Goal:
					label = "G"
				default:
					continue
				}
				dc.DrawStringAnchored(label, (float64(c)+0.5)*cs, (float64(r)+0.5)*cs, 0.5, 0.5)
			}
		}
	}

	return dc, nil
}

// dims validates snap and returns its row and column counts.
func dims(snap [][]editor.Status) (rows, cols int, err error) {
	if len(snap) == 0 || len(snap[0]) == 0 {
		return 0, 0, ErrEmptySnapshot
	}
	cols = len(snap[0])
	for i, row := range snap {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), cols)
		}
	}
	return len(snap), cols, nil
}
