package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Axis labels.
const (
	YLabel = "E_pot [eV/Volume]"
	XLabel = "Unit cell volume [Å³]"
)

var (
	// ErrLengthMismatch is returned when x and the rows of y differ in length.
	ErrLengthMismatch = errors.New("render: x and y lengths differ")
	// ErrNoSeries is returned when y has no columns.
	ErrNoSeries = errors.New("render: no dependent series")
)

// New plots every column of y against x on a single set of axes.
func New(x []float64, y mat.Matrix) (*plot.Plot, error) {
	rows, cols := y.Dims()
	if rows != len(x) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), rows)
	}
	if cols == 0 {
		return nil, ErrNoSeries
	}

	p := plot.New()
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, y)
		c := plotutil.Color(j)
		for _, seg := range segments(x, col) {
			l, err := plotter.NewLine(seg)
			if err != nil {
				return nil, fmt.Errorf("render: series %d: %w", j, err)
			}
			l.Color = c
			p.Add(l)
		}
	}

	return p, nil
}

// segments splits the points (x[i], y[i]) into runs of finite values.
func segments(x, y []float64) []plotter.XYs {
	var (
		out []plotter.XYs
		cur plotter.XYs
	)
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WritePNG rasterizes p and writes it to w as PNG.
func WritePNG(w io.Writer, p *plot.Plot, opts ...Option) error {
	cfg := ApplyOptions(opts...)

	c := vgimg.NewWith(vgimg.UseWH(cfg.Width, cfg.Height), vgimg.UseDPI(cfg.DPI))
	p.Draw(draw.New(c))

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// writePNG is replaced in tests.
var writePNG = WritePNG

// SaveFile writes p as PNG to path, creating or truncating the file.
// On failure the partially written file is removed.
func SaveFile(path string, p *plot.Plot, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return writePNG(f, p, opts...)
}
