// Package app runs the load, smooth, render, save and show pipeline.
package app

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/datplot/display"
	"github.com/cwbudde/datplot/internal/cli"
	"github.com/cwbudde/datplot/internal/logging"
	"github.com/cwbudde/datplot/render"
	"github.com/cwbudde/datplot/smooth"
	"github.com/cwbudde/datplot/stats/series"
	"github.com/cwbudde/datplot/table"
)

// Run executes one invocation. The first failing stage ends the run; when
// loading fails no output file is created. With opts.Show, viewer is called
// after the image has been written.
func Run(opts cli.Options, viewer display.Viewer, log logr.Logger) error {
	in := opts.InputPath()
	out := opts.OutputPath()
	log = log.WithValues("input", in)

	tbl, err := table.Load(in)
	if err != nil {
		return err
	}
	rows, cols := tbl.Dims()
	log.V(logging.DEBUG).Info("Loaded table", "rows", rows, "columns", cols)

	x := tbl.Independent()
	y := tbl.Dependent()

	if opts.Average {
		win := smooth.Apply(y)
		log.V(logging.DEBUG).Info("Smoothed dependent series", "window", win)
	}

	if v := log.V(logging.DEBUG); v.Enabled() {
		for j, s := range series.Columns(y) {
			v.Info("Series summary", "series", j+1,
				"min", s.Min, "minAt", at(x, s.MinPos), "max", s.Max, "maxAt", at(x, s.MaxPos),
				"mean", s.Mean, "nans", s.NaNs)
		}
	}

	if v := log.V(logging.TRACE); v.Enabled() {
		var row []float64
		for i := range x {
			row = mat.Row(row, i, y)
			v.Info("Plotted row", "row", i, "x", x[i], "y", row)
		}
	}

	p, err := render.New(x, y)
	if err != nil {
		return err
	}
	if err := render.SaveFile(out, p); err != nil {
		return err
	}
	log.Info("Saved plot", "output", out, "series", cols-1)

	if opts.Show {
		if viewer == nil {
			return fmt.Errorf("app: show requested without a viewer")
		}
		log.V(logging.DEBUG).Info("Opening display", "output", out)
		return viewer.Show(opts.Basename, out)
	}

	return nil
}

func at(x []float64, i int) float64 {
	if i < 0 || i >= len(x) {
		return math.NaN()
	}
	return x[i]
}
