// Package render draws dependent series against an independent column and
// encodes the figure as PNG.
//
// The figure layout is fixed: one plot area, no title, no legend, the
// potential-energy label on the y axis and the unit cell volume label on the
// x axis. Each series gets the next colour of the default palette. Samples
// that are NaN or infinite break a line into separate segments.
//
//	p, err := render.New(x, y)
//	if err != nil { ... }
//	err = render.SaveFile("run.png", p)
package render
